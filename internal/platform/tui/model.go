package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/puzzgame/internal/core"
	"github.com/vovakirdan/puzzgame/internal/storage"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

// footerLines is the space below the screen buffer for help or dialogs.
const footerLines = 2

type mode int

const (
	modePlaying mode = iota
	modeNewRecord
	modeScoreboard
)

// Options configures a game Model.
type Options struct {
	Rules  tetris.Rules
	Seed   int64 // 0 means time-based
	Player string
	Store  Store       // May be nil
	Logger *log.Logger // May be nil
	Width  int
	Height int
}

// eventQueue collects engine events between Update calls. It is shared by
// pointer so the engine's listener survives Bubble Tea's model copies.
type eventQueue struct {
	events []tetris.Event
}

func (q *eventQueue) push(ev tetris.Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) drain() []tetris.Event {
	events := q.events
	q.events = nil
	return events
}

// Model is the Bubble Tea model for one play session.
type Model struct {
	engine     *tetris.Engine
	sched      *tetris.TickScheduler
	queue      *eventQueue
	screen     *core.Screen
	store      Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	nameInput  textinput.Model
	scoreboard ScoreboardModel
	player     string
	sessionID  string
	record     storage.Record
	pending    int // Score awaiting a record holder name
	mode       mode
	width      int
	height     int
	quitting   bool
}

// NewModel creates a game model. The game starts on Init.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		def := core.DefaultConfig()
		opts.Width, opts.Height = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sched := tetris.NewTickScheduler()
	queue := &eventQueue{}
	engine := tetris.New(opts.Rules,
		tetris.WithSeed(opts.Seed),
		tetris.WithScheduler(sched),
		tetris.WithListener(queue.push),
	)

	input := textinput.New()
	input.Placeholder = opts.Player
	input.CharLimit = 24
	input.Width = 24

	h := help.New()
	h.Width = opts.Width

	m := Model{
		engine:    engine,
		sched:     sched,
		queue:     queue,
		screen:    core.NewScreen(opts.Width, max(opts.Height-footerLines, 1)),
		store:     opts.Store,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      h,
		nameInput: input,
		player:    opts.Player,
		sessionID: uuid.NewString(),
		record:    storage.Record{Name: storage.NoHolder},
		width:     opts.Width,
		height:    opts.Height,
	}
	m.loadRecord()
	return m
}

func (m *Model) loadRecord() {
	if m.store == nil {
		return
	}
	rec, err := m.store.Record()
	if err != nil {
		m.logger.Error("cannot load record", "err", err)
		return
	}
	m.record = rec
}

// Init starts the first game and its tick stream.
func (m Model) Init() tea.Cmd {
	m.engine.NewGame()
	m.logger.Info("game started", "player", m.player, "session", m.sessionID)
	return m.nextTick()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeNewRecord:
			return m.handleRecordKey(msg)
		case modeScoreboard:
			return m.handleScoreboardMsg(msg)
		default:
			return m.handleKey(msg)
		}
	}

	if m.mode == modeNewRecord {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 1))
	m.help.Width = msg.Width
	if m.mode == modeScoreboard {
		return m.handleScoreboardMsg(msg)
	}
	return m, nil
}

// handleTick advances the engine when the tick belongs to the armed period.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Current(msg.Gen) {
		return m, nil
	}
	m.engine.AdvanceTick()
	m = m.processEvents()
	return m, m.nextTick()
}

// nextTick schedules the next tick of the armed period, if any.
func (m Model) nextTick() tea.Cmd {
	if !m.sched.Armed() {
		return nil
	}
	return tickCmd(m.sched.Generation(), m.sched.Interval())
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	gen := m.sched.Generation()

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "player", m.player, "score", m.engine.Score())
		return m, tea.Quit
	case core.ActionRestart:
		m.engine.NewGame()
		m.logger.Info("game restarted", "player", m.player)
	case core.ActionPause:
		m.engine.TogglePause()
	case core.ActionLeft:
		m.engine.MoveCurrent(-1, 0)
	case core.ActionRight:
		m.engine.MoveCurrent(1, 0)
	case core.ActionDown:
		m.engine.MoveCurrent(0, 1)
	case core.ActionRotate:
		m.engine.RotateCurrent()
	case core.ActionScoreboard:
		m.engine.Pause()
		m.scoreboard = newEmbeddedScoreboard(m.store, m.width, m.height)
		m.mode = modeScoreboard
	}

	m = m.processEvents()

	// A new period was armed (restart or resume): start its tick stream.
	if m.sched.Generation() != gen {
		return m, m.nextTick()
	}
	return m, nil
}

// handleRecordKey drives the record holder name dialog.
func (m Model) handleRecordKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			name = m.player
		}
		m.saveRecord(m.pending, name)
		m.closeDialog()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.logger.Info("record not saved", "score", m.pending)
		m.closeDialog()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) closeDialog() {
	m.nameInput.Blur()
	m.pending = 0
	m.mode = modePlaying
}

func (m *Model) saveRecord(score int, name string) {
	if m.store != nil {
		if err := m.store.SetRecord(score, name); err != nil {
			m.logger.Error("cannot save record", "err", err)
			return
		}
		m.loadRecord()
	} else {
		m.record = storage.Record{Score: score, Name: name}
	}
	m.logger.Info("record saved", "score", score, "name", name)
}

func (m Model) handleScoreboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	if sb, ok := updated.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.mode = modePlaying
		return m, nil
	}
	return m, cmd
}

// processEvents handles everything the engine emitted since the last call.
func (m Model) processEvents() Model {
	for _, ev := range m.queue.drain() {
		switch e := ev.(type) {
		case tetris.LinesClearedEvent:
			m.logger.Debug("lines cleared", "count", e.Count, "score", m.engine.Score())
		case tetris.LevelChangedEvent:
			m.logger.Info("level up", "level", e.Level, "interval", e.Interval)
		case tetris.GameOverEvent:
			m.finishGame(e)
		}
	}
	return m
}

// finishGame saves the result and opens the record dialog when the
// record was beaten.
func (m *Model) finishGame(e tetris.GameOverEvent) {
	m.logger.Info("game over",
		"player", m.player,
		"score", e.Score,
		"lines", e.Lines,
		"level", e.Level,
		"time", tetris.FormatElapsed(e.Elapsed),
	)

	if m.store != nil {
		_, err := m.store.SaveScore(storage.GameResult{
			Player:    m.player,
			Score:     e.Score,
			Lines:     e.Lines,
			Level:     e.Level,
			Duration:  e.Elapsed,
			SessionID: m.sessionID,
		})
		if err != nil {
			m.logger.Error("cannot save score", "err", err)
		}
	}

	// Another session may have raised the record since it was loaded.
	m.loadRecord()
	if e.Score <= m.record.Score {
		return
	}
	m.logger.Info("record beaten", "score", e.Score, "previous", m.record.Score)
	m.pending = e.Score
	m.mode = modeNewRecord
	m.nameInput.SetValue(m.player)
	m.nameInput.CursorEnd()
	m.nameInput.Focus()
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dialogStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeScoreboard {
		return m.scoreboard.View()
	}

	m.screen.Clear()
	drawGame(m.screen, m.engine.Snapshot(), hud{
		player:    m.player,
		record:    m.record,
		newRecord: m.mode == modeNewRecord,
	})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if m.mode == modeNewRecord {
		b.WriteString(dialogStyle.Render("Record holder: "))
		b.WriteString(m.nameInput.View())
		b.WriteString(footerStyle.Render("  enter save • esc skip"))
	} else {
		b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// Engine returns the engine driven by this model.
func (m Model) Engine() *tetris.Engine {
	return m.engine
}

// Record returns the record as last loaded or saved.
func (m Model) Record() storage.Record {
	return m.record
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
