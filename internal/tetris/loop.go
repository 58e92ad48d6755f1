package tetris

import (
	"context"
)

// Command is a player input delivered to a Loop.
type Command int

const (
	CmdLeft Command = iota
	CmdRight
	CmdDown
	CmdRotate
	CmdTogglePause
	CmdRestart
)

// String returns a lowercase name for the command.
func (c Command) String() string {
	switch c {
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdDown:
		return "down"
	case CmdRotate:
		return "rotate"
	case CmdTogglePause:
		return "pause"
	case CmdRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Loop runs an engine in real time. Ticks from the ticker and commands
// from Send are handled by the single goroutine inside Run, so neither can
// interleave with the other.
type Loop struct {
	engine   *Engine
	ticker   Ticker
	commands chan Command
	onUpdate func(Snapshot)
}

// NewLoop creates an engine whose scheduler drives ticker.
// The ticker must be stopped; the engine starts it on NewGame.
func NewLoop(rules Rules, ticker Ticker, opts ...Option) *Loop {
	opts = append(opts, WithScheduler(NewTickerScheduler(ticker)))
	return &Loop{
		engine:   New(rules, opts...),
		ticker:   ticker,
		commands: make(chan Command),
	}
}

// OnUpdate registers fn to receive a snapshot after every handled tick or
// command. It is called from the Run goroutine.
func (l *Loop) OnUpdate(fn func(Snapshot)) {
	l.onUpdate = fn
}

// Engine returns the engine. Only safe to inspect once Run has returned.
func (l *Loop) Engine() *Engine {
	return l.engine
}

// Send delivers a command to the running loop. It blocks until the loop
// accepts the command or ctx is done.
func (l *Loop) Send(ctx context.Context, cmd Command) error {
	select {
	case l.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run starts a new game and processes ticks and commands until the game
// ends or ctx is cancelled. It returns ctx.Err() on cancellation.
func (l *Loop) Run(ctx context.Context) error {
	defer l.ticker.Stop()

	l.engine.NewGame()
	l.notify()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.ticker.C():
			l.engine.AdvanceTick()
		case cmd := <-l.commands:
			l.apply(cmd)
		}
		l.notify()

		if l.engine.GameOver() {
			return nil
		}
	}
}

func (l *Loop) apply(cmd Command) {
	switch cmd {
	case CmdLeft:
		l.engine.MoveCurrent(-1, 0)
	case CmdRight:
		l.engine.MoveCurrent(1, 0)
	case CmdDown:
		l.engine.MoveCurrent(0, 1)
	case CmdRotate:
		l.engine.RotateCurrent()
	case CmdTogglePause:
		l.engine.TogglePause()
	case CmdRestart:
		l.engine.NewGame()
	}
}

func (l *Loop) notify() {
	if l.onUpdate != nil {
		l.onUpdate(l.engine.Snapshot())
	}
}
