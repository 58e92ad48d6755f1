package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/puzzgame/internal/core"
	"github.com/vovakirdan/puzzgame/internal/tetris"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultGameConfig())
	}
}

func TestDefaultRulesMatchEngine(t *testing.T) {
	got := DefaultGameConfig().Rules()
	want := tetris.DefaultRules()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rules() = %+v, want %+v", got, want)
	}
}

func TestLoadGameFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("LoadGame(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadGameUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".puzzgame", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "puzzgame.yaml"), []byte("board:\n  cols: 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if cfg.Board.Cols != 16 {
		t.Errorf("cols = %d, want 16", cfg.Board.Cols)
	}
	if cfg.Board.Rows != 24 {
		t.Errorf("rows = %d, want default 24", cfg.Board.Rows)
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	path := writeConfig(t, `
speed:
  drop_ms_start: 500
  floor_ms: 100
scoring:
  line_points: [1, 3, 5, 8]
palette: [red, blue]
`)

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"drop start", cfg.Speed.DropMsStart, 500},
		{"floor", cfg.Speed.FloorMs, 100},
		{"step keeps default", cfg.Speed.SpeedStepMs, 70},
		{"lines per level keeps default", cfg.Speed.LinesPerLevel, 10},
		{"points", cfg.Scoring.LinePoints, []int{1, 3, 5, 8}},
		{"palette", cfg.Palette, []string{"red", "blue"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestLoadGameCustomPathErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml")},
		{"invalid yaml", writeConfig(t, "board: [unterminated")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadGame(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRulesConversion(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Palette = []string{"red", "no-such-color", "default", "orange"}
	cfg.Speed.FloorMs = 5000

	r := cfg.Rules()

	want := []core.Color{core.ColorRed, core.ColorOrange}
	if !reflect.DeepEqual(r.Palette, want) {
		t.Errorf("palette = %v, want %v", r.Palette, want)
	}
	if r.FloorMs != r.DropMsStart {
		t.Errorf("floor = %d, want clamped to %d", r.FloorMs, r.DropMsStart)
	}
}

func TestRulesEmptyPaletteUsesDefault(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Palette = []string{"nonsense"}

	if got := cfg.Rules().Palette; !reflect.DeepEqual(got, tetris.DefaultPalette) {
		t.Errorf("palette = %v, want default", got)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantStart time.Duration
		wantLvl10 time.Duration
	}{
		{DifficultyNormal, 700 * time.Millisecond, 120 * time.Millisecond},
		{DifficultyEasy, 900 * time.Millisecond, 450 * time.Millisecond},
		{DifficultyHard, 500 * time.Millisecond, 120 * time.Millisecond},
		{DifficultyFixed, 700 * time.Millisecond, 700 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tt.preset)
			r := cfg.Rules()

			if got := r.DropInterval(1); got != tt.wantStart {
				t.Errorf("level 1 interval = %v, want %v", got, tt.wantStart)
			}
			if got := r.DropInterval(10); got != tt.wantLvl10 {
				t.Errorf("level 10 interval = %v, want %v", got, tt.wantLvl10)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "board:\n  cols: 10\n  rows: 20\n")

	r, err := Load(path, DifficultyFixed)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if r.Cols != 10 || r.Rows != 20 {
		t.Errorf("size = %dx%d, want 10x20", r.Cols, r.Rows)
	}
	if r.SpeedStepMs != 0 {
		t.Errorf("step = %d, want 0 for fixed", r.SpeedStepMs)
	}
}
