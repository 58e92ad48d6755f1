package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		ok       bool
	}{
		{"bright_cyan", ColorBrightCyan, true},
		{"orange", ColorOrange, true},
		{"default", ColorDefault, true},
		{"chartreuse", ColorDefault, false},
		{"", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := ParseColor(tc.name)
			if ok != tc.ok || c != tc.expected {
				t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.name, c, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionRotate.String() != "Rotate" {
		t.Errorf("ActionRotate.String() = %q", ActionRotate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
