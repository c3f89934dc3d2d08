package cli

import (
	"testing"

	"github.com/wtyler2505/RoverMissionControl-sub002/internal/colour"
)

func TestLevelValueDefault(t *testing.T) {
	var level colour.Level
	v := newLevelValue(&level)

	if level != colour.LevelAA {
		t.Errorf("default level = %q, want %q", level, colour.LevelAA)
	}
	if got := v.String(); got != string(colour.LevelAA) {
		t.Errorf("String() = %q, want %q", got, colour.LevelAA)
	}
	if got := v.Type(); got != "level" {
		t.Errorf("Type() = %q, want %q", got, "level")
	}
}

func TestLevelValueSet(t *testing.T) {
	tests := []struct {
		input   string
		want    colour.Level
		wantErr bool
	}{
		{"AA", colour.LevelAA, false},
		{"AAA", colour.LevelAAA, false},
		{"aa", colour.LevelAA, false},
		{"aaa", colour.LevelAAA, false},
		{" AAA ", colour.LevelAAA, false},
		{"A", "", true},
		{"AAAA", "", true},
		{"fail", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var level colour.Level
			v := newLevelValue(&level)

			err := v.Set(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q) = nil error, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q) returned error: %v", tt.input, err)
			}
			if level != tt.want {
				t.Errorf("Set(%q) level = %q, want %q", tt.input, level, tt.want)
			}
		})
	}
}
