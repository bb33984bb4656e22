package ui

import (
	"slices"
	"testing"

	"ofc-quake/internal/core"
	"ofc-quake/internal/sims/ofc"
)

type plainSim struct{}

func (plainSim) Name() string    { return "plain" }
func (plainSim) Size() core.Size { return core.Size{W: 2, H: 3} }
func (plainSim) Reset(int64)     {}
func (plainSim) Step()           {}
func (plainSim) Cells() []uint8  { return make([]uint8, 6) }

func TestLinesForOFC(t *testing.T) {
	m, err := ofc.NewWithConfig(ofc.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	m.Step()

	lines := Lines(m, 600, true)
	for _, want := range []string{"ofc 10x10", "paused at 600 ticks/s", "tick 1", "[Physics]", "  Alpha: 0.25"} {
		if !slices.Contains(lines, want) {
			t.Fatalf("lines missing %q: %q", want, lines)
		}
	}
}

func TestLinesForPlainSim(t *testing.T) {
	lines := Lines(plainSim{}, 30, false)
	if lines[0] != "plain 2x3" || lines[1] != "running at 30 ticks/s" {
		t.Fatalf("header = %q", lines[:2])
	}
}
