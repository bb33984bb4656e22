package ui

import (
	"fmt"

	"ofc-quake/internal/core"
)

// MinHeight is the smallest window height that fits the panel text.
const MinHeight = 420

type statusProvider interface {
	StatusLines() []string
}

// Lines builds the HUD text for sim: title, run state, sim status and
// parameters.
func Lines(sim core.Sim, rate int, paused bool) []string {
	state := "running"
	if paused {
		state = "paused"
	}
	size := sim.Size()
	lines := []string{
		fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H),
		fmt.Sprintf("%s at %d ticks/s", state, rate),
		"",
	}
	if sp, ok := sim.(statusProvider); ok {
		lines = append(lines, sp.StatusLines()...)
		lines = append(lines, "")
	}
	if pp, ok := sim.(core.ParameterProvider); ok {
		for _, group := range pp.Parameters().Groups {
			lines = append(lines, "["+group.Name+"]")
			for _, p := range group.Params {
				lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
			}
		}
	}
	lines = append(lines, "", "space pause  n step", "r reset  s reseed", "up/down rate  q quit")
	return lines
}
