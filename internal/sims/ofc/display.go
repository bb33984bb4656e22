package ofc

import (
	"fmt"
	"image/color"
)

const (
	stressBands = 8
	// displayDischarged marks cells that discharged during the last tick.
	displayDischarged = stressBands
)

var ofcPalette = buildPalette()

// Palette exposes the color palette used for rendering the stress lattice.
func (m *Model) Palette() []color.RGBA { return ofcPalette }

func buildPalette() []color.RGBA {
	low := color.RGBA{R: 12, G: 16, B: 48, A: 255}
	high := color.RGBA{R: 250, G: 200, B: 60, A: 255}
	palette := make([]color.RGBA, stressBands+1)
	for i := 0; i < stressBands; i++ {
		t := float64(i) / float64(stressBands-1)
		palette[i] = lerp(low, high, t)
	}
	palette[displayDischarged] = color.RGBA{R: 255, G: 60, B: 40, A: 255}
	return palette
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x)*(1-t) + float64(y)*t + 0.5) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func stressBand(v, fCrit float64) uint8 {
	band := int(v / fCrit * stressBands)
	if band < 0 {
		band = 0
	}
	if band >= stressBands {
		band = stressBands - 1
	}
	return uint8(band)
}

func (m *Model) rebuildDisplay() {
	hits := m.relaxer.Discharges()
	for i, v := range m.grid.data {
		if i < len(hits) && hits[i] > 0 {
			m.display[i] = displayDischarged
			continue
		}
		m.display[i] = stressBand(v, m.cfg.FCrit)
	}
}

// StatusLines describes the current tick for on-screen display.
func (m *Model) StatusLines() []string {
	s := Summarize(m.recorder.series)
	lines := []string{
		fmt.Sprintf("tick %d", m.tick),
		fmt.Sprintf("last size %d (%d sweeps)", m.last.Size, m.last.Sweeps),
		fmt.Sprintf("events %d (rate %.4f)", s.Events, s.EventRate),
		fmt.Sprintf("max size %d", s.MaxSize),
		fmt.Sprintf("stress %.2f", m.grid.Sum()),
	}
	if m.err != nil {
		lines = append(lines, "stopped: "+m.err.Error())
	}
	return lines
}
