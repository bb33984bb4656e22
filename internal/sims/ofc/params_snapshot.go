package ofc

import (
	"strconv"

	"ofc-quake/internal/core"
)

// Parameters reports the configuration grouped for the HUD.
func (m *Model) Parameters() core.ParameterSnapshot {
	c := m.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("n", "Size", c.N),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				floatParam("f_crit", "Threshold", c.FCrit),
				floatParam("f_out", "Drive", c.FOut),
				floatParam("alpha", "Alpha", c.Alpha),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("steps", "Steps", c.Steps),
				intParam("max_sweeps", "Sweep limit", c.MaxSweeps),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
