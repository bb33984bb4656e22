package ofc

// Summary aggregates a time series of avalanche sizes.
type Summary struct {
	Ticks      int     `json:"ticks"`
	Events     int     `json:"events"`
	EventRate  float64 `json:"event_rate"`
	Discharges int     `json:"discharges"`
	MeanSize   float64 `json:"mean_size"`
	MaxSize    int     `json:"max_size"`
}

// Summarize computes counts over series. MeanSize averages nonzero events
// only.
func Summarize(series []int) Summary {
	s := Summary{Ticks: len(series)}
	for _, size := range series {
		if size <= 0 {
			continue
		}
		s.Events++
		s.Discharges += size
		if size > s.MaxSize {
			s.MaxSize = size
		}
	}
	if s.Ticks > 0 {
		s.EventRate = float64(s.Events) / float64(s.Ticks)
	}
	if s.Events > 0 {
		s.MeanSize = float64(s.Discharges) / float64(s.Events)
	}
	return s
}
