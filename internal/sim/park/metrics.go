package park

// WorldMetrics is the latest tick's headline numbers, published atomically
// so HTTP handlers never touch live world state.
type WorldMetrics struct {
	Tick       uint64  `json:"tick"`
	Guests     int     `json:"guests"`
	Coasters   int     `json:"coasters"`
	Cash       float64 `json:"cash"`
	Rating     float64 `json:"rating"`
	Speed      int     `json:"speed"`
	StepMillis float64 `json:"step_millis"`
}

func (w *World) Metrics() WorldMetrics {
	if m := w.metrics.Load(); m != nil {
		return *m
	}
	return WorldMetrics{}
}
