package movements

import "time"

// Recorder recibe la duración de cada agregación (métricas).
type Recorder interface {
	ObserveAggregation(mode string, d time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) ObserveAggregation(string, time.Duration) {}
