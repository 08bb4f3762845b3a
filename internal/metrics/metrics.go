package metrics

import "github.com/san-kum/tsunami/internal/wave"

// Metric accumulates a scalar over the rows of a height field.
type Metric interface {
	Name() string
	Observe(row []float64, t int)
	Value() float64
	Reset()
}

// DefaultMetrics returns a fresh set of the metrics reported for every run.
func DefaultMetrics() []Metric {
	return []Metric{
		NewFinalEnergy(),
		NewEnergyDecay(),
		NewPeakAmplitude(),
		NewStability(1.0),
	}
}

// Evaluate resets each metric, feeds it every row of f in time order and
// collects the results by name.
func Evaluate(f *wave.Field, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
	}
	for t := 0; t < f.Timesteps(); t++ {
		row := f.Row(t)
		for _, m := range ms {
			m.Observe(row, t)
		}
	}
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
