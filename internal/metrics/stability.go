package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stability is the fraction of rows whose peak |h| stays within threshold.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(row []float64, _ int) {
	s.samples++
	if peak(row) > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}

// PeakAmplitude tracks the largest |h| seen over the run.
type PeakAmplitude struct {
	name string
	max  float64
}

func NewPeakAmplitude() *PeakAmplitude {
	return &PeakAmplitude{name: "peak_amplitude"}
}

func (p *PeakAmplitude) Name() string { return p.name }

func (p *PeakAmplitude) Observe(row []float64, _ int) {
	p.max = math.Max(p.max, peak(row))
}

func (p *PeakAmplitude) Value() float64 { return p.max }
func (p *PeakAmplitude) Reset()         { p.max = 0 }

func peak(row []float64) float64 {
	if len(row) == 0 {
		return 0
	}
	return math.Max(floats.Max(row), -floats.Min(row))
}
