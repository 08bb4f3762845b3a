package metrics

import (
	"github.com/san-kum/tsunami/internal/wave"
	"gonum.org/v1/gonum/floats"
)

// EnergyProxy is the sum of squared heights over the interior points.
func EnergyProxy(row []float64) float64 {
	if len(row) < 3 {
		return 0
	}
	interior := row[1 : len(row)-1]
	return floats.Dot(interior, interior)
}

// EnergySeries returns EnergyProxy for every row of f.
func EnergySeries(f *wave.Field) []float64 {
	out := make([]float64, f.Timesteps())
	for t := range out {
		out[t] = EnergyProxy(f.Row(t))
	}
	return out
}

// FinalEnergy reports the energy proxy of the last observed row.
type FinalEnergy struct {
	name string
	last float64
}

func NewFinalEnergy() *FinalEnergy {
	return &FinalEnergy{name: "final_energy"}
}

func (e *FinalEnergy) Name() string                  { return e.name }
func (e *FinalEnergy) Observe(row []float64, _ int) { e.last = EnergyProxy(row) }
func (e *FinalEnergy) Value() float64                { return e.last }
func (e *FinalEnergy) Reset()                        { e.last = 0 }

// EnergyDecay is the ratio of the final energy proxy to the initial one.
// A value below one means the field lost energy over the run.
type EnergyDecay struct {
	name    string
	initial float64
	current float64
	samples int
}

func NewEnergyDecay() *EnergyDecay {
	return &EnergyDecay{name: "energy_decay"}
}

func (e *EnergyDecay) Name() string { return e.name }

func (e *EnergyDecay) Observe(row []float64, _ int) {
	energy := EnergyProxy(row)
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++
}

func (e *EnergyDecay) Value() float64 {
	if e.initial == 0 {
		return 0
	}
	return e.current / e.initial
}

func (e *EnergyDecay) Reset() {
	e.initial = 0
	e.current = 0
	e.samples = 0
}
