package wave

import "math"

const (
	DefaultICenter   = 25
	DefaultGridSize  = 100
	DefaultTimesteps = 100
	DefaultDt        = 1.0
	DefaultDx        = 1.0
	DefaultC         = 1.0
	DefaultDecay     = 0.02

	// CourantLimit is the largest c*dt/dx the explicit scheme tolerates.
	CourantLimit = 1.0

	// MinGridSize leaves one interior point for the three-point stencil.
	MinGridSize = 3
)

// Params holds the seven inputs of a solver run. ICenter is 1-based.
type Params struct {
	ICenter   int     `yaml:"icenter" json:"icenter"`
	GridSize  int     `yaml:"grid_size" json:"grid_size"`
	Timesteps int     `yaml:"timesteps" json:"timesteps"`
	Dt        float64 `yaml:"dt" json:"dt"`
	Dx        float64 `yaml:"dx" json:"dx"`
	C         float64 `yaml:"c" json:"c"`
	Decay     float64 `yaml:"decay" json:"decay"`
}

func DefaultParams() Params {
	return Params{
		ICenter:   DefaultICenter,
		GridSize:  DefaultGridSize,
		Timesteps: DefaultTimesteps,
		Dt:        DefaultDt,
		Dx:        DefaultDx,
		C:         DefaultC,
		Decay:     DefaultDecay,
	}
}

// Courant returns the dimensionless ratio c*dt/dx.
func (p Params) Courant() float64 {
	return p.C * p.Dt / p.Dx
}

// Cells is the number of samples a run with p produces.
func (p Params) Cells() int {
	return p.GridSize * p.Timesteps
}

// Validate checks every parameter against its domain and reports the first
// violation in declaration order.
func (p Params) Validate() error {
	if p.GridSize < MinGridSize {
		return &ParamError{Field: "grid_size", Constraint: "grid_size >= 3", Value: p.GridSize}
	}
	if p.ICenter < 1 || p.ICenter > p.GridSize {
		return &ParamError{Field: "icenter", Constraint: "1 <= icenter <= grid_size", Value: p.ICenter}
	}
	if p.Timesteps < 1 {
		return &ParamError{Field: "timesteps", Constraint: "timesteps >= 1", Value: p.Timesteps}
	}

	reals := []struct {
		name, constraint string
		v                float64
		ok               func(float64) bool
	}{
		{"dt", "dt > 0", p.Dt, positive},
		{"dx", "dx > 0", p.Dx, positive},
		{"c", "c >= 0", p.C, nonNegative},
		{"decay", "decay >= 0", p.Decay, nonNegative},
	}
	for _, r := range reals {
		if math.IsNaN(r.v) || math.IsInf(r.v, 0) {
			return &ParamError{Field: r.name, Constraint: r.name + " finite", Value: r.v}
		}
		if !r.ok(r.v) {
			return &ParamError{Field: r.name, Constraint: r.constraint, Value: r.v}
		}
	}
	return nil
}

// CheckStability rejects parameter sets whose Courant number exceeds
// CourantLimit. It assumes p already passed Validate.
func (p Params) CheckStability() error {
	if r := p.Courant(); r > CourantLimit {
		return &CourantError{Courant: r, Limit: CourantLimit}
	}
	return nil
}

func positive(v float64) bool    { return v > 0 }
func nonNegative(v float64) bool { return v >= 0 }
