// Package wave provides the explicit finite-difference solver for the damped
// one-dimensional wave equation
//
//	∂²h/∂t² = c² ∂²h/∂x² − γ ∂h/∂t
//
// on a uniform grid of GridSize points spaced Dx apart.
//
// A run is a pure function of its [Params]:
//
//	p := wave.DefaultParams()
//	f, err := wave.Run(p)
//	if err != nil {
//	    // errors.Is(err, wave.ErrInvalidParameter) etc.
//	}
//	initial := f.Row(0)
//
// # Conventions
//
// Row 0 of the returned [Field] is the initial state, so a run yields exactly
// Timesteps rows. The initial state is a unit pulse at 1-based grid index
// ICenter with zero velocity. Both edge points are held at zero (Dirichlet)
// on every row; a pulse seeded on an edge is therefore clamped away.
//
// Damping enters as a centred velocity drag,
//
//	h[t] = (2h[t−1] − (1 − d/2)h[t−2] + r²·δ²h[t−1]) / (1 + d/2)
//
// with d = Decay and r = C·Dt/Dx, which reduces to plain leapfrog for d = 0
// and stays stable for every d ≥ 0 while the Courant number r ≤ 1. Runs with
// r > 1 are rejected with [ErrCourantViolation].
//
// # Thread Safety
//
// Run shares no state between calls and may be invoked concurrently. A Field
// is never mutated after Run returns it.
package wave
