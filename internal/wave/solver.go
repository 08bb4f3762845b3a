package wave

// Run integrates the damped wave equation for p and returns the complete
// height field. Parameter and stability errors are reported before any
// allocation; a field with non-finite samples is discarded and reported as
// ErrNumericalInstability.
func Run(p Params) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.CheckStability(); err != nil {
		return nil, err
	}

	f := newField(p)
	seed(f.row(0), p.ICenter)

	if f.rows > 1 {
		r2 := p.Courant() * p.Courant()
		startStep(f.row(1), f.row(0), r2)

		for t := 2; t < f.rows; t++ {
			leapfrogStep(f.row(t), f.row(t-1), f.row(t-2), r2, p.Decay)
		}
	}

	if t, i, ok := f.firstNonFinite(); !ok {
		return nil, &InstabilityError{Step: t, Index: i}
	}
	return f, nil
}

// seed places a unit pulse at the 1-based index icenter. Edges stay zero.
func seed(h []float64, icenter int) {
	h[icenter-1] = 1
	applyBoundary(h)
}

// startStep advances from rest: the centred ghost h[-1] = h[1] gives
// h1 = h0 + (r²/2)·δ²h0, independent of damping.
func startStep(next, cur []float64, r2 float64) {
	half := 0.5 * r2
	for i := 1; i < len(cur)-1; i++ {
		next[i] = cur[i] + half*(cur[i+1]-2*cur[i]+cur[i-1])
	}
	applyBoundary(next)
}

// leapfrogStep applies the three-point stencil with centred velocity drag.
func leapfrogStep(next, cur, prev []float64, r2, decay float64) {
	g := 0.5 * decay
	inv := 1 / (1 + g)
	keep := 1 - g
	for i := 1; i < len(cur)-1; i++ {
		lap := cur[i+1] - 2*cur[i] + cur[i-1]
		next[i] = (2*cur[i] - keep*prev[i] + r2*lap) * inv
	}
	applyBoundary(next)
}

// applyBoundary holds both edges at zero (Dirichlet).
func applyBoundary(h []float64) {
	h[0] = 0
	h[len(h)-1] = 0
}
