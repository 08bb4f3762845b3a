package wave

import (
	"errors"
	"math"
	"testing"
)

func params(icenter, gridSize, timesteps int, dt, dx, c, decay float64) Params {
	return Params{ICenter: icenter, GridSize: gridSize, Timesteps: timesteps, Dt: dt, Dx: dx, C: c, Decay: decay}
}

func interiorEnergy(row []float64) float64 {
	sum := 0.0
	for _, v := range row[1 : len(row)-1] {
		sum += v * v
	}
	return sum
}

func TestRun_ConcreteScenario(t *testing.T) {
	f, err := Run(params(5, 10, 3, 1, 1, 1, 0))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := [][]float64{
		{0, 0, 0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0.5, 0, 0.5, 0, 0, 0, 0},
		{0, 0, 0.5, 0, 0, 0, 0.5, 0, 0, 0},
	}
	for ti, row := range want {
		for i, v := range row {
			if got := f.At(ti, i); math.Abs(got-v) > 1e-12 {
				t.Errorf("h[%d][%d] = %v, want %v", ti, i, got, v)
			}
		}
	}
}

func TestRun_Shape(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"defaults", DefaultParams()},
		{"single step", params(2, 3, 1, 1, 1, 1, 0)},
		{"two steps", params(3, 7, 2, 0.5, 1, 1, 0.1)},
		{"wide", params(100, 400, 20, 0.1, 0.5, 2, 0.3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Run(tt.p)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if f.Timesteps() != tt.p.Timesteps || f.GridSize() != tt.p.GridSize {
				t.Errorf("shape = %dx%d, want %dx%d", f.Timesteps(), f.GridSize(), tt.p.Timesteps, tt.p.GridSize)
			}
			if len(f.Rows()) != tt.p.Timesteps {
				t.Errorf("Rows() has %d rows", len(f.Rows()))
			}
			for ti, row := range f.Rows() {
				if len(row) != tt.p.GridSize {
					t.Fatalf("row %d has %d columns", ti, len(row))
				}
			}
		})
	}
}

func TestRun_Boundaries(t *testing.T) {
	f, err := Run(params(3, 20, 150, 1, 1, 1, 0.01))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	last := f.GridSize() - 1
	for ti := 0; ti < f.Timesteps(); ti++ {
		if f.At(ti, 0) != 0 || f.At(ti, last) != 0 {
			t.Fatalf("row %d boundary = (%v, %v), want zeros", ti, f.At(ti, 0), f.At(ti, last))
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	p := params(40, 120, 300, 0.8, 1, 1.1, 0.03)
	a, err := Run(p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := Run(p)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for ti := 0; ti < a.Timesteps(); ti++ {
		for i := 0; i < a.GridSize(); i++ {
			if a.At(ti, i) != b.At(ti, i) {
				t.Fatalf("runs differ at (%d, %d)", ti, i)
			}
		}
	}
	if a.Checksum() != b.Checksum() {
		t.Error("checksums differ for identical runs")
	}
}

func TestRun_SymmetricPulseStaysSymmetric(t *testing.T) {
	f, err := Run(params(6, 11, 80, 1, 1, 0.9, 0.02))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	n := f.GridSize()
	for ti := 0; ti < f.Timesteps(); ti++ {
		for i := 0; i < n/2; i++ {
			if d := math.Abs(f.At(ti, i) - f.At(ti, n-1-i)); d > 1e-12 {
				t.Fatalf("asymmetry %g at step %d index %d", d, ti, i)
			}
		}
	}
}

func TestRun_CourantLimitIsStable(t *testing.T) {
	f, err := Run(params(5, 10, 5, 1, 1, 1, 0))
	if err != nil {
		t.Fatalf("run at courant 1 failed: %v", err)
	}
	if !f.Finite() {
		t.Error("expected all finite values")
	}

	long, err := Run(params(25, 100, 2000, 1, 1, 1, 0.02))
	if err != nil {
		t.Fatalf("long run at courant 1 failed: %v", err)
	}
	if !long.Finite() {
		t.Fatal("long run produced non-finite values")
	}
	for ti := 0; ti < long.Timesteps(); ti++ {
		for _, v := range long.Row(ti) {
			if math.Abs(v) > 10 {
				t.Fatalf("|h| = %v grew unbounded at step %d", v, ti)
			}
		}
	}
}

func TestRun_DampingAttenuates(t *testing.T) {
	tests := []struct {
		name    string
		courant float64
		decay   float64
	}{
		{"courant limit", 1, 0.05},
		{"sub-critical", 0.5, 0.02},
		{"heavy", 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Run(params(25, 50, 400, tt.courant, 1, 1, tt.decay))
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			early := interiorEnergy(f.Row(10))
			final := interiorEnergy(f.Row(f.Timesteps() - 1))
			if !(final < early) {
				t.Errorf("final energy %g not below early energy %g", final, early)
			}
		})
	}
}

func TestRun_NoDampingKeepsAmplitude(t *testing.T) {
	// At courant 1 the undamped scheme transports the two half pulses exactly.
	f, err := Run(params(25, 50, 20, 1, 1, 1, 0))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	row := f.Row(10)
	if math.Abs(row[14]-0.5) > 1e-12 || math.Abs(row[34]-0.5) > 1e-12 {
		t.Errorf("expected half pulses at 14 and 34, got %v and %v", row[14], row[34])
	}
}

func TestRun_EdgeSeedIsClamped(t *testing.T) {
	for _, icenter := range []int{1, 12} {
		f, err := Run(params(icenter, 12, 10, 1, 1, 1, 0.02))
		if err != nil {
			t.Fatalf("icenter=%d: run failed: %v", icenter, err)
		}
		for ti := 0; ti < f.Timesteps(); ti++ {
			if interiorEnergy(f.Row(ti)) != 0 {
				t.Fatalf("icenter=%d: row %d not zero", icenter, ti)
			}
		}
	}
}

func TestRun_ZeroSpeedHoldsPulse(t *testing.T) {
	f, err := Run(params(4, 8, 30, 1, 1, 0, 0.1))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for ti := 0; ti < f.Timesteps(); ti++ {
		if math.Abs(f.At(ti, 3)-1) > 1e-12 {
			t.Fatalf("h[%d][3] = %v, want 1", ti, f.At(ti, 3))
		}
	}
}

func TestRun_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		p     Params
		field string
	}{
		{"grid too small", params(1, 2, 5, 1, 1, 1, 0), "grid_size"},
		{"icenter zero", params(0, 10, 5, 1, 1, 1, 0), "icenter"},
		{"icenter past end", params(11, 10, 5, 1, 1, 1, 0), "icenter"},
		{"no timesteps", params(5, 10, 0, 1, 1, 1, 0), "timesteps"},
		{"zero dt", params(5, 10, 5, 0, 1, 1, 0), "dt"},
		{"negative dx", params(5, 10, 5, 1, -1, 1, 0), "dx"},
		{"negative c", params(5, 10, 5, 1, 1, -1, 0), "c"},
		{"negative decay", params(5, 10, 5, 1, 1, 1, -0.1), "decay"},
		{"nan dt", params(5, 10, 5, math.NaN(), 1, 1, 0), "dt"},
		{"infinite decay", params(5, 10, 5, 1, 1, 1, math.Inf(1)), "decay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Run(tt.p)
			if f != nil {
				t.Error("expected no field alongside an error")
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParamError, got %T", err)
			}
			if pe.Field != tt.field {
				t.Errorf("field = %q, want %q", pe.Field, tt.field)
			}
			if pe.Constraint == "" {
				t.Error("constraint not reported")
			}
		})
	}
}

func TestRun_CourantViolation(t *testing.T) {
	f, err := Run(params(5, 10, 5, 1, 1, 1.5, 0))
	if f != nil {
		t.Error("expected no field alongside an error")
	}
	if !errors.Is(err, ErrCourantViolation) {
		t.Fatalf("expected ErrCourantViolation, got %v", err)
	}
	var ce *CourantError
	if !errors.As(err, &ce) || ce.Courant != 1.5 {
		t.Errorf("expected courant 1.5 in error, got %v", err)
	}
}

func TestRun_ValidationPrecedesStability(t *testing.T) {
	_, err := Run(params(0, 10, 5, 1, 1, 5, 0))
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter first, got %v", err)
	}
}

func TestFirstNonFinite(t *testing.T) {
	f := newField(params(2, 4, 3, 1, 1, 1, 0))
	if !f.Finite() {
		t.Fatal("zero field reported non-finite")
	}

	f.row(2)[1] = math.Inf(-1)
	f.row(1)[3] = math.NaN()
	ti, i, ok := f.firstNonFinite()
	if ok || ti != 1 || i != 3 {
		t.Errorf("firstNonFinite = (%d, %d, %v), want (1, 3, false)", ti, i, ok)
	}

	err := error(&InstabilityError{Step: ti, Index: i})
	if !errors.Is(err, ErrNumericalInstability) {
		t.Error("InstabilityError does not unwrap to ErrNumericalInstability")
	}
}
