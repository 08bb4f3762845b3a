package metrics

import "testing"

func TestStability(t *testing.T) {
	s := NewStability(1.0)
	if s.Value() != 1 {
		t.Errorf("empty stability = %v, want 1", s.Value())
	}

	s.Observe([]float64{0, 0.5, 0}, 0)
	s.Observe([]float64{0, -2, 0}, 1)
	if s.Value() != 0.5 {
		t.Errorf("stability = %v, want 0.5", s.Value())
	}

	s.Reset()
	if s.Value() != 1 {
		t.Error("expected reset stability of 1")
	}
}

func TestPeakAmplitude(t *testing.T) {
	p := NewPeakAmplitude()
	p.Observe([]float64{0, 0.3, -0.7, 0}, 0)
	p.Observe([]float64{0, 0.2, 0.1, 0}, 1)
	if p.Value() != 0.7 {
		t.Errorf("peak = %v, want 0.7", p.Value())
	}
	p.Reset()
	if p.Value() != 0 {
		t.Error("expected zero after reset")
	}
}
