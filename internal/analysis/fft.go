package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

const flatTolerance = 1e-12

// PowerSpectrum returns the magnitudes of the non-negative frequency bins of
// the discrete Fourier transform of data. Bin k corresponds to k/(n*dt).
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency of the strongest non-DC bin of
// series sampled every dt. ok is false when the series is too short or flat.
func DominantFrequency(series []float64, dt float64) (freq float64, ok bool) {
	if len(series) < 2 || dt <= 0 {
		return 0, false
	}
	ps := PowerSpectrum(series)

	total := floats.Sum(ps)
	maxPower, maxIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}
	// Round-off leaves tiny non-DC bins for constant input.
	if maxIdx == 0 || maxPower <= flatTolerance*total {
		return 0, false
	}
	return float64(maxIdx) / (float64(len(series)) * dt), true
}
