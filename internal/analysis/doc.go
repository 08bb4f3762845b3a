// Package analysis inspects computed height fields.
//
//   - [PowerSpectrum]: one-sided FFT magnitudes of a probe time series
//   - [DominantFrequency]: strongest non-DC frequency of a series
//   - [ArrivalStep]: first timestep a disturbance reaches a grid point
//
// A probe series is a column of the field:
//
//	series := f.Column(probe)
//	freq, ok := analysis.DominantFrequency(series, f.Dt())
package analysis
