package analysis

import (
	"math"

	"github.com/san-kum/tsunami/internal/wave"
)

// ArrivalStep returns the first timestep at which |h| at grid index exceeds
// threshold, or -1 if it never does.
func ArrivalStep(f *wave.Field, index int, threshold float64) int {
	if index < 0 || index >= f.GridSize() {
		return -1
	}
	for t := 0; t < f.Timesteps(); t++ {
		if math.Abs(f.At(t, index)) > threshold {
			return t
		}
	}
	return -1
}
