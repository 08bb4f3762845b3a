package wave

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
	"gonum.org/v1/gonum/floats"
)

// Field is the space-time height field of one run: Timesteps rows of
// GridSize samples, stored row-major in a single backing slice.
type Field struct {
	params Params
	rows   int
	cols   int
	data   []float64
}

func newField(p Params) *Field {
	return &Field{
		params: p,
		rows:   p.Timesteps,
		cols:   p.GridSize,
		data:   make([]float64, p.Timesteps*p.GridSize),
	}
}

func (f *Field) Params() Params { return f.params }
func (f *Field) Timesteps() int { return f.rows }
func (f *Field) GridSize() int  { return f.cols }
func (f *Field) Dx() float64    { return f.params.Dx }
func (f *Field) Dt() float64    { return f.params.Dt }
func (f *Field) Len() int       { return len(f.data) }

// At returns the height at timestep t and grid index i.
func (f *Field) At(t, i int) float64 {
	return f.data[t*f.cols+i]
}

// row aliases the backing storage; only the solver writes through it.
func (f *Field) row(t int) []float64 {
	return f.data[t*f.cols : (t+1)*f.cols]
}

// Row returns a copy of the heights at timestep t.
func (f *Field) Row(t int) []float64 {
	out := make([]float64, f.cols)
	copy(out, f.row(t))
	return out
}

// Column returns the time series of heights at grid index i.
func (f *Field) Column(i int) []float64 {
	out := make([]float64, f.rows)
	for t := range out {
		out[t] = f.data[t*f.cols+i]
	}
	return out
}

// Rows returns a deep copy of the whole field.
func (f *Field) Rows() [][]float64 {
	out := make([][]float64, f.rows)
	for t := range out {
		out[t] = f.Row(t)
	}
	return out
}

// Positions returns the physical position (i+1)*dx of every column.
func (f *Field) Positions() []float64 {
	x := make([]float64, f.cols)
	if f.cols == 1 {
		x[0] = f.params.Dx
		return x
	}
	floats.Span(x, f.params.Dx, float64(f.cols)*f.params.Dx)
	return x
}

// Finite reports whether every sample is a finite number.
func (f *Field) Finite() bool {
	_, _, ok := f.firstNonFinite()
	return ok
}

func (f *Field) firstNonFinite() (t, i int, ok bool) {
	for k, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return k / f.cols, k % f.cols, false
		}
	}
	return 0, 0, true
}

// Checksum digests the IEEE-754 bits of every sample in row-major order.
// Two fields with identical samples have identical checksums.
func (f *Field) Checksum() uint64 {
	h := xxh3.New()
	var buf [8]byte
	for _, v := range f.data {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}
