package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/tsunami/internal/wave"
)

// WriteCSV writes one line per timestep: the time t*dt followed by the height
// at every grid point, under a "time,x_1,...,x_N" header.
func WriteCSV(w io.Writer, f *wave.Field) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, f.GridSize()+1)
	header = append(header, "time")
	for i := 0; i < f.GridSize(); i++ {
		header = append(header, fmt.Sprintf("x_%d", i+1))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, f.GridSize()+1)
	for t := 0; t < f.Timesteps(); t++ {
		record[0] = strconv.FormatFloat(float64(t)*f.Dt(), 'g', -1, 64)
		for i := 0; i < f.GridSize(); i++ {
			record[i+1] = strconv.FormatFloat(f.At(t, i), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses the output of WriteCSV back into times and rows.
func ReadCSV(r io.Reader) ([]float64, [][]float64, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	rows := make([][]float64, 0, len(records)-1)
	for n, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, s := range record {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d column %d: %w", n+2, j+1, err)
			}
			vals[j] = v
		}
		times = append(times, vals[0])
		rows = append(rows, vals[1:])
	}
	return times, rows, nil
}
