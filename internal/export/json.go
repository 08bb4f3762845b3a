package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/tsunami/internal/wave"
)

type ExportData struct {
	Params    wave.Params        `json:"params"`
	Courant   float64            `json:"courant"`
	Timesteps int                `json:"timesteps"`
	GridSize  int                `json:"grid_size"`
	Checksum  string             `json:"checksum"`
	Positions []float64          `json:"positions"`
	Heights   [][]float64        `json:"heights"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func NewExportData(f *wave.Field, metrics map[string]float64) ExportData {
	return ExportData{
		Params:    f.Params(),
		Courant:   f.Params().Courant(),
		Timesteps: f.Timesteps(),
		GridSize:  f.GridSize(),
		Checksum:  fmt.Sprintf("%016x", f.Checksum()),
		Positions: f.Positions(),
		Heights:   f.Rows(),
		Metrics:   metrics,
	}
}

func WriteJSON(w io.Writer, f *wave.Field, metrics map[string]float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(f, metrics))
}
