package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/tsunami/internal/wave"
)

// WriteFile writes f to path in the format named by its extension:
// .csv, .json, .html (chart of steps) or .svg (profile at the first step).
func WriteFile(path string, f *wave.Field, metrics map[string]float64, steps []int) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".json", ".html", ".svg":
	default:
		return fmt.Errorf("unsupported export format %q (want .csv, .json, .html or .svg)", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	switch ext {
	case ".csv":
		return WriteCSV(file, f)
	case ".json":
		return WriteJSON(file, f, metrics)
	case ".html":
		return WriteChart(file, f, steps)
	default:
		step := 0
		if len(steps) > 0 && steps[0] >= 0 && steps[0] < f.Timesteps() {
			step = steps[0]
		}
		_, err = file.WriteString(ProfileSVG(f.Row(step), f.Positions(), 800, 300, "#00ccff"))
		return err
	}
}
