package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tsunami/internal/wave"
)

// Profile plots one height profile.
func Profile(row []float64, width, height int, caption string) string {
	if len(row) == 0 {
		return ""
	}
	return asciigraph.Plot(row,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	)
}

// StepProfile plots timestep t of f with a caption naming the time and axes.
func StepProfile(f *wave.Field, t, width, height int) string {
	caption := fmt.Sprintf("water height [m] vs x [m], t = %g (step %d/%d)", float64(t)*f.Dt(), t, f.Timesteps()-1)
	return Profile(f.Row(t), width, height, caption)
}

// Summary renders the parameters, checksum and metrics of a run.
func Summary(f *wave.Field, metrics map[string]float64) string {
	p := f.Params()

	var sb strings.Builder
	sb.WriteString(Title.Render("tsunami run") + "\n")
	line := func(label, value string) {
		sb.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	line("icenter", fmt.Sprint(p.ICenter))
	line("grid_size", fmt.Sprint(p.GridSize))
	line("timesteps", fmt.Sprint(p.Timesteps))
	line("dt / dx", fmt.Sprintf("%g / %g", p.Dt, p.Dx))
	line("c", fmt.Sprintf("%g", p.C))
	line("decay", fmt.Sprintf("%g", p.Decay))
	line("courant", fmt.Sprintf("%.4f", p.Courant()))
	line("checksum", fmt.Sprintf("%016x", f.Checksum()))

	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		line(name, fmt.Sprintf("%.6g", metrics[name]))
	}
	return Panel.Render(strings.TrimRight(sb.String(), "\n"))
}
