package export

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/san-kum/tsunami/internal/wave"
)

// Chart builds a line chart of the height profile at each of steps. Steps
// outside the field are skipped; an empty list plots the initial state.
func Chart(f *wave.Field, steps []int) *charts.Line {
	line := charts.NewLine()

	p := f.Params()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:     "100%",
			Height:    "600px",
			PageTitle: "Tsunami simulator",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Tsunami simulator",
			Subtitle: fmt.Sprintf("icenter=%d grid_size=%d timesteps=%d dt=%g dx=%g c=%g decay=%g",
				p.ICenter, p.GridSize, p.Timesteps, p.Dt, p.Dx, p.C, p.Decay),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Type: "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x [m]",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "water height [m]",
			Type:  "value",
			Scale: opts.Bool(true),
		}),
	)

	line.SetXAxis(f.Positions())

	if len(steps) == 0 {
		steps = []int{0}
	}
	for _, t := range steps {
		if t < 0 || t >= f.Timesteps() {
			continue
		}
		row := f.Row(t)
		data := make([]opts.LineData, len(row))
		for i, v := range row {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(fmt.Sprintf("t = %g", float64(t)*f.Dt()), data)
	}

	return line
}

func WriteChart(w io.Writer, f *wave.Field, steps []int) error {
	return Chart(f, steps).Render(w)
}
