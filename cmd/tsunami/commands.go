package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/tsunami/internal/analysis"
	"github.com/san-kum/tsunami/internal/config"
	"github.com/san-kum/tsunami/internal/export"
	"github.com/san-kum/tsunami/internal/metrics"
	"github.com/san-kum/tsunami/internal/sweep"
	"github.com/san-kum/tsunami/internal/viz"
	"github.com/san-kum/tsunami/internal/wave"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	f, err := solve(cmd)
	if err != nil {
		return err
	}
	if step < 0 || step >= f.Timesteps() {
		return fmt.Errorf("step %d outside [0, %d]", step, f.Timesteps()-1)
	}

	m := metrics.Evaluate(f, metrics.DefaultMetrics()...)
	fmt.Println(viz.Summary(f, m))
	fmt.Println()
	fmt.Println(viz.StepProfile(f, step, plotWidth, plotRows))

	if outFile != "" {
		if err := export.WriteFile(outFile, f, m, []int{step}); err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		log.WithField("path", outFile).Info("field exported")
	}
	return nil
}

func plotProfiles(cmd *cobra.Command, args []string) error {
	f, err := solve(cmd)
	if err != nil {
		return err
	}
	for _, t := range steps {
		if t < 0 || t >= f.Timesteps() {
			return fmt.Errorf("step %d outside [0, %d]", t, f.Timesteps()-1)
		}
		fmt.Println(viz.StepProfile(f, t, plotWidth, plotRows))
		fmt.Println()
	}
	return nil
}

func renderChart(cmd *cobra.Command, args []string) error {
	f, err := solve(cmd)
	if err != nil {
		return err
	}
	file, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	start := time.Now()
	if err := export.WriteChart(file, f, steps); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	log.WithFields(log.Fields{"path": args[0], "elapsed": time.Since(start)}).Info("chart rendered")
	return nil
}

func analyzeProbe(cmd *cobra.Command, args []string) error {
	f, err := solve(cmd)
	if err != nil {
		return err
	}

	p := f.Params()
	idx := probe
	if idx == 0 {
		idx = p.ICenter + (p.GridSize-p.ICenter)/2
	}
	if idx < 1 || idx > p.GridSize {
		return fmt.Errorf("probe %d outside [1, %d]", idx, p.GridSize)
	}
	series := f.Column(idx - 1)

	fmt.Printf("probe: x_%d (x = %g m)\n", idx, float64(idx)*p.Dx)
	if arrival := analysis.ArrivalStep(f, idx-1, threshold); arrival >= 0 {
		fmt.Printf("arrival: step %d (t = %g s)\n", arrival, float64(arrival)*p.Dt)
	} else {
		fmt.Printf("arrival: none above %g\n", threshold)
	}

	if len(series) < 4 {
		return fmt.Errorf("need at least 4 timesteps for a spectrum, got %d", len(series))
	}

	ps := analysis.PowerSpectrum(series)
	fmt.Println(asciigraph.Plot(ps,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum at x_%d", idx)),
	))
	fmt.Println()

	freq, ok := analysis.DominantFrequency(series, p.Dt)
	if !ok {
		fmt.Println("dominant frequency: none (flat series)")
		return nil
	}
	fmt.Printf("dominant frequency: %.4g hz\n", freq)
	fmt.Printf("period: %.4g s\n", 1/freq)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	vars := make([]sweep.Variation, 0, len(vary))
	for _, s := range vary {
		v, err := sweep.ParseVariation(s)
		if err != nil {
			return err
		}
		vars = append(vars, v)
	}
	params, err := sweep.Grid(cfg.Params, vars...)
	if err != nil {
		return err
	}
	for _, p := range params {
		c := *cfg
		c.Params = p
		if err := c.CheckBudget(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.WithFields(log.Fields{"runs": len(params), "workers": workers}).Info("starting sweep")
	start := time.Now()
	outcomes, err := sweep.Run(ctx, params, workers)
	if err != nil {
		return err
	}
	log.WithField("elapsed", time.Since(start)).Info("sweep finished")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ICENTER\tGRID\tSTEPS\tDT\tDX\tC\tDECAY\tCOURANT\tENERGY_DECAY\tPEAK\tCHECKSUM\tERROR")
	for _, o := range outcomes {
		p := o.Params
		fmt.Fprintf(w, "%d\t%d\t%d\t%g\t%g\t%g\t%g\t%.3f\t", p.ICenter, p.GridSize, p.Timesteps, p.Dt, p.Dx, p.C, p.Decay, p.Courant())
		if o.Err != nil {
			fmt.Fprintf(w, "-\t-\t-\t%v\n", o.Err)
			continue
		}
		fmt.Fprintf(w, "%.4g\t%.4g\t%016x\t\n", o.Metrics["energy_decay"], o.Metrics["peak_amplitude"], o.Checksum)
	}
	return w.Flush()
}

func viewField(cmd *cobra.Command, args []string) error {
	f, err := solve(cmd)
	if err != nil {
		return err
	}
	return viz.RunViewer(f)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tICENTER\tGRID\tSTEPS\tDT\tDX\tC\tDECAY")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%g\t%g\t%g\t%g\n", name, p.ICenter, p.GridSize, p.Timesteps, p.Dt, p.Dx, p.C, p.Decay)
	}
	return w.Flush()
}

func benchSolver(cmd *cobra.Command, args []string) error {
	sizes := []int{100, 500, 1000, 2000, 5000}

	fmt.Println("benchmarking solver (timesteps = grid_size, courant 1)")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRID\tSTEPS\tCELLS\tTIME\tCELLS/SEC")

	for _, n := range sizes {
		p := wave.Params{ICenter: n / 4, GridSize: n, Timesteps: n, Dt: 1, Dx: 1, C: 1, Decay: wave.DefaultDecay}

		start := time.Now()
		f, err := wave.Run(p)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n", n, n, f.Len(), elapsed, float64(f.Len())/elapsed.Seconds())
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Params.Validate(); err != nil {
		return err
	}
	path := args[0]
	if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
		log.WithField("path", path).Warn("config file without .yaml extension")
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
