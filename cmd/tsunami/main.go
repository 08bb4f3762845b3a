package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/tsunami/internal/config"
	"github.com/san-kum/tsunami/internal/viz"
	"github.com/san-kum/tsunami/internal/wave"
)

var (
	logLevel   string
	configFile string
	preset     string
	maxCells   int
	// Solver parameters
	icenter   int
	gridSize  int
	timesteps int
	dt        float64
	dx        float64
	waveSpeed float64
	decay     float64
	// Output
	step      int
	steps     []int
	outFile   string
	plotWidth int
	plotRows  int
	// Analysis and sweeps
	probe     int
	threshold float64
	vary      []string
	workers   int
)

// main registers the commands and flags of the tsunami CLI and executes the
// root command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:               "tsunami",
		Short:             "1-d damped wave simulator",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogging,
		RunE:              runSimulation,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters")
	pf.IntVar(&maxCells, "max-cells", config.DefaultMaxCells, "refuse runs larger than grid_size*timesteps cells (0 disables)")
	pf.IntVar(&icenter, "icenter", wave.DefaultICenter, "grid index of the initial disturbance (1-based)")
	pf.IntVar(&gridSize, "grid-size", wave.DefaultGridSize, "number of grid points")
	pf.IntVar(&timesteps, "timesteps", wave.DefaultTimesteps, "number of timesteps, initial state included")
	pf.Float64Var(&dt, "dt", wave.DefaultDt, "time step [s]")
	pf.Float64Var(&dx, "dx", wave.DefaultDx, "grid spacing [m]")
	pf.Float64Var(&waveSpeed, "c", wave.DefaultC, "wave speed [m/s]")
	pf.Float64Var(&decay, "decay", wave.DefaultDecay, "damping per step")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation",
		Args:  cobra.NoArgs,
		RunE:  runSimulation,
	}
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().IntVar(&step, "step", 0, "timestep to plot")
		c.Flags().StringVar(&outFile, "out", "", "write the field to FILE (.csv, .json, .html, .svg)")
		c.Flags().IntVar(&plotWidth, "width", 80, "plot width")
		c.Flags().IntVar(&plotRows, "height", 12, "plot height")
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot height profiles",
		Args:  cobra.NoArgs,
		RunE:  plotProfiles,
	}
	plotCmd.Flags().IntSliceVar(&steps, "steps", []int{0}, "timesteps to plot")
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotRows, "height", 12, "plot height")

	chartCmd := &cobra.Command{
		Use:   "chart [file.html]",
		Short: "render height profiles to an html chart",
		Args:  cobra.ExactArgs(1),
		RunE:  renderChart,
	}
	chartCmd.Flags().IntSliceVar(&steps, "steps", []int{0}, "timesteps to include")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "frequency analysis at a probe point",
		Args:  cobra.NoArgs,
		RunE:  analyzeProbe,
	}
	analyzeCmd.Flags().IntVar(&probe, "probe", 0, "grid index of the probe (1-based, default halfway from icenter to the right edge)")
	analyzeCmd.Flags().Float64Var(&threshold, "threshold", 1e-3, "height that counts as wave arrival")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a parameter sweep in parallel",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringArrayVar(&vary, "vary", nil, "parameter values as name=v1,v2,... (repeatable)")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel runs (default GOMAXPROCS)")

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "scrub through timesteps interactively",
		Args:  cobra.NoArgs,
		RunE:  viewField,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark the solver",
		Args:  cobra.NoArgs,
		RunE:  benchSolver,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [file.yaml]",
		Short: "write the resolved configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE:  writeConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, plotCmd, chartCmd, analyzeCmd, sweepCmd, viewCmd, presetsCmd, benchCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, viz.ErrorText.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true, TimestampFormat: time.TimeOnly})
	return nil
}

// resolveConfig layers the sources of parameters: defaults, then preset, then
// config file, then flags set explicitly on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Params = p
	}

	if configFile != "" {
		if err := config.Overlay(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("icenter") {
		cfg.Params.ICenter = icenter
	}
	if flags.Changed("grid-size") {
		cfg.Params.GridSize = gridSize
	}
	if flags.Changed("timesteps") {
		cfg.Params.Timesteps = timesteps
	}
	if flags.Changed("dt") {
		cfg.Params.Dt = dt
	}
	if flags.Changed("dx") {
		cfg.Params.Dx = dx
	}
	if flags.Changed("c") {
		cfg.Params.C = waveSpeed
	}
	if flags.Changed("decay") {
		cfg.Params.Decay = decay
	}
	if flags.Changed("max-cells") {
		cfg.MaxCells = maxCells
	}
	return cfg, nil
}

// solve runs the solver once for the resolved configuration.
func solve(cmd *cobra.Command) (*wave.Field, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.CheckBudget(); err != nil {
		return nil, err
	}

	p := cfg.Params
	fields := log.Fields{
		"icenter":   p.ICenter,
		"grid_size": p.GridSize,
		"timesteps": p.Timesteps,
		"dt":        p.Dt,
		"dx":        p.Dx,
		"c":         p.C,
		"decay":     p.Decay,
	}
	log.WithFields(fields).Debug("running simulation")

	start := time.Now()
	f, err := wave.Run(p)
	if err != nil {
		log.WithFields(fields).WithError(err).Error("simulation rejected")
		return nil, err
	}
	log.WithFields(log.Fields{
		"elapsed":  time.Since(start),
		"cells":    f.Len(),
		"checksum": fmt.Sprintf("%016x", f.Checksum()),
	}).Info("simulation finished")
	return f, nil
}
