package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/chaoslab/internal/config"
	"github.com/san-kum/chaoslab/internal/lab"
	"github.com/san-kum/chaoslab/internal/storage"
	"github.com/san-kum/chaoslab/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	initX      float64
	initY      float64
	initZ      float64
	integrator string
	configFile string
	preset     string
	setParams  []string

	// Plot axes
	xAxis int
	yAxis int

	// Analysis knobs
	transient    float64
	perturbation float64
	paramName    string
	paramMin     float64
	paramMax     float64
	paramSteps   int
	crossIdx     int
	threshold    float64
	stateIndex   int

	// Figure output
	outPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaoslab",
		Short: "numerical dynamical-systems teaching lab",
		Long: `chaoslab integrates nonlinear dynamical systems and produces the
standard figures of a first chaos course: phase portraits, bifurcation
diagrams, Lyapunov exponents, Poincaré sections and the Lorenz map.`,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaoslab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [system]",
		Short: "integrate a system and store the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSystem,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run components against time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 2, "state index for y-axis")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write run data to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write full run data to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live [system]",
		Short: "live attractor view in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system or map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		runCmd, listCmd, plotCmd, phaseCmd,
		exportCmd, exportCSVCmd, exportJSONCmd,
		liveCmd, presetsCmd,
	)
	addAnalysisCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 50.0, "duration")
	cmd.Flags().Float64Var(&initX, "x", 1.0, "initial x")
	cmd.Flags().Float64Var(&initY, "y", 1.0, "initial y")
	cmd.Flags().Float64Var(&initZ, "z", 1.0, "initial z")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler/rk4/dopri45)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringArrayVar(&setParams, "set", nil, "override a system parameter, e.g. --set rho=24")
}

// parseSetParams turns repeated --set name=value flags into a map.
func parseSetParams() (map[string]float64, error) {
	if len(setParams) == 0 {
		return nil, nil
	}
	params := make(map[string]float64, len(setParams))
	for _, kv := range setParams {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("bad --set %q, want name=value", kv)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --set %q: %w", kv, err)
		}
		params[strings.TrimSpace(name)] = v
	}
	return params, nil
}

// resolveRunConfig merges preset, config file and flags; flags win.
func resolveRunConfig(cmd *cobra.Command, system string) (lab.Config, error) {
	params, err := parseSetParams()
	if err != nil {
		return lab.Config{}, err
	}

	if preset != "" {
		p := config.GetPreset(system, preset)
		if p == nil {
			return lab.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		if !cmd.Flags().Changed("dt") && p.Config.Dt > 0 {
			dt = p.Config.Dt
		}
		if !cmd.Flags().Changed("time") && p.Config.Duration > 0 {
			duration = p.Config.Duration
		}
		if !cmd.Flags().Changed("integrator") && p.Config.Integrator != "" {
			integrator = p.Config.Integrator
		}
		if !cmd.Flags().Changed("x") {
			initX = p.Config.InitState.X
		}
		if !cmd.Flags().Changed("y") {
			initY = p.Config.InitState.Y
		}
		if !cmd.Flags().Changed("z") {
			initZ = p.Config.InitState.Z
		}
		if params == nil && len(p.Params) > 0 {
			params = make(map[string]float64, len(p.Params))
			for k, v := range p.Params {
				params[k] = v
			}
		}
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return lab.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if !cmd.Flags().Changed("dt") {
			dt = cfg.Dt
		}
		if !cmd.Flags().Changed("time") {
			duration = cfg.Duration
		}
		if !cmd.Flags().Changed("integrator") {
			integrator = cfg.Integrator
		}
		if !cmd.Flags().Changed("x") {
			initX = cfg.InitState.X
		}
		if !cmd.Flags().Changed("y") {
			initY = cfg.InitState.Y
		}
		if !cmd.Flags().Changed("z") {
			initZ = cfg.InitState.Z
		}
	}

	return lab.Config{
		System:     system,
		Integrator: integrator,
		Dt:         dt,
		Duration:   duration,
		Params:     params,
	}, nil
}

func initStateFor(dim int) []float64 {
	if dim == 2 {
		return []float64{initX, initY}
	}
	return []float64{initX, initY, initZ}
}

func runSystem(cmd *cobra.Command, args []string) error {
	system := args[0]

	cfg, err := resolveRunConfig(cmd, system)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := lab.NewRegistry()

	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}
	integ, err := registry.GetStepper(cfg.Integrator)
	if err != nil {
		return err
	}

	cfg.InitState = initStateFor(sys.Dim())

	exp := lab.NewExperiment(cfg)
	if err := exp.Setup(sys, integ, registry.DefaultMetrics()); err != nil {
		return err
	}

	fmt.Printf("integrating %s...\n", system)
	start := time.Now()

	result, err := exp.Run(context.Background())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(system, cfg.Dt, cfg.Duration, cfg.Integrator, cfg.Params, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, e := range result.Errors {
		fmt.Printf("warning: %v\n", e)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tDURATION\tDT\tINTEG")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Integrator,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s\n", meta.System)
	fmt.Printf("samples: %d\n\n", len(states))

	labels := componentLabels(meta.System, len(states[0]))

	for varIdx := range states[0] {
		data := make([]float64, len(states))
		for i := range states {
			if varIdx < len(states[i]) {
				data[i] = states[i][varIdx]
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(labels[varIdx]),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func componentLabels(system string, n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("x%d vs time", i)
	}
	switch system {
	case "lorenz", "rossler":
		names := []string{"x", "y", "z"}
		for i := 0; i < n && i < 3; i++ {
			labels[i] = names[i] + " vs time"
		}
	case "duffing", "vanderpol":
		names := []string{"x (position)", "v (velocity)"}
		for i := 0; i < n && i < 2; i++ {
			labels[i] = names[i] + " vs time"
		}
	}
	return labels
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, _, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if len(states[0]) <= xAxis || len(states[0]) <= yAxis {
		// 2-state systems default to the x-v plane
		if yAxis == 2 && len(states[0]) == 2 {
			yAxis = 1
		} else {
			return fmt.Errorf("state dimension too small for selected axes")
		}
	}

	portrait := loadPortrait(states, xAxis, yAxis)

	fmt.Printf("phase portrait: %s (x%d vs x%d)\n\n", meta.System, xAxis, yAxis)
	fmt.Println(viz.Frame(viz.RenderPortrait(portrait, 72, 24), meta.System))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, nil, nil)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range states[0] {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range states {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range states[i] {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, states, times)
}

func runLive(cmd *cobra.Command, args []string) error {
	system := args[0]

	cfg, err := resolveRunConfig(cmd, system)
	if err != nil {
		return err
	}

	registry := lab.NewRegistry()
	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}
	integ, err := registry.GetStepper(cfg.Integrator)
	if err != nil {
		return err
	}

	if err := applyParams(sys, cfg.Params); err != nil {
		return err
	}

	m := viz.NewModel(sys, integ, initStateFor(sys.Dim()), cfg.Dt)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
