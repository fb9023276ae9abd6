package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/chaoslab/internal/analysis"
	"github.com/san-kum/chaoslab/internal/dynamo"
	"github.com/san-kum/chaoslab/internal/flow"
	"github.com/san-kum/chaoslab/internal/lab"
	"github.com/san-kum/chaoslab/internal/maps"
	"github.com/san-kum/chaoslab/internal/stability"
	"github.com/san-kum/chaoslab/internal/storage"
	"github.com/san-kum/chaoslab/internal/viz"
)

func addAnalysisCommands(root *cobra.Command) {
	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [system]",
		Short: "estimate Lyapunov exponents",
		Args:  cobra.ExactArgs(1),
		RunE:  lyapunovRun,
	}
	addRunFlags(lyapunovCmd)
	lyapunovCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "initial separation")

	lorenzMapCmd := &cobra.Command{
		Use:   "lorenz-map [run_id]",
		Short: "successive-maxima return map of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  lorenzMapRun,
	}
	lorenzMapCmd.Flags().IntVar(&stateIndex, "component", 2, "state index to take maxima of")

	poincareCmd := &cobra.Command{
		Use:   "poincare [system]",
		Short: "Poincaré section through a plane",
		Args:  cobra.ExactArgs(1),
		RunE:  poincareRun,
	}
	addRunFlags(poincareCmd)
	poincareCmd.Flags().IntVar(&crossIdx, "cross", 2, "state index whose crossing triggers recording")
	poincareCmd.Flags().Float64Var(&threshold, "threshold", 27.0, "crossing value")
	poincareCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	poincareCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation [map]",
		Short: "bifurcation diagram of a 1D map",
		Args:  cobra.ExactArgs(1),
		RunE:  bifurcationRun,
	}
	bifurcationCmd.Flags().StringVar(&paramName, "param", "r", "parameter to sweep")
	bifurcationCmd.Flags().Float64Var(&paramMin, "min", 2.5, "sweep start")
	bifurcationCmd.Flags().Float64Var(&paramMax, "max", 4.0, "sweep end")
	bifurcationCmd.Flags().IntVar(&paramSteps, "steps", 300, "sweep steps")
	bifurcationCmd.Flags().StringVar(&outPath, "png", "", "also write the diagram to this file")

	sweepCmd := &cobra.Command{
		Use:   "sweep [system]",
		Short: "bifurcation sweep of a flow parameter",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepRun,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&paramName, "param", "rho", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&paramMin, "min", 0.5, "sweep start")
	sweepCmd.Flags().Float64Var(&paramMax, "max", 45.0, "sweep end")
	sweepCmd.Flags().IntVar(&paramSteps, "steps", 120, "sweep steps")
	sweepCmd.Flags().Float64Var(&transient, "transient", 20.0, "settle time per value")
	sweepCmd.Flags().IntVar(&stateIndex, "component", 2, "state index to record")

	cobwebCmd := &cobra.Command{
		Use:   "cobweb [map]",
		Short: "cobweb (staircase) plot of a 1D map",
		Args:  cobra.ExactArgs(1),
		RunE:  cobwebRun,
	}
	cobwebCmd.Flags().StringArrayVar(&setParams, "set", nil, "override a map parameter, e.g. --set r=3.2")

	fixedPointsCmd := &cobra.Command{
		Use:   "fixed-points [system|map]",
		Short: "equilibria with eigenvalue stability",
		Args:  cobra.ExactArgs(1),
		RunE:  fixedPointsRun,
	}
	fixedPointsCmd.Flags().StringArrayVar(&setParams, "set", nil, "override a parameter, e.g. --set rho=0.5")

	branchesCmd := &cobra.Command{
		Use:   "branches",
		Short: "Lorenz fixed-point branch diagram over rho",
		RunE:  branchesRun,
	}
	branchesCmd.Flags().Float64Var(&paramMin, "min", 0.0, "rho sweep start")
	branchesCmd.Flags().Float64Var(&paramMax, "max", 30.0, "rho sweep end")
	branchesCmd.Flags().IntVar(&paramSteps, "steps", 200, "sweep steps")
	branchesCmd.Flags().StringVar(&outPath, "png", "", "also write the diagram to this file")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "power spectrum of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}
	spectrumCmd.Flags().IntVar(&stateIndex, "component", 0, "state index to analyze")

	compareCmd := &cobra.Command{
		Use:   "compare [system] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same system",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	compareCmd.Flags().Float64Var(&duration, "time", 20.0, "duration")

	root.AddCommand(
		lyapunovCmd, lorenzMapCmd, poincareCmd,
		bifurcationCmd, sweepCmd, cobwebCmd,
		fixedPointsCmd, branchesCmd, spectrumCmd, compareCmd,
	)
	addFigureCommand(root)
}

func lyapunovRun(cmd *cobra.Command, args []string) error {
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

	x0 := dynamo.State(initStateFor(sys.Dim()))

	fmt.Printf("estimating Lyapunov exponents for %s (T=%.0f, dt=%.3f)...\n", system, cfg.Duration, cfg.Dt)
	lambda := analysis.LargestLyapunov(sys, integ, x0, cfg.Dt, cfg.Duration, perturbation)
	spectrum := analysis.LyapunovSpectrum(sys, integ, x0, cfg.Dt, cfg.Duration, perturbation)

	fmt.Printf("\nlargest exponent: %.4f\n", lambda)
	fmt.Print("spectrum:        ")
	for _, l := range spectrum {
		fmt.Printf(" %.4f", l)
	}
	fmt.Println()

	switch {
	case lambda > 0.005:
		fmt.Println(viz.ChaosStyle.Render("verdict: chaotic (positive exponent)"))
	case lambda < -0.005:
		fmt.Println(viz.StableStyle.Render("verdict: contracting (negative exponent)"))
	default:
		fmt.Println("verdict: near zero (periodic or marginal)")
	}

	return nil
}

func lorenzMapRun(cmd *cobra.Command, args []string) error {
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
	if len(states) == 0 {
		return fmt.Errorf("no data")
	}
	if stateIndex >= len(states[0]) {
		return fmt.Errorf("component %d out of range for %d-state run", stateIndex, len(states[0]))
	}

	series := make([]float64, len(states))
	for i := range states {
		series[i] = states[i][stateIndex]
	}

	m := analysis.LorenzMap(series, times)
	if m == nil {
		return fmt.Errorf("fewer than two maxima in component %d", stateIndex)
	}

	fmt.Printf("return map of %s component x%d: %d maxima\n\n", meta.System, stateIndex, len(m.Peaks))
	fmt.Println(viz.Frame(viz.RenderReturnMap(m, 60, 28), "z(n+1) vs z(n)"))
	fmt.Println("points hug a single curve: the flow is effectively a 1D map on maxima")

	return nil
}

func poincareRun(cmd *cobra.Command, args []string) error {
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

	x0 := dynamo.State(initStateFor(sys.Dim()))

	var section *analysis.Section
	if d, ok := sys.(*flow.Duffing); ok {
		// Driven systems are sampled stroboscopically at the forcing period.
		section = analysis.StroboscopicSection(sys, integ, x0, d.ForcingPeriod(), xAxis, yAxis, cfg.Dt, cfg.Duration)
	} else {
		section = analysis.PoincareSection(sys, integ, x0, crossIdx, threshold, xAxis, yAxis, cfg.Dt, cfg.Duration)
	}
	if section == nil {
		return fmt.Errorf("bad section axes for %d-state system", sys.Dim())
	}

	fmt.Printf("section of %s: %d crossings\n\n", system, len(section.Points))
	fmt.Println(viz.Frame(viz.RenderSection(section, 64, 24), fmt.Sprintf("x%d vs x%d", xAxis, yAxis)))

	return nil
}

func bifurcationRun(cmd *cobra.Command, args []string) error {
	registry := lab.NewRegistry()
	m, err := registry.GetMap(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s over %s in [%.3f, %.3f], %d steps...\n", m.Name(), paramName, paramMin, paramMax, paramSteps)
	start := time.Now()

	points, err := maps.Bifurcation(m, paramName, paramMin, paramMax, paramSteps, 500, 200)
	if err != nil {
		return err
	}

	fmt.Printf("done in %v\n\n", time.Since(start))
	fmt.Println(viz.Frame(viz.RenderMapBifurcation(points, 90, 30),
		fmt.Sprintf("%s: x vs %s", m.Name(), paramName)))

	// Mark where the exponent first goes positive: onset of chaos.
	for _, p := range points {
		if p.Lyapunov > 0 {
			fmt.Printf("first positive Lyapunov exponent at %s = %.4f\n", paramName, p.Param)
			break
		}
	}

	if outPath != "" {
		if err := savePNGBifurcation(points, m.Name(), paramName, outPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
	}

	return nil
}

func sweepRun(cmd *cobra.Command, args []string) error {
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

	x0 := dynamo.State(initStateFor(sys.Dim()))
	if stateIndex >= sys.Dim() {
		return fmt.Errorf("component %d out of range for %s", stateIndex, system)
	}

	fmt.Printf("sweeping %s.%s over [%.2f, %.2f], %d steps...\n", system, paramName, paramMin, paramMax, paramSteps)
	start := time.Now()

	points, err := analysis.SweepBifurcation(sys, integ, paramName, paramMin, paramMax, paramSteps,
		stateIndex, x0, cfg.Dt, transient, cfg.Duration-transient)
	if err != nil {
		return err
	}

	fmt.Printf("done in %v\n\n", time.Since(start))
	fmt.Println(viz.Frame(viz.RenderSweep(points, 90, 30),
		fmt.Sprintf("%s: x%d vs %s", system, stateIndex, paramName)))

	return nil
}

func cobwebRun(cmd *cobra.Command, args []string) error {
	registry := lab.NewRegistry()
	m, err := registry.GetMap(args[0])
	if err != nil {
		return err
	}

	params, err := parseSetParams()
	if err != nil {
		return err
	}
	for name, v := range params {
		if err := m.SetParam(name, v); err != nil {
			return fmt.Errorf("set %s: %w", name, err)
		}
	}

	segs := maps.Cobweb(m, m.DefaultX0(), 40)

	fmt.Printf("cobweb of %s from x0=%.3f\n\n", m.Name(), m.DefaultX0())
	fmt.Println(viz.Frame(viz.RenderCobweb(m, segs, 60, 28), m.Name()))

	lambda := maps.Lyapunov(m, m.DefaultX0(), 500, 2000)
	fmt.Printf("map Lyapunov exponent: %.4f\n", lambda)

	return nil
}

func fixedPointsRun(cmd *cobra.Command, args []string) error {
	name := args[0]
	registry := lab.NewRegistry()

	params, err := parseSetParams()
	if err != nil {
		return err
	}

	// 1D maps get the |f'| classification.
	if m, mapErr := registry.GetMap(name); mapErr == nil {
		for k, v := range params {
			if err := m.SetParam(k, v); err != nil {
				return err
			}
		}
		points := maps.FixedPoints(m)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "X*\tf'(x*)\tSTABILITY")
		for _, fp := range points {
			fmt.Fprintf(w, "%.6f\t%+.4f\t%s\n", fp.X, fp.Slope, fp.Stability)
		}
		return w.Flush()
	}

	sys, err := registry.GetSystem(name)
	if err != nil {
		return err
	}
	if err := applyParams(sys, params); err != nil {
		return err
	}

	reports, err := stability.Analyze(sys)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "POINT\tEIGENVALUES\tKIND")
	for _, r := range reports {
		eigs := make([]string, len(r.Eigenvalues))
		for i, e := range r.Eigenvalues {
			if imag(e) == 0 {
				eigs[i] = fmt.Sprintf("%.4f", real(e))
			} else {
				eigs[i] = fmt.Sprintf("%.4f%+.4fi", real(e), imag(e))
			}
		}
		kind := r.Kind.String()
		if r.Stable {
			kind = viz.StableStyle.Render(kind)
		} else {
			kind = viz.UnstableStyle.Render(kind)
		}
		fmt.Fprintf(w, "%v\t%s\t%s\n", formatPoint(r.Point), strings.Join(eigs, ", "), kind)
	}
	return w.Flush()
}

func formatPoint(p dynamo.State) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprintf("%.4f", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func branchesRun(cmd *cobra.Command, args []string) error {
	points, err := stability.BranchDiagram(10, 8.0/3.0, paramMin, paramMax, paramSteps, 0)
	if err != nil {
		return err
	}

	fmt.Printf("Lorenz equilibrium branches, rho in [%.1f, %.1f]\n", paramMin, paramMax)
	fmt.Printf("pitchfork at rho=1, Hopf at rho=%.4f\n\n", stability.HopfRho(10, 8.0/3.0))
	fmt.Println(viz.Frame(viz.RenderBranches(points, 90, 28), "x* vs rho"))

	if outPath != "" {
		if err := savePNGBranches(points, outPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outPath)
	}

	return nil
}

// binFrequency maps an FFT bin to hertz. n is the transform length,
// which after zero padding is longer than the sampled record.
func binFrequency(bin, n int, dt float64) float64 {
	if n == 0 || dt <= 0 {
		return 0
	}
	return float64(bin) / (float64(n) * dt)
}

func spectrumRun(cmd *cobra.Command, args []string) error {
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
	if len(states) == 0 || len(states[0]) == 0 {
		return fmt.Errorf("no data")
	}
	if stateIndex >= len(states[0]) {
		return fmt.Errorf("component %d out of range", stateIndex)
	}

	fmt.Printf("power spectrum: %s component x%d\n\n", meta.System, stateIndex)

	data := make([]float64, len(states))
	for i := range states {
		data[i] = states[i][stateIndex]
	}

	padded := analysis.PadPow2(data)
	ps := analysis.PowerSpectrum(padded)
	plotData := ps[:len(ps)/4]

	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (x%d)", stateIndex)),
	)
	fmt.Println(graph)
	fmt.Println()

	maxPower := 0.0
	maxIdx := 0
	for i := 1; i < len(plotData); i++ {
		if plotData[i] > maxPower {
			maxPower = plotData[i]
			maxIdx = i
		}
	}

	freq := binFrequency(maxIdx, len(padded), meta.Dt)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	system := args[0]
	names := args[1:]

	registry := lab.NewRegistry()
	sys, err := registry.GetSystem(system)
	if err != nil {
		return err
	}

	x0 := dynamo.State(initStateFor(sys.Dim()))

	fmt.Printf("comparing integrators for %s (dt=%.4f, T=%.1fs)\n\n", system, dt, duration)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tFINAL_X0\tSTEPS\tTIME_MS")

	for _, intName := range names {
		integ, err := registry.GetStepper(intName)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", intName, err)
			continue
		}

		s := dynamo.New(sys, integ)
		simCfg := dynamo.DefaultConfig()
		simCfg.Dt = dt
		simCfg.Duration = duration

		start := time.Now()
		result, err := s.Run(cmd.Context(), x0, simCfg)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\n", intName, err)
			continue
		}

		finalX0 := 0.0
		if final := result.Final(); len(final) > 0 {
			finalX0 = final[0]
		}

		fmt.Fprintf(w, "%s\t%.6f\t%d\t%.2f\n", intName, finalX0, result.StepsTaken,
			float64(elapsed.Microseconds())/1000)
	}

	return w.Flush()
}

func applyParams(sys dynamo.System, params map[string]float64) error {
	if len(params) == 0 {
		return nil
	}
	tunable, ok := sys.(dynamo.Configurable)
	if !ok {
		return fmt.Errorf("system %s has no tunable parameters", sys.Name())
	}
	for name, v := range params {
		if err := tunable.SetParam(name, v); err != nil {
			return fmt.Errorf("set %s=%v: %w", name, v, err)
		}
	}
	return nil
}

func loadPortrait(states [][]float64, xIdx, yIdx int) *analysis.Portrait {
	portrait := &analysis.Portrait{XIndex: xIdx, YIndex: yIdx}
	for _, s := range states {
		if xIdx >= len(s) || yIdx >= len(s) {
			continue
		}
		portrait.Points = append(portrait.Points, analysis.Point2{X: s[xIdx], Y: s[yIdx]})
	}
	return portrait
}
