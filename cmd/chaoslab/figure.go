package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/san-kum/chaoslab/internal/analysis"
	"github.com/san-kum/chaoslab/internal/maps"
	"github.com/san-kum/chaoslab/internal/plotimg"
	"github.com/san-kum/chaoslab/internal/stability"
	"github.com/san-kum/chaoslab/internal/storage"
)

var figureKind string

func addFigureCommand(root *cobra.Command) {
	figureCmd := &cobra.Command{
		Use:   "figure [run_id]",
		Short: "render a stored run as a PNG/SVG figure",
		Args:  cobra.ExactArgs(1),
		RunE:  figureRun,
	}
	figureCmd.Flags().StringVar(&outPath, "out", "figure.png", "output path (.png/.svg/.pdf)")
	figureCmd.Flags().StringVar(&figureKind, "kind", "phase", "figure kind: phase, series, lorenz-map")
	figureCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	figureCmd.Flags().IntVar(&yAxis, "y-axis", 2, "state index for y-axis")
	figureCmd.Flags().IntVar(&stateIndex, "component", 2, "state index for series/lorenz-map")

	root.AddCommand(figureCmd)
}

func figureRun(cmd *cobra.Command, args []string) error {
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

	switch figureKind {
	case "phase":
		if yAxis >= len(states[0]) {
			yAxis = len(states[0]) - 1
		}
		portrait := loadPortrait(states, xAxis, yAxis)
		title := fmt.Sprintf("%s phase portrait", meta.System)
		if err := plotimg.SavePortrait(portrait, title,
			fmt.Sprintf("x%d", xAxis), fmt.Sprintf("x%d", yAxis), outPath); err != nil {
			return err
		}

	case "series":
		if stateIndex >= len(states[0]) {
			return fmt.Errorf("component %d out of range", stateIndex)
		}
		values := make([]float64, len(states))
		for i := range states {
			values[i] = states[i][stateIndex]
		}
		title := fmt.Sprintf("%s x%d(t)", meta.System, stateIndex)
		if err := plotimg.SaveTimeSeries(times, values, title, outPath); err != nil {
			return err
		}

	case "lorenz-map":
		if stateIndex >= len(states[0]) {
			return fmt.Errorf("component %d out of range", stateIndex)
		}
		series := make([]float64, len(states))
		for i := range states {
			series[i] = states[i][stateIndex]
		}
		m := analysis.LorenzMap(series, times)
		if m == nil {
			return fmt.Errorf("fewer than two maxima in component %d", stateIndex)
		}
		title := fmt.Sprintf("%s return map", meta.System)
		if err := plotimg.SaveReturnMap(m, title, outPath); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown figure kind: %s", figureKind)
	}

	fmt.Printf("wrote %s\n", filepath.Clean(outPath))
	return nil
}

func savePNGBifurcation(points []maps.BifurcationPoint, mapName, param, path string) error {
	title := fmt.Sprintf("%s map bifurcation diagram", mapName)
	return plotimg.SaveMapBifurcation(points, title, param, path)
}

func savePNGBranches(points []stability.BranchPoint, path string) error {
	return plotimg.SaveBranches(points, "Lorenz equilibrium branches", path)
}
