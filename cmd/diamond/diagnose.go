package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biergaizi/project-diamond/internal/executor"
	"github.com/biergaizi/project-diamond/internal/tiling"
)

const (
	elementSize      = 4 // sizeof(float32)
	vectorComponents = 3
)

var speedupTimesteps int

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Plan diagnostics: shape census, DRAM traffic estimate, plan dump",
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Show statistics of all unique subtile shapes",
	RunE: func(cmd *cobra.Command, args []string) error {
		// shapes doesn't run a batch of timesteps, it characterizes
		// one plan; any valid timestep count satisfies NewConfig.
		cfg, err := buildConfig(1)
		if err != nil {
			return err
		}
		i, j, k := cfg.Axes()

		plan, err := executor.BuildPlan(i, j, k, cfg.Height)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "grid\t\t%04d x %04d x %04d\n",
			cfg.GridSize[0], cfg.GridSize[1], cfg.GridSize[2])
		fmt.Fprintf(out, "tile\t\t%04d x %04d x %04d\n",
			cfg.Tiles[0].Size, cfg.Tiles[1].Size, cfg.Tiles[2].Size)

		// The census works on the zero-based projection; extents are
		// unchanged, and it is the scratch-buffer view a cache-resident
		// driver would allocate from.
		local := tiling.ToLocalCoords(plan)
		shapes, naiveBytes, overlappedBytes := tiling.ShapeHistogram(
			local, cfg.GridSize, elementSize, vectorComponents)

		fmt.Fprintf(out, "\n%d unique subtile shapes found.\n", len(shapes))
		for _, s := range shapes {
			fmt.Fprintf(out, "%02d x %02d x %02d\t%d\tsubtiles\n",
				s.I, s.J, s.K, s.Count)
		}

		mean, stddev := tiling.ShapeStats(shapes, elementSize, vectorComponents)
		fmt.Fprintf(out, "subtile footprint mean %.0f bytes, stddev %.0f bytes\n",
			mean, stddev)
		fmt.Fprintf(out, "%d bytes of RAM needed if grid is stored naively\n",
			naiveBytes)
		fmt.Fprintf(out, "%d bytes of RAM needed if overlapped tiles are stored multiple times\n",
			overlappedBytes)
		return nil
	},
}

var speedupCmd = &cobra.Command{
	Use:   "speedup",
	Short: "Calculate theoretical DRAM traffic saving",
	Long: `speedup estimates the DRAM bytes a tiled run moves against the naive
full-grid sweep. It assumes ideal data access patterns and
infinitely-fast code and cache - actual speedup is much lower.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(speedupTimesteps)
		if err != nil {
			return err
		}
		i, j, k := cfg.Axes()

		batching := executor.ComputeBatching(cfg.Timesteps, cfg.Height)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "grid\t\t%04d x %04d x %04d\n",
			cfg.GridSize[0], cfg.GridSize[1], cfg.GridSize[2])
		fmt.Fprintf(out, "tile\t\t%04d x %04d x %04d\n",
			cfg.Tiles[0].Size, cfg.Tiles[1].Size, cfg.Tiles[2].Size)
		fmt.Fprintf(out, "timesteps\t%d\n", cfg.Timesteps)
		fmt.Fprintf(out, "main batch\t%04d x %04d = %04d timesteps\n",
			cfg.Height/2, batching.NumBatches,
			batching.NumBatches*cfg.Height/2)
		fmt.Fprintf(out, "rem batch\t%04d x %04d = %04d timesteps\n",
			batching.RemainderHeight/2, boolToInt(batching.RemainderHeight > 0),
			batching.RemainderHeight/2)

		mainPlan, err := executor.BuildPlan(i, j, k, cfg.Height)
		if err != nil {
			return err
		}
		tiledBytes := tiling.EstimateTraffic(
			mainPlan, elementSize, vectorComponents, cfg.SlidingWindow)
		tiledBytes *= batching.NumBatches

		if batching.RemainderHeight > 0 {
			remPlan, err := executor.BuildPlan(i, j, k, batching.RemainderHeight)
			if err != nil {
				return err
			}
			tiledBytes += tiling.EstimateTraffic(
				remPlan, elementSize, vectorComponents, cfg.SlidingWindow)
		}

		naiveBytes := tiling.EstimateNaiveTraffic(
			cfg.GridSize, elementSize, vectorComponents, cfg.Timesteps)

		fmt.Fprintf(out, "tiled total\t%.0f MBytes\n", float64(tiledBytes)/1e6)
		fmt.Fprintf(out, "naive total\t%.0f MBytes\n", float64(naiveBytes)/1e6)
		fmt.Fprintf(out, "speedup\t\t%.1f%%\n",
			100.0*float64(naiveBytes)/float64(tiledBytes))
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "ASCII visualization of each axis's 1D plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(1)
		if err != nil {
			return err
		}
		i, j, k := cfg.Axes()

		out := cmd.OutOrStdout()
		for axis, ac := range []executor.AxisConfig{i, j, k} {
			plan, err := plan1DFor(ac, cfg.Height)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "axis %c\n", 'i'+axis)
			tiling.Visualize(out, plan, ac.GridSize)
			fmt.Fprintln(out)
		}

		if cfg.Dump {
			plan, err := executor.BuildPlan(i, j, k, cfg.Height)
			if err != nil {
				return err
			}
			tiling.DumpPlan3D(out, plan)
		}
		return nil
	},
}

func plan1DFor(ac executor.AxisConfig, height int) (tiling.Plan1D, error) {
	if ac.Kind == executor.Parallelogram {
		return tiling.ComputeParallelogramTiles(ac.GridSize, ac.TileSize, height)
	}
	return tiling.ComputeTrapezoidTiles(ac.GridSize, ac.TileSize, height)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func init() {
	speedupCmd.Flags().IntVarP(&speedupTimesteps, "total-timesteps", "n", 1000,
		"timesteps to simulate")
	speedupCmd.Flags().BoolVarP(&slidingWindow, "sliding-window", "w", false,
		"use parallelogram sliding window (requires k suffix 'p')")

	diagnoseCmd.AddCommand(shapesCmd)
	diagnoseCmd.AddCommand(speedupCmd)
	diagnoseCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(diagnoseCmd)
}
