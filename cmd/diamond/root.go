package main

import (
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/biergaizi/project-diamond/internal/cliconfig"
)

var log = logrus.New()

var (
	gridArg       string
	tileArg       string
	tileHeight    int
	dump          bool
	slidingWindow bool
	workers       int
)

var rootCmd = &cobra.Command{
	Use:   "diamond",
	Short: "Time-space tiling planner and verification harness for a leap-frog 3D stencil",
	Long: `diamond plans cache-resident time-space tiles for a leap-frog 3D FDTD
stencil update and verifies, over a symbolic algebra, that executing a
plan produces the exact same expression per grid cell as a naive,
strictly-ordered sweep.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&gridArg, "grid-size", "g", "",
		"grid size as i,j,k (e.g: 400,400,400)")
	pf.StringVarP(&tileArg, "tile-size", "t", "",
		"tile size per axis with shape suffix (e.g: 20t,20t,20t or 20t,20t,20p)")
	pf.IntVarP(&tileHeight, "tile-height", "h", 0,
		"tile height in half-steps (even, e.g: 18)")
	pf.BoolVarP(&dump, "dump", "d", false,
		"dump traces for debugging")
	pf.IntVar(&workers, "workers", runtime.GOMAXPROCS(0),
		"concurrent tiles per stage")

	// Registering our own --help keeps cobra from claiming the -h
	// shorthand, which belongs to --tile-height.
	pf.Bool("help", false, "help for diamond")

	rootCmd.MarkPersistentFlagRequired("grid-size")
	rootCmd.MarkPersistentFlagRequired("tile-size")
	rootCmd.MarkPersistentFlagRequired("tile-height")
}

// buildConfig folds the shared flag values into the one Config record
// every subcommand threads through the executor. ts is the
// subcommand's own -n value, or a fixed placeholder for subcommands
// that don't run timesteps at all.
func buildConfig(ts int) (cliconfig.Config, error) {
	return cliconfig.NewConfig(
		gridArg, tileArg,
		tileHeight, ts, workers,
		dump, slidingWindow,
	)
}
