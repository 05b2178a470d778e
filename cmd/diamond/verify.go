package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/biergaizi/project-diamond/internal/executor"
)

var verifyTimesteps int

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Symbolic verification of tiling correctness",
	Long: `verify seeds the electromagnetic fields with unique symbols, runs the
naive reference executor and the tiled executor on independent copies,
and compares the resulting expression trees cell by cell.

Note: symbolic verification requires extreme memory usage. A
20x20x20 grid at 60 timesteps is a practical upper bound on commodity
hardware.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(verifyTimesteps)
		if err != nil {
			return err
		}

		i, j, k := cfg.Axes()
		log.WithFields(logrus.Fields{
			"grid":      gridArg,
			"tile":      tileArg,
			"height":    cfg.Height,
			"timesteps": cfg.Timesteps,
		}).Info("starting symbolic verification")

		err = executor.Verify(cmd.Context(), executor.VerifyConfig{
			GridSize:  cfg.GridSize,
			I:         i,
			J:         j,
			K:         k,
			Height:    cfg.Height,
			Timesteps: cfg.Timesteps,
			Workers:   cfg.Workers,
			Dump:      cfg.Dump,
			Logger:    log,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "verification passed.")
		return nil
	},
}

func init() {
	verifyCmd.Flags().IntVarP(&verifyTimesteps, "total-timesteps", "n", 100,
		"timesteps to verify")
	rootCmd.AddCommand(verifyCmd)
}
