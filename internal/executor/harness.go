package executor

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/biergaizi/project-diamond/internal/emfield"
	"github.com/biergaizi/project-diamond/internal/geom"
	"github.com/biergaizi/project-diamond/internal/symbolic"
	"github.com/biergaizi/project-diamond/internal/tilingerrors"
)

// VerifyConfig holds everything the symbolic verification harness
// needs to seed both executors and run them.
type VerifyConfig struct {
	GridSize  [3]int
	I, J, K   AxisConfig
	Height    int
	Timesteps int
	Workers   int
	Dump      bool
	Logger    *logrus.Logger
}

// initSymbolic fills every cell of a field with a fresh leaf symbol
// whose printed name encodes the array name and address.
func initSymbolic(name string, gridSize [3]int) *geom.Field[*symbolic.Expr] {
	f := geom.NewField[*symbolic.Expr](gridSize[0], gridSize[1], gridSize[2], 3)
	f.Fill(func(i, j, k, n int) *symbolic.Expr {
		return symbolic.NewSymbol(symbolicName(name, i, j, k, n))
	})
	return f
}

func symbolicName(name string, i, j, k, n int) string {
	return fmt.Sprintf("%s(%d,%d,%d,%d)", name, i, j, k, n)
}

// Verify seeds volt/curr/vv/vi/ii/iv with unique symbols, runs the
// reference and tiled executors on independent copies of volt/curr
// concurrently (they never touch each other's storage), and compares
// every cell. The first mismatch is reported as a
// VerificationFailureError carrying both rendered expression trees.
func Verify(ctx context.Context, cfg VerifyConfig) error {
	vv := initSymbolic("vv", cfg.GridSize)
	vi := initSymbolic("vi", cfg.GridSize)
	ii := initSymbolic("ii", cfg.GridSize)
	iv := initSymbolic("iv", cfg.GridSize)

	voltSeed := initSymbolic("volt", cfg.GridSize)
	currSeed := initSymbolic("curr", cfg.GridSize)

	voltRef := geom.NewField[*symbolic.Expr](cfg.GridSize[0], cfg.GridSize[1], cfg.GridSize[2], 3)
	voltRef.CopyFrom(voltSeed)
	currRef := geom.NewField[*symbolic.Expr](cfg.GridSize[0], cfg.GridSize[1], cfg.GridSize[2], 3)
	currRef.CopyFrom(currSeed)

	voltTiled := geom.NewField[*symbolic.Expr](cfg.GridSize[0], cfg.GridSize[1], cfg.GridSize[2], 3)
	voltTiled.CopyFrom(voltSeed)
	currTiled := geom.NewField[*symbolic.Expr](cfg.GridSize[0], cfg.GridSize[1], cfg.GridSize[2], 3)
	currTiled.CopyFrom(currSeed)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return RunReference(cfg.Timesteps, cfg.GridSize,
			func(first, last [3]int) error {
				emfield.UpdateVoltageRange(voltRef, currRef, vv, vi, first, last)
				return nil
			},
			func(first, last [3]int) error {
				emfield.UpdateCurrentRange(currRef, voltRef, ii, iv, first, last)
				return nil
			},
		)
	})

	group.Go(func() error {
		driver := TiledDriver{Workers: cfg.Workers, Dump: cfg.Dump, Logger: cfg.Logger}
		return driver.RunBatches(groupCtx, cfg.I, cfg.J, cfg.K, cfg.Height, cfg.Timesteps,
			func(first, last [3]int) error {
				emfield.UpdateVoltageRange(voltTiled, currTiled, vv, vi, first, last)
				return nil
			},
			func(first, last [3]int) error {
				emfield.UpdateCurrentRange(currTiled, voltTiled, ii, iv, first, last)
				return nil
			},
		)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	if err := compareSymbolic("volt", voltRef, voltTiled, cfg.GridSize); err != nil {
		return err
	}
	return compareSymbolic("curr", currRef, currTiled, cfg.GridSize)
}

func compareSymbolic(name string, ref, tiled *geom.Field[*symbolic.Expr], gridSize [3]int) error {
	for n := 0; n < 3; n++ {
		for i := 0; i < gridSize[0]; i++ {
			for j := 0; j < gridSize[1]; j++ {
				for k := 0; k < gridSize[2]; k++ {
					refExpr := ref.Get(i, j, k, n)
					tiledExpr := tiled.Get(i, j, k, n)
					if !symbolic.Equal(refExpr, tiledExpr) {
						return tilingerrors.VerificationFailureError{
							Field:    name,
							I:        i,
							J:        j,
							K:        k,
							N:        n,
							Expected: refExpr.String(),
							Received: tiledExpr.String(),
						}
					}
				}
			}
		}
	}
	return nil
}
