// Package cliconfig binds the CLI flags shared by all of diamond's
// subcommands into one Config record. Only the argument parser
// produces a Config; everything downstream treats it as read-only.
package cliconfig

import (
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/biergaizi/project-diamond/internal/executor"
	"github.com/biergaizi/project-diamond/internal/tilingerrors"
)

// TileAxis is one axis's tile width and shape kind, parsed from one
// comma-separated field of -t/--tile-size before the grid size (known
// only once -g is also parsed) is folded in to produce an
// executor.AxisConfig.
type TileAxis struct {
	Size int
	Kind executor.AxisKind
}

// Config is the fully-parsed, read-only configuration record every
// diamond subcommand threads into internal/executor.
type Config struct {
	GridSize      [3]int
	Tiles         [3]TileAxis
	Height        int
	Timesteps     int
	Dump          bool
	SlidingWindow bool
	Workers       int
}

// Axes returns the per-axis executor.AxisConfig triple (I, J, K) by
// folding c.GridSize into c.Tiles.
func (c Config) Axes() (i, j, k executor.AxisConfig) {
	mk := func(n int) executor.AxisConfig {
		return executor.AxisConfig{
			GridSize: c.GridSize[n],
			TileSize: c.Tiles[n].Size,
			Kind:     c.Tiles[n].Kind,
		}
	}
	return mk(0), mk(1), mk(2)
}

// NewConfig parses and validates the shared flag values into a
// Config. All axis-level parse errors are aggregated via multierr so
// one bad invocation reports every problem at once.
func NewConfig(
	gridArg, tileArg string,
	height, timesteps, workers int,
	dump, slidingWindow bool,
) (Config, error) {
	var errs error

	gridSize, err := ParseGridSize(gridArg)
	if err != nil {
		errs = multierr.Append(errs, err)
	}
	tiles, tileErr := ParseTileSpec(tileArg)
	if tileErr != nil {
		errs = multierr.Append(errs, tileErr)
	}

	if height <= 0 || height%2 != 0 {
		errs = multierr.Append(errs, tilingerrors.ArgumentError{
			Flag:   "tile-height",
			Reason: "expected a positive even number of half-steps, got " + strconv.Itoa(height),
		})
	}
	if timesteps <= 0 {
		errs = multierr.Append(errs, tilingerrors.ArgumentError{
			Flag:   "total-timesteps",
			Reason: "expected a positive integer, got " + strconv.Itoa(timesteps),
		})
	}
	if slidingWindow && tileErr == nil && tiles[2].Kind != executor.Parallelogram {
		errs = multierr.Append(errs, tilingerrors.ArgumentError{
			Flag:   "sliding-window",
			Reason: "axis k uses trapezoid tiling, the parallelogram sliding window is unsupported",
		})
	}

	if errs != nil {
		return Config{}, errs
	}

	return Config{
		GridSize:      gridSize,
		Tiles:         tiles,
		Height:        height,
		Timesteps:     timesteps,
		Dump:          dump,
		SlidingWindow: slidingWindow,
		Workers:       workers,
	}, nil
}

// ParseGridSize parses the -g/--grid-size flag's "i,j,k" value.
func ParseGridSize(s string) ([3]int, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return [3]int{}, tilingerrors.ArgumentError{
			Flag:   "grid-size",
			Reason: "expected three comma-separated positive integers, got " + s,
		}
	}

	var out [3]int
	var errs error
	axisNames := [3]string{"i", "j", "k"}
	for n, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || v <= 0 {
			errs = multierr.Append(errs, tilingerrors.ArgumentError{
				Flag:   "grid-size",
				Reason: "axis " + axisNames[n] + ": expected a positive integer, got " + field,
			})
			continue
		}
		out[n] = v
	}
	if errs != nil {
		return [3]int{}, errs
	}
	return out, nil
}

// ParseTileSpec parses the -t/--tile-size flag's
// "wI(t|p),wJ(t|p),wK(t|p)" value. Per-axis parse errors are
// aggregated via multierr so a malformed three-axis flag reports
// every bad axis at once.
func ParseTileSpec(s string) ([3]TileAxis, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return [3]TileAxis{}, tilingerrors.ArgumentError{
			Flag:   "tile-size",
			Reason: "expected three comma-separated tile specs, got " + s,
		}
	}

	var out [3]TileAxis
	var errs error
	axisNames := [3]string{"i", "j", "k"}
	for n, field := range fields {
		field = strings.TrimSpace(field)
		axis, err := parseTileAxis(field)
		if err != nil {
			errs = multierr.Append(errs, tilingerrors.ArgumentError{
				Flag:   "tile-size",
				Reason: "axis " + axisNames[n] + ": " + err.Error(),
			})
			continue
		}
		out[n] = axis
	}

	if errs != nil {
		return [3]TileAxis{}, errs
	}

	if out[0].Kind != executor.Trapezoid || out[1].Kind != executor.Trapezoid {
		return [3]TileAxis{}, tilingerrors.ArgumentError{
			Flag:   "tile-size",
			Reason: "axis i and axis j only support trapezoid tiling (suffix 't')",
		}
	}

	return out, nil
}

func parseTileAxis(field string) (TileAxis, error) {
	if field == "" {
		return TileAxis{}, tilingerrors.ArgumentError{Reason: "empty tile spec"}
	}

	suffix := field[len(field)-1]
	var kind executor.AxisKind
	switch suffix {
	case 't':
		kind = executor.Trapezoid
	case 'p':
		kind = executor.Parallelogram
	default:
		return TileAxis{}, tilingerrors.ArgumentError{
			Reason: "tile suffix must be 't' or 'p', got '" + string(suffix) + "'",
		}
	}

	size, err := strconv.Atoi(field[:len(field)-1])
	if err != nil || size <= 0 {
		return TileAxis{}, tilingerrors.ArgumentError{
			Reason: "expected a positive integer width before the suffix, got " + field,
		}
	}

	return TileAxis{Size: size, Kind: kind}, nil
}
