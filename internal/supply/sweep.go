// Package supply sweeps the single-wage optimizer over a wage grid and turns
// the results into labor supply curves.
package supply

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/iwvelando/labor-supply/internal/optimizer"
	"github.com/iwvelando/labor-supply/pkg/grid"
	"github.com/iwvelando/labor-supply/pkg/utility"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Resolver returns the preference parameters that apply at a wage.
type Resolver func(wage float64) utility.Params

// Fixed returns a Resolver that ignores the wage.
func Fixed(p utility.Params) Resolver {
	return func(float64) utility.Params {
		return p
	}
}

// Sweep solves every wage point with at most workers solves in flight and
// returns the responses in grid order. Points that fail to converge are kept
// and logged. The only error besides bad arguments is cancellation of ctx.
func Sweep(ctx context.Context, logger *zap.Logger, wages []float64, resolve Resolver, strategy optimizer.Strategy, workers int) ([]optimizer.Response, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if strategy == nil {
		return nil, errors.New("sweep requires an optimizer strategy")
	}
	if resolve == nil {
		return nil, errors.New("sweep requires a parameter resolver")
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	points := grid.Clone(wages)
	if !grid.IsStrictlyIncreasing(points) {
		return nil, errors.New("sweep requires a strictly increasing wage grid")
	}
	responses := make([]optimizer.Response, len(points))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, wage := range points {
		i, wage := i, wage
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp := strategy.Optimize(wage, resolve(wage))
			if !resp.Converged {
				logger.Warn("optimizer did not converge",
					zap.String("op", "supply.Sweep"),
					zap.String("method", resp.Method),
					zap.Float64("wage", wage),
					zap.Float64("hours", resp.Hours),
					zap.Int("iterations", resp.Iterations),
				)
			}
			responses[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sweep over %d wages: %w", len(points), err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sweep over %d wages: %w", len(points), err)
	}
	return responses, nil
}
