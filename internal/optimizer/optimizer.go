// Package optimizer finds the work hours that maximize utility at a single
// wage, either from a closed form solution or by bounded scalar search.
package optimizer

import (
	"fmt"

	"github.com/iwvelando/labor-supply/internal/config"
	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/utility"
)

// Response is the optimal choice at one wage. Leisure and Income are derived
// from the same clamped Hours that produced Utility.
type Response struct {
	Wage       float64 `json:"wage" yaml:"wage"`
	Hours      float64 `json:"hours" yaml:"hours"`
	Leisure    float64 `json:"leisure" yaml:"leisure"`
	Income     float64 `json:"income" yaml:"income"`
	Utility    float64 `json:"utility" yaml:"utility"`
	Iterations int     `json:"iterations" yaml:"iterations"`
	Converged  bool    `json:"converged" yaml:"converged"`
	Method     string  `json:"method" yaml:"method"`
}

// Strategy solves the single-wage problem. Implementations must be safe for
// concurrent use and deterministic.
type Strategy interface {
	Name() string
	Optimize(wage float64, params utility.Params) Response
}

// New builds the strategy selected by the configuration.
func New(cfg config.OptimizerConfig) (Strategy, error) {
	cfg.Normalize()
	brent := Brent{Tolerance: cfg.Tolerance, MaxIterations: cfg.MaxIterations}
	switch cfg.Strategy {
	case constants.StrategyAuto:
		return Analytic{Fallback: brent}, nil
	case constants.StrategyAnalytic:
		return Analytic{}, nil
	case constants.StrategyBrent:
		return brent, nil
	case constants.StrategyGolden:
		return GoldenSection{Tolerance: cfg.Tolerance, MaxIterations: cfg.MaxIterations}, nil
	default:
		return nil, fmt.Errorf("optimizer strategy %q is not supported", cfg.Strategy)
	}
}

// respond derives the full response from a candidate hours value.
func respond(wage float64, p utility.Params, hours float64, iterations int, converged bool, method string) Response {
	h := utility.ClampHours(hours, p)
	return Response{
		Wage:       wage,
		Hours:      h,
		Leisure:    utility.Leisure(h, p),
		Income:     utility.Income(h, wage, p),
		Utility:    utility.Evaluate(h, wage, p),
		Iterations: iterations,
		Converged:  converged,
		Method:     method,
	}
}

// objective returns the negated score so minimizers can maximize utility.
func objective(wage float64, p utility.Params) func(float64) float64 {
	return func(hours float64) float64 {
		return -utility.Evaluate(hours, wage, p)
	}
}
