package optimizer

import (
	"math"

	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/utility"
)

var invPhi = (math.Sqrt(5) - 1) / 2

// GoldenSection maximizes utility on [0, TotalTime] by shrinking the bracket
// by the golden ratio each step. Slower than Brent but needs no smoothness.
type GoldenSection struct {
	Tolerance     float64
	MaxIterations int
}

// Name implements Strategy.
func (g GoldenSection) Name() string {
	return constants.StrategyGolden
}

// Optimize implements Strategy.
func (g GoldenSection) Optimize(wage float64, p utility.Params) Response {
	tol, maxIter := g.Tolerance, g.MaxIterations
	if tol <= 0 {
		tol = constants.DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = constants.DefaultMaxIterations
	}
	x, evals, converged := goldenSection(objective(wage, p), 0, p.TotalTime, tol, maxIter)
	return respond(wage, p, x, evals, converged, g.Name())
}

func goldenSection(f func(float64) float64, a, b, xtol float64, maxEvals int) (float64, int, bool) {
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	evals := 2

	for b-a > xtol {
		if evals >= maxEvals {
			return 0.5 * (a + b), evals, false
		}
		if fc <= fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
		evals++
	}

	return 0.5 * (a + b), evals, true
}
