package optimizer

import (
	"math"

	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/mathutil"
	"github.com/iwvelando/labor-supply/pkg/utility"
)

var (
	sqrtEps    = math.Sqrt(2.220446049250313e-16)
	goldenMean = 0.5 * (3 - math.Sqrt(5))
)

// Brent maximizes utility on [0, TotalTime] with Brent's bounded method:
// golden section steps safeguarded by parabolic interpolation.
type Brent struct {
	// Tolerance is the absolute tolerance on hours.
	Tolerance float64
	// MaxIterations caps objective evaluations.
	MaxIterations int
}

// Name implements Strategy.
func (b Brent) Name() string {
	return constants.StrategyBrent
}

// Optimize implements Strategy.
func (b Brent) Optimize(wage float64, p utility.Params) Response {
	tol, maxIter := b.Tolerance, b.MaxIterations
	if tol <= 0 {
		tol = constants.DefaultTolerance
	}
	if maxIter <= 0 {
		maxIter = constants.DefaultMaxIterations
	}
	x, evals, converged := minimizeBounded(objective(wage, p), 0, p.TotalTime, tol, maxIter)
	return respond(wage, p, x, evals, converged, b.Name())
}

// minimizeBounded returns the minimizer of f on [a, b], the number of
// evaluations used and whether the tolerance was met before maxEvals.
func minimizeBounded(f func(float64) float64, a, b, xtol float64, maxEvals int) (float64, int, bool) {
	fulc := a + goldenMean*(b-a)
	nfc, xf := fulc, fulc
	var rat, e float64

	fx := f(xf)
	evals := 1
	ffulc, fnfc := fx, fx

	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + xtol/3
	tol2 := 2 * tol1

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		if evals >= maxEvals {
			return xf, evals, false
		}

		golden := true
		if math.Abs(e) > tol1 {
			// Try a parabola through the three best points.
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				x := xf + rat
				if x-a < tol2 || b-x < tol2 {
					rat = tol1 * stepSign(xm-xf)
				}
			} else {
				golden = true
			}
		}

		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}

		x := xf + stepSign(rat)*math.Max(math.Abs(rat), tol1)
		fu := f(x)
		evals++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			if fu <= fnfc || nfc == xf {
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			} else if fu <= ffulc || fulc == xf || fulc == nfc {
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + xtol/3
		tol2 = 2 * tol1
	}

	return xf, evals, true
}

// stepSign is the sign of v with zero mapped to +1.
func stepSign(v float64) float64 {
	if s := mathutil.Sign(v); s != 0 {
		return s
	}
	return 1
}
