package optimizer

import (
	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/utility"
)

// Analytic uses the closed form optimum when the utility kind has one. Other
// kinds are handed to Fallback; with no Fallback the response is the feasible
// midpoint flagged as not converged.
type Analytic struct {
	Fallback Strategy
}

// Name implements Strategy.
func (a Analytic) Name() string {
	if a.Fallback != nil {
		return constants.StrategyAuto
	}
	return constants.StrategyAnalytic
}

// Optimize implements Strategy.
func (a Analytic) Optimize(wage float64, p utility.Params) Response {
	if hours, ok := utility.ClosedForm(wage, p); ok {
		return respond(wage, p, hours, 0, true, constants.StrategyAnalytic)
	}
	if a.Fallback != nil {
		return a.Fallback.Optimize(wage, p)
	}
	return respond(wage, p, p.TotalTime/2, 0, false, constants.StrategyAnalytic)
}
