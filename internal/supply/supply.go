package supply

import (
	"context"
	"fmt"

	"github.com/iwvelando/labor-supply/internal/config"
	"github.com/iwvelando/labor-supply/internal/optimizer"
	"github.com/iwvelando/labor-supply/pkg/bend"
	"github.com/iwvelando/labor-supply/pkg/budget"
	"github.com/iwvelando/labor-supply/pkg/grid"
	"github.com/iwvelando/labor-supply/pkg/optimization"
	"github.com/iwvelando/labor-supply/pkg/utility"
	"go.uber.org/zap"
)

// Bend is a backward-bending interval. LowConfidence is set when any point in
// the interval came from a search that hit its iteration cap.
type Bend struct {
	bend.Interval `yaml:",inline"`
	LowConfidence bool `json:"lowConfidence" yaml:"lowConfidence"`
}

// Tangency holds the budget line and the indifference curve through the
// optimum at the wage where hours peak.
type Tangency struct {
	Wage         float64        `json:"wage" yaml:"wage"`
	Hours        float64        `json:"hours" yaml:"hours"`
	Utility      float64        `json:"utility" yaml:"utility"`
	Budget       []budget.Point `json:"budget" yaml:"budget"`
	Indifference []budget.Point `json:"indifference" yaml:"indifference"`
}

// Curve holds all information related to the supply curve of one scenario.
type Curve struct {
	Name      string               `json:"name" yaml:"name"`
	Kind      utility.Kind         `json:"kind" yaml:"kind"`
	Scheme    string               `json:"scheme" yaml:"scheme"`
	Wages     []float64            `json:"wages" yaml:"wages"`
	Responses []optimizer.Response `json:"responses" yaml:"responses"`
	Slopes    []float64            `json:"slopes" yaml:"slopes"`
	// AnalyticSlopes holds the exact dHours/dWage per wage when the utility
	// form has a closed form solution.
	AnalyticSlopes []float64            `json:"analyticSlopes,omitempty" yaml:"analyticSlopes,omitempty"`
	Bends          []Bend               `json:"bends" yaml:"bends"`
	Summary        optimization.Summary `json:"summary" yaml:"summary"`
	Tangency       *Tangency            `json:"tangency,omitempty" yaml:"tangency,omitempty"`
}

// Hours returns the optimal hours in grid order.
func (c Curve) Hours() []float64 {
	hours := make([]float64, len(c.Responses))
	for i, resp := range c.Responses {
		hours[i] = resp.Hours
	}
	return hours
}

// GetSupplyCurves computes the supply curve for every active scenario. All
// active scenarios are validated before any sweep starts.
func GetSupplyCurves(ctx context.Context, logger *zap.Logger, conf config.Configuration) ([]Curve, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	var results []Curve
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "supply.GetSupplyCurves"),
			)
			continue
		}

		curve, err := scenarioCurve(ctx, logger, scenario)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		logger.Info(fmt.Sprintf("computed supply curve for scenario %s", scenario.Name),
			zap.String("op", "supply.GetSupplyCurves"),
			zap.String("strategy", curve.Summary.Strategy),
			zap.Int("points", curve.Summary.Points),
			zap.Int("bends", len(curve.Bends)),
			zap.Int("nonConverged", curve.Summary.NonConverged),
		)
		results = append(results, curve)
	}

	return results, nil
}

func scenarioCurve(ctx context.Context, logger *zap.Logger, scenario config.Scenario) (Curve, error) {
	params, err := scenario.Utility.Params()
	if err != nil {
		return Curve{}, err
	}
	wages, err := grid.Build(scenario.GridSpec())
	if err != nil {
		return Curve{}, err
	}
	strategy, err := optimizer.New(scenario.Optimizer)
	if err != nil {
		return Curve{}, err
	}
	resolve := Resolver(func(wage float64) utility.Params {
		p := params
		p.BaseIncome = scenario.BaseIncomeAt(wage)
		return p
	})

	responses, err := Sweep(ctx, logger, wages, resolve, strategy, scenario.Workers)
	if err != nil {
		return Curve{}, err
	}

	hours := make([]float64, len(responses))
	converged := make([]bool, len(responses))
	iterations := make([]int, len(responses))
	for i, resp := range responses {
		hours[i] = resp.Hours
		converged[i] = resp.Converged
		iterations[i] = resp.Iterations
	}

	scheme := bend.ForwardScheme
	if scenario.Slopes == config.SlopesCentered {
		scheme = bend.CenteredScheme
	}
	slopes, err := bend.Slopes(scheme, wages, hours)
	if err != nil {
		return Curve{}, err
	}
	bends := markConfidence(bend.Runs(wages, slopes), converged)

	curve := Curve{
		Name:      scenario.Name,
		Kind:      params.Kind,
		Scheme:    scheme.String(),
		Wages:     wages,
		Responses: responses,
		Slopes:    slopes,
		Bends:     bends,
		Summary:   optimization.Summarize(strategy.Name(), wages, hours, converged, iterations, len(bends)),
	}

	if utility.HasClosedForm(params.Kind) {
		curve.AnalyticSlopes = make([]float64, len(wages))
		for i, wage := range wages {
			curve.AnalyticSlopes[i], _ = utility.ClosedFormSlope(wage, resolve(wage))
		}
	}

	if scenario.Tangency.Enabled {
		peak := responses[curve.Summary.PeakIndex]
		tangency, err := tangencyAt(peak, resolve(peak.Wage), scenario.Tangency.Step)
		if err != nil {
			return Curve{}, err
		}
		curve.Tangency = tangency
	}

	return curve, nil
}

// markConfidence attaches the low confidence flag to each interval.
func markConfidence(intervals []bend.Interval, converged []bool) []Bend {
	bends := make([]Bend, 0, len(intervals))
	for _, interval := range intervals {
		b := Bend{Interval: interval}
		for i := interval.StartIndex; i <= interval.EndIndex && i < len(converged); i++ {
			if !converged[i] {
				b.LowConfidence = true
				break
			}
		}
		bends = append(bends, b)
	}
	return bends
}

func tangencyAt(resp optimizer.Response, p utility.Params, step float64) (*Tangency, error) {
	line, err := budget.Line(resp.Wage, p, step)
	if err != nil {
		return nil, err
	}
	// Twice the income at full work.
	maxIncome := 2 * utility.Income(p.TotalTime, resp.Wage, p)
	indifference, err := budget.Indifference(resp.Utility, p, step, maxIncome)
	if err != nil {
		return nil, err
	}
	return &Tangency{
		Wage:         resp.Wage,
		Hours:        resp.Hours,
		Utility:      resp.Utility,
		Budget:       line,
		Indifference: indifference,
	}, nil
}
