// Package budget samples the budget constraint and indifference curves in
// (leisure, income) space for tangency diagnostics.
package budget

import (
	"fmt"
	"math"

	"github.com/iwvelando/labor-supply/pkg/mathutil"
	"github.com/iwvelando/labor-supply/pkg/utility"
)

// Point is one (leisure, income) sample.
type Point struct {
	Leisure float64 `json:"leisure" yaml:"leisure"`
	Income  float64 `json:"income" yaml:"income"`
}

func leisureSteps(total, step float64, includeZero bool) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) {
		return nil, fmt.Errorf("leisure step %g must be positive", step)
	}
	n := int(math.Floor(total/step + 1e-9))
	values := make([]float64, 0, n+1)
	if includeZero {
		values = append(values, 0)
	}
	for i := 1; i <= n; i++ {
		values = append(values, float64(i)*step)
	}
	return values, nil
}

// Line samples income = base + wage*(total - leisure) for leisure from zero
// to the full time budget.
func Line(wage float64, p utility.Params, step float64) ([]Point, error) {
	leisures, err := leisureSteps(p.TotalTime, step, true)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, len(leisures))
	for _, leisure := range leisures {
		points = append(points, Point{
			Leisure: leisure,
			Income:  utility.Income(p.TotalTime-leisure, wage, p),
		})
	}
	return points, nil
}

// IncomeFor returns the income that reaches the given utility level at the
// given leisure, or false when no finite non-negative income does.
func IncomeFor(level, leisure float64, p utility.Params) (float64, bool) {
	if leisure <= 0 {
		return 0, false
	}
	var income float64
	switch p.Kind {
	case utility.LinearProduct:
		income = level / leisure
	case utility.AdditiveLog:
		income = math.Exp(level - p.LeisureWeight*math.Log(leisure))
	case utility.CobbDouglas:
		if level <= 0 {
			return 0, false
		}
		income = math.Pow(level/math.Pow(leisure, p.Beta), 1/p.Alpha)
	case utility.CES:
		if level <= 0 {
			return 0, false
		}
		rest := math.Pow(level, p.Rho) - p.Beta*math.Pow(leisure, p.Rho)
		if rest/p.Alpha <= 0 {
			return 0, false
		}
		income = math.Pow(rest/p.Alpha, 1/p.Rho)
	default:
		return 0, false
	}
	if !mathutil.IsFinite(income) || income < 0 {
		return 0, false
	}
	return income, true
}

// Indifference samples the indifference curve at utility level. Points with
// no finite income, or income above maxIncome when maxIncome > 0, are skipped.
func Indifference(level float64, p utility.Params, step, maxIncome float64) ([]Point, error) {
	leisures, err := leisureSteps(p.TotalTime, step, false)
	if err != nil {
		return nil, err
	}
	var points []Point
	for _, leisure := range leisures {
		income, ok := IncomeFor(level, leisure, p)
		if !ok {
			continue
		}
		if maxIncome > 0 && income > maxIncome {
			continue
		}
		points = append(points, Point{Leisure: leisure, Income: income})
	}
	return points, nil
}
