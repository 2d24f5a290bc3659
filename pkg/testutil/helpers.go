// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/labor-supply/internal/supply"
)

// FindCurve finds a curve by scenario name in the results slice.
// Returns a pointer to the curve if found, nil otherwise.
func FindCurve(results []supply.Curve, name string) *supply.Curve {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// HoursAt returns the optimal hours at the grid point closest to wage.
func HoursAt(curve *supply.Curve, wage float64) (float64, bool) {
	if curve == nil || len(curve.Responses) == 0 {
		return 0, false
	}
	best := 0
	for i, resp := range curve.Responses {
		if math.Abs(resp.Wage-wage) < math.Abs(curve.Responses[best].Wage-wage) {
			best = i
		}
	}
	return curve.Responses[best].Hours, true
}
