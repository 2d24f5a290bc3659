// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/labor-supply/pkg/constants"
)

// ScenarioInfo carries the scenario fields the warning checks look at.
type ScenarioInfo struct {
	Name       string
	Active     bool
	Kind       string
	Strategy   string
	ClosedForm bool
	GridMin    float64
	GridMax    float64
	BandWages  []float64
}

// ConfigValidator collects non-fatal warnings about a configuration.
type ConfigValidator struct {
	Scenarios []ScenarioInfo
}

// ValidateBands warns about income bands that can never apply to the grid.
func ValidateBands(scenarioName string, gridMin, gridMax float64, bandWages []float64) []string {
	var warnings []string
	for _, wage := range bandWages {
		if wage > gridMax {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' income band starting at wage %g lies above the grid maximum %g and never applies",
				scenarioName, wage, gridMax))
		} else if wage <= gridMin {
			warnings = append(warnings, fmt.Sprintf("Scenario '%s' income band starting at wage %g covers the whole grid and replaces the base income",
				scenarioName, wage))
		}
	}
	return warnings
}

// ValidateStrategy warns when a numerical search is forced on a utility form
// that has an exact solution.
func ValidateStrategy(scenarioName, kind, strategy string, closedForm bool) string {
	if !closedForm {
		return ""
	}
	if strategy == constants.StrategyBrent || strategy == constants.StrategyGolden {
		return fmt.Sprintf("Scenario '%s' uses %s search although %s has a closed form solution",
			scenarioName, strategy, kind)
	}
	return ""
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	active := 0
	seen := make(map[string]bool)
	for _, scenario := range cv.Scenarios {
		if !scenario.Active {
			continue
		}
		active++

		if scenario.Name == "" {
			warnings = append(warnings, "An active scenario has no name")
		} else if seen[scenario.Name] {
			warnings = append(warnings, fmt.Sprintf("Scenario name '%s' is used more than once", scenario.Name))
		}
		seen[scenario.Name] = true

		if warning := ValidateStrategy(scenario.Name, scenario.Kind, scenario.Strategy, scenario.ClosedForm); warning != "" {
			warnings = append(warnings, warning)
		}
		warnings = append(warnings, ValidateBands(scenario.Name, scenario.GridMin, scenario.GridMax, scenario.BandWages)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios - nothing will be computed")
	}

	return warnings
}
