package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/utility"
)

// OptimizerConfig selects and tunes the per-wage search.
type OptimizerConfig struct {
	Strategy      string  `yaml:"strategy,omitempty" mapstructure:"strategy"`
	Tolerance     float64 `yaml:"tolerance,omitempty" mapstructure:"tolerance"`
	MaxIterations int     `yaml:"maxIterations,omitempty" mapstructure:"maxIterations"`
}

// CanonicalStrategy returns the canonical identifier for an optimizer strategy.
func CanonicalStrategy(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.StrategyAuto
	}
	switch strings.ToLower(trimmed) {
	case "auto", "default":
		return constants.StrategyAuto
	case "analytic", "closed-form", "closed_form", "closedform":
		return constants.StrategyAnalytic
	case "brent", "bounded":
		return constants.StrategyBrent
	case "golden", "golden-section", "golden_section":
		return constants.StrategyGolden
	default:
		return strings.ToLower(trimmed)
	}
}

// Normalize ensures defaults and canonical values are applied before validation.
func (o *OptimizerConfig) Normalize() {
	if o == nil {
		return
	}
	o.Strategy = CanonicalStrategy(o.Strategy)
	if o.Tolerance <= 0 {
		o.Tolerance = constants.DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = constants.DefaultMaxIterations
	}
}

// Validate returns an error when the optimizer configuration cannot solve the
// given utility kind.
func (o *OptimizerConfig) Validate(kind utility.Kind) error {
	if o == nil {
		return fmt.Errorf("optimizer configuration cannot be nil")
	}

	o.Normalize()

	switch o.Strategy {
	case constants.StrategyAuto, constants.StrategyBrent, constants.StrategyGolden:
	case constants.StrategyAnalytic:
		if !utility.HasClosedForm(kind) {
			return fmt.Errorf("optimizer strategy %q has no closed form for utility %q", o.Strategy, kind)
		}
	default:
		return fmt.Errorf("optimizer strategy %q is not supported", o.Strategy)
	}
	return nil
}
