package config

import (
	"testing"

	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/utility"
)

func TestCanonicalStrategy(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty defaults to auto", input: "", expected: constants.StrategyAuto},
		{name: "closed form alias", input: "Closed-Form", expected: constants.StrategyAnalytic},
		{name: "bounded alias", input: "BOUNDED", expected: constants.StrategyBrent},
		{name: "golden section", input: "golden_section", expected: constants.StrategyGolden},
		{name: "unknown lowered", input: "Newton", expected: "newton"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := CanonicalStrategy(tc.input)
			if actual != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, actual)
			}
		})
	}
}

func TestOptimizerConfigNormalize(t *testing.T) {
	cfg := &OptimizerConfig{Strategy: " Brent ", Tolerance: -1}
	cfg.Normalize()

	if cfg.Strategy != constants.StrategyBrent {
		t.Fatalf("expected brent, got %q", cfg.Strategy)
	}
	if cfg.Tolerance != constants.DefaultTolerance {
		t.Fatalf("expected default tolerance, got %v", cfg.Tolerance)
	}
	if cfg.MaxIterations != constants.DefaultMaxIterations {
		t.Fatalf("expected default max iterations, got %d", cfg.MaxIterations)
	}

	var nilCfg *OptimizerConfig
	nilCfg.Normalize()
}

func TestOptimizerConfigValidate(t *testing.T) {
	testCases := []struct {
		name     string
		strategy string
		kind     utility.Kind
		wantErr  bool
	}{
		{name: "auto ces", strategy: "auto", kind: utility.CES},
		{name: "analytic cobb douglas", strategy: "analytic", kind: utility.CobbDouglas},
		{name: "analytic ces", strategy: "analytic", kind: utility.CES, wantErr: true},
		{name: "golden log", strategy: "golden", kind: utility.AdditiveLog},
		{name: "unsupported", strategy: "simplex", kind: utility.LinearProduct, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &OptimizerConfig{Strategy: tc.strategy}
			err := cfg.Validate(tc.kind)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}

	var nilCfg *OptimizerConfig
	if err := nilCfg.Validate(utility.CES); err == nil {
		t.Fatalf("expected error for nil configuration")
	}
}
