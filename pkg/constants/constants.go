// Package constants provides shared constants for the labor-supply application.
package constants

// Preference defaults
const (
	// DefaultTotalTime is the default time budget split between work and leisure
	DefaultTotalTime = 16.0

	// DefaultLeisureWeight is the default leisure weight for the additive-log form
	DefaultLeisureWeight = 1.0

	// DefaultShare is the default income and leisure exponent for the power forms
	DefaultShare = 0.5

	// DefaultRho is the default substitution parameter for the CES form
	DefaultRho = -1.0
)

// Numerical constants
const (
	// InteriorEpsilon keeps hours strictly inside (0, total time)
	InteriorEpsilon = 1e-9

	// UtilitySentinel replaces scores that would otherwise be undefined
	UtilitySentinel = -1e10

	// DefaultTolerance is the absolute convergence tolerance on hours
	DefaultTolerance = 1e-10

	// DefaultMaxIterations caps objective evaluations per wage point
	DefaultMaxIterations = 500

	// DefaultGridCount is used when a grid specifies neither count nor step
	DefaultGridCount = 200

	// DefaultTangencyStep is the leisure spacing of tangency diagnostics
	DefaultTangencyStep = 0.1

	// DecimalPlaces is the precision used when rendering income
	DecimalPlaces = 2
)

// Optimizer strategy names
const (
	StrategyAuto     = "auto"
	StrategyAnalytic = "analytic"
	StrategyBrent    = "brent"
	StrategyGolden   = "golden"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the structured output format for plotting tools
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)
