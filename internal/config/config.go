// Package config defines the data structures related to configuration and
// includes functions for loading, normalizing and validating the config.
package config

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/iwvelando/labor-supply/pkg/grid"
	"github.com/iwvelando/labor-supply/pkg/utility"
	"github.com/iwvelando/labor-supply/pkg/validation"
	"github.com/spf13/viper"
)

// Slope schemes accepted by Scenario.Slopes.
const (
	SlopesForward  = "forward"
	SlopesCentered = "centered"
)

// Configuration holds all configuration for labor-supply.
type Configuration struct {
	Scenarios []Scenario
	Logging   LoggingConfig `yaml:"logging,omitempty"`
	Output    OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`                                // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`                               // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml
}

// Scenario holds the preferences, wage grid and solver settings for one
// supply curve.
type Scenario struct {
	Name        string
	Active      bool
	Utility     UtilityConfig
	Grid        GridConfig
	IncomeBands []IncomeBand `mapstructure:"incomeBands"`
	Optimizer   OptimizerConfig
	Workers     int
	Slopes      string
	Tangency    TangencyConfig
}

// UtilityConfig selects the utility form and its constants.
type UtilityConfig struct {
	Kind          string
	TotalTime     float64 `mapstructure:"totalTime"`
	BaseIncome    float64 `mapstructure:"baseIncome"`
	LeisureWeight float64 `mapstructure:"leisureWeight"`
	Alpha         float64
	Beta          float64
	Rho           float64
}

// GridConfig describes the wage grid. Count and Step are mutually exclusive.
type GridConfig struct {
	Min   float64
	Max   float64
	Count int
	Step  float64
}

// IncomeBand replaces the base income for every wage at or above FromWage.
type IncomeBand struct {
	FromWage   float64 `mapstructure:"fromWage"`
	BaseIncome float64 `mapstructure:"baseIncome"`
}

// TangencyConfig enables budget line and indifference curve samples at the
// wage where hours peak.
type TangencyConfig struct {
	Enabled bool
	Step    float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Normalize applies defaults to every scenario.
func (c *Configuration) Normalize() {
	for i := range c.Scenarios {
		c.Scenarios[i].Normalize()
	}
}

// Validate returns the first fatal problem found in an active scenario.
func (c *Configuration) Validate() error {
	for i := range c.Scenarios {
		scenario := &c.Scenarios[i]
		if !scenario.Active {
			continue
		}
		if err := scenario.Validate(); err != nil {
			return fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
	}
	return nil
}

// Normalize fills unset fields with their defaults.
func (s *Scenario) Normalize() {
	s.Name = strings.TrimSpace(s.Name)

	u := &s.Utility
	if kind, err := utility.ParseKind(u.Kind); err == nil {
		u.Kind = string(kind)
	}
	if u.TotalTime == 0 {
		u.TotalTime = constants.DefaultTotalTime
	}
	if u.LeisureWeight == 0 {
		u.LeisureWeight = constants.DefaultLeisureWeight
	}
	if u.Alpha == 0 {
		u.Alpha = constants.DefaultShare
	}
	if u.Beta == 0 {
		u.Beta = constants.DefaultShare
	}
	if u.Rho == 0 {
		u.Rho = constants.DefaultRho
	}

	if s.Grid.Count == 0 && s.Grid.Step == 0 {
		s.Grid.Count = constants.DefaultGridCount
	}

	sort.SliceStable(s.IncomeBands, func(i, j int) bool {
		return s.IncomeBands[i].FromWage < s.IncomeBands[j].FromWage
	})

	s.Optimizer.Normalize()

	if s.Workers <= 0 {
		s.Workers = runtime.GOMAXPROCS(0)
	}

	s.Slopes = strings.ToLower(strings.TrimSpace(s.Slopes))
	if s.Slopes == "" {
		s.Slopes = SlopesForward
	}

	if s.Tangency.Step <= 0 {
		s.Tangency.Step = constants.DefaultTangencyStep
	}
}

// Validate returns an error when the scenario cannot be swept.
func (s *Scenario) Validate() error {
	s.Normalize()

	params, err := s.Utility.Params()
	if err != nil {
		return err
	}
	if err := s.GridSpec().Validate(); err != nil {
		return err
	}
	for i := 1; i < len(s.IncomeBands); i++ {
		if s.IncomeBands[i].FromWage == s.IncomeBands[i-1].FromWage {
			return fmt.Errorf("income bands share the starting wage %g", s.IncomeBands[i].FromWage)
		}
	}
	if err := s.Optimizer.Validate(params.Kind); err != nil {
		return err
	}
	switch s.Slopes {
	case SlopesForward, SlopesCentered:
	default:
		return fmt.Errorf("slope scheme %q is not supported", s.Slopes)
	}
	return nil
}

// Params converts the utility section into evaluator parameters.
func (u UtilityConfig) Params() (utility.Params, error) {
	kind, err := utility.ParseKind(u.Kind)
	if err != nil {
		return utility.Params{}, err
	}
	params := utility.Params{
		Kind:          kind,
		TotalTime:     u.TotalTime,
		BaseIncome:    u.BaseIncome,
		LeisureWeight: u.LeisureWeight,
		Alpha:         u.Alpha,
		Beta:          u.Beta,
		Rho:           u.Rho,
	}
	if err := params.Validate(); err != nil {
		return utility.Params{}, err
	}
	return params, nil
}

// GridSpec converts the grid section into a grid.Spec.
func (s Scenario) GridSpec() grid.Spec {
	return grid.Spec{
		Min:   s.Grid.Min,
		Max:   s.Grid.Max,
		Count: s.Grid.Count,
		Step:  s.Grid.Step,
	}
}

// BaseIncomeAt returns the base income that applies at the given wage: the
// last band starting at or below the wage, or the utility base income.
func (s Scenario) BaseIncomeAt(wage float64) float64 {
	income := s.Utility.BaseIncome
	for _, band := range s.IncomeBands {
		if wage < band.FromWage {
			break
		}
		income = band.BaseIncome
	}
	return income
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var scenarios []validation.ScenarioInfo
	for _, scenario := range c.Scenarios {
		info := validation.ScenarioInfo{
			Name:      scenario.Name,
			Active:    scenario.Active,
			Kind:      scenario.Utility.Kind,
			Strategy:  CanonicalStrategy(scenario.Optimizer.Strategy),
			GridMin:   scenario.Grid.Min,
			GridMax:   scenario.Grid.Max,
			BandWages: make([]float64, 0, len(scenario.IncomeBands)),
		}
		if kind, err := utility.ParseKind(scenario.Utility.Kind); err == nil {
			info.ClosedForm = utility.HasClosedForm(kind)
		}
		for _, band := range scenario.IncomeBands {
			info.BandWages = append(info.BandWages, band.FromWage)
		}
		scenarios = append(scenarios, info)
	}

	validator := validation.ConfigValidator{Scenarios: scenarios}
	return validator.ValidateAll()
}
