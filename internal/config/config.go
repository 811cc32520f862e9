// Package config loads bondval settings from a YAML file and environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	solver "github.com/meenmo/bondval/bond/config"
)

// Config represents the complete application configuration.
type Config struct {
	Bond    BondConfig    `mapstructure:"bond"    yaml:"bond"`
	Curve   CurveConfig   `mapstructure:"curve"   yaml:"curve"`
	Solver  SolverConfig  `mapstructure:"solver"  yaml:"solver"`
	Chart   ChartConfig   `mapstructure:"chart"   yaml:"chart"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// BondConfig holds the terms used when a flag is not given.
type BondConfig struct {
	FaceValue      float64 `mapstructure:"face_value"       yaml:"face_value"`
	CouponRate     float64 `mapstructure:"coupon_rate"      yaml:"coupon_rate"` // decimal APR
	MaturityYears  int     `mapstructure:"maturity_years"   yaml:"maturity_years"`
	PeriodsPerYear int     `mapstructure:"periods_per_year" yaml:"periods_per_year"`
	YieldRate      float64 `mapstructure:"yield_rate"       yaml:"yield_rate"` // decimal APR
}

// CurveConfig describes the yield sweep for the value-vs-yield curve.
type CurveConfig struct {
	MinYield float64 `mapstructure:"min_yield" yaml:"min_yield"`
	MaxYield float64 `mapstructure:"max_yield" yaml:"max_yield"`
	Step     float64 `mapstructure:"step"      yaml:"step"`
	Workers  int     `mapstructure:"workers"   yaml:"workers"` // 0 prices sequentially
}

// SolverConfig mirrors bond/config.Config.
type SolverConfig struct {
	PriceTolerance      float64 `mapstructure:"price_tolerance"      yaml:"price_tolerance"`
	MaxIterations       int     `mapstructure:"max_iterations"       yaml:"max_iterations"`
	DerivativeThreshold float64 `mapstructure:"derivative_threshold" yaml:"derivative_threshold"`
	ParTolerance        float64 `mapstructure:"par_tolerance"        yaml:"par_tolerance"`
	MaxPeriods          int     `mapstructure:"max_periods"          yaml:"max_periods"`
}

// ChartConfig holds PNG dimensions.
type ChartConfig struct {
	Width  int `mapstructure:"width"  yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

const envPrefix = "BONDVAL"

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/bondval.yaml
//  2. ~/.bondval/bondval.yaml
//
// Environment variables override config file values.
// Format: BONDVAL_<SECTION>_<KEY>, e.g., BONDVAL_CURVE_WORKERS
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("bondval")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".bondval"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets the default bond (a 5y 6% semi-annual bond at 8%) and sweep.
func setDefaults(v *viper.Viper) {
	v.SetDefault("bond.face_value", 1000.0)
	v.SetDefault("bond.coupon_rate", 0.06)
	v.SetDefault("bond.maturity_years", 5)
	v.SetDefault("bond.periods_per_year", 2)
	v.SetDefault("bond.yield_rate", 0.08)

	v.SetDefault("curve.min_yield", 0.00001)
	v.SetDefault("curve.max_yield", 0.5)
	v.SetDefault("curve.step", 0.001)
	v.SetDefault("curve.workers", 0)

	d := solver.DefaultConfig
	v.SetDefault("solver.price_tolerance", d.PriceTolerance)
	v.SetDefault("solver.max_iterations", d.MaxIterations)
	v.SetDefault("solver.derivative_threshold", d.DerivativeThreshold)
	v.SetDefault("solver.par_tolerance", d.ParTolerance)
	v.SetDefault("solver.max_periods", d.MaxPeriods)

	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 500)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks the settings that the core does not validate itself.
func (c *Config) Validate() error {
	if !(c.Curve.Step > 0) {
		return fmt.Errorf("config: curve.step must be positive, got %v", c.Curve.Step)
	}
	if c.Curve.MinYield < 0 || c.Curve.MaxYield > 1 {
		return fmt.Errorf("config: curve yields must lie in [0, 1], got [%v, %v)", c.Curve.MinYield, c.Curve.MaxYield)
	}
	if !(c.Curve.MinYield < c.Curve.MaxYield) {
		return fmt.Errorf("config: curve.min_yield (%v) must be below curve.max_yield (%v)", c.Curve.MinYield, c.Curve.MaxYield)
	}
	if c.Curve.Workers < 0 {
		return fmt.Errorf("config: curve.workers must be >= 0, got %d", c.Curve.Workers)
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("config: solver.max_iterations must be positive, got %d", c.Solver.MaxIterations)
	}
	if c.Solver.MaxPeriods <= 0 {
		return fmt.Errorf("config: solver.max_periods must be positive, got %d", c.Solver.MaxPeriods)
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("config: chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// SolverSettings converts the solver section for bond/config.SetConfig.
func (c *Config) SolverSettings() solver.Config {
	return solver.Config{
		PriceTolerance:      c.Solver.PriceTolerance,
		MaxIterations:       c.Solver.MaxIterations,
		DerivativeThreshold: c.Solver.DerivativeThreshold,
		ParTolerance:        c.Solver.ParTolerance,
		MaxPeriods:          c.Solver.MaxPeriods,
	}
}
