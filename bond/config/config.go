package config

// Config holds solver and comparison tolerances for the bond package.
type Config struct {
	// PriceTolerance is the relative price error at which the yield solver
	// stops.
	PriceTolerance float64

	// MaxIterations caps the yield solver.
	MaxIterations int

	// DerivativeThreshold is the minimum |dPrice/dYield| for a Newton step.
	// Below it the solver bisects instead.
	DerivativeThreshold float64

	// ParTolerance is the relative distance from face value within which a
	// price is reported as par.
	ParTolerance float64

	// MaxPeriods caps maturity × frequency for a single bond.
	// 18250 covers 50Y with daily compounding.
	MaxPeriods int
}

// DefaultConfig solves yields to 1e-10 relative price error and accepts
// bonds up to 50Y daily.
var DefaultConfig = Config{
	PriceTolerance:      1e-10,
	MaxIterations:       100,
	DerivativeThreshold: 1e-15,
	ParTolerance:        1e-9,
	MaxPeriods:          50 * 365,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}
