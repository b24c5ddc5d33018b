// File: config.go
// Role: File/environment configuration for Louvain runs, converted to Options.

package louvain

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyMaxLevels       = "algorithm.max_levels"
	KeyMaxSweeps       = "algorithm.max_sweeps"
	KeyWeightKey       = "algorithm.weight_key"
	KeyUnweighted      = "algorithm.unweighted"
	KeyCheckInvariants = "algorithm.check_invariants"
	KeyLogLevel        = "logging.level"
)

// envPrefix namespaces environment overrides, e.g. LVLOUVAIN_ALGORITHM_MAX_LEVELS.
const envPrefix = "LVLOUVAIN"

// Config manages algorithm configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration holding the defaults, with environment
// overrides enabled.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault(KeyMaxLevels, 0)
	v.SetDefault(KeyMaxSweeps, 0)
	v.SetDefault(KeyWeightKey, DefaultWeightKey)
	v.SetDefault(KeyUnweighted, false)
	v.SetDefault(KeyCheckInvariants, false)
	v.SetDefault(KeyLogLevel, "disabled")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadConfig returns NewConfig overlaid with the file at path
// (any format Viper recognises by extension).
func LoadConfig(path string) (*Config, error) {
	c := NewConfig()
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return nil, err
	}

	return c, nil
}

// Set overrides a key.
func (c *Config) Set(key string, value interface{}) { c.v.Set(key, value) }

// Getters for algorithm and logging parameters.
func (c *Config) MaxLevels() int { return c.v.GetInt(KeyMaxLevels) }
func (c *Config) MaxSweeps() int { return c.v.GetInt(KeyMaxSweeps) }
func (c *Config) WeightKey() string { return c.v.GetString(KeyWeightKey) }
func (c *Config) Unweighted() bool { return c.v.GetBool(KeyUnweighted) }
func (c *Config) CheckInvariants() bool { return c.v.GetBool(KeyCheckInvariants) }
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// Logger creates a zerolog logger writing JSON to w at the configured level.
// Unknown levels fall back to info.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("component", "louvain").Logger()
}

// Options converts the configuration into Louvain options, logging to stderr.
// Invalid values surface as ErrOptionViolation when the options are applied.
func (c *Config) Options() []Option {
	opts := []Option{
		WithMaxLevels(c.MaxLevels()),
		WithMaxSweeps(c.MaxSweeps()),
		WithWeightKey(c.WeightKey()),
		WithLogger(c.Logger(os.Stderr)),
	}
	if c.Unweighted() {
		opts = append(opts, WithUnweighted())
	}
	if c.CheckInvariants() {
		opts = append(opts, WithInvariantChecks())
	}

	return opts
}
