package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"infstat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Defaults InferenceConfig `toml:"defaults"`
	Data     DataConfig      `toml:"data"`
	Output   OutputConfig    `toml:"output"`
}

// InferenceConfig holds the defaults applied when a command omits them
type InferenceConfig struct {
	Confidence float64 `toml:"confidence"` // INFSTAT_CONFIDENCE
	Alpha      float64 `toml:"alpha"`      // INFSTAT_ALPHA
	Backend    string  `toml:"backend"`    // INFSTAT_BACKEND: gonum | moremath
	Divisor    string  `toml:"divisor"`    // INFSTAT_DIVISOR: sample | population
}

// DataConfig holds sample loading settings
type DataConfig struct {
	Sheet   string `toml:"sheet"`   // INFSTAT_SHEET, worksheet read from .xlsx files
	Workers int    `toml:"workers"` // INFSTAT_WORKERS, concurrent column descriptions
}

// OutputConfig holds report settings
type OutputConfig struct {
	Format string `toml:"format"` // INFSTAT_FORMAT: text | markdown | html
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Defaults: InferenceConfig{Confidence: 0.95, Alpha: 0.05, Backend: "gonum", Divisor: "sample"},
		Data:     DataConfig{Sheet: "Sheet1", Workers: 4},
		Output:   OutputConfig{Format: "text"},
	}
}

// Load builds the configuration from the built-in defaults, then the TOML
// file named by INFSTAT_CONFIG if set, then individual environment
// variables, and validates the result. Callers that want a .env file loaded
// do so before calling Load.
func Load() (*Config, error) {
	config := Default()

	if path := os.Getenv("INFSTAT_CONFIG"); path != "" {
		if err := readFile(path, config); err != nil {
			return nil, err
		}
	}

	var env envReader
	config.Defaults.Confidence = env.getFloat("INFSTAT_CONFIDENCE", config.Defaults.Confidence)
	config.Defaults.Alpha = env.getFloat("INFSTAT_ALPHA", config.Defaults.Alpha)
	config.Defaults.Backend = strings.ToLower(getEnvOrDefault("INFSTAT_BACKEND", config.Defaults.Backend))
	config.Defaults.Divisor = strings.ToLower(getEnvOrDefault("INFSTAT_DIVISOR", config.Defaults.Divisor))
	config.Data.Sheet = getEnvOrDefault("INFSTAT_SHEET", config.Data.Sheet)
	config.Data.Workers = env.getInt("INFSTAT_WORKERS", config.Data.Workers)
	config.Output.Format = strings.ToLower(getEnvOrDefault("INFSTAT_FORMAT", config.Output.Format))
	if env.err != nil {
		return nil, env.err
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// readFile overlays the keys present in a TOML file onto config
func readFile(path string, config *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return &errors.AppError{Code: errors.CodeConfigInvalid, Message: "cannot read config file " + path, Cause: err}
	}
	if err := toml.Unmarshal(content, config); err != nil {
		return &errors.AppError{Code: errors.CodeConfigInvalid, Message: "invalid config file " + path, Cause: err}
	}
	return nil
}

func validateConfig(config *Config) error {
	if c := config.Defaults.Confidence; math.IsNaN(c) || c <= 0 || c >= 1 {
		return errors.ConfigInvalid("INFSTAT_CONFIDENCE must lie in (0, 1)")
	}
	if a := config.Defaults.Alpha; math.IsNaN(a) || a <= 0 || a >= 1 {
		return errors.ConfigInvalid("INFSTAT_ALPHA must lie in (0, 1)")
	}
	switch config.Defaults.Backend {
	case "gonum", "moremath":
	default:
		return errors.ConfigInvalid("INFSTAT_BACKEND must be gonum or moremath")
	}
	switch config.Defaults.Divisor {
	case "sample", "population":
	default:
		return errors.ConfigInvalid("INFSTAT_DIVISOR must be sample or population")
	}
	if config.Data.Workers < 1 {
		return errors.ConfigInvalid("INFSTAT_WORKERS must be >= 1")
	}
	switch config.Output.Format {
	case "text", "markdown", "html":
	default:
		return errors.ConfigInvalid("INFSTAT_FORMAT must be text, markdown or html")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envReader parses numeric variables, keeping the first malformed one
type envReader struct {
	err error
}

func (e *envReader) getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		e.fail(key, value, err)
		return defaultValue
	}
	return intValue
}

func (e *envReader) getFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		e.fail(key, value, err)
		return defaultValue
	}
	return floatValue
}

func (e *envReader) fail(key, value string, cause error) {
	if e.err == nil {
		e.err = &errors.AppError{Code: errors.CodeConfigInvalid, Message: key + " is not a number: " + strconv.Quote(value), Cause: cause}
	}
}
