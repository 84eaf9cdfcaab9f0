package laws

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/leanovate/gopter"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid law check config")

// Config controls how many cases a law check generates and how.
//
// Example JSON:
//
//	{
//	  "min_successful_tests": 500,
//	  "max_size": 50,
//	  "seed": 42
//	}
type Config struct {
	// MinSuccessfulTests is the number of passing cases required per law
	MinSuccessfulTests int `json:"min_successful_tests"`

	// MaxSize bounds the size hint handed to generators (slice lengths, etc.)
	MaxSize int `json:"max_size"`

	// MaxDiscardRatio bounds discarded cases relative to successful ones
	MaxDiscardRatio float64 `json:"max_discard_ratio"`

	// Seed fixes the random source (0 = time based)
	Seed int64 `json:"seed"`

	// Workers is the number of goroutines checking cases
	Workers int `json:"workers"`
}

// DefaultConfig returns the settings used when nothing is configured.
//
// Default values:
//   - MinSuccessfulTests: 100
//   - MaxSize: 100
//   - MaxDiscardRatio: 5
//   - Seed: 0 (time based)
//   - Workers: 1
func DefaultConfig() Config {
	return Config{
		MinSuccessfulTests: 100,
		MaxSize:            100,
		MaxDiscardRatio:    5,
		Seed:               0,
		Workers:            1,
	}
}

// Merge copies the non-zero fields of source into c.
func (c *Config) Merge(source *Config) {
	if source.MinSuccessfulTests != 0 {
		c.MinSuccessfulTests = source.MinSuccessfulTests
	}

	if source.MaxSize != 0 {
		c.MaxSize = source.MaxSize
	}

	if source.MaxDiscardRatio != 0 {
		c.MaxDiscardRatio = source.MaxDiscardRatio
	}

	if source.Seed != 0 {
		c.Seed = source.Seed
	}

	if source.Workers != 0 {
		c.Workers = source.Workers
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.MinSuccessfulTests <= 0:
		return fmt.Errorf("%w: min_successful_tests must be positive, got %d", ErrInvalidConfig, c.MinSuccessfulTests)
	case c.MaxSize < 0:
		return fmt.Errorf("%w: max_size must not be negative, got %d", ErrInvalidConfig, c.MaxSize)
	case c.MaxDiscardRatio < 0:
		return fmt.Errorf("%w: max_discard_ratio must not be negative, got %v", ErrInvalidConfig, c.MaxDiscardRatio)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Parameters converts the config into gopter test parameters.
func (c Config) Parameters() *gopter.TestParameters {
	var params *gopter.TestParameters
	if c.Seed != 0 {
		params = gopter.DefaultTestParametersWithSeed(c.Seed)
	} else {
		params = gopter.DefaultTestParameters()
	}
	params.MinSuccessfulTests = c.MinSuccessfulTests
	params.MaxSize = c.MaxSize
	params.MaxDiscardRatio = c.MaxDiscardRatio
	params.Workers = c.Workers
	return params
}

// LoadConfig decodes a JSON config from r, merges it over DefaultConfig, and validates it.
func LoadConfig(r io.Reader) (Config, error) {
	var source Config
	if err := json.NewDecoder(r).Decode(&source); err != nil {
		return Config{}, fmt.Errorf("decode law check config: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Merge(&source)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
