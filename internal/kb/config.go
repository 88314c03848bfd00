// Package kb loads knowledge bases described in YAML and checks their
// queries with the logic engine.
package kb

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the file written by WriteSample when no path is given.
const DefaultConfigPath = ".entail.yaml"

// DefaultMaxSymbols bounds enumeration when a config does not set a limit.
const DefaultMaxSymbols = 20

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config describes a knowledge base and the queries to check against it.
// Each knowledge entry is a formula; together they are conjoined.
type Config struct {
	Name       string   `yaml:"name" json:"name" validate:"required"`
	Knowledge  []string `yaml:"knowledge" json:"knowledge" validate:"omitempty,dive,required"`
	Queries    []string `yaml:"queries" json:"queries" validate:"required,min=1,dive,required"`
	MaxSymbols int      `yaml:"max_symbols,omitempty" json:"max_symbols,omitempty" validate:"gte=0"`
}

// Validate checks the struct constraints of the config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return Decode(data)
}

// Decode parses and validates a YAML configuration.
func Decode(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if config.MaxSymbols == 0 {
		config.MaxSymbols = DefaultMaxSymbols
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Sample returns the knights-and-knaves puzzle used by `entail init`.
// A says "I am both a knight and a knave."
func Sample() Config {
	return Config{
		Name: "knights",
		Knowledge: []string{
			"AKnight ∨ AKnave",
			"¬(AKnight ∧ AKnave)",
			"AKnight => (AKnight ∧ AKnave)",
			"AKnave => ¬(AKnight ∧ AKnave)",
		},
		Queries:    []string{"AKnight", "AKnave"},
		MaxSymbols: DefaultMaxSymbols,
	}
}

// WriteSample writes the sample configuration to path, or to
// DefaultConfigPath when path is empty.
func WriteSample(path string) (string, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	d, err := yaml.Marshal(Sample())
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.Write(d); err != nil {
		return "", err
	}
	return path, nil
}
