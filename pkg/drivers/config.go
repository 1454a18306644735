package drivers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of Options.
type Config struct {
	Variant            Variant  `yaml:"variant,omitempty"`
	Operators          *string  `yaml:"operators,omitempty"`
	RequireColumnLabel *bool    `yaml:"require_column_label,omitempty"`
	AdjacentAnchor     Anchor   `yaml:"adjacent_anchor,omitempty"`
	AggregateFunctions []string `yaml:"aggregate_functions,omitempty"`
	Where              string   `yaml:"where,omitempty"`
	Parallel           bool     `yaml:"parallel,omitempty"`
}

// ParseConfig decodes a YAML policy and applies it over DefaultOptions.
func ParseConfig(data []byte) (Options, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	opts := DefaultOptions()
	if cfg.Variant != "" {
		opts.Variant = cfg.Variant
	}
	opts.Operators = cfg.Operators
	opts.RequireColumnLabel = cfg.RequireColumnLabel
	opts.AdjacentAnchor = cfg.AdjacentAnchor
	opts.AggregateFunctions = cfg.AggregateFunctions
	opts.Filter = cfg.Where
	opts.Parallel = cfg.Parallel

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// LoadConfig reads a YAML policy file.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}
	opts, err := ParseConfig(data)
	if err != nil {
		return Options{}, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}
