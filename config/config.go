// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// FibConfig is settings for the rabbit recurrences
type FibConfig struct {
	// the litter size, in pairs, of each mature pair
	Litter int `mapstructure:"litter"`

	// the number of months a rabbit lives. 0 is immortal
	Months int `mapstructure:"months"`

	// the largest generation a user can ask for
	MaxGeneration int `mapstructure:"max-generation"`

	// the largest litter size a user can ask for
	MaxLitter int `mapstructure:"max-litter"`

	// the longest lifespan, in months, a user can ask for
	MaxMonths int `mapstructure:"max-months"`

	// the number of trailing generations to list in a generation table
	Window int `mapstructure:"window"`
}

// TranslateConfig is settings for translating sequences to proteins
type TranslateConfig struct {
	// whether to end translation at the first stop codon
	Stop bool `mapstructure:"stop"`

	// the offset of the first codon
	Shift int `mapstructure:"shift"`
}

// OverlapConfig is settings for overlap graphs
type OverlapConfig struct {
	// the number of bases that must overlap between two sequences
	Length int `mapstructure:"length"`
}

// GraphConfig is settings for writing overlap graphs
type GraphConfig struct {
	// the name of the DOT digraph
	Name string `mapstructure:"name"`

	// the path to write the DOT file to. Empty writes to stdout
	Out string `mapstructure:"out"`
}

// TableConfig is settings for tables written to the terminal
type TableConfig struct {
	// the border style: rounded, normal or ascii
	Style string `mapstructure:"style"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file and those
// available from the command line
type Config struct {
	// the minimum level of logs written to stderr
	LogLevel string `mapstructure:"log-level"`

	// the directory that FASTA files are written to
	OutDir string `mapstructure:"out-dir"`

	// Fib settings
	Fib FibConfig `mapstructure:"fib"`

	// Translation settings
	Translate TranslateConfig `mapstructure:"translate"`

	// Overlap settings
	Overlap OverlapConfig `mapstructure:"overlap"`

	// Graph output settings
	Graph GraphConfig `mapstructure:"graph"`

	// Table output settings
	Table TableConfig `mapstructure:"table"`
}

// SetDefaults sets the default value of every setting on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("out-dir", "temp")

	v.SetDefault("fib.litter", 1)
	v.SetDefault("fib.months", 0)
	v.SetDefault("fib.max-generation", 10000)
	v.SetDefault("fib.max-litter", 10)
	v.SetDefault("fib.max-months", 10000)
	v.SetDefault("fib.window", 10)

	v.SetDefault("translate.stop", false)
	v.SetDefault("translate.shift", 0)

	v.SetDefault("overlap.length", 3)

	v.SetDefault("graph.name", "overlaps")
	v.SetDefault("graph.out", "")

	v.SetDefault("table.style", "rounded")
}

// New returns a new Config struct populated by Viper settings (from the
// settings file, environment and command line)
func New(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %v", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate checks the settings that the commands depend on
func (c *Config) validate() error {
	if c.Fib.MaxLitter < 1 {
		return fmt.Errorf("fib.max-litter must be at least 1, got %d", c.Fib.MaxLitter)
	}
	if c.Fib.MaxGeneration < 1 {
		return fmt.Errorf("fib.max-generation must be at least 1, got %d", c.Fib.MaxGeneration)
	}
	if c.Fib.MaxMonths < 1 {
		return fmt.Errorf("fib.max-months must be at least 1, got %d", c.Fib.MaxMonths)
	}
	if c.Fib.Window < 1 {
		return fmt.Errorf("fib.window must be at least 1, got %d", c.Fib.Window)
	}

	switch c.Table.Style {
	case "rounded", "normal", "ascii":
	default:
		return fmt.Errorf("unknown table.style %q: use rounded, normal or ascii", c.Table.Style)
	}
	return nil
}

// CheckFib returns an error if a generation count or litter size is outside
// of the configured bounds
func (c *Config) CheckFib(generation, litter, months int) error {
	if generation < 0 || generation > c.Fib.MaxGeneration {
		return fmt.Errorf("generation must be between 0 and %d, got %d", c.Fib.MaxGeneration, generation)
	}
	if litter < 1 || litter > c.Fib.MaxLitter {
		return fmt.Errorf("litter size must be between 1 and %d, got %d", c.Fib.MaxLitter, litter)
	}
	if months < 0 || months > c.Fib.MaxMonths {
		return fmt.Errorf("months must be between 0 and %d, got %d", c.Fib.MaxMonths, months)
	}
	return nil
}
