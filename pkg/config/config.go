// pkg/config/config.go

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// KnownDemos lists the demos the runner can execute, in run order.
var KnownDemos = []string{"counter", "stateful", "loop", "hoisting", "sequence", "pipeline"}

// Config holds the demo runner configuration.
type Config struct {
	// Environment (development, production)
	Environment string `mapstructure:"environment"`

	Log LogConfig `mapstructure:"log"`

	Counter struct {
		Start int `mapstructure:"start"`
	} `mapstructure:"counter"`

	Stateful struct {
		Initial int `mapstructure:"initial"`
	} `mapstructure:"stateful"`

	// Demos to run; empty runs none.
	Demos []string `mapstructure:"demos"`
	// Scenarios names built-in hoisting scenarios; empty means all of them.
	Scenarios []string `mapstructure:"scenarios"`
	// Programs lists extra YAML program models to check.
	Programs []string `mapstructure:"programs"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Load reads configuration from file, or from semantics.yaml in the
// working directory when file is empty, then applies SEMANTICS_*
// environment overrides. A missing default file is not an error.
func Load(file string) (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("counter.start", 20)
	v.SetDefault("stateful.initial", 5)
	v.SetDefault("demos", KnownDemos)
	v.SetDefault("scenarios", []string{})
	v.SetDefault("programs", []string{})

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("semantics")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// SEMANTICS_COUNTER_START -> counter.start
	v.SetEnvPrefix("SEMANTICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects demos the runner does not know.
func (c *Config) Validate() error {
	for _, d := range c.Demos {
		if !slices.Contains(KnownDemos, d) {
			return fmt.Errorf("unknown demo %q (known: %s)", d, strings.Join(KnownDemos, ", "))
		}
	}
	return nil
}

// Enabled reports whether demo is selected.
func (c *Config) Enabled(demo string) bool {
	return slices.Contains(c.Demos, demo)
}
