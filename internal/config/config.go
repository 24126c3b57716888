package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/zoo/internal/core/observability/log"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config drives the zoo binary.
type Config struct {
	Log LogConfig `json:"log" yaml:"log"`
	// Scenario is the path of a YAML scenario. Empty runs the built-in tour.
	Scenario string `json:"scenario,omitempty" yaml:"scenario,omitempty"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "warn",
			Encoding: "json",
		},
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log: unknown encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}
	return nil
}

// Options converts the section into logger options.
func (c LogConfig) Options() (log.Options, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return log.Options{}, err
	}
	return log.Options{Level: level, Encoding: c.Encoding}, nil
}
