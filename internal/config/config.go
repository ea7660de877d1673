// Package config loads the aoc command line configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// InputDirEnv overrides InputDir when set.
const InputDirEnv = "AOC_INPUT_DIR"

// Config holds the aoc configuration.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// InputDir holds the puzzle inputs, named day01.txt ... day25.txt.
	InputDir string `yaml:"input_dir"`

	// Days holds per-day integer parameters, e.g. {22: {face_size: 50}}.
	Days map[int]map[string]int `yaml:"days"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		InputDir: "inputs",
		Days:     map[int]map[string]int{},
	}
}

// Load reads the configuration from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, errors.Wrap(err, "failed to read config")
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "failed to write config")
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(InputDirEnv); dir != "" {
		c.InputDir = dir
	}
}

// Validate checks the log level and the day numbers.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	for day := range c.Days {
		if day < 1 || day > 25 {
			return errors.Errorf("config: day %d out of range 1..25", day)
		}
	}
	return nil
}

// Level parses LogLevel; an empty level means info.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, errors.Wrapf(err, "config: log_level %q", c.LogLevel)
	}
	return lvl, nil
}

// InputPath returns the default input file of day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}

// Params returns the parameters configured for day, never nil.
func (c *Config) Params(day int) map[string]int {
	if p, ok := c.Days[day]; ok && p != nil {
		return p
	}
	return map[string]int{}
}
