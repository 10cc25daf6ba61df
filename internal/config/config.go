// Package config provides configuration management for the DSim tools.
// It merges configuration from multiple sources with proper precedence.
//
// Configuration precedence (highest to lowest):
//  1. Command-line arguments
//  2. Environment variables (DSIM_ prefix)
//  3. YAML configuration file
//  4. Default values
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/deqp-tools/dsim/internal/constants"
	"github.com/deqp-tools/dsim/internal/errors"
)

const (
	// DefaultLogLevel specifies the default log level (obviously)
	DefaultLogLevel string = "info"
)

// Common holds the configuration shared by all DSim binaries. It is
// populated once by Setup and read-only afterwards.
var Common *CommonConfig

// CommonConfig carries the settings every DSim tool understands.
type CommonConfig struct {
	// LogLevel controls stderr log verbosity.
	LogLevel string `yaml:"logLevel"`

	// NoColor disables ANSI colors in log output.
	NoColor bool `yaml:"noColor"`

	// InactivityTimeout kills a test binary that produced no result for
	// this long. Only used by drun.
	InactivityTimeout time.Duration `yaml:"inactivityTimeout"`

	// MaxFailures aborts a run once this many tests failed. Zero means
	// no limit. Only used by drun.
	MaxFailures int `yaml:"maxFailures"`
}

func newDefaultCommonConfig() *CommonConfig {
	return &CommonConfig{
		LogLevel:          DefaultLogLevel,
		NoColor:           false,
		InactivityTimeout: constants.DefaultInactivityTimeout,
		MaxFailures:       constants.DefaultMaxFailures,
	}
}

// Setup initializes the DSim configuration from all sources and makes the
// result available via the Common global. It is called once per process,
// right after flag parsing.
func Setup(args *Args) error {
	c := newDefaultCommonConfig()

	if err := c.parseFile(args.ConfigFile); err != nil {
		return err
	}
	c.applyEnv()
	c.applyArgs(args)

	Common = c
	return nil
}

// parseFile merges a YAML config file into c. A missing file is only an
// error when it was requested explicitly.
func (c *CommonConfig) parseFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(errors.ErrFileAccess, "config file %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "config file %s: %v", path, err)
	}
	return nil
}

func (c *CommonConfig) applyArgs(args *Args) {
	if args.LogLevel != "" {
		c.LogLevel = args.LogLevel
	}
	if args.NoColor {
		c.NoColor = true
	}
	if args.Timeout > 0 {
		c.InactivityTimeout = args.Timeout
	}
	if args.MaxFailures >= 0 {
		c.MaxFailures = args.MaxFailures
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/dsim/dsim.yaml"
}
