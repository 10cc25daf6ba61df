package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names understood by all DSim binaries. They rank
// between config file and command-line flags.
const (
	envLogLevel    = "DSIM_LOG_LEVEL"
	envNoColor     = "DSIM_NO_COLOR"
	envTimeout     = "DSIM_TIMEOUT"
	envMaxFailures = "DSIM_MAX_FAILURES"
)

func (c *CommonConfig) applyEnv() {
	if v, ok := os.LookupEnv(envLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(envNoColor); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NoColor = b
		}
	}
	if v, ok := os.LookupEnv(envTimeout); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.InactivityTimeout = d
		}
	}
	if v, ok := os.LookupEnv(envMaxFailures); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxFailures = n
		}
	}
}
