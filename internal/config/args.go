package config

import (
	"time"

	"github.com/deqp-tools/dsim/internal/omode"
)

// Args holds the parsed command-line arguments of a DSim binary. Zero
// values mean "not given" so that config file and environment settings are
// not clobbered by unset flags.
type Args struct {
	// ConfigFile is an explicit config file path (-cfg).
	ConfigFile string
	// LogLevel overrides the configured log level (-logLevel).
	LogLevel string
	// NoColor disables colored log output (-noColor).
	NoColor bool
	// Timeout overrides the configured inactivity timeout (-timeout).
	Timeout time.Duration
	// MaxFailures overrides the configured failure limit (-maxFailures).
	// Negative means "not given".
	MaxFailures int
	// Mode is the selected output mode, computed once from the
	// positional argument count.
	Mode omode.Mode
}
