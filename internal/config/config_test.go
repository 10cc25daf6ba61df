package config

import (
	"testing"
	"time"

	"github.com/deqp-tools/dsim/internal/constants"
	"github.com/deqp-tools/dsim/internal/errors"
	"github.com/deqp-tools/dsim/internal/testutil"
)

func TestSetupDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	args := Args{MaxFailures: -1}
	testutil.AssertNoError(t, Setup(&args))

	testutil.AssertEqual(t, DefaultLogLevel, Common.LogLevel)
	testutil.AssertEqual(t, false, Common.NoColor)
	testutil.AssertEqual(t, constants.DefaultInactivityTimeout, Common.InactivityTimeout)
	testutil.AssertEqual(t, constants.DefaultMaxFailures, Common.MaxFailures)
}

func TestSetupConfigFile(t *testing.T) {
	path := testutil.TempFile(t, "logLevel: debug\nnoColor: true\ninactivityTimeout: 30s\n")

	args := Args{ConfigFile: path, MaxFailures: -1}
	testutil.AssertNoError(t, Setup(&args))

	testutil.AssertEqual(t, "debug", Common.LogLevel)
	testutil.AssertEqual(t, true, Common.NoColor)
	testutil.AssertEqual(t, 30*time.Second, Common.InactivityTimeout)
}

func TestSetupMissingConfigFile(t *testing.T) {
	args := Args{ConfigFile: "/nonexistent/dsim.yaml", MaxFailures: -1}
	err := Setup(&args)
	if !errors.Is(err, errors.ErrFileAccess) {
		t.Errorf("expected ErrFileAccess, got %v", err)
	}
}

func TestSetupInvalidConfigFile(t *testing.T) {
	path := testutil.TempFile(t, "logLevel: [not, a, string\n")

	args := Args{ConfigFile: path, MaxFailures: -1}
	err := Setup(&args)
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSetupArgsOverrideFile(t *testing.T) {
	path := testutil.TempFile(t, "logLevel: debug\ninactivityTimeout: 30s\nmaxFailures: 5\n")

	args := Args{
		ConfigFile:  path,
		LogLevel:    "error",
		Timeout:     time.Minute,
		MaxFailures: 9,
	}
	testutil.AssertNoError(t, Setup(&args))

	testutil.AssertEqual(t, "error", Common.LogLevel)
	testutil.AssertEqual(t, time.Minute, Common.InactivityTimeout)
	testutil.AssertEqual(t, 9, Common.MaxFailures)
}

func TestSetupEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DSIM_LOG_LEVEL", "warn")
	t.Setenv("DSIM_NO_COLOR", "true")
	t.Setenv("DSIM_TIMEOUT", "90s")
	t.Setenv("DSIM_MAX_FAILURES", "3")

	args := Args{MaxFailures: -1}
	testutil.AssertNoError(t, Setup(&args))

	testutil.AssertEqual(t, "warn", Common.LogLevel)
	testutil.AssertEqual(t, true, Common.NoColor)
	testutil.AssertEqual(t, 90*time.Second, Common.InactivityTimeout)
	testutil.AssertEqual(t, 3, Common.MaxFailures)
}

func TestSetupArgsOverrideEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DSIM_LOG_LEVEL", "warn")

	args := Args{LogLevel: "debug", MaxFailures: -1}
	testutil.AssertNoError(t, Setup(&args))

	testutil.AssertEqual(t, "debug", Common.LogLevel)
}

func TestSetupIgnoresBadEnvValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DSIM_TIMEOUT", "not-a-duration")
	t.Setenv("DSIM_MAX_FAILURES", "many")

	args := Args{MaxFailures: -1}
	testutil.AssertNoError(t, Setup(&args))

	testutil.AssertEqual(t, constants.DefaultInactivityTimeout, Common.InactivityTimeout)
	testutil.AssertEqual(t, constants.DefaultMaxFailures, Common.MaxFailures)
}

func TestMaxFailuresZeroMeansNoLimit(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	args := Args{MaxFailures: 0}
	testutil.AssertNoError(t, Setup(&args))

	testutil.AssertEqual(t, 0, Common.MaxFailures)
}
