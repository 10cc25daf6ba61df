// Package constants centralizes tunables shared between packages.
package constants

import "time"

// Buffer size constants in bytes
const (
	// LineBufferInitialCapacity is the initial capacity for line buffers (4KB)
	LineBufferInitialCapacity = 4096

	// ReadBufferSize is the size of read buffers (64KB)
	ReadBufferSize = 64 * 1024

	// MaxLineLength is the longest test case line the scanner accepts (1MB)
	MaxLineLength = 1024 * 1024
)

// Defaults for the drun runner
const (
	// DefaultInactivityTimeout kills the test binary when no test result
	// has been observed for this long.
	DefaultInactivityTimeout = 10 * time.Second

	// DefaultMaxFailures aborts a run after this many failed tests.
	DefaultMaxFailures = 20
)

// Defaults for the dsample tool
const (
	// DefaultSampleCount is how many test cases dsample prints.
	DefaultSampleCount = 20
)
