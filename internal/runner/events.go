// Package runner spawns a dEQP-compatible test binary and turns its output
// line stream into test events. It understands the grammar defined in the
// protocol package, survives crashes mid-run, and enforces an inactivity
// timeout so a hung device does not stall the run forever.
package runner

import (
	"time"

	"github.com/deqp-tools/dsim/internal/protocol"
)

// Event is one observation from a test run. The concrete types are
// LaunchEvent, TestEvent and FinishedEvent; a run produces at most one
// LaunchEvent first and exactly one FinishedEvent last.
type Event interface {
	isEvent()
}

// LaunchEvent reports that the test process has been spawned successfully.
type LaunchEvent struct {
	PID int
}

// TestEvent reports one test outcome. This includes crashes and timeouts.
type TestEvent struct {
	Name     string
	Start    time.Time
	Duration time.Duration
	Result   Result
}

// FinishedEvent reports that the test process has ended, with or without
// error. Err is always set if one or more requested tests may not have run.
type FinishedEvent struct {
	Err    error
	Stdout string
	Stderr string
}

func (LaunchEvent) isEvent()   {}
func (TestEvent) isEvent()     {}
func (FinishedEvent) isEvent() {}

// Result is the outcome of a single test.
type Result struct {
	Variant protocol.ResultVariant

	// Detail is the parenthesized text after the variant, e.g.
	// "Result image matches reference".
	Detail string

	// Stdout is everything the test printed, including its case header
	// and result line.
	Stdout string

	// Stderr is only filled for the last test of a crashed run, where
	// per-test attribution is impossible.
	Stderr string
}
