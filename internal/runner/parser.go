package runner

import (
	"bytes"
	"time"

	"github.com/deqp-tools/dsim/internal/errors"
	"github.com/deqp-tools/dsim/internal/io/pool"
	"github.com/deqp-tools/dsim/internal/protocol"
)

type openTest struct {
	name  string
	start time.Time
}

// parser is the stdout state machine. Lines are fed one at a time; a
// TestEvent is returned whenever a line completes a test.
type parser struct {
	current *openTest

	// stdout buffers the output attributed to the current test, or the
	// trailer text once the done marker has been seen. Pooled, since a
	// long run creates one burst of buffered output per test.
	stdout *bytes.Buffer

	testsDone bool
	testsRun  bool

	// err records the first parse error; the stream keeps being consumed.
	err error
}

func newParser() parser {
	return parser{stdout: pool.BytesBuffer.Get().(*bytes.Buffer)}
}

// release returns the stdout buffer to the pool. The parser must not be
// fed after release.
func (p *parser) release() {
	if p.stdout != nil {
		pool.RecycleBytesBuffer(p.stdout)
		p.stdout = nil
	}
}

// feed consumes one stdout line. Result lines are matched before case
// headers since headers never start with the result indent.
func (p *parser) feed(line string, now time.Time) *TestEvent {
	if p.testsDone {
		p.stdout.WriteString(line)
		p.stdout.WriteByte('\n')
		return nil
	}

	if variant, detail, ok := protocol.ParseResult(line); ok {
		p.stdout.WriteString(line)
		p.stdout.WriteByte('\n')

		if p.current == nil {
			if p.err == nil {
				p.err = errors.Wrap(errors.ErrParseFailed,
					"test result appeared outside of a test")
			}
			return nil
		}

		t := p.current
		p.current = nil
		return &TestEvent{
			Name:     t.name,
			Start:    t.start,
			Duration: now.Sub(t.start),
			Result: Result{
				Variant: variant,
				Detail:  detail,
				Stdout:  p.takeStdout(),
			},
		}
	}

	if name, ok := protocol.ParseCaseHeader(line); ok {
		// A new header while a test is open means the previous test
		// never reported a result.
		var event *TestEvent
		if t := p.current; t != nil {
			event = &TestEvent{
				Name:     t.name,
				Start:    t.start,
				Duration: now.Sub(t.start),
				Result: Result{
					Variant: protocol.ResultInternalError,
					Stdout:  p.takeStdout(),
				},
			}
		}

		p.stdout.Reset()
		p.stdout.WriteString(line)
		p.stdout.WriteByte('\n')
		p.current = &openTest{name: name, start: now}
		p.testsRun = true
		return event
	}

	p.stdout.WriteString(line)
	p.stdout.WriteByte('\n')
	if line == protocol.DoneMarker {
		p.testsDone = true
	}
	return nil
}

// finish closes a test left open at stream end. timedOut selects the
// Timeout variant over Crash; stderr is attached since it cannot be
// attributed to any other test anymore.
func (p *parser) finish(timedOut bool, stderr string, now time.Time) *TestEvent {
	t := p.current
	if t == nil {
		return nil
	}
	p.current = nil

	variant := protocol.ResultCrash
	if timedOut {
		variant = protocol.ResultTimeout
	}
	return &TestEvent{
		Name:     t.name,
		Start:    t.start,
		Duration: now.Sub(t.start),
		Result: Result{
			Variant: variant,
			Stdout:  p.takeStdout(),
			Stderr:  stderr,
		},
	}
}

func (p *parser) takeStdout() string {
	s := p.stdout.String()
	p.stdout.Reset()
	return s
}
