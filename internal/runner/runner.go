package runner

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deqp-tools/dsim/internal/constants"
	"github.com/deqp-tools/dsim/internal/errors"
	"github.com/deqp-tools/dsim/internal/protocol"
)

// Options configures a test run.
type Options struct {
	// Args is the full argument vector; Args[0] is the test binary.
	Args []string

	// Env holds additional environment entries in "key=value" form,
	// appended to the current environment.
	Env []string

	// Dir is the working directory for the test binary. Empty means
	// the current directory.
	Dir string

	// InactivityTimeout kills the test binary when no test result has
	// been observed for this long. Zero disables the timeout.
	InactivityTimeout time.Duration
}

// Runner executes one test binary invocation and streams events.
type Runner struct {
	opts   Options
	logger *slog.Logger
}

// New creates a runner for the given options.
func New(opts Options, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{opts: opts, logger: logger}
}

// Start spawns the test binary and returns a stream of events. The stream
// ends with exactly one FinishedEvent; its Err field is set whenever one or
// more requested tests may not have run. Canceling the context kills the
// test binary.
func (r *Runner) Start(ctx context.Context) <-chan Event {
	events := make(chan Event)
	go func() {
		defer close(events)
		r.run(ctx, events)
	}()
	return events
}

type readLine struct {
	text string
	err  error
}

func (r *Runner) run(ctx context.Context, events chan<- Event) {
	if len(r.opts.Args) == 0 {
		events <- FinishedEvent{Err: errors.Wrap(errors.ErrSpawnFailed, "empty argument vector")}
		return
	}

	r.logger.Debug("starting test binary", "args", r.opts.Args)

	cmd := exec.Command(r.opts.Args[0], r.opts.Args[1:]...)
	cmd.Dir = r.opts.Dir
	if len(r.opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.opts.Env...)
	}
	setupProcessGroup(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		events <- FinishedEvent{Err: errors.Wrapf(errors.ErrSpawnFailed, "stdout pipe: %v", err)}
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		events <- FinishedEvent{Err: errors.Wrapf(errors.ErrSpawnFailed, "stderr pipe: %v", err)}
		return
	}

	if err := cmd.Start(); err != nil {
		events <- FinishedEvent{Err: errors.Wrapf(errors.ErrSpawnFailed, "%s: %v", r.opts.Args[0], err)}
		return
	}
	pid := cmd.Process.Pid
	logger := r.logger.With("pid", pid)
	events <- LaunchEvent{PID: pid}

	stdoutCh := make(chan readLine)
	stderrCh := make(chan readLine)
	var readers errgroup.Group
	readers.Go(func() error { return scanLines(stdout, stdoutCh) })
	readers.Go(func() error { return scanLines(stderr, stderrCh) })

	// Pipes must be drained before Wait; the reader goroutines close
	// their channels at EOF, then the wait result arrives here.
	waitCh := make(chan error, 1)
	go func() {
		readErr := readers.Wait()
		waitErr := cmd.Wait()
		if waitErr == nil {
			waitErr = readErr
		}
		waitCh <- waitErr
	}()

	timer := newInactivityTimer(r.opts.InactivityTimeout)
	defer timer.stop()

	p := newParser()
	defer p.release()

	var (
		stderrBuf strings.Builder
		crash     error
		timedOut  bool
		running   = true
		ctxCh     = ctx.Done()
	)
	for stdoutCh != nil || stderrCh != nil || running {
		select {
		case line, ok := <-stdoutCh:
			if !ok {
				stdoutCh = nil
				continue
			}
			if line.err != nil {
				logger.Debug("failed to read stdout", "error", line.err)
				if crash == nil {
					crash = line.err
				}
				continue
			}
			if event := p.feed(line.text, time.Now()); event != nil {
				if !timedOut {
					timer.rearm()
				}
				events <- *event
			}

		case line, ok := <-stderrCh:
			if !ok {
				stderrCh = nil
				continue
			}
			if line.err != nil {
				logger.Debug("failed to read stderr", "error", line.err)
				if crash == nil {
					crash = line.err
				}
				continue
			}
			if strings.Contains(line.text, protocol.FatalErrorPrefix) {
				logger.Warn("test binary reported fatal error", "line", line.text)
				if crash == nil {
					crash = errors.Wrap(errors.ErrFatalError, line.text)
				}
			}
			stderrBuf.WriteString(line.text)
			stderrBuf.WriteByte('\n')

		case err := <-waitCh:
			running = false
			if err != nil && crash == nil && !timedOut {
				// Record the crash but keep draining the line channels.
				// There may be buffered results we have not seen yet, or
				// a more informative fatal error on stderr.
				crash = errors.Wrapf(errors.ErrCrash, "%v", err)
			}

		case <-timer.ch():
			logger.Debug("detected inactivity timeout")
			timedOut = true
			// Timeouts override other kinds of errors, so that hangs
			// do not get misreported as ordinary crashes.
			crash = errors.Wrapf(errors.ErrTimeout,
				"no test result for %v", r.opts.InactivityTimeout)
			if err := killProcess(cmd); err != nil {
				logger.Error("failed to kill test binary after timeout", "error", err)
			}

		case <-ctxCh:
			ctxCh = nil
			if running {
				if err := killProcess(cmd); err != nil {
					logger.Error("failed to kill test binary", "error", err)
				}
			}
			if crash == nil {
				crash = ctx.Err()
			}
		}
	}

	if event := p.finish(timedOut, stderrBuf.String(), time.Now()); event != nil {
		if !timedOut {
			// The last test never reported a result; the remaining
			// tests certainly did not run.
			crash = errors.Wrapf(errors.ErrIncomplete, "test %s did not report a result", event.Name)
		}
		events <- *event
	}

	if crash == nil {
		crash = p.err
	}
	if crash == nil {
		if !p.testsRun {
			crash = errors.ErrNoTestsRun
		} else if !p.testsDone {
			crash = errors.ErrIncomplete
		}
	}

	events <- FinishedEvent{
		Err:    crash,
		Stdout: p.takeStdout(),
		Stderr: stderrBuf.String(),
	}
}

func scanLines(r io.Reader, ch chan<- readLine) error {
	defer close(ch)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, constants.ReadBufferSize), constants.MaxLineLength)
	for scanner.Scan() {
		ch <- readLine{text: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		err = errors.Wrapf(errors.ErrReadFailed, "%v", err)
		ch <- readLine{err: err}
		return err
	}
	return nil
}

// inactivityTimer wraps time.Timer so a zero timeout means "never fires".
type inactivityTimer struct {
	timer   *time.Timer
	timeout time.Duration
}

func newInactivityTimer(timeout time.Duration) *inactivityTimer {
	t := &inactivityTimer{timeout: timeout}
	if timeout > 0 {
		t.timer = time.NewTimer(timeout)
	}
	return t
}

func (t *inactivityTimer) ch() <-chan time.Time {
	if t.timer == nil {
		return nil
	}
	return t.timer.C
}

func (t *inactivityTimer) rearm() {
	if t.timer == nil {
		return
	}
	if !t.timer.Stop() {
		select {
		case <-t.timer.C:
		default:
		}
	}
	t.timer.Reset(t.timeout)
}

func (t *inactivityTimer) stop() {
	if t.timer != nil {
		t.timer.Stop()
	}
}
