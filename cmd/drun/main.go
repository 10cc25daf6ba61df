// Package main provides the DRun command-line tool. DRun spawns a
// dEQP-compatible test binary (deqp-vk, or dsim for dry runs), parses its
// output stream into per-test results and prints a summary.
//
// Key features:
// - Streaming result parsing, results appear as the binary produces them
// - Crash and hang attribution to the test that was running
// - Inactivity timeout that kills a hung test binary
// - Failure limit aborting hopeless runs early
//
// Exit status is non-zero when any test failed or the run itself failed
// (crash, timeout, incomplete output, no tests run).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/deqp-tools/dsim/internal/config"
	"github.com/deqp-tools/dsim/internal/dlog"
	"github.com/deqp-tools/dsim/internal/io/signal"
	"github.com/deqp-tools/dsim/internal/protocol"
	"github.com/deqp-tools/dsim/internal/runner"
	"github.com/deqp-tools/dsim/internal/version"
)

func main() {
	args := config.Args{MaxFailures: -1}
	var displayVersion bool
	var quiet bool

	flag.BoolVar(&args.NoColor, "noColor", false, "Disable ANSII terminal colors")
	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.BoolVar(&quiet, "quiet", false, "Only print failed tests and the summary")
	flag.StringVar(&args.ConfigFile, "cfg", "", "Config file path")
	flag.StringVar(&args.LogLevel, "logLevel", "", "Log level")
	flag.DurationVar(&args.Timeout, "timeout", 0, "Kill the test binary after this much inactivity")
	flag.IntVar(&args.MaxFailures, "maxFailures", -1, "Abort after this many failures, 0 for no limit")

	flag.Parse()

	if displayVersion {
		version.PrintAndExit()
	}

	if err := config.Setup(&args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logger := dlog.Setup(config.Common.LogLevel, config.Common.NoColor)

	argv := flag.Args()
	if len(argv) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <test-binary> [<binary-args>...]\n", os.Args[0])
		os.Exit(2)
	}

	ctx, cancel := signal.WithInterrupt(context.Background())
	defer cancel()

	r := runner.New(runner.Options{
		Args:              argv,
		InactivityTimeout: config.Common.InactivityTimeout,
	}, logger)

	var (
		counts   = make(map[protocol.ResultVariant]int)
		total    int
		failures int
		runErr   error
	)
	for event := range r.Start(ctx) {
		switch e := event.(type) {
		case runner.LaunchEvent:
			logger.Debug("test binary running", "pid", e.PID)

		case runner.TestEvent:
			total++
			counts[e.Result.Variant]++
			failed := e.Result.Variant.Failed()
			if failed {
				failures++
			}
			if failed || !quiet {
				fmt.Printf("%s: %s\n", e.Name, e.Result.Variant)
			}
			if failed && e.Result.Stdout != "" {
				logger.Debug("failed test output", "test", e.Name, "stdout", e.Result.Stdout)
			}
			if config.Common.MaxFailures > 0 && failures >= config.Common.MaxFailures {
				logger.Error("too many failures, aborting run", "failures", failures)
				cancel()
			}

		case runner.FinishedEvent:
			runErr = e.Err
			if e.Stderr != "" {
				logger.Debug("test binary stderr", "stderr", e.Stderr)
			}
		}
	}

	fmt.Printf("%d tests, %d failed\n", total, failures)
	for variant, count := range counts {
		fmt.Printf("  %s: %d\n", variant, count)
	}

	if runErr != nil {
		logger.Error("test run failed", "error", runErr)
	}
	if runErr != nil || failures > 0 {
		os.Exit(1)
	}
}
