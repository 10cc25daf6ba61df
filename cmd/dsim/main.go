// Package main provides the DSim command-line tool, a dEQP-compatible test
// run simulator. DSim reads a caselist file, sorts the cases numerically and
// prints them either as a caselist export (label mode) or as the output of a
// test run where every case passes (check mode).
//
// DSim exists to exercise tooling that consumes dEQP output, such as drun,
// without needing a GPU or a real Vulkan CTS build: its check-mode output is
// line-for-line what a fully passing deqp-vk run prints.
//
// Mode selection follows the fake-deqp convention: exactly two positional
// arguments select label mode, any other count selects check mode. The
// second argument's value is ignored, only its presence matters.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/deqp-tools/dsim/internal/caselist"
	"github.com/deqp-tools/dsim/internal/config"
	"github.com/deqp-tools/dsim/internal/dlog"
	"github.com/deqp-tools/dsim/internal/omode"
	"github.com/deqp-tools/dsim/internal/version"
)

func main() {
	args := config.Args{MaxFailures: -1}
	var displayVersion bool

	flag.BoolVar(&args.NoColor, "noColor", false, "Disable ANSII terminal colors")
	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.StringVar(&args.ConfigFile, "cfg", "", "Config file path")
	flag.StringVar(&args.LogLevel, "logLevel", "", "Log level")

	flag.Parse()

	if displayVersion {
		version.PrintAndExit()
	}

	if err := config.Setup(&args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logger := dlog.Setup(config.Common.LogLevel, config.Common.NoColor)

	positional := flag.Args()
	if len(positional) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <caselist-file> [<label-arg>]\n", os.Args[0])
		os.Exit(2)
	}

	args.Mode = omode.Select(len(positional))
	logger.Debug("selected output mode", "mode", args.Mode, "argc", len(positional))

	if err := caselist.Simulate(positional[0], args.Mode, os.Stdout); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}
