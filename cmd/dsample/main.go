// Package main provides the DSample command-line tool. DSample loads a
// caselist export, builds a weighted sampler over the test suite and prints
// a random selection of fully qualified test names. A fixed seed makes the
// selection reproducible.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/deqp-tools/dsim/internal/caselist"
	"github.com/deqp-tools/dsim/internal/config"
	"github.com/deqp-tools/dsim/internal/constants"
	"github.com/deqp-tools/dsim/internal/dlog"
	"github.com/deqp-tools/dsim/internal/suite"
	"github.com/deqp-tools/dsim/internal/version"
)

func main() {
	args := config.Args{MaxFailures: -1}
	var displayVersion bool
	var count int
	var seed int64

	flag.BoolVar(&args.NoColor, "noColor", false, "Disable ANSII terminal colors")
	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.StringVar(&args.ConfigFile, "cfg", "", "Config file path")
	flag.StringVar(&args.LogLevel, "logLevel", "", "Log level")
	flag.IntVar(&count, "n", constants.DefaultSampleCount, "Number of test cases to sample")
	flag.Int64Var(&seed, "seed", 0, "Random seed, 0 picks one from the clock")

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
	if len(positional) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <caselist-file>\n", os.Args[0])
		os.Exit(2)
	}

	s, err := caselist.LoadSuite(positional[0])
	if err != nil {
		logger.Error("failed to load caselist", "error", err)
		os.Exit(1)
	}
	logger.Debug("loaded caselist", "tests", s.Len())

	sampler, err := suite.NewSampler(s)
	if err != nil {
		logger.Error("failed to build sampler", "error", err)
		os.Exit(1)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < count; i++ {
		fmt.Println(s.Name(sampler.Sample(s, rng)))
	}
}
