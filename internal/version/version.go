// Package version provides version information and display utilities for DSim.
package version

import (
	"fmt"
	"os"
)

const (
	// Name of DSim.
	Name string = "DSim"
	// Version of DSim.
	Version string = "0.2.0-develop"
	// Additional information for DSim
	Additional string = "dEQP caselist tooling"
)

// String returns a plain text representation of the DSim version.
func String() string {
	return fmt.Sprintf("%s %v - %s", Name, Version, Additional)
}

// Print the version.
func Print() {
	fmt.Println(String())
}

// PrintAndExit prints the program version and exits.
func PrintAndExit() {
	Print()
	os.Exit(0)
}
