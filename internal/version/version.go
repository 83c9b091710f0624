// Package version provides version information and display utilities
// for the NJStream command line tools.
package version

import (
	"fmt"
	"os"
)

const (
	// Name of the toolkit.
	Name string = "NJStream"
	// Version of the toolkit.
	Version string = "0.9.0-develop"
	// Additional information for NJStream.
	Additional string = "One JSON per line!"
)

// String returns a plain text representation of the version.
func String() string {
	return fmt.Sprintf("%s %s %s", Name, Version, Additional)
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
