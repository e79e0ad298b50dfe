// Package main is the entry point for the ride-pricing CLI.
package main

import (
	"os"

	"ride-pricing/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
