// Package main is the entry point for the quarry CLI.
package main

import (
	"os"

	"quarry/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
