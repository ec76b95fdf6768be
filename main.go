// Package main is the entry point for the bzquery CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/danielolaszy/bzquery/cmd"
	"github.com/danielolaszy/bzquery/internal/logging"
)

// main executes the root command and exits non-zero if it fails.
func main() {
	logging.Debug("starting bzquery", "version", cmd.Version, "log_level", logging.LevelFromEnv())

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
