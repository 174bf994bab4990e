// Package main is the entry point for the taskpath CLI.
package main

import (
	"fmt"
	"os"

	"taskpath/internal/app"
	"taskpath/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}
