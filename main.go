// ABOUTME: Entry point for the wayfarer CLI
// ABOUTME: Wires logging and configuration, then dispatches commands

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wayfarerhq/wayfarer-cli/cmd"
	"github.com/wayfarerhq/wayfarer-cli/internal/config"
	"github.com/wayfarerhq/wayfarer-cli/internal/logger"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(2)
	}

	if err := cmd.Execute(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
