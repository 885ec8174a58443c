package seedgen

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/gelora/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "seed_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the seed generator.
func ShowHelp() {
	os.Stdout.WriteString(`Gelora League Seed Generator
============================

Generates a synthetic league: a roster JSON, a wide statistics CSV with
scraper-style name noise, and optionally live batch submissions.

Usage:
  go run cmd/seed/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -teams int
        Number of teams to generate (default 18)
  -players int
        Players per team (default 25)
  -roster string
        Output file for the roster JSON (default "data/roster.json")
  -stats string
        Output file for the statistics CSV (default "data/stats.csv")
  -submit
        Submit generated batches to the running service
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for generator output (default: seed_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Write roster and statistics files with defaults
  go run cmd/seed/main.go

  # Generate a small league and submit it to a local service
  go run cmd/seed/main.go -teams 4 -players 11 -submit

  # Custom output locations
  go run cmd/seed/main.go -roster /tmp/roster.json -stats /tmp/stats.csv
`)
}
