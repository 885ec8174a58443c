package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/gelora/internal/domain/model"
	"github.com/okian/gelora/internal/seedgen"
)

// Default configuration constants.
const (
	defaultTeams          = 18
	defaultPlayersPerTeam = 25
	defaultTimeout        = 30 * time.Second
	defaultRunTimeout     = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		teams      = flag.Int("teams", defaultTeams, "Number of teams to generate")
		players    = flag.Int("players", defaultPlayersPerTeam, "Players per team")
		rosterFile = flag.String("roster", "data/roster.json", "Output file for the roster JSON")
		statsFile  = flag.String("stats", "data/stats.csv", "Output file for the statistics CSV")
		submit     = flag.Bool("submit", false, "Submit generated batches to the running service")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile    = flag.String("log", "", "Log file for generator output (default: seed_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		seedgen.ShowHelp()
		return
	}

	// Setup logging
	if err := seedgen.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	// Create generator configuration
	config := &seedgen.Config{
		BaseURL:        *baseURL,
		Teams:          *teams,
		PlayersPerTeam: *players,
		Columns:        model.StatColumns,
		RosterFile:     *rosterFile,
		StatsFile:      *statsFile,
		Submit:         *submit,
		Timeout:        *timeout,
		LogFile:        *logFile,
		Verbose:        *verbose,
	}

	// Run the generator
	if err := seedgen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Seed generation failed: " + err.Error() + "\n")
		return
	}
}
