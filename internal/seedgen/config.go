package seedgen

import "time"

// Config holds configuration for the league seed generator
type Config struct {
	BaseURL        string        // Base URL of the service
	Teams          int           // Number of teams to generate
	PlayersPerTeam int           // Players per generated team
	Columns        []string      // Statistic columns to generate
	RosterFile     string        // Output file for the roster JSON
	StatsFile      string        // Output file for the statistics CSV
	Submit         bool          // Submit generated batches to the service
	Timeout        time.Duration // HTTP request timeout
	LogFile        string        // Log file for generator output
	Verbose        bool          // Enable verbose logging
}

// AckResponse represents the response from batch submission
type AckResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
	BatchID   string `json:"batch_id"`
}

// Stats holds generation statistics
type Stats struct {
	TeamsGenerated    int
	PlayersGenerated  int
	RecordsGenerated  int
	BatchesSubmitted  int
	BatchesSuccessful int
	BatchesDuplicate  int
	BatchesFailed     int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
