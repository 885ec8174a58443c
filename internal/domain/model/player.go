// Package model contains domain models passed between layers.
package model

// StatColumns is the fixed list of tracked statistic columns, in the order
// they appear in the merged output table.
var StatColumns = []string{
	"Assist",
	"Ball Recovery",
	"Block",
	"Block Cross",
	"Clearance",
	"Create Chance",
	"Cross",
	"Dribble Success",
	"Foul",
	"Fouled",
	"Free Kick",
	"Goal",
	"Header Won",
	"Intercept",
	"Own Goal",
	"Passing",
	"Penalty Goal",
	"Saves",
	"Shoot Off Target",
	"Shoot On Target",
	"Tackle",
	"Yellow Card",
}

// RosterPlayer is one entry from the authoritative roster source.
// Immutable within a run once loaded.
type RosterPlayer struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	TeamID      int64  `json:"team_id"`
	TeamName    string `json:"team_name"`
	Country     string `json:"country"`
	Age         string `json:"age"`
	Position    string `json:"position"`
	PictureURL  string `json:"picture_url"`
	Appearances string `json:"appearances"`
}

// Key returns the identity key used for downstream joins:
// (fullName or name, teamName).
func (p RosterPlayer) Key() (string, string) {
	if p.FullName != "" {
		return p.FullName, p.TeamName
	}
	return p.Name, p.TeamName
}

// StatRecord is one row per (player-name-as-scraped, statistic-column) pair
// with the team label attached at scrape time. The core never mutates it.
type StatRecord struct {
	PlayerName string `json:"player_name"` // name exactly as scraped
	Team       string `json:"team"`
	Column     string `json:"column"`
	RawValue   string `json:"raw_value"` // may be numeric, empty, or noise
}

// MergedPlayer is the output of the merge: all roster fields plus one
// numeric value per known statistic column. Stats always carries every
// column in StatColumns; unresolved columns hold 0.
type MergedPlayer struct {
	RosterPlayer
	Stats map[string]float64 `json:"stats"`
	// MatchTier names the strongest resolution strategy that succeeded
	// for any column, or "no-match".
	MatchTier string `json:"match_tier"`
}
