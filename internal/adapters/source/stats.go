package source

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/okian/gelora/internal/domain/model"
)

// Fixed positions of the identity columns in the statistics CSV.
const (
	statsPlayerHeader = "Player Name"
	statsTeamHeader   = "Team"
)

// LoadStatsCSV reads a wide statistics table (one row per scraped player,
// one column per metric) and splits it into per-column candidate pools.
// Only columns named in columns are kept. Rows without a player name are
// skipped; cell values stay raw strings for the merge layer to coerce.
func LoadStatsCSV(path string, columns []string) (map[string][]model.StatRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: statistics %q: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: statistics %q: %v", ErrSourceUnavailable, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: statistics %q is empty", ErrMalformedSource, path)
	}

	header := rows[0]
	playerIdx, teamIdx := -1, -1
	columnIdx := make(map[string]int, len(columns))
	wanted := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		wanted[c] = struct{}{}
	}
	for i, name := range header {
		switch {
		case name == statsPlayerHeader:
			playerIdx = i
		case name == statsTeamHeader:
			teamIdx = i
		default:
			if _, ok := wanted[name]; ok {
				columnIdx[name] = i
			}
		}
	}
	if playerIdx < 0 {
		return nil, fmt.Errorf("%w: statistics %q missing %q column", ErrMalformedSource, path, statsPlayerHeader)
	}

	pools := make(map[string][]model.StatRecord, len(columnIdx))
	for _, row := range rows[1:] {
		if playerIdx >= len(row) || row[playerIdx] == "" {
			continue
		}
		player := row[playerIdx]
		var team string
		if teamIdx >= 0 && teamIdx < len(row) {
			team = row[teamIdx]
		}
		for column, idx := range columnIdx {
			var raw string
			if idx < len(row) {
				raw = row[idx]
			}
			pools[column] = append(pools[column], model.StatRecord{
				PlayerName: player,
				Team:       team,
				Column:     column,
				RawValue:   raw,
			})
		}
	}
	return pools, nil
}
