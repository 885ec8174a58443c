package seedgen

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// File permission constants.
const (
	outputFilePermission = 0600
)

// rosterJSON mirrors the roster document shape consumed at service startup.
type rosterJSON struct {
	Teams []rosterTeamJSON `json:"teams"`
}

type rosterTeamJSON struct {
	ID      int64              `json:"id"`
	Name    string             `json:"name"`
	Players []rosterPlayerJSON `json:"players"`
}

type rosterPlayerJSON struct {
	Name        string `json:"name"`
	FullName    string `json:"fullName"`
	Country     string `json:"negara"`
	Age         string `json:"usia"`
	Position    string `json:"posisi"`
	Appearances string `json:"penampilan"`
}

// writeRoster writes the generated league as a roster JSON file.
func writeRoster(league *League, path string) error {
	doc := rosterJSON{Teams: make([]rosterTeamJSON, 0, len(league.Teams))}
	for _, team := range league.Teams {
		jt := rosterTeamJSON{ID: team.ID, Name: team.Name}
		for _, p := range team.Players {
			jt.Players = append(jt.Players, rosterPlayerJSON{
				Name:        p.Name,
				FullName:    p.FullName,
				Country:     p.Country,
				Age:         strconv.Itoa(p.Age),
				Position:    p.Position,
				Appearances: strconv.Itoa(p.Appearances),
			})
		}
		doc.Teams = append(doc.Teams, jt)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}
	if err := os.WriteFile(path, data, outputFilePermission); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}
	return nil
}

// writeStatsCSV writes the generated records as a wide statistics CSV in
// the shape the preload path reads: one row per scraped name, one column
// per metric. Rows are keyed by the noisy scraped name, so a player that
// was scraped under two spellings gets two rows.
func writeStatsCSV(league *League, columns []string, path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePermission)
	if err != nil {
		return fmt.Errorf("create stats csv: %w", err)
	}
	defer f.Close()

	type rowKey struct{ name, team string }
	values := make(map[rowKey]map[string]string)
	var order []rowKey
	for _, column := range columns {
		for _, rec := range league.Records[column] {
			key := rowKey{rec.PlayerName, rec.Team}
			if _, ok := values[key]; !ok {
				values[key] = make(map[string]string, len(columns))
				order = append(order, key)
			}
			values[key][column] = rec.Value
		}
	}

	w := csv.NewWriter(f)
	header := append([]string{"Player Name", "Team"}, columns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, key := range order {
		row := make([]string, 0, len(header))
		row = append(row, key.name, key.team)
		for _, column := range columns {
			row = append(row, values[key][column])
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush stats csv: %w", err)
	}
	return nil
}
