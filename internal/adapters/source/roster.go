// Package source loads roster and statistics inputs and writes the merged
// output table. It is the file boundary around the in-memory core: missing
// inputs are fatal, malformed rows degrade to empty/zero fields.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/okian/gelora/internal/domain/model"
)

// rosterDocument mirrors the roster JSON shape: a teams list, each team
// carrying an id, a name and its players. Player field names follow the
// upstream source (negara=country, usia=age, posisi=position,
// penampilan=appearances).
type rosterDocument struct {
	Teams []rosterTeam `json:"teams"`
}

type rosterTeam struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Players []rosterPlayer `json:"players"`
}

type rosterPlayer struct {
	Name        string     `json:"name"`
	FullName    string     `json:"fullName"`
	Country     string     `json:"negara"`
	Age         flexString `json:"usia"`
	Position    string     `json:"posisi"`
	PictureURL  string     `json:"pictureUrl"`
	Appearances flexString `json:"penampilan"`
}

// flexString accepts either a JSON string or a JSON number; the upstream
// roster is inconsistent about which one it emits for age and appearances.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("flex string: %w", err)
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

// LoadRoster reads the roster JSON at path and flattens it into one entry
// per player in document order. A missing or unreadable file wraps
// ErrSourceUnavailable; a document with no teams wraps ErrMalformedSource.
// Players without a name are dropped; every optional field defaults to
// empty rather than failing the load.
func LoadRoster(path string) ([]model.RosterPlayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: roster %q: %v", ErrSourceUnavailable, path, err)
	}

	var doc rosterDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: roster %q: %v", ErrSourceUnavailable, path, err)
	}
	if len(doc.Teams) == 0 {
		return nil, fmt.Errorf("%w: roster %q has no teams", ErrMalformedSource, path)
	}

	var roster []model.RosterPlayer
	for _, team := range doc.Teams {
		for _, p := range team.Players {
			if p.Name == "" {
				continue
			}
			roster = append(roster, model.RosterPlayer{
				Name:        p.Name,
				FullName:    p.FullName,
				TeamID:      team.ID,
				TeamName:    team.Name,
				Country:     p.Country,
				Age:         string(p.Age),
				Position:    p.Position,
				PictureURL:  p.PictureURL,
				Appearances: string(p.Appearances),
			})
		}
	}
	return roster, nil
}
