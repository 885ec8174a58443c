// Package seedgen generates a synthetic league: a roster JSON, a wide
// statistics CSV whose names carry scraper-style noise, and optionally a
// stream of batch submissions against a running service.
package seedgen

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"

	"github.com/okian/gelora/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	maxStatValue       = 20
)

// Probabilities for the noise applied to scraped names, out of 1.0.
const (
	probUseFullName   = 0.4
	probExtraSpaces   = 0.15
	probCaseMangle    = 0.15
	probDropFromSheet = 0.05
)

var firstNames = []string{
	"Andri", "Bagus", "Cahya", "Dimas", "Eko", "Fajar", "Gilang", "Hendra",
	"Ilham", "Joko", "Krisna", "Lukman", "Made", "Nanda", "Oka", "Putra",
	"Rizky", "Surya", "Taufik", "Wawan", "Yoga", "Zaki",
}

var lastNames = []string{
	"Ardiansyah", "Budiman", "Chandra", "Darmawan", "Firmansyah", "Gunawan",
	"Hartono", "Irawan", "Kurniawan", "Maulana", "Nugroho", "Pratama",
	"Ramadhan", "Saputra", "Utomo", "Wibowo",
}

var teamPrefixes = []string{"Persik", "Arema", "Bali", "Borneo", "Dewa", "Madura", "Persebaya", "Persija", "PSIS", "PSM"}
var teamSuffixes = []string{"United", "FC", "Putra", "Jaya"}

var positions = []string{"GK", "DF", "MF", "FW"}
var countries = []string{"Indonesia", "Brazil", "Japan", "Netherlands", "Nigeria"}

// Team is one generated club with its players.
type Team struct {
	ID      int64
	Name    string
	Players []Player
}

// Player is one generated roster entry.
type Player struct {
	Name        string
	FullName    string
	Country     string
	Age         int
	Position    string
	Appearances int
}

// Record is one scraped-style statistic cell.
type Record struct {
	PlayerName string
	Team       string
	Value      string
}

// League bundles the generated roster with its per-column records.
type League struct {
	Teams   []Team
	Records map[string][]Record
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func randomInt(n int) int {
	if n <= 0 {
		return 0
	}
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

func pick(list []string) string {
	return list[randomInt(len(list))]
}

// generateLeague builds the synthetic roster and its statistic records.
// A slice of the scraped names carry whitespace and casing noise so the
// team-validated cascade gets exercised past its exact tiers, and a small
// share of players never appear in the records at all.
func generateLeague(ctx context.Context, config *Config, stats *Stats) *League {
	logger.Get().Info(ctx, "generating league",
		logger.Int("teams", config.Teams),
		logger.Int("playersPerTeam", config.PlayersPerTeam),
	)

	league := &League{
		Records: make(map[string][]Record, len(config.Columns)),
	}

	for t := 0; t < config.Teams; t++ {
		team := Team{
			ID:   int64(t + 1),
			Name: pick(teamPrefixes) + " " + pick(teamSuffixes) + " " + strconv.Itoa(t+1),
		}
		for p := 0; p < config.PlayersPerTeam; p++ {
			first := pick(firstNames)
			last := pick(lastNames)
			team.Players = append(team.Players, Player{
				Name:        first,
				FullName:    first + " " + last,
				Country:     pick(countries),
				Age:         18 + randomInt(18),
				Position:    pick(positions),
				Appearances: randomInt(35),
			})
		}
		league.Teams = append(league.Teams, team)
	}
	stats.TeamsGenerated = len(league.Teams)
	stats.PlayersGenerated = config.Teams * config.PlayersPerTeam

	for _, column := range config.Columns {
		for _, team := range league.Teams {
			for _, player := range team.Players {
				if getRandomFloat() < probDropFromSheet {
					continue
				}
				league.Records[column] = append(league.Records[column], Record{
					PlayerName: noisyName(player),
					Team:       team.Name,
					Value:      strconv.Itoa(randomInt(maxStatValue)),
				})
				stats.RecordsGenerated++
			}
		}
	}

	return league
}

// noisyName renders a player name the way a scraper might have seen it.
func noisyName(p Player) string {
	name := p.Name
	if getRandomFloat() < probUseFullName {
		name = p.FullName
	}
	if getRandomFloat() < probExtraSpaces {
		name = "  " + strings.ReplaceAll(name, " ", "   ") + " "
	}
	if getRandomFloat() < probCaseMangle {
		name = strings.ToLower(name)
	}
	return name
}
