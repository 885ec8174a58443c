package merge_test

import (
	"context"
	"testing"

	merge "github.com/okian/gelora/internal/domain/merge"
	"github.com/okian/gelora/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func roster() []model.RosterPlayer {
	return []model.RosterPlayer{
		{Name: "John", FullName: "John Smith", TeamName: "FC Alpha"},
		{Name: "Budi", FullName: "Budi Santoso", TeamName: "FC Beta"},
	}
}

func TestMerge(t *testing.T) {
	Convey("Given a merger over two columns", t, func() {
		m := merge.New(merge.WithColumns([]string{"Goal", "Assist"}))

		Convey("When every player resolves exactly", func() {
			stats := map[string][]model.StatRecord{
				"Goal": {
					{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "3"},
					{PlayerName: "Budi Santoso", Team: "FC Beta", RawValue: "1"},
				},
				"Assist": {
					{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "2"},
				},
			}
			players, summary := m.Merge(context.Background(), roster(), stats)

			Convey("Then output preserves roster order and shape", func() {
				So(players, ShouldHaveLength, 2)
				So(players[0].Name, ShouldEqual, "John")
				So(players[1].Name, ShouldEqual, "Budi")
				So(players[0].Stats, ShouldContainKey, "Goal")
				So(players[0].Stats, ShouldContainKey, "Assist")
			})

			Convey("Then matched values are coerced to numbers", func() {
				So(players[0].Stats["Goal"], ShouldEqual, 3)
				So(players[0].Stats["Assist"], ShouldEqual, 2)
				So(players[1].Stats["Goal"], ShouldEqual, 1)
			})

			Convey("Then a column with no candidate yields exactly 0", func() {
				So(players[1].Stats["Assist"], ShouldEqual, 0)
			})

			Convey("Then the summary counts both as team-validated", func() {
				So(summary.TotalPlayers, ShouldEqual, 2)
				So(summary.TeamValidated, ShouldEqual, 2)
				So(summary.Unmatched, ShouldEqual, 0)
				So(summary.TierCounts["exact-fullname-team"], ShouldEqual, 2)
			})
		})

		Convey("When no statistics exist at all", func() {
			players, summary := m.Merge(context.Background(), roster(), nil)

			Convey("Then every player still comes out with zeroed columns", func() {
				So(players, ShouldHaveLength, 2)
				So(players[0].Stats["Goal"], ShouldEqual, 0)
				So(players[0].Stats["Assist"], ShouldEqual, 0)
				So(players[0].MatchTier, ShouldEqual, "no-match")
			})

			Convey("Then the summary lists everyone as unmatched", func() {
				So(summary.Unmatched, ShouldEqual, 2)
				So(summary.UnmatchedPlayers, ShouldHaveLength, 2)
				So(summary.UnmatchedPlayers[0], ShouldEqual, "John (John Smith) from FC Alpha")
			})
		})

		Convey("When raw values carry garbage", func() {
			stats := map[string][]model.StatRecord{
				"Goal": {
					{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "N/A"},
					{PlayerName: "Budi Santoso", Team: "FC Beta", RawValue: "-4"},
				},
				"Assist": {
					{PlayerName: "John Smith", Team: "FC Alpha", RawValue: ""},
					{PlayerName: "Budi Santoso", Team: "FC Beta", RawValue: " 2.5 "},
				},
			}
			players, _ := m.Merge(context.Background(), roster(), stats)

			Convey("Then non-numeric, empty and negative inputs coerce to 0", func() {
				So(players[0].Stats["Goal"], ShouldEqual, 0)
				So(players[1].Stats["Goal"], ShouldEqual, 0)
				So(players[0].Stats["Assist"], ShouldEqual, 0)
			})

			Convey("Then numeric values with padding survive", func() {
				So(players[1].Stats["Assist"], ShouldEqual, 2.5)
			})
		})

		Convey("When a same-named player exists on another team", func() {
			stats := map[string][]model.StatRecord{
				"Goal": {
					{PlayerName: "John Smith", Team: "FC Beta", RawValue: "10"},
				},
			}
			players, summary := m.Merge(context.Background(), roster()[:1], stats)

			Convey("Then the statistic is not cross-matched", func() {
				So(players[0].Stats["Goal"], ShouldEqual, 0)
				So(summary.Unmatched, ShouldEqual, 1)
			})
		})
	})
}

func TestMergeLooseFallback(t *testing.T) {
	Convey("Given a merger with the loose fallback enabled", t, func() {
		m := merge.New(
			merge.WithColumns([]string{"Goal"}),
			merge.WithLooseFallback(true),
		)
		stats := map[string][]model.StatRecord{
			"Goal": {
				{PlayerName: "John Smith", Team: "Unknown FC", RawValue: "7"},
			},
		}

		Convey("When only a cross-team candidate exists", func() {
			players, summary := m.Merge(context.Background(), roster()[:1], stats)

			Convey("Then the loose cascade resolves it", func() {
				So(players[0].Stats["Goal"], ShouldEqual, 7)
				So(players[0].MatchTier, ShouldEqual, "loose-exact-fullname")
			})

			Convey("Then the summary reports it separately from team-validated", func() {
				So(summary.TeamValidated, ShouldEqual, 0)
				So(summary.LooseOnly, ShouldEqual, 1)
				So(summary.Unmatched, ShouldEqual, 0)
			})
		})

		Convey("When a team-validated candidate also exists", func() {
			withExact := map[string][]model.StatRecord{
				"Goal": {
					{PlayerName: "John Smith", Team: "Unknown FC", RawValue: "7"},
					{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "3"},
				},
			}
			players, _ := m.Merge(context.Background(), roster()[:1], withExact)

			Convey("Then the team-validated match wins", func() {
				So(players[0].Stats["Goal"], ShouldEqual, 3)
				So(players[0].MatchTier, ShouldEqual, "exact-fullname-team")
			})
		})
	})
}
