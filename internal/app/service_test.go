package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	app "github.com/okian/gelora/internal/app"
	"github.com/okian/gelora/internal/domain/model"
	"github.com/okian/gelora/internal/domain/scoring"
	"github.com/okian/gelora/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func testRoster() []model.RosterPlayer {
	return []model.RosterPlayer{
		{Name: "John", FullName: "John Smith", TeamID: 1, TeamName: "FC Alpha"},
		{Name: "Budi", FullName: "Budi Santoso", TeamID: 2, TeamName: "FC Beta"},
	}
}

// startService builds a two-column service with a loaded roster.
func startService(t *testing.T) *app.Service {
	t.Helper()
	svc := app.New(
		app.WithWorkerCount(2),
		app.WithQueueSize(16),
		app.WithColumns([]string{"Goal", "Foul"}),
		app.WithNegativeMetrics([]string{"Foul"}),
		app.WithCategories(map[string]map[string]float64{
			"Attacking": {"Goal": 2.0},
		}),
	)
	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(svc.Stop)
	svc.SetRoster(ctx, testRoster())
	return svc
}

// ingest pushes a batch and waits until its records are visible.
func ingest(t *testing.T, svc *app.Service, b model.StatBatch) {
	t.Helper()
	ctx := context.Background()
	if svc.SeenAndRecord(ctx, b.BatchID) {
		t.Fatalf("batch %s already seen", b.BatchID)
	}
	if !svc.Enqueue(ctx, b) {
		t.Fatalf("enqueue %s failed", b.BatchID)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.GetStats(ctx).RecordCount >= len(b.Records) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("records did not arrive in time")
}

func TestServiceIngestAndMerge(t *testing.T) {
	Convey("Given a started service with a roster", t, func() {
		svc := startService(t)
		ctx := context.Background()

		Convey("When a goal batch flows through the pipeline", func() {
			ingest(t, svc, model.StatBatch{
				BatchID: "goals-1",
				Column:  "Goal",
				Records: []model.StatRecord{
					{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "3"},
					{PlayerName: "Budi Santoso", Team: "FC Beta", RawValue: "1"},
				},
			})

			Convey("Then the merged table reflects the ingested values", func() {
				players, summary := svc.MergedPlayers(ctx)
				So(players, ShouldHaveLength, 2)
				So(players[0].Stats["Goal"], ShouldEqual, 3)
				So(players[1].Stats["Goal"], ShouldEqual, 1)
				So(summary.TeamValidated, ShouldEqual, 2)
			})

			Convey("Then repeated reads reuse the cached merge", func() {
				a, _ := svc.MergedPlayers(ctx)
				b, _ := svc.MergedPlayers(ctx)
				So(&a[0], ShouldEqual, &b[0])
			})
		})

		Convey("When the same batch id is submitted twice", func() {
			So(svc.SeenAndRecord(ctx, "dup-1"), ShouldBeFalse)
			So(svc.SeenAndRecord(ctx, "dup-1"), ShouldBeTrue)

			Convey("Then unrecording allows a retry", func() {
				svc.Unrecord(ctx, "dup-1")
				So(svc.SeenAndRecord(ctx, "dup-1"), ShouldBeFalse)
			})
		})
	})
}

func TestServiceScoring(t *testing.T) {
	Convey("Given a service with ingested goals and fouls", t, func() {
		svc := startService(t)
		ctx := context.Background()

		ingest(t, svc, model.StatBatch{
			BatchID: "goals-1",
			Column:  "Goal",
			Records: []model.StatRecord{
				{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "4"},
				{PlayerName: "Budi Santoso", Team: "FC Beta", RawValue: "1"},
			},
		})

		Convey("When scoring the preset category", func() {
			scored, used, err := svc.ScoreCategory(ctx, "Attacking", nil)
			So(err, ShouldBeNil)

			Convey("Then the better scorer ranks first", func() {
				So(scored, ShouldHaveLength, 2)
				So(scored[0].Name, ShouldEqual, "John")
				So(scored[0].Rank, ShouldEqual, 1)
				So(scored[0].Score, ShouldEqual, 100)
				So(used["Goal"], ShouldEqual, 1)
			})
		})

		Convey("When scoring with explicit weights", func() {
			scored, _, err := svc.ScoreCategory(ctx, "", map[string]float64{"Goal": 1})
			So(err, ShouldBeNil)
			So(scored[0].Name, ShouldEqual, "John")
		})

		Convey("When the category is unknown", func() {
			_, _, err := svc.ScoreCategory(ctx, "Nonsense", nil)
			So(err, ShouldEqual, scoring.ErrUnknownCategory)
		})

		Convey("When weights name no real metric", func() {
			_, _, err := svc.ScoreCategory(ctx, "", map[string]float64{"Unknown": 1})
			So(err, ShouldEqual, scoring.ErrNoScorableMetrics)
		})

		Convey("When asking for a player's contribution breakdown", func() {
			player, contribs, err := svc.Contributions(ctx, "John Smith", "FC Alpha", "Attacking")
			So(err, ShouldBeNil)

			Convey("Then the breakdown explains the composite", func() {
				So(player.Rank, ShouldEqual, 1)
				So(contribs["Goal"].RawValue, ShouldEqual, 4)
				So(contribs["Goal"].WeightedContribution, ShouldAlmostEqual, player.Score)
			})
		})

		Convey("When looking a player up without a team", func() {
			player, _, err := svc.Contributions(ctx, "Budi", "", "Attacking")
			So(err, ShouldBeNil)
			So(player.Name, ShouldEqual, "Budi")
		})

		Convey("When the player does not exist", func() {
			_, _, err := svc.Contributions(ctx, "Nobody", "FC Alpha", "Attacking")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestServiceCategories(t *testing.T) {
	Convey("Given a configured service", t, func() {
		svc := startService(t)

		Convey("When listing categories", func() {
			cats := svc.Categories(context.Background())
			So(cats, ShouldHaveLength, 1)
			So(cats[0].Name, ShouldEqual, "Attacking")
			So(cats[0].Weights["Goal"], ShouldEqual, 2.0)
		})
	})
}

func TestServiceStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startService(t)

		Convey("When reading stats", func() {
			stats := svc.GetStats(context.Background())
			So(stats.Started, ShouldBeTrue)
			So(stats.WorkerCount, ShouldEqual, 2)
			So(stats.RosterSize, ShouldEqual, 2)
		})
	})
}
