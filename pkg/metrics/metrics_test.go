package metrics_test

import (
	"testing"

	"github.com/okian/gelora/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a fresh metrics manager", t, func() {
		m := metrics.NewManager(metrics.WithNamespace("test"))

		Convey("Then it owns its own registry", func() {
			So(m.Registry(), ShouldNotBeNil)
			So(m.Registry(), ShouldNotEqual, metrics.GetRegistry())
		})
	})
}

func TestRecordingHelpers(t *testing.T) {
	Convey("Given the default manager", t, func() {
		Convey("Then every helper records without panicking", func() {
			So(func() {
				metrics.RecordBatchAccepted()
				metrics.RecordBatchDuplicate()
				metrics.RecordBatchRejected()
				metrics.AddRecordsIngested(10)

				metrics.RecordMergeRun(12.5)
				metrics.UpdateMergeSummary(map[string]int{"exact-fullname-team": 3, "no-match": 1}, 1)
				metrics.UpdateRosterSize(550)

				metrics.RecordScoringRequest("Attacking")
				metrics.RecordScoringError()
				metrics.ObserveScoringDuration(3.2)

				metrics.UpdateQueueSize(5)
				metrics.UpdateQueueCapacity(4096)
				metrics.UpdateQueueUtilization(0.1)
				metrics.RecordQueueEnqueueError("queue_full")
				metrics.UpdateWorkerCount(4)

				metrics.RecordHTTPRequest("players", "GET", "200")
				metrics.RecordHTTPRequestDuration("players", "GET", "200", 1.2)

				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(12)
				metrics.RecordSystemGCPauseTime(0.3)
			}, ShouldNotPanic)
		})

		Convey("Then the scrape registry gathers the recorded families", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["gelora_ingest_batches_accepted_total"], ShouldBeTrue)
			So(names["gelora_merge_players_by_tier"], ShouldBeTrue)
			So(names["gelora_http_requests_total"], ShouldBeTrue)
		})
	})
}
