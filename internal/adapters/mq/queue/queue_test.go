package queue_test

import (
	"context"
	"testing"
	"time"

	queue "github.com/okian/gelora/internal/adapters/mq/queue"
	"github.com/okian/gelora/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func batch(id string) queue.Batch {
	return queue.Batch{
		BatchID: id,
		Column:  "Goal",
		Records: []model.StatRecord{{PlayerName: "John Smith", Team: "FC Alpha", RawValue: "1"}},
	}
}

func TestInMemoryQueue(t *testing.T) {
	Convey("Given a queue with capacity two", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(2))
		ctx := context.Background()

		Convey("When batches fit the capacity", func() {
			So(q.Enqueue(ctx, batch("a")), ShouldBeTrue)
			So(q.Enqueue(ctx, batch("b")), ShouldBeTrue)
			So(q.Len(ctx), ShouldEqual, 2)

			Convey("Then a third enqueue reports backpressure", func() {
				So(q.Enqueue(ctx, batch("c")), ShouldBeFalse)
			})

			Convey("Then dequeue delivers them in order", func() {
				out := q.Dequeue(ctx)
				first := <-out
				second := <-out
				So(first.BatchID, ShouldEqual, "a")
				So(second.BatchID, ShouldEqual, "b")
			})
		})

		Convey("When the queue is closed", func() {
			So(q.Enqueue(ctx, batch("a")), ShouldBeTrue)
			So(q.Close(), ShouldBeNil)

			Convey("Then enqueue fails and IsClosed reports it", func() {
				So(q.IsClosed(), ShouldBeTrue)
				So(q.Enqueue(ctx, batch("b")), ShouldBeFalse)
			})

			Convey("Then buffered batches still drain before the channel closes", func() {
				out := q.Dequeue(ctx)
				b, ok := <-out
				So(ok, ShouldBeTrue)
				So(b.BatchID, ShouldEqual, "a")

				_, ok = <-out
				So(ok, ShouldBeFalse)
			})

			Convey("Then closing again is a no-op", func() {
				So(q.Close(), ShouldBeNil)
			})
		})

		Convey("When the consumer context is canceled", func() {
			cancelCtx, cancel := context.WithCancel(ctx)
			out := q.Dequeue(cancelCtx)
			cancel()

			So(q.Enqueue(ctx, batch("a")), ShouldBeTrue)
			So(q.Close(), ShouldBeNil)

			// At most one already-dequeued batch may still come through
			// before the channel closes.
			deadline := time.After(time.Second)
			closed := false
			for !closed {
				select {
				case _, ok := <-out:
					if !ok {
						closed = true
					}
				case <-deadline:
					t.Fatal("dequeue channel did not close after cancel")
				}
			}
			So(closed, ShouldBeTrue)
		})
	})
}
