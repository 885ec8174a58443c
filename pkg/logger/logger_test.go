package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/okian/gelora/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When getting the global instance", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)

			Convey("Then logging at every level does not panic", func() {
				ctx := context.Background()
				So(func() {
					l.Debug(ctx, "debug line", logger.String("k", "v"))
					l.Info(ctx, "info line", logger.Int("n", 1))
					l.Warn(ctx, "warn line", logger.Bool("flag", true))
					l.Error(ctx, "error line", logger.Float64("f", 1.5))
				}, ShouldNotPanic)
			})

			Convey("Then named loggers derive without error", func() {
				named := l.Named("ingest")
				So(named, ShouldNotBeNil)
				So(func() {
					named.Info(context.Background(), "named line")
				}, ShouldNotPanic)
			})
		})

		Convey("When syncing", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known levels parse", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("info"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString("warning"), ShouldBeNil)
			So(logger.SetLevelString("error"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
		})

		Convey("Then unknown levels fail", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})

		Convey("Then SetLevel applies directly", func() {
			So(func() { logger.SetLevel(slog.LevelInfo) }, ShouldNotPanic)
		})
	})
}
