package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	config "github.com/okian/gelora/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no overrides in the environment", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then defaults come back", func() {
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.RosterPath, ShouldEqual, "data/roster.json")
			})
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GELORA_ADDR", ":7070")
	t.Setenv("GELORA_LOG_LEVEL", "debug")
	t.Setenv("GELORA_QUEUE_SIZE", "128")
	t.Setenv("GELORA_LOOSE_MATCH", "true")

	Convey("Given environment overrides", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the env values win over defaults", func() {
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.BatchQueueSize, ShouldEqual, 128)
				So(cfg.LooseMatch, ShouldBeTrue)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gelora.yaml")
	yaml := "addr: \":6060\"\nroster_path: /srv/roster.json\nworker_count: 2\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GELORA_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then file values override defaults", func() {
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.RosterPath, ShouldEqual, "/srv/roster.json")
				So(cfg.WorkerCount, ShouldEqual, 2)
			})
		})
	})
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gelora.yaml")
	if err := os.WriteFile(path, []byte("addr: \":6060\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GELORA_CONFIG", path)
	t.Setenv("GELORA_ADDR", ":5050")

	Convey("Given both a file and an environment override", t, func() {
		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":5050")
		})
	})
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gelora.yaml")
	if err := os.WriteFile(path, []byte("addr: \"\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GELORA_CONFIG", path)

	Convey("Given a file that blanks the listen address", t, func() {
		Convey("When loading", func() {
			_, err := config.Load(context.Background())
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a config file that does not exist", t, func() {
		t.Setenv("GELORA_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := config.Load(context.Background())
		So(err, ShouldNotBeNil)
	})
}
