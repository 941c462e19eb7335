package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/keelan/gridiron/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func clearEnv() {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "GRIDIRON_") {
			if i := strings.IndexByte(kv, '='); i > 0 {
				os.Unsetenv(kv[:i])
			}
		}
	}
}

func TestLoad(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		clearEnv()
		Reset(clearEnv)

		Convey("When loading with no overrides the defaults come back", func() {
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":8090")
			So(cfg.NumTeams, ShouldEqual, 12)
		})

		Convey("When env vars override scalar fields", func() {
			os.Setenv("GRIDIRON_ADDR", ":9999")
			os.Setenv("GRIDIRON_NUM_TEAMS", "10")
			os.Setenv("GRIDIRON_EXPERT", "site-a")

			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9999")
			So(cfg.NumTeams, ShouldEqual, 10)
			So(cfg.Expert, ShouldEqual, "site-a")
		})

		Convey("When a YAML file is layered under env", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":7070\"\nnum_teams: 14\nsuperflex: true\n"
			So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
			os.Setenv("GRIDIRON_CONFIG", path)
			os.Setenv("GRIDIRON_NUM_TEAMS", "16")

			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the file overrides defaults", func() {
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.Superflex, ShouldBeTrue)
			})

			Convey("And env overrides the file", func() {
				So(cfg.NumTeams, ShouldEqual, 16)
			})
		})

		Convey("When the config file path is bogus", func() {
			os.Setenv("GRIDIRON_CONFIG", "/nonexistent/config.yaml")
			_, err := config.Load(context.Background())
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})

		Convey("When validation fails the load fails", func() {
			os.Setenv("GRIDIRON_NUM_TEAMS", "0")
			_, err := config.Load(context.Background())
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
