package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/taskframe/taskframe/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override", func() {
			t.Setenv(EnvConfigPath, "/custom/taskframe")
			So(Config(), ShouldEqual, "/custom/taskframe")
			So(ConfigFile(), ShouldEqual, filepath.Join("/custom/taskframe", "taskframe.toml"))
		})

		Convey("Logs()", func() {
			path := Logs()
			So(filepath.Base(path), ShouldEqual, "logs")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}
