package config

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/taskframe/taskframe/key"
)

func TestParseValue(t *testing.T) {
	Convey("ParseValue", t, func() {
		Convey("Should parse integers", func() {
			v, err := ParseValue(key.ExecDelayMs, []string{"1000"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1000)
		})

		Convey("Should parse booleans", func() {
			v, err := ParseValue(key.ColorEnable, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("Should keep strings", func() {
			v, err := ParseValue(key.LogsLevel, []string{"debug"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "debug")
		})

		Convey("Should reject bad literals", func() {
			_, err := ParseValue(key.ExecDelayMs, []string{"soon"})
			So(err, ShouldNotBeNil)
			_, err = ParseValue(key.ColorEnable, []string{"maybe"})
			So(err, ShouldNotBeNil)
			_, err = ParseValue(key.ExecDelayMs, nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Should suggest the closest key for typos", func() {
			_, err := ParseValue("exec.delay_m", []string{"1"})
			So(errors.Is(err, ErrUnknownKey), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, key.ExecDelayMs)
		})
	})
}

func TestSchema(t *testing.T) {
	Convey("Schema", t, func() {
		b, err := json.Marshal(Schema())
		So(err, ShouldBeNil)
		So(string(b), ShouldContainSubstring, `"delay_ms"`)
		So(string(b), ShouldContainSubstring, `"enable"`)
		So(string(b), ShouldContainSubstring, `taskframe configuration`)
	})
}
