package config

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/taskframe/taskframe/color"
	"github.com/taskframe/taskframe/filesystem"
	"github.com/taskframe/taskframe/key"
	"github.com/taskframe/taskframe/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		viper.Reset()
		Reset(viper.Reset)

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			So(len(Default), ShouldEqual, key.DefinedFieldsCount)
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("Should default to color on and a 500ms delay", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetBool(key.ColorEnable), ShouldEqual, color.Compiled())
			So(viper.GetInt(key.ExecDelayMs), ShouldEqual, 500)
		})

		Convey("Should read values from the config file", func() {
			path := filepath.Join(where.Config(), "taskframe.toml")
			lo.Must0(filesystem.API().WriteFile(path, []byte("[exec]\ndelay_ms = 1000\n"), 0o644))
			Reset(func() { _ = filesystem.Delete(path) })

			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.ExecDelayMs), ShouldEqual, 1000)
		})

		Convey("Should let the environment override the default", func() {
			t.Setenv("TASKFRAME_EXEC_DELAY_MS", "750")
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.ExecDelayMs), ShouldEqual, 750)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("exec.delay_ms"), ShouldEqual, "exec_delay_ms")
		})
	})
}

func TestWrite(t *testing.T) {
	Convey("Write", t, func() {
		viper.Reset()
		Reset(func() {
			viper.Reset()
			_ = filesystem.Delete(where.ConfigFile())
		})
		So(Setup(), ShouldBeNil)

		viper.Set(key.ExecDelayMs, 1200)
		So(Write(), ShouldBeNil)
		So(lo.Must(filesystem.API().Exists(where.ConfigFile())), ShouldBeTrue)

		viper.Reset()
		So(Setup(), ShouldBeNil)
		So(viper.GetInt(key.ExecDelayMs), ShouldEqual, 1200)
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		viper.Reset()
		Reset(viper.Reset)
		So(Setup(), ShouldBeNil)

		field := Default[key.ExecDelayMs]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "TASKFRAME_EXEC_DELAY_MS")
		})

		Convey("MarshalJSON should report value, default and type", func() {
			b, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(b), ShouldContainSubstring, `"key":"exec.delay_ms"`)
			So(string(b), ShouldContainSubstring, `"default":500`)
			So(string(b), ShouldContainSubstring, `"type":"int"`)
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.ExecDelayMs)
		})
	})
}
