// Package config registers every configurable field and wires them into viper.
//
// Values resolve in order: bound CLI flags, TASKFRAME_* environment variables,
// the TOML config file, and finally the defaults registered here, which for
// color.enable and exec.delay_ms come from the link-time build defaults.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/taskframe/taskframe/constant"
	"github.com/taskframe/taskframe/filesystem"
	"github.com/taskframe/taskframe/where"
)

// EnvKeyReplacer normalizes configuration keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global viper instance. A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Taskframe)
	viper.SetConfigType(constant.ConfigType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Taskframe)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	// Values stay untyped here; Load does the strict conversion.
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Write persists the current values to the config file, creating it when absent.
func Write() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}
