// Package where resolves the filesystem locations the CLI reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/taskframe/taskframe/constant"
	"github.com/taskframe/taskframe/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "TASKFRAME_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, creating it if needed.
// EnvConfigPath takes precedence over the platform user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.Taskframe))
}

// ConfigFile resolves the path of the configuration file. The file itself may not exist.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Taskframe+"."+constant.ConfigType)
}

// Logs resolves the log directory.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
