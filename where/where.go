// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/safeplay-cli/safeplay/constant"
	"github.com/safeplay-cli/safeplay/filesystem"
	"github.com/safeplay-cli/safeplay/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable used to override the configuration directory.
const EnvConfigPath = "SAFEPLAY_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the primary configuration directory.
// It can be overridden with the SAFEPLAY_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs resolves the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Catalogues resolves the directory scanned by the local catalogue source.
// The sources.local.path setting takes precedence.
func Catalogues() string {
	if custom := viper.GetString(key.SourcesLocalPath); custom != "" {
		return ensureDir(custom)
	}
	return ensureDir(filepath.Join(Config(), "catalogues"))
}

// History resolves the selection history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp resolves a volatile directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
