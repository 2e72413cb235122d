// Package where resolves the application's filesystem locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "BOOMERPLUS_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honoring EnvConfigPath first
// and falling back to ./config when the platform reports none.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(".", "config")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache resolves the cache directory, falling back to ./cache when the platform reports none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Datasets is where memoized category datasets live.
func Datasets() string {
	return ensureDir(filepath.Join(Cache(), "datasets"))
}

// Logs resolves the log directory.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Queries is the search query history file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// History is the recently played items file.
func History() string {
	return filepath.Join(Config(), "history.json")
}
