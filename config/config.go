// Package config registers the configuration defaults and wires viper to the
// config file and the BOOMERPLUS_* environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/query"
	"github.com/boomerplus/boomerplus/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns a key into the suffix of its environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, environment bindings and the optional TOML file, then
// validates the result. A missing config file is not an error.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	err := viper.ReadInConfig()
	if err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return err
	}

	return Validate()
}

// Validate checks the values that would otherwise fail late, deep inside a command.
func Validate() error {
	if _, err := query.ParseSortKey(viper.GetString(key.BrowseDefaultSort)); err != nil {
		return fmt.Errorf("%s: %w", key.BrowseDefaultSort, err)
	}

	if viper.GetBool(key.DataCacheEnable) && viper.GetDuration(key.DataCacheLifetime) <= 0 {
		return fmt.Errorf("%s must be positive when %s is on", key.DataCacheLifetime, key.DataCacheEnable)
	}

	if viper.GetInt(key.BrowseLatestCount) < 0 {
		return fmt.Errorf("%s must not be negative", key.BrowseLatestCount)
	}

	return nil
}
