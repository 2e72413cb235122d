package config

import (
	"testing"
	"time"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.DataBase), ShouldEqual, constant.DefaultDataBase)
			So(viper.GetBool(key.DataCacheEnable), ShouldBeFalse)
			So(viper.GetDuration(key.DataCacheLifetime), ShouldEqual, time.Hour)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("data.cache.enable"), ShouldEqual, "data_cache_enable")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given the defaults", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("An unknown sort is rejected", func() {
			viper.Set(key.BrowseDefaultSort, "random")
			defer viper.Set(key.BrowseDefaultSort, "title-asc")
			So(Validate(), ShouldNotBeNil)
		})

		Convey("A cache needs a positive lifetime", func() {
			viper.Set(key.DataCacheEnable, true)
			viper.Set(key.DataCacheLifetime, time.Duration(0))
			defer func() {
				viper.Set(key.DataCacheEnable, false)
				viper.Set(key.DataCacheLifetime, time.Hour)
			}()
			So(Validate(), ShouldNotBeNil)
		})

		Convey("A negative shelf size is rejected", func() {
			viper.Set(key.BrowseLatestCount, -1)
			defer viper.Set(key.BrowseLatestCount, constant.LatestCount)
			So(Validate(), ShouldNotBeNil)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the data base field", t, func() {
		f := Default[key.DataBase]

		Convey("Env prefixes the application name", func() {
			So(f.Env(), ShouldEqual, "BOOMERPLUS_DATA_BASE")
		})

		Convey("typeName reports the default's kind", func() {
			So(f.typeName(), ShouldEqual, "string")

			lifetime := Default[key.DataCacheLifetime]
			So(lifetime.typeName(), ShouldEqual, "duration")
		})
	})
}
