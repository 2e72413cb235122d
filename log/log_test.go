package log

import (
	"bytes"
	"testing"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		viper.Set(key.LogsWrite, false)
		viper.Set(key.LogsJson, false)

		Convey("An unknown level falls back to warn", func() {
			viper.Set(key.LogsLevel, "loud")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.WarnLevel)
		})

		Convey("The configured level is honored", func() {
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Fields are rendered", func() {
			viper.Set(key.LogsLevel, "info")
			So(Setup(), ShouldBeNil)

			var buf bytes.Buffer
			SetOutput(&buf)
			With(Fields{"category": "movies"}).Warn("dataset unavailable")
			So(buf.String(), ShouldContainSubstring, "category=movies")
			So(buf.String(), ShouldContainSubstring, "dataset unavailable")
		})
	})
}
