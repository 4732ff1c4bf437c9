package config

import (
	"testing"

	"github.com/safeplay-cli/safeplay/filesystem"
	"github.com/safeplay-cli/safeplay/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetStringSlice(key.PlaybackLanguages), ShouldResemble, []string{"en"})
			So(viper.GetString(key.ParentalMaxQuality), ShouldBeEmpty)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("parental.max_quality"), ShouldEqual, "parental_max_quality")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the quality ceiling field", t, func() {
		field := Default[key.ParentalMaxQuality]

		Convey("Env should be prefixed", func() {
			So(field.Env(), ShouldEqual, "SAFEPLAY_PARENTAL_MAX_QUALITY")
		})

		Convey("Type should be reported", func() {
			So(field.typeName(), ShouldEqual, "string")
			languages := Default[key.PlaybackLanguages]
			So(languages.typeName(), ShouldEqual, "[]string")
		})

		Convey("Pretty should mention key and env", func() {
			pretty := field.Pretty()
			So(pretty, ShouldContainSubstring, key.ParentalMaxQuality)
			So(pretty, ShouldContainSubstring, "SAFEPLAY_PARENTAL_MAX_QUALITY")
		})
	})
}
