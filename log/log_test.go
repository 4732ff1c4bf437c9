package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/safeplay-cli/safeplay/filesystem"
	"github.com/safeplay-cli/safeplay/key"
	"github.com/safeplay-cli/safeplay/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup is a no-op", func() {
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})

		Convey("Entries are discarded", func() {
			So(Setup(), ShouldBeNil)
			So(func() { WithFields(Fields{"tier": "muxed"}).Info("selected") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates today's log file", func() {
			So(Setup(), ShouldBeNil)
			Info("hello")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)
		})
	})
}
