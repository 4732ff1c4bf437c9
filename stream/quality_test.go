package stream

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseMaxQuality(t *testing.T) {
	Convey("ParseMaxQuality", t, func() {
		expected := map[string]int{
			"144p": 144, "240p": 240, "360p": 360, "480p": 480, "720p": 720,
			"1080p": 1080, "1440p": 1440, "2160p": 2160, "4k": 2160,
		}

		Convey("Should resolve every known label case-insensitively", func() {
			for label, height := range expected {
				So(ParseMaxQuality(label), ShouldEqual, height)
				So(ParseMaxQuality(strings.ToUpper(label)), ShouldEqual, height)
			}
			So(ParseMaxQuality(" 720P "), ShouldEqual, 720)
		})

		Convey("Should fall back to 1080 for anything else", func() {
			for _, label := range []string{"", "xyz", "1080", "8k", "720p60"} {
				So(ParseMaxQuality(label), ShouldEqual, DefaultCeiling)
			}
		})

		Convey("Should list every known label", func() {
			So(QualityLabels(), ShouldHaveLength, len(expected))
		})
	})
}

func TestParseDuration(t *testing.T) {
	Convey("ParseDuration", t, func() {
		Convey("Should sum the present components", func() {
			So(ParseDuration("PT1H2M3S"), ShouldEqual, 3723)
			So(ParseDuration("PT45S"), ShouldEqual, 45)
			So(ParseDuration("PT10M"), ShouldEqual, 600)
			So(ParseDuration("PT2H"), ShouldEqual, 7200)
			So(ParseDuration("PT1H30S"), ShouldEqual, 3630)
		})

		Convey("Should return 0 for malformed input", func() {
			for _, in := range []string{"", "PT", "1H2M", "P1D", "PT1.5S", "PTxS", "pt1h"} {
				So(ParseDuration(in), ShouldEqual, 0)
			}
		})

		Convey("Should return 0 when the total overflows", func() {
			So(ParseDuration("PT9999999999999999H"), ShouldEqual, 0)
			So(ParseDuration("PT2562047788015215H9999999999999999M"), ShouldEqual, 0)
			So(ParseDuration("PT99999999999999999999S"), ShouldEqual, 0)
		})
	})
}
