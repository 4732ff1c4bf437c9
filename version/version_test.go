package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.0", "0.10.0", -1},
			{"2.0.0-rc.1", "2.0.0", 0},
			{"1.0.1+build.7", "v1.0.0", 1},
		}

		for _, c := range cases {
			Convey(c.a+" vs "+c.b, func() {
				got, err := Compare(c.a, c.b)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, c.want)
			})
		}

		Convey("When one is malformed", func() {
			_, err := Compare("latest", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}
