package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestReadJSON(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("A valid document is decoded", func() {
			So(API().WriteFile("/doc.json", []byte(`{"id":"abc"}`), 0o644), ShouldBeNil)

			var doc struct {
				ID string `json:"id"`
			}
			So(ReadJSON("/doc.json", &doc), ShouldBeNil)
			So(doc.ID, ShouldEqual, "abc")
		})

		Convey("A broken document reports its path", func() {
			So(API().WriteFile("/broken.json", []byte(`{`), 0o644), ShouldBeNil)

			var doc map[string]any
			err := ReadJSON("/broken.json", &doc)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "/broken.json")
		})

		Convey("A missing document is an error", func() {
			var doc map[string]any
			So(ReadJSON("/missing.json", &doc), ShouldNotBeNil)
		})
	})
}
