package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the user agent", t, func() {
		var got string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.UserAgent()
		}))
		defer server.Close()

		Convey("When no user agent is set", func() {
			resp, err := Client.Get(server.URL)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()

			Convey("Then the application one is sent", func() {
				So(got, ShouldEqual, UserAgent)
			})
		})

		Convey("When the request sets its own", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom")
			resp, err := Client.Do(req)
			So(err, ShouldBeNil)
			_ = resp.Body.Close()

			Convey("Then it is kept", func() {
				So(got, ShouldEqual, "custom")
			})
		})
	})
}
