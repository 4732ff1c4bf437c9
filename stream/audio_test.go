package stream

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSelectBestAudio(t *testing.T) {
	Convey("SelectBestAudio", t, func() {
		Convey("Should fail on an empty list", func() {
			_, err := SelectBestAudio(nil, []string{"en"})
			So(err, ShouldEqual, ErrNoAudioAvailable)
		})

		Convey("Given italian and english tracks", func() {
			tracks := []AudioCandidate{
				{SourceURL: "it.m4a", Language: "it", Container: "m4a", Bitrate: 64000},
				{SourceURL: "en.m4a", Language: "en", Container: "m4a", Bitrate: 256000},
			}

			Convey("Language order beats bitrate", func() {
				a, err := SelectBestAudio(tracks, []string{"it", "en"})
				So(err, ShouldBeNil)
				So(a.SourceURL, ShouldEqual, "it.m4a")
			})

			Convey("Language match is case-insensitive", func() {
				a, err := SelectBestAudio(tracks, []string{" EN "})
				So(err, ShouldBeNil)
				So(a.SourceURL, ShouldEqual, "en.m4a")
			})

			Convey("Empty preference defaults to english", func() {
				a, err := SelectBestAudio(tracks, nil)
				So(err, ShouldBeNil)
				So(a.Language, ShouldEqual, "en")
			})

			Convey("Unknown languages fall back to the best track overall", func() {
				a, err := SelectBestAudio(tracks, []string{"xx", "yy"})
				So(err, ShouldBeNil)
				So(a.SourceURL, ShouldEqual, "en.m4a")
			})
		})

		Convey("m4a outranks a higher bitrate in another container", func() {
			tracks := []AudioCandidate{
				{SourceURL: "en.webm", Language: "en", Container: "webm", Bitrate: 160000},
				{SourceURL: "en.m4a", Language: "en", Container: "m4a", Bitrate: 128000},
				{SourceURL: "en-low.m4a", Language: "en", Container: "m4a"},
			}
			a, err := SelectBestAudio(tracks, []string{"en"})
			So(err, ShouldBeNil)
			So(a.SourceURL, ShouldEqual, "en.m4a")
		})

		Convey("Manifest tracks never win a language match", func() {
			tracks := []AudioCandidate{
				{SourceURL: "it.m3u8", Language: "it", Container: "m4a", Bitrate: 320000},
				{SourceURL: "en.webm", Language: "en", Container: "webm", Bitrate: 64000},
			}
			a, err := SelectBestAudio(tracks, []string{"it"})
			So(err, ShouldBeNil)
			So(a.SourceURL, ShouldEqual, "en.webm")
		})

		Convey("Manifest tracks are used when nothing else exists", func() {
			tracks := []AudioCandidate{
				{SourceURL: "a.m3u8", Language: "en", Container: "webm", Bitrate: 320000},
				{SourceURL: "b.m3u8", Language: "en", Container: "m4a", Bitrate: 64000},
			}
			a, err := SelectBestAudio(tracks, []string{"fr"})
			So(err, ShouldBeNil)
			So(a.SourceURL, ShouldEqual, "b.m3u8")
		})

		Convey("Ties keep input order and the input is left untouched", func() {
			tracks := []AudioCandidate{
				{SourceURL: "first", Language: "en", Container: "m4a", Bitrate: 128000},
				{SourceURL: "second", Language: "en", Container: "m4a", Bitrate: 128000},
			}
			snapshot := append([]AudioCandidate(nil), tracks...)

			a, err := SelectBestAudio(tracks, []string{"en"})
			So(err, ShouldBeNil)
			So(a.SourceURL, ShouldEqual, "first")
			So(tracks, ShouldResemble, snapshot)
		})
	})
}

func TestNormalizeLanguages(t *testing.T) {
	Convey("NormalizeLanguages", t, func() {
		So(NormalizeLanguages(nil), ShouldResemble, []string{"en"})
		So(NormalizeLanguages([]string{"", "  "}), ShouldResemble, []string{"en"})
		So(NormalizeLanguages([]string{"IT", "en", "it"}), ShouldResemble, []string{"it", "en"})
	})
}
