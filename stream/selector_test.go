package stream

import (
	"encoding/json"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func ladder() []VideoCandidate {
	return []VideoCandidate{
		{SourceURL: "144.mp4", Container: "mp4", Width: 256, Height: 144, FrameRate: 30},
		{SourceURL: "720.mp4", Container: "mp4", Width: 1280, Height: 720, FrameRate: 30},
		{SourceURL: "1080.mp4", Container: "mp4", Width: 1920, Height: 1080, FrameRate: 30},
		{SourceURL: "2160.webm", Container: "webm", Width: 3840, Height: 2160, FrameRate: 60},
	}
}

func tracks() []AudioCandidate {
	return []AudioCandidate{
		{SourceURL: "it.m4a", Language: "it", Container: "m4a", Bitrate: 64000},
		{SourceURL: "en.m4a", Language: "en", Container: "m4a", Bitrate: 128000},
	}
}

func TestSelectHighestQualityStream(t *testing.T) {
	Convey("SelectHighestQualityStream", t, func() {
		Convey("Muxed progressive beats a higher resolution video-only stream", func() {
			videos := []VideoCandidate{
				{SourceURL: "4k.webm", Container: "webm", Width: 3840, Height: 2160},
				{SourceURL: "muxed.mp4", Container: "mp4", Width: 1920, Height: 1080, FrameRate: 30, QualityLabel: "1080p", HasEmbeddedAudio: true},
			}

			r, err := Select(videos, tracks(), []string{"en"}, "")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "muxed.mp4")
			So(r.Tier, ShouldEqual, TierMuxed)
			So(r.Resolution, ShouldEqual, "1920x1080")
			So(r.QualityLabel, ShouldEqual, "1080p")
			So(r.FrameRate.MustGet(), ShouldEqual, 30)
			So(r.AudioURL.IsPresent(), ShouldBeFalse)
			So(r.AudioLanguage.IsPresent(), ShouldBeFalse)
		})

		Convey("The ceiling is applied before maximizing", func() {
			r, err := Select(ladder(), tracks(), []string{"en"}, "720p")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "720.mp4")
			So(r.Tier, ShouldEqual, TierSeparate)
			So(r.AudioURL.MustGet(), ShouldEqual, "en.m4a")
			So(r.AudioLanguage.MustGet(), ShouldEqual, "en")

			r, err = Select(ladder(), tracks(), []string{"en"}, "240p")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "144.mp4")
			So(r.Resolution, ShouldEqual, "256x144")
			So(r.QualityLabel, ShouldEqual, "144p")
		})

		Convey("An unknown ceiling label acts as 1080p", func() {
			r, err := Select(ladder(), tracks(), nil, "ultra")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "1080.mp4")
		})

		Convey("Without a ceiling the tallest progressive video wins", func() {
			r, err := Select(ladder(), tracks(), []string{"it", "en"}, "")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "2160.webm")
			So(r.AudioURL.MustGet(), ShouldEqual, "it.m4a")
			So(r.AudioLanguage.MustGet(), ShouldEqual, "it")
		})

		Convey("Frame rate breaks height ties", func() {
			videos := []VideoCandidate{
				{SourceURL: "30.webm", Container: "webm", Width: 1280, Height: 720, FrameRate: 30},
				{SourceURL: "60.webm", Container: "webm", Width: 1280, Height: 720, FrameRate: 60},
			}
			r, err := Select(videos, tracks(), nil, "")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "60.webm")
		})

		Convey("Unknown heights always survive the ceiling", func() {
			videos := []VideoCandidate{
				{SourceURL: "mystery.webm", Container: "webm"},
				{SourceURL: "big.webm", Container: "webm", Width: 3840, Height: 2160},
			}
			r, err := Select(videos, nil, nil, "144p")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "mystery.webm")
			So(r.Resolution, ShouldEqual, "0x0")
			So(r.QualityLabel, ShouldBeEmpty)
			So(r.FrameRate.IsPresent(), ShouldBeFalse)
		})

		Convey("No audio yields a video-only result", func() {
			r, err := Select(ladder(), nil, []string{"en"}, "")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "2160.webm")
			So(r.AudioURL.IsPresent(), ShouldBeFalse)
			So(r.AudioLanguage.IsPresent(), ShouldBeFalse)
		})

		Convey("No video is fatal regardless of audio", func() {
			_, err := Select(nil, tracks(), []string{"en"}, "")
			So(err, ShouldEqual, ErrNoSuitableStream)

			_, err = Select(ladder()[1:], tracks(), []string{"en"}, "144p")
			So(err, ShouldEqual, ErrNoSuitableStream)
		})

		Convey("Manifests are the last resort", func() {
			videos := []VideoCandidate{
				{SourceURL: "hi.m3u8", Container: "mp4", Width: 1920, Height: 1080, HasEmbeddedAudio: true},
				{SourceURL: "lo.mp4", Container: "webm", Width: 640, Height: 360},
			}
			r, err := Select(videos, tracks(), nil, "")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "lo.mp4")
			So(r.Tier, ShouldEqual, TierSeparate)

			r, err = Select(videos[:1], tracks(), nil, "")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, "hi.m3u8")
			So(r.Tier, ShouldEqual, TierFallback)
			So(r.AudioURL.MustGet(), ShouldEqual, "en.m4a")

			r, err = Select(videos[:1], nil, nil, "")
			So(err, ShouldBeNil)
			So(r.Tier, ShouldEqual, TierFallback)
			So(r.AudioURL.IsPresent(), ShouldBeFalse)
			So(r.AudioLanguage.IsPresent(), ShouldBeFalse)
		})

		Convey("A manifest on a Windows path loses to a progressive file", func() {
			videos := []VideoCandidate{
				{SourceURL: `D:\kids\show\index.m3u8`, Container: "mp4", Width: 1920, Height: 1080, HasEmbeddedAudio: true},
				{SourceURL: `D:\kids\show\show.mp4`, Container: "mp4", Width: 1280, Height: 720, HasEmbeddedAudio: true},
			}
			r, err := Select(videos, tracks(), nil, "")
			So(err, ShouldBeNil)
			So(r.VideoURL, ShouldEqual, `D:\kids\show\show.mp4`)
			So(r.Tier, ShouldEqual, TierMuxed)
		})

		Convey("Tracks without a language are reported as undetermined", func() {
			r, err := Select(ladder(), []AudioCandidate{{SourceURL: "x.m4a", Container: "m4a"}}, nil, "")
			So(err, ShouldBeNil)
			So(r.AudioURL.MustGet(), ShouldEqual, "x.m4a")
			So(r.AudioLanguage.MustGet(), ShouldEqual, UndeterminedLanguage)
		})

		Convey("Selection is pure", func() {
			videos, audios := ladder(), tracks()
			videosBefore := append([]VideoCandidate(nil), videos...)
			audiosBefore := append([]AudioCandidate(nil), audios...)
			req := Request{Videos: videos, Audios: audios, PreferredLanguages: []string{"en"}, MaxQuality: mo.Some("1080p")}

			first, err := SelectHighestQualityStream(req)
			So(err, ShouldBeNil)
			second, err := SelectHighestQualityStream(req)
			So(err, ShouldBeNil)

			a, err := json.Marshal(first)
			So(err, ShouldBeNil)
			b, err := json.Marshal(second)
			So(err, ShouldBeNil)
			So(string(a), ShouldEqual, string(b))
			So(videos, ShouldResemble, videosBefore)
			So(audios, ShouldResemble, audiosBefore)
		})
	})
}

func TestResult(t *testing.T) {
	Convey("Result", t, func() {
		r, err := Select(ladder(), tracks(), []string{"en"}, "720p")
		So(err, ShouldBeNil)
		So(r.HasSeparateAudio(), ShouldBeTrue)
		So(r.String(), ShouldEqual, "720p (1280x720) 30fps [en]")
	})
}

func TestFallbackAudio(t *testing.T) {
	Convey("Given the outcome of audio selection", t, func() {
		audios := tracks()

		Convey("A selected track is kept", func() {
			got := fallbackAudio(audios, audios[1], nil)
			So(got.MustGet(), ShouldResemble, audios[1])
		})

		Convey("A rejected non-empty list falls back to its first track", func() {
			got := fallbackAudio(audios, AudioCandidate{}, ErrNoAudioAvailable)
			So(got.MustGet(), ShouldResemble, audios[0])
		})

		Convey("An empty list yields no audio", func() {
			So(fallbackAudio(nil, AudioCandidate{}, ErrNoAudioAvailable).IsPresent(), ShouldBeFalse)
			So(fallbackAudio(audios, AudioCandidate{}, ErrNoSuitableStream).IsPresent(), ShouldBeFalse)
		})
	})
}
