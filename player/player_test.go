package player

import (
	"context"
	"testing"

	"github.com/safeplay-cli/safeplay/stream"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMPV(t *testing.T) {
	Convey("Given mpv", t, func() {
		mpv := NewMPV()

		Convey("When the result has a separate audio track", func() {
			result := stream.Result{
				VideoURL:      "https://cdn.example.com/v.webm",
				AudioURL:      mo.Some("https://cdn.example.com/a.m4a"),
				AudioLanguage: mo.Some("en"),
			}

			Convey("Then the audio is passed with --audio-file", func() {
				args, err := mpv.Args(result, "Counting\nwith Cats")
				So(err, ShouldBeNil)
				So(args, ShouldContain, "--audio-file=https://cdn.example.com/a.m4a")
				So(args, ShouldContain, "--force-media-title=Counting with Cats")
				So(args[len(args)-1], ShouldEqual, "https://cdn.example.com/v.webm")
			})
		})

		Convey("When the result is muxed", func() {
			result := stream.Result{VideoURL: "https://cdn.example.com/muxed.mp4"}

			Convey("Then no audio file is passed", func() {
				args, err := mpv.Args(result, "")
				So(err, ShouldBeNil)
				So(args, ShouldResemble, []string{"--no-terminal", "--force-window=yes", "https://cdn.example.com/muxed.mp4"})
			})
		})

		Convey("When a target looks like a flag", func() {
			result := stream.Result{VideoURL: "--script=evil.lua"}

			Convey("Then it is rejected", func() {
				_, err := mpv.Args(result, "title")
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When the audio target has an unsupported scheme", func() {
			result := stream.Result{VideoURL: "v.mp4", AudioURL: mo.Some("ftp://host/a.m4a")}

			Convey("Then it is rejected", func() {
				_, err := mpv.Args(result, "title")
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When it was never started", func() {
			Convey("Then waiting returns immediately", func() {
				<-mpv.Wait()
				So(mpv.Close(), ShouldBeNil)
			})
		})
	})
}

func TestIINA(t *testing.T) {
	Convey("Given IINA", t, func() {
		args, err := NewIINA().Args(stream.Result{
			VideoURL: "https://cdn.example.com/v.webm",
			AudioURL: mo.Some("https://cdn.example.com/a.m4a"),
		}, "Cats")

		So(err, ShouldBeNil)
		So(args, ShouldContain, "--mpv-audio-file=https://cdn.example.com/a.m4a")
		So(args, ShouldContain, "--mpv-force-media-title=Cats")
	})
}

func TestNew(t *testing.T) {
	Convey("Given a backend name", t, func() {
		Convey("When it is known", func() {
			p, err := New(" MPV ")
			So(err, ShouldBeNil)
			So(p.Name(), ShouldEqual, "mpv")
		})

		Convey("When it is unknown", func() {
			_, err := New("vlc")
			So(err, ShouldNotBeNil)
			So(Available(), ShouldResemble, []string{"iina", "mpv"})
		})
	})
}

type fakePlayer struct {
	exited chan struct{}
	closed int
}

func (f *fakePlayer) Name() string { return "fake" }

func (f *fakePlayer) Args(stream.Result, string) ([]string, error) { return nil, nil }

func (f *fakePlayer) Play(stream.Result, string) error { return nil }

func (f *fakePlayer) Wait() <-chan struct{} { return f.exited }

func (f *fakePlayer) Close() error {
	f.closed++
	return nil
}

func TestWatch(t *testing.T) {
	Convey("Given a running player", t, func() {
		p := &fakePlayer{exited: make(chan struct{})}

		Convey("When it exits on its own it is not closed", func() {
			close(p.exited)
			So(Watch(context.Background(), p), ShouldBeNil)
			So(p.closed, ShouldEqual, 0)
		})

		Convey("When the context is cancelled it is closed", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			So(Watch(ctx, p), ShouldEqual, context.Canceled)
			So(p.closed, ShouldEqual, 1)
		})
	})
}
