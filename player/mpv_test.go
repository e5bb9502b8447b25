package player

import (
	"context"
	"testing"

	"github.com/mugiwara-cli/mugiwara/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMPV(t *testing.T) {
	Convey("Given an mpv player", t, func() {
		mpv := NewMPV("")

		Convey("When building arguments for a stream with headers", func() {
			args, err := mpv.args(Stream{
				URL:   "https://cdn.example.com/hls/720/index.m3u8",
				Title: "One Piece\nEpisode 1",
				Headers: map[string]string{
					"referer": "https://anime.example.com",
					"origin":  "https://anime.example.com",
				},
			})

			Convey("Then the title should be flattened", func() {
				So(err, ShouldBeNil)
				So(args, ShouldContain, "--force-media-title=One Piece Episode 1")
			})

			Convey("Then headers should be passed in key order", func() {
				So(args, ShouldContain, "--referrer=https://anime.example.com")
				So(args, ShouldContain, "--http-header-fields=origin: https://anime.example.com,referer: https://anime.example.com")
			})

			Convey("Then the target should come last", func() {
				So(args[len(args)-1], ShouldEqual, "https://cdn.example.com/hls/720/index.m3u8")
			})
		})

		Convey("When the target looks like a flag", func() {
			_, err := mpv.args(Stream{URL: "--script=evil.lua"})
			So(err, ShouldNotBeNil)
		})

		Convey("When the scheme is not http", func() {
			_, err := mpv.args(Stream{URL: "file:///etc/passwd"})
			So(err, ShouldNotBeNil)
		})

		Convey("When the binary does not exist", func() {
			err := NewMPV("mugiwara-missing-player").Play(context.Background(), Stream{URL: "https://cdn.example.com/a.mp4"})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNewStream(t *testing.T) {
	Convey("NewStream", t, func() {
		server := &source.Server{Name: "voe", Headers: map[string]string{"referer": "https://anime.example.com"}}
		video := source.NewVideo("https://cdn.example.com/a.m3u8", source.HLS, "voe", "720p")

		stream := NewStream(server, video, "One Piece - Episode 1")
		So(stream.URL, ShouldEqual, video.URL)
		So(stream.Headers, ShouldResemble, server.Headers)
		So(stream.Title, ShouldEqual, "One Piece - Episode 1")
	})
}
