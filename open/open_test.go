package open

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCommand(t *testing.T) {
	Convey("Given a stream URL", t, func() {
		const target = "https://cdn.example.org/video.mp4"

		Convey("Linux should use xdg-open", func() {
			cmd, err := command("linux", target)
			So(err, ShouldBeNil)
			So(filepath.Base(cmd.Path), ShouldEqual, "xdg-open")
			So(cmd.Args, ShouldResemble, []string{"xdg-open", target})
		})

		Convey("macOS should use open", func() {
			cmd, err := command("darwin", target)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{"open", target})
		})

		Convey("Windows should go through rundll32", func() {
			cmd, err := command("windows", target)
			So(err, ShouldBeNil)
			So(cmd.Args[1:], ShouldResemble, []string{"url.dll,FileProtocolHandler", target})
		})

		Convey("Unknown systems should fail", func() {
			_, err := command("plan9", target)
			So(err, ShouldNotBeNil)
		})
	})
}
