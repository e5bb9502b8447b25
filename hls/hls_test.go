package hls

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const master = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-STREAM-INF:BANDWIDTH=5000000,RESOLUTION=1920x1080
https://cdn.example.com/v/1080/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2800000,RESOLUTION=1280x720
720/index.m3u8

#EXT-X-STREAM-INF:BANDWIDTH=1400000,RESOLUTION=854x480
/abs/480/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=400000,RESOLUTION=426x240
240/index.m3u8
`

func TestLabel(t *testing.T) {
	Convey("Label", t, func() {
		So(Label(2160), ShouldEqual, "1080p")
		So(Label(1080), ShouldEqual, "1080p")
		So(Label(1079), ShouldEqual, "720p")
		So(Label(480), ShouldEqual, "480p")
		So(Label(360), ShouldEqual, "360p")
		So(Label(240), ShouldEqual, Auto)
	})
}

func TestParseMaster(t *testing.T) {
	Convey("ParseMaster", t, func() {
		Convey("Should return nothing when a line exceeds the scan limit", func() {
			body := master + "#EXT-X-STREAM-INF:RESOLUTION=640x360\n" + strings.Repeat("a", maxLine+1) + "\n"
			So(ParseMaster("https://h/a/master.m3u8", body), ShouldBeEmpty)
		})

		Convey("Should label every variant in manifest order", func() {
			variants := ParseMaster("https://h/a/master.m3u8", master)
			So(variants, ShouldHaveLength, 4)
			So(variants[0].Quality, ShouldEqual, "1080p")
			So(variants[1].Quality, ShouldEqual, "720p")
			So(variants[2].Quality, ShouldEqual, "480p")
			So(variants[3].Quality, ShouldEqual, "Auto")
		})

		Convey("Should resolve relative variants against the manifest directory", func() {
			variants := ParseMaster("https://h/a/master.m3u8", master)
			So(variants[0].URL, ShouldEqual, "https://cdn.example.com/v/1080/index.m3u8")
			So(variants[1].URL, ShouldEqual, "https://h/a/720/index.m3u8")
			So(variants[2].URL, ShouldEqual, "https://h/abs/480/index.m3u8")
			So(variants[3].URL, ShouldEqual, "https://h/a/240/index.m3u8")
		})

		Convey("Should ignore the query string of the manifest when resolving", func() {
			variants := ParseMaster("https://h/a/master.m3u8?token=x/y", master)
			So(variants[1].URL, ShouldEqual, "https://h/a/720/index.m3u8")
		})

		Convey("Should reject bodies without the playlist header", func() {
			So(ParseMaster("https://h/a/master.m3u8", "<html>nope</html>"), ShouldBeEmpty)
			So(ParseMaster("https://h/a/master.m3u8", ""), ShouldBeEmpty)
		})

		Convey("Should accept CRLF line endings and a byte order mark", func() {
			body := "\uFEFF#EXTM3U\r\n#EXT-X-STREAM-INF:RESOLUTION=1280x720\r\nlow.m3u8\r\n"
			variants := ParseMaster("https://h/a/master.m3u8", body)
			So(variants, ShouldHaveLength, 1)
			So(variants[0].URL, ShouldEqual, "https://h/a/low.m3u8")
		})

		Convey("Should pair labels by adjacency", func() {
			body := `#EXTM3U
#EXT-X-STREAM-INF:RESOLUTION=1920x1080
#EXT-X-STREAM-INF:RESOLUTION=640x360
only.m3u8
orphan.m3u8
`
			variants := ParseMaster("https://h/master.m3u8", body)
			So(variants, ShouldHaveLength, 1)
			So(variants[0].Quality, ShouldEqual, "360p")
			So(variants[0].URL, ShouldEqual, "https://h/only.m3u8")
		})

		Convey("Should label stream info without a resolution as Auto", func() {
			body := "#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=800000\naudio.m3u8\n"
			variants := ParseMaster("https://h/master.m3u8", body)
			So(variants, ShouldHaveLength, 1)
			So(variants[0].Quality, ShouldEqual, Auto)
			So(variants[0].URL, ShouldEqual, "https://h/audio.m3u8")
		})
	})
}
