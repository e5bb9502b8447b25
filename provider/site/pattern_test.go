package site

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsVideoServer(t *testing.T) {
	Convey("IsVideoServer", t, func() {
		Convey("Should match the server name regardless of case", func() {
			So(IsVideoServer("https://VOE.sx/e/abc", "Voe", nil), ShouldBeTrue)
		})

		Convey("Should match the name without stream", func() {
			So(IsVideoServer("https://dood.watch/e/x", "doodstream", nil), ShouldBeTrue)
		})

		Convey("Should not match everything when the name is only stream", func() {
			So(IsVideoServer("https://example.com/e/x", "stream", nil), ShouldBeFalse)
			So(IsVideoServer("https://upstream.example.com/e/x", "stream", nil), ShouldBeTrue)
		})

		Convey("Should match any declared server", func() {
			So(IsVideoServer("https://video.sibnet.ru/shell.php", "voe", []string{"sibnet"}), ShouldBeTrue)
			So(IsVideoServer("https://ads.example.com/banner", "voe", []string{"sibnet"}), ShouldBeFalse)
		})

		Convey("Should ignore blank names", func() {
			So(IsVideoServer("https://example.com", "", []string{" "}), ShouldBeFalse)
		})
	})
}

func TestPatterns(t *testing.T) {
	Convey("Patterns", t, func() {
		Convey("isMaster should only look at the path", func() {
			So(isMaster("https://cdn.example.com/hls/master.m3u8"), ShouldBeTrue)
			So(isMaster("https://master.example.com/hls/index.m3u8"), ShouldBeFalse)
		})

		Convey("mp4Quality should read the resolution suffix", func() {
			q, ok := mp4Quality("https://cdn.example.com/v/1080p.mp4")
			So(ok, ShouldBeTrue)
			So(q, ShouldEqual, "1080p")

			_, ok = mp4Quality("https://cdn.example.com/v/clip.mp4")
			So(ok, ShouldBeFalse)
		})

		Convey("scriptEpisodeRe should accept several notations", func() {
			for _, s := range []string{`{episode: 4}`, `"episode":"4"`, `Episode 4`} {
				n, ok := episodeNumber(scriptEpisodeRe, s)
				So(ok, ShouldBeTrue)
				So(n, ShouldEqual, 4)
			}
		})

		Convey("seasonRe should accept both spellings", func() {
			So(seasonRe.MatchString("/catalogue/x/saison2/vf"), ShouldBeTrue)
			So(seasonRe.MatchString("/catalogue/x/season-1"), ShouldBeTrue)
			So(seasonRe.MatchString("/catalogue/x/episode-1"), ShouldBeFalse)
		})
	})
}
