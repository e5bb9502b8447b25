package site

import (
	"context"
	"testing"

	"github.com/mugiwara-cli/mugiwara/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLocate(t *testing.T) {
	Convey("Given episode pages", t, func() {
		f := newFixture()
		defer f.srv.Close()
		s := f.site()
		ctx := context.Background()

		Convey("When the server is embedded in an iframe", func() {
			embed, ok := s.Locate(ctx, f.srv.URL+"/ep/iframe", "sibnet").Get()

			Convey("Then the protocol relative src should be resolved", func() {
				So(ok, ShouldBeTrue)
				So(embed.URL, ShouldEqual, "http://video.sibnet.ru/shell.php?videoid=1")
				So(embed.Server, ShouldEqual, "sibnet")
			})
		})

		Convey("When the server is named in a data attribute", func() {
			embed, ok := s.Locate(ctx, f.srv.URL+"/ep/data", "voe").Get()

			Convey("Then the first element with a URL should be used", func() {
				So(ok, ShouldBeTrue)
				So(embed.URL, ShouldEqual, f.srv.URL+"/embed/voe")
			})
		})

		Convey("When the server only appears in a script", func() {
			embed, ok := s.Locate(ctx, f.srv.URL+"/ep/script", "vidmoly").Get()

			Convey("Then the quoted URL of the server should be used", func() {
				So(ok, ShouldBeTrue)
				So(embed.URL, ShouldEqual, "https://vidmoly.to/embed-x.html")
			})
		})

		Convey("When the server is absent", func() {
			So(s.Locate(ctx, f.srv.URL+"/ep/none", "voe").IsAbsent(), ShouldBeTrue)
		})

		Convey("When the page cannot be loaded", func() {
			So(s.Locate(ctx, f.srv.URL+"/ep/missing", "voe").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given episode pages", t, func() {
		f := newFixture()
		defer f.srv.Close()
		s := f.site()
		ctx := context.Background()

		Convey("When the embed exposes streams", func() {
			server := s.Resolve(ctx, source.NewEpisode(f.srv.URL+"/ep/data", 1), "voe")

			Convey("Then every stream should be listed", func() {
				So(server.Name, ShouldEqual, "voe")
				So(server.Available(), ShouldBeTrue)
				So(server.Videos, ShouldHaveLength, 5)
			})

			Convey("Then headers should carry the site origin", func() {
				So(server.Headers, ShouldResemble, map[string]string{
					"referer": f.srv.URL,
					"origin":  f.srv.URL,
				})
			})

			Convey("Then only the embed and manifests should go through the proxy", func() {
				So(f.wasProxied("/embed/voe"), ShouldBeTrue)
				So(f.wasProxied("/hls/master.m3u8"), ShouldBeTrue)
				So(f.wasProxied("/ep/data"), ShouldBeFalse)
			})
		})

		Convey("When the embed yields nothing", func() {
			server := s.Resolve(ctx, source.NewEpisode(f.srv.URL+"/ep/iframe", 1), "sibnet")

			Convey("Then the embed itself should be offered", func() {
				So(server.Videos, ShouldHaveLength, 1)
				So(server.Videos[0].URL, ShouldEqual, "http://video.sibnet.ru/shell.php?videoid=1")
				So(server.Videos[0].Kind, ShouldEqual, source.HLS)
				So(server.Videos[0].Quality, ShouldEqual, "sibnet - Auto")
			})
		})

		Convey("When the server is unknown", func() {
			server := s.Resolve(ctx, source.NewEpisode(f.srv.URL+"/ep/none", 1), "nonexistent-server")

			Convey("Then it should be marked unavailable", func() {
				So(server.Name, ShouldEqual, "nonexistent-server (unavailable)")
				So(server.Videos, ShouldBeEmpty)
				So(server.Available(), ShouldBeFalse)
			})
		})

		Convey("When the episode only carries its identifier", func() {
			server := s.Resolve(ctx, &source.Episode{ID: f.srv.URL + "/ep/data", Number: 1}, "voe")

			Convey("Then the identifier should be used as the page", func() {
				So(server.Available(), ShouldBeTrue)
				So(server.Headers["referer"], ShouldEqual, f.srv.URL)
			})
		})

		Convey("When there is no episode", func() {
			So(s.Resolve(ctx, nil, "voe").Available(), ShouldBeFalse)
			So(s.Resolve(ctx, &source.Episode{}, "voe").Name, ShouldEqual, "voe (unavailable)")
		})
	})
}

func TestOriginOf(t *testing.T) {
	Convey("originOf", t, func() {
		So(originOf("https://anime.example.com/catalogue/x/episode-1"), ShouldEqual, "https://anime.example.com")
		So(originOf("relative/path"), ShouldEqual, "relative/path")
	})
}
