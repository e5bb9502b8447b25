package site

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/mugiwara-cli/mugiwara/network"
	. "github.com/smartystreets/goconvey/convey"
)

// pages served by the fixture; {{host}} is replaced with the server URL.
var pages = map[string]string{
	"/catalogue": `<html><body>
<nav><a href="/catalogue/">Catalogue</a></nav>
<a href="/catalogue/one-piece-film-red/"><div><h3>One Piece Film Red</h3></div></a>
<a href="/catalogue/one-piece/"><h3>One Piece</h3></a>
<a href="/catalogue/naruto/" title="Naruto"><img src="/naruto.jpg"></a>
<a href="/catalogue/x/">X</a>
</body></html>`,

	"/flat": `<a href="/">Home</a><a href="/watch?catalogue=bleach">Bleach</a>`,
	"/bare": `<a href="/shows/bleach"><h2>Bleach</h2></a><a href="/shows/b">B</a>`,

	"/catalogue/one-piece/": `<html><body>
<h1>One Piece</h1>
<a href="/catalogue/other/saison2/">Other</a>
<a href="/catalogue/one-piece/saison1/vostfr/">Saison 1</a>
</body></html>`,
	"/catalogue/one-piece/saison1/vostfr/": `<html><body>
<div data-episode="2" data-url="/catalogue/one-piece/saison1/vostfr/episode-2"></div>
<div data-episode="1" data-url="/catalogue/one-piece/saison1/vostfr/episode-1"></div>
<div data-episode="2" data-url="/duplicate"></div>
<div data-episode="abc"></div>
</body></html>`,
	"/catalogue/bleach/": `<html><body>
<aside><a href="/catalogue/one-piece/saison1/vostfr/">One Piece</a></aside>
<div data-episode="1" data-url="/catalogue/bleach/episode-1"></div>
<div data-episode="2" data-url="/catalogue/bleach/episode-2"></div>
</body></html>`,
	"/catalogue/script-show/": `<html><body>
<script>var ready = true;</script>
<script>var list = [{"episode": 3}, {"episode": 1}, {"episode": 2}, {"episode": 2}];</script>
</body></html>`,
	"/catalogue/links-show/": `<html><body>
<a href="/catalogue/links-show/episode-2">Next</a>
<a href="/catalogue/links-show/watch">Ep. 1</a>
<a href="#top">Episode 9</a>
<a href="/about">About</a>
</body></html>`,
	"/catalogue/empty/": `<html><body><p>Coming soon</p></body></html>`,

	"/ep/iframe": `<iframe src="https://ads.example.com/banner"></iframe>
<iframe src="//video.sibnet.ru/shell.php?videoid=1"></iframe>`,
	"/ep/data": `<div data-server="VOE HD" data-url=""></div>
<div data-server="Voe HD" data-src="/embed/voe"></div>`,
	"/ep/script": `<script>var players = {"vidmoly": "https://vidmoly.to/embed-x.html", "other": "https://cdn.example.com/x.js"};</script>`,
	"/ep/none":   `<html><body><p>Nothing here</p></body></html>`,

	"/embed/voe": `<html><script>
var sources = {"hls": "{{host}}/hls/master.m3u8", "alt": "{{host}}/hls/master.m3u8", "mp4": "{{host}}/files/video_720p.mp4", "low": "https://cdn.example.com/clip.mp4?token=a&amp;b=1"};
</script></html>`,
	"/embed/plain":  `<script>player.setup({file: "https://cdn.example.com/live/index.m3u8"});</script>`,
	"/embed/broken": `<script>var src = "{{host}}/hls/broken/master.m3u8";</script>`,
	"/embed/empty":  `<html><body>Video removed</body></html>`,

	"/hls/master.m3u8": `#EXTM3U
#EXT-X-STREAM-INF:BANDWIDTH=800000,RESOLUTION=640x360
360/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=2800000,RESOLUTION=1280x720
720/index.m3u8
#EXT-X-STREAM-INF:BANDWIDTH=5000000,RESOLUTION=1920x1080
https://cdn.example.com/1080/index.m3u8
`,
	"/hls/broken/master.m3u8": `<html>not a playlist</html>`,
}

type fixture struct {
	srv *httptest.Server

	mu      sync.Mutex
	proxied []string
}

func newFixture() *fixture {
	f := &fixture{}

	mux := http.NewServeMux()
	mux.HandleFunc("/proxy", func(w http.ResponseWriter, r *http.Request) {
		target, err := url.Parse(r.URL.Query().Get("url"))
		if err != nil || "http://"+target.Host != f.srv.URL {
			http.NotFound(w, r)
			return
		}

		f.mu.Lock()
		f.proxied = append(f.proxied, target.Path)
		f.mu.Unlock()

		f.serve(w, r, target.Path)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.serve(w, r, r.URL.Path)
	})

	f.srv = httptest.NewServer(mux)
	return f
}

func (f *fixture) serve(w http.ResponseWriter, r *http.Request, path string) {
	body, ok := pages[path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{host}}", f.srv.URL)))
}

func (f *fixture) wasProxied(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, p := range f.proxied {
		if p == path {
			return true
		}
	}
	return false
}

func (f *fixture) site(mutate ...func(*Config)) *Site {
	cfg := Config{
		Name:        "Test Site",
		URL:         f.srv.URL,
		Proxy:       f.srv.URL + "/proxy?url=",
		Servers:     []string{"sibnet", "voe", "vidmoly", "doodstream"},
		SupportsDub: true,
	}
	for _, m := range mutate {
		m(&cfg)
	}

	s, err := New(cfg, network.NewDirect(f.srv.Client(), "mugiwara-test"), nil)
	if err != nil {
		panic(err)
	}
	return s
}

func TestNew(t *testing.T) {
	Convey("Given a fixture site", t, func() {
		f := newFixture()
		defer f.srv.Close()

		Convey("When it is built from a minimal config", func() {
			s := f.site()

			Convey("Then defaults should be applied", func() {
				So(s.Name(), ShouldEqual, "Test Site")
				So(s.ID(), ShouldEqual, "test-site")
				So(s.Config().CatalogueURL, ShouldEqual, f.srv.URL+"/catalogue")
				So(s.Settings().SupportsDub, ShouldBeTrue)
				So(s.Settings().Servers, ShouldResemble, []string{"sibnet", "voe", "vidmoly", "doodstream"})
			})

			Convey("Then settings should not alias the config", func() {
				settings := s.Settings()
				settings.Servers[0] = "changed"
				So(s.Settings().Servers[0], ShouldEqual, "sibnet")
			})
		})

		Convey("When the config is invalid", func() {
			_, err := New(Config{Name: "broken", URL: "not a url", Servers: []string{"voe"}}, network.NewDirect(nil, ""), nil)

			Convey("Then an error should be returned", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
