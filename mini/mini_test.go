package mini

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mugiwara-cli/mugiwara/filesystem"
	"github.com/mugiwara-cli/mugiwara/player"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeSource struct {
	results  []*source.Result
	episodes []*source.Episode
	servers  map[string]*source.Server
	resolved []string
}

func (f *fakeSource) Name() string { return "fake" }
func (f *fakeSource) ID() string   { return "fake" }
func (f *fakeSource) Settings() source.Settings {
	return source.Settings{Servers: []string{"sibnet", "voe"}}
}

func (f *fakeSource) Search(context.Context, string, bool) []*source.Result { return f.results }

func (f *fakeSource) Episodes(context.Context, string) []*source.Episode { return f.episodes }

func (f *fakeSource) Resolve(_ context.Context, _ *source.Episode, server string) *source.Server {
	f.resolved = append(f.resolved, server)
	if s, ok := f.servers[server]; ok {
		return s
	}
	return source.Unavailable(server)
}

type fakePlayer struct {
	played []player.Stream
}

func (f *fakePlayer) Play(_ context.Context, stream player.Stream) error {
	f.played = append(f.played, stream)
	return nil
}

// scripted answers prompts in order. Selects name the option to pick.
// Once the script runs out every prompt is interrupted.
type scripted struct {
	inputs  []string
	selects []string
	asked   []string
}

func (s *scripted) Input(message string, _ func(string) []string) (string, error) {
	s.asked = append(s.asked, message)
	if len(s.inputs) == 0 {
		return "", terminal.InterruptErr
	}
	in := s.inputs[0]
	s.inputs = s.inputs[1:]
	return in, nil
}

func (s *scripted) Select(message string, options []string) (int, error) {
	s.asked = append(s.asked, message)
	if len(s.selects) == 0 {
		return 0, terminal.InterruptErr
	}
	pick := s.selects[0]
	s.selects = s.selects[1:]

	idx := lo.IndexOf(options, pick)
	if idx < 0 {
		return 0, errors.New("no option " + pick)
	}
	return idx, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		results: []*source.Result{
			{Title: "Bleach", URL: "https://site/catalogue/bleach/", Score: 1},
		},
		episodes: []*source.Episode{
			source.NewEpisode("https://site/catalogue/bleach/episode-1", 1),
			source.NewEpisode("https://site/catalogue/bleach/episode-2", 2),
		},
		servers: map[string]*source.Server{
			"voe": {
				Name:    "voe",
				Headers: map[string]string{"Referer": "https://voe.sx/"},
				Videos: []*source.Video{
					source.NewVideo("https://cdn/720.m3u8", source.HLS, "voe", "720p"),
				},
			},
		},
	}
}

func TestMini(t *testing.T) {
	Convey("Given the prompts over a site", t, func() {
		src := newFakeSource()
		out := &bytes.Buffer{}
		options := &Options{Source: src, Query: "bleach", Out: out}

		Convey("When every step is picked without a player", func() {
			prompt := &scripted{selects: []string{"Bleach (1.00)", "Episode 2", "voe", "voe - 720p"}}
			stream, err := newMini(context.Background(), options, prompt).run()

			Convey("Then the chosen stream should be returned", func() {
				So(err, ShouldBeNil)
				So(stream, ShouldNotBeNil)
				So(stream.URL, ShouldEqual, "https://cdn/720.m3u8")
				So(stream.Title, ShouldEqual, "Bleach - Episode 2")
				So(stream.Headers["Referer"], ShouldEqual, "https://voe.sx/")
			})

			Convey("Then the given query should skip the search prompt", func() {
				So(prompt.asked, ShouldNotContain, "Search")
			})
		})

		Convey("When the picked server has nothing", func() {
			prompt := &scripted{selects: []string{"Bleach (1.00)", "Episode 1", "sibnet", "voe", "voe - 720p"}}
			stream, err := newMini(context.Background(), options, prompt).run()

			Convey("Then it should be reported and another server offered", func() {
				So(err, ShouldBeNil)
				So(stream, ShouldNotBeNil)
				So(src.resolved, ShouldResemble, []string{"sibnet", "voe"})
				So(out.String(), ShouldContainSubstring, "sibnet (unavailable)")
			})
		})

		Convey("When going back from the episodes", func() {
			prompt := &scripted{
				inputs:  []string{"bleach"},
				selects: []string{"Bleach (1.00)", backOption, backOption},
			}
			stream, err := newMini(context.Background(), options, prompt).run()

			Convey("Then the titles and then the search should be asked again", func() {
				So(err, ShouldBeNil)
				So(stream, ShouldBeNil)
				So(prompt.asked, ShouldResemble, []string{"Title", "Episode", "Title", "Search", "Title"})
			})
		})

		Convey("When nothing is found", func() {
			src.results = nil
			prompt := &scripted{inputs: []string{"other"}}
			stream, err := newMini(context.Background(), options, prompt).run()

			Convey("Then the search should be asked again", func() {
				So(err, ShouldBeNil)
				So(stream, ShouldBeNil)
				So(prompt.asked, ShouldResemble, []string{"Search", "Search"})
				So(out.String(), ShouldContainSubstring, `nothing found for "bleach" on fake`)
			})
		})

		Convey("When a player is set", func() {
			p := &fakePlayer{}
			options.Player = p
			prompt := &scripted{selects: []string{"Bleach (1.00)", "Episode 1", "voe", "voe - 720p", backOption}}
			stream, err := newMini(context.Background(), options, prompt).run()

			Convey("Then the stream should be played and the qualities asked again", func() {
				So(err, ShouldBeNil)
				So(stream, ShouldNotBeNil)
				So(p.played, ShouldHaveLength, 1)
				So(prompt.asked, ShouldResemble, []string{"Title", "Episode", "Server", "Quality", "Quality", "Server"})
			})
		})
	})
}
