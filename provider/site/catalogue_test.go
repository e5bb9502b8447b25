package site

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mugiwara-cli/mugiwara/match"
	"github.com/mugiwara-cli/mugiwara/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	var page strings.Builder
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&page, `<a href="/catalogue/bleach-%d/">Bleach %d</a>`, i, i)
	}
	pages["/many"] = page.String()
}

func titles(results []*source.Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestSearch(t *testing.T) {
	Convey("Given a catalogue", t, func() {
		f := newFixture()
		defer f.srv.Close()
		s := f.site()
		ctx := context.Background()

		Convey("When searching with a specific query", func() {
			results := s.Search(ctx, "one piece film red", false)

			Convey("Then results should be ranked by score", func() {
				So(titles(results), ShouldResemble, []string{"One Piece Film Red", "One Piece"})
				So(results[0].Score, ShouldEqual, match.MaxScore)
				So(results[1].Score, ShouldEqual, 0.75)
			})

			Convey("Then URLs should be absolute and double as identifiers", func() {
				So(results[0].URL, ShouldEqual, f.srv.URL+"/catalogue/one-piece-film-red/")
				So(results[0].ID, ShouldEqual, results[0].URL)
			})

			Convey("Then the sub preference should be recorded", func() {
				So(results[0].SubOrDub, ShouldEqual, source.Sub)
			})

			Convey("Then the catalogue should be fetched directly", func() {
				So(f.wasProxied("/catalogue"), ShouldBeFalse)
			})
		})

		Convey("When scores are tied", func() {
			results := s.Search(ctx, "one piece", true)

			Convey("Then page order should be kept", func() {
				So(titles(results), ShouldResemble, []string{"One Piece Film Red", "One Piece"})
				So(results[0].SubOrDub, ShouldEqual, source.Dub)
			})
		})

		Convey("When the title comes from the title attribute", func() {
			results := s.Search(ctx, "naruto", false)

			Convey("Then it should be found", func() {
				So(titles(results), ShouldResemble, []string{"Naruto"})
			})
		})

		Convey("When the query normalizes to nothing", func() {
			So(s.Search(ctx, " :: ", false), ShouldBeEmpty)
		})

		Convey("When nothing matches", func() {
			results := s.Search(ctx, "bleach", false)

			Convey("Then an empty, non nil slice should be returned", func() {
				So(results, ShouldNotBeNil)
				So(results, ShouldBeEmpty)
			})
		})

		Convey("When the catalogue cannot be loaded", func() {
			broken := f.site(func(c *Config) { c.CatalogueURL = f.srv.URL + "/missing" })
			So(broken.Search(ctx, "one piece", false), ShouldBeEmpty)
		})

		Convey("When entries do not live under the catalogue path", func() {
			Convey("Then links containing the keyword should be used", func() {
				flat := f.site(func(c *Config) { c.CatalogueURL = f.srv.URL + "/flat" })
				results := flat.Search(ctx, "bleach", false)
				So(titles(results), ShouldResemble, []string{"Bleach"})
				So(results[0].URL, ShouldEqual, f.srv.URL+"/watch?catalogue=bleach")
			})

			Convey("Then any link should be used as a last resort", func() {
				bare := f.site(func(c *Config) { c.CatalogueURL = f.srv.URL + "/bare" })
				results := bare.Search(ctx, "bleach", false)
				So(titles(results), ShouldResemble, []string{"Bleach"})
			})
		})

		Convey("When many entries match", func() {
			many := f.site(func(c *Config) { c.CatalogueURL = f.srv.URL + "/many" })
			results := many.Search(ctx, "bleach", false)

			Convey("Then results should be capped", func() {
				So(results, ShouldHaveLength, source.MaxResults)
				So(results[0].Title, ShouldEqual, "Bleach 1")
			})
		})
	})
}
