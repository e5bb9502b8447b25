package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEpisode(t *testing.T) {
	Convey("Episode", t, func() {
		ep := NewEpisode("https://site/catalogue/one-piece/episode-3", 3)

		Convey("Identifier is the page URL", func() {
			So(ep.ID, ShouldEqual, ep.URL)
		})

		Convey("String", func() {
			So(ep.String(), ShouldEqual, "Episode 3")
		})
	})
}

func TestResult(t *testing.T) {
	Convey("Result", t, func() {
		c := Candidate{Title: "One Piece", URL: "https://site/catalogue/one-piece"}

		Convey("Records the dub intent", func() {
			So(NewResult(c, 1.5, true).SubOrDub, ShouldEqual, Dub)
			So(NewResult(c, 1.5, false).SubOrDub, ShouldEqual, Sub)
		})

		Convey("Uses the URL as identifier", func() {
			r := NewResult(c, 1, false)
			So(r.ID, ShouldEqual, c.URL)
			So(r.String(), ShouldEqual, "One Piece")
			So(r.Describe(), ShouldEqual, "One Piece (1.00)")
		})
	})
}
