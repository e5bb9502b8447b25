package dom

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const page = `<html><body>
<a href="/catalogue/one-piece" title="One Piece"><h3> One Piece </h3></a>
<a href="/catalogue/naruto" data-episode="">Naruto</a>
<script>var player = "https://voe.sx/e/abc";</script>
</body></html>`

func TestDocument(t *testing.T) {
	Convey("Document", t, func() {
		doc, err := Parse(page)
		So(err, ShouldBeNil)

		Convey("Query keeps document order", func() {
			links := doc.Query("a[href^='/catalogue/']")
			So(links, ShouldHaveLength, 2)
			So(links[0].Attr("href"), ShouldEqual, "/catalogue/one-piece")
			So(links[1].Attr("href"), ShouldEqual, "/catalogue/naruto")
		})

		Convey("Element accessors", func() {
			first := doc.Query("a")[0]
			So(first.Attr("title"), ShouldEqual, "One Piece")
			So(first.Attr("missing"), ShouldBeEmpty)
			So(first.Find("h3")[0].Text(), ShouldEqual, "One Piece")
			So(first.Find("h2"), ShouldBeEmpty)

			second := doc.Query("a")[1]
			So(second.Attr("data-episode"), ShouldBeEmpty)
		})

		Convey("Script bodies are read unescaped", func() {
			scripts := doc.Query("script")
			So(scripts, ShouldHaveLength, 1)
			So(scripts[0].Text(), ShouldContainSubstring, `"https://voe.sx/e/abc"`)
		})

		Convey("Invalid selectors match nothing", func() {
			So(doc.Query("a[href^="), ShouldBeEmpty)
		})
	})
}
