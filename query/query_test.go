package query

import (
	"testing"

	"github.com/mugiwara-cli/mugiwara/filesystem"
	"github.com/mugiwara-cli/mugiwara/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		So(Forget(), ShouldBeNil)

		So(Remember("naruto", 1), ShouldBeNil)
		So(Remember("Bleach", 10), ShouldBeNil)
		So(Remember("black clover", 2), ShouldBeNil)

		Convey("When asking for suggestions", func() {
			Convey("Then they should be sorted by rank", func() {
				So(SuggestMany("bl"), ShouldResemble, []string{"bleach", "black clover"})
			})

			Convey("Then the best one should be returned first", func() {
				So(Suggest("nar").MustGet(), ShouldEqual, "naruto")
			})

			Convey("Then unknown queries should give nothing", func() {
				So(Suggest("zzz").IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("When a query is remembered again", func() {
			So(SuggestMany("bl"), ShouldHaveLength, 2)
			So(Remember("Black Clover", 20), ShouldBeNil)

			Convey("Then its rank should grow and stale suggestions be dropped", func() {
				So(SuggestMany("bl"), ShouldResemble, []string{"black clover", "bleach"})
			})
		})

		Convey("When suggestions are disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("bl"), ShouldBeEmpty)
		})

		Convey("When the history is forgotten", func() {
			So(Forget(), ShouldBeNil)
			So(SuggestMany("bl"), ShouldBeEmpty)
		})

		Convey("It folds input", func() {
			So(sanitize("  NÀRUTO  "), ShouldEqual, "naruto")
		})
	})
}
