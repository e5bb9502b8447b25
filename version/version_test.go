package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiwara-cli/mugiwara/filesystem"
	"github.com/mugiwara-cli/mugiwara/network"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		So(must(Compare("1.2.3", "v1.2.3")), ShouldEqual, 0)
		So(must(Compare("1.10.0", "1.9.9")), ShouldEqual, 1)
		So(must(Compare("0.3.0", "1.0.0")), ShouldEqual, -1)

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func must(c int, err error) int {
	if err != nil {
		panic(err)
	}
	return c
}

func TestFetchLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/latest":
				_, _ = w.Write([]byte(`{"tag_name": "v1.4.2"}`))
			case "/untagged":
				_, _ = w.Write([]byte(`{}`))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		f := network.NewDirect(srv.Client(), "")
		ctx := context.Background()

		Convey("Then the tag should be returned without its prefix", func() {
			latest, err := fetchLatest(ctx, f, srv.URL+"/latest")
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "1.4.2")
		})

		Convey("Then a release without tag should fail", func() {
			_, err := fetchLatest(ctx, f, srv.URL+"/untagged")
			So(err, ShouldNotBeNil)
		})

		Convey("Then a missing endpoint should fail", func() {
			_, err := fetchLatest(ctx, f, srv.URL+"/missing")
			So(err, ShouldNotBeNil)
		})
	})
}
