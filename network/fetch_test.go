package network

import (
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	. "github.com/smartystreets/goconvey/convey"
)

func newServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ua=" + r.UserAgent()))
	})
	mux.HandleFunc("/gzip", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		_, _ = gz.Write([]byte("compressed gzip"))
		_ = gz.Close()
	})
	mux.HandleFunc("/br", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		br := brotli.NewWriter(w)
		_, _ = br.Write([]byte("compressed brotli"))
		_ = br.Close()
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/proxy", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("proxied " + r.URL.Query().Get("url")))
	})
	return httptest.NewServer(mux)
}

func TestDirect(t *testing.T) {
	Convey("Direct fetcher", t, func() {
		srv := newServer()
		defer srv.Close()

		ctx := context.Background()
		f := NewDirect(nil, "test-agent")

		Convey("Sends the configured user agent", func() {
			resp, err := f.Fetch(ctx, srv.URL+"/plain")
			So(err, ShouldBeNil)
			So(resp.OK(), ShouldBeTrue)
			So(resp.Body, ShouldEqual, "ua=test-agent")
		})

		Convey("Decodes gzip and brotli bodies", func() {
			body, err := Get(ctx, f, srv.URL+"/gzip")
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "compressed gzip")

			body, err = Get(ctx, f, srv.URL+"/br")
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "compressed brotli")
		})

		Convey("Get reports non-2xx statuses", func() {
			resp, err := f.Fetch(ctx, srv.URL+"/missing")
			So(err, ShouldBeNil)
			So(resp.Status, ShouldEqual, http.StatusNotFound)

			_, err = Get(ctx, f, srv.URL+"/missing")
			So(errors.Is(err, ErrStatus), ShouldBeTrue)
		})

		Convey("Transport failures are returned as errors", func() {
			_, err := f.Fetch(ctx, "http://127.0.0.1:1/unreachable")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestProxy(t *testing.T) {
	Convey("Proxy fetcher", t, func() {
		srv := newServer()
		defer srv.Close()

		ctx := context.Background()
		direct := NewDirect(nil, "")

		Convey("Escapes the target into the endpoint", func() {
			p := &Proxy{Endpoint: srv.URL + "/proxy?url=", Next: direct}
			body, err := Get(ctx, p, "https://embed.example.com/e/1?x=1&y=2")
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "proxied https://embed.example.com/e/1?x=1&y=2")
		})

		Convey("Falls through when no endpoint is set", func() {
			p := &Proxy{Next: direct}
			body, err := Get(ctx, p, srv.URL+"/gzip")
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "compressed gzip")
		})
	})
}

func TestNewClient(t *testing.T) {
	Convey("NewClient", t, func() {
		So(NewClient(0, false).Timeout, ShouldEqual, DefaultTimeout)

		_, ok := NewClient(DefaultTimeout, true).Transport.(*fingerprintTransport)
		So(ok, ShouldBeTrue)
	})
}
