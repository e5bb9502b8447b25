package network

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/mugiwara-cli/mugiwara/constant"
)

// ErrStatus is wrapped by Get when the server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

// maxBody caps how much of a response is read.
const maxBody = 16 << 20

// Response is a fetched page.
type Response struct {
	Status int
	Body   string
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Fetcher retrieves the body of a URL.
// Implementations must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Response, error)
}

// Get fetches rawURL and returns its body, turning non-2xx answers into errors wrapping ErrStatus.
func Get(ctx context.Context, f Fetcher, rawURL string) (string, error) {
	resp, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", fmt.Errorf("%w %d for %s", ErrStatus, resp.Status, rawURL)
	}
	return resp.Body, nil
}

// Direct fetches URLs with a plain GET.
type Direct struct {
	Client    *http.Client
	UserAgent string
}

// NewDirect returns a Direct fetcher backed by client.
func NewDirect(client *http.Client, userAgent string) *Direct {
	if client == nil {
		client = Client
	}
	if userAgent == "" {
		userAgent = constant.UserAgent
	}
	return &Direct{Client: client, UserAgent: userAgent}
}

func (d *Direct) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", d.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, br")

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := decode(resp)
	if err != nil {
		return nil, err
	}

	return &Response{Status: resp.StatusCode, Body: body}, nil
}

func decode(resp *http.Response) (string, error) {
	var r io.Reader = resp.Body

	switch strings.ToLower(resp.Header.Get("Content-Encoding")) {
	case "br":
		r = brotli.NewReader(resp.Body)
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("gzip: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(io.LimitReader(r, maxBody))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}

// Proxy routes requests through an intermediary that takes the target as a query-escaped suffix,
// e.g. http://127.0.0.1:43211/api/v1/proxy?url=.
type Proxy struct {
	Endpoint string
	Next     Fetcher
}

func (p *Proxy) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	if p.Endpoint == "" {
		return p.Next.Fetch(ctx, rawURL)
	}
	return p.Next.Fetch(ctx, p.Endpoint+url.QueryEscape(rawURL))
}
