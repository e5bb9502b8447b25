package site

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mugiwara-cli/mugiwara/dom"
	"github.com/mugiwara-cli/mugiwara/network"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/sirupsen/logrus"
)

// Site is the resolution pipeline bound to one hosting site.
// It holds no mutable state and is safe for concurrent use.
type Site struct {
	cfg  Config
	base *url.URL

	// direct serves catalogue, title and episode pages; proxy serves embeds and manifests.
	direct network.Fetcher
	proxy  network.Fetcher

	log logrus.FieldLogger
}

var _ source.Source = (*Site)(nil)

// New builds the pipeline for cfg. Pages are fetched with fetcher, embeds and manifests
// through cfg.Proxy on top of it.
func New(cfg Config, fetcher network.Fetcher, logger logrus.FieldLogger) (*Site, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", cfg.Name, err)
	}

	endpoint := cfg.Proxy
	if endpoint == NoProxy {
		endpoint = ""
	}

	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Site{
		cfg:    cfg,
		base:   base,
		direct: fetcher,
		proxy:  &network.Proxy{Endpoint: endpoint, Next: fetcher},
		log:    logger.WithField("site", cfg.Name),
	}, nil
}

// Name returns the display name of the site.
func (s *Site) Name() string {
	return s.cfg.Name
}

// ID returns the identifier of the site.
func (s *Site) ID() string {
	return strings.ToLower(strings.ReplaceAll(s.cfg.Name, " ", "-"))
}

// Settings declares the servers and dub support of the site.
func (s *Site) Settings() source.Settings {
	return source.Settings{
		Servers:     append([]string(nil), s.cfg.Servers...),
		SupportsDub: s.cfg.SupportsDub,
	}
}

// Config returns the effective configuration, defaults included.
func (s *Site) Config() Config {
	return s.cfg
}

func (s *Site) document(ctx context.Context, f network.Fetcher, rawURL string) (*dom.Document, error) {
	body, err := network.Get(ctx, f, rawURL)
	if err != nil {
		return nil, err
	}
	return dom.Parse(body)
}

// resolve turns a link found on the site into an absolute URL, relative to the site origin.
func (s *Site) resolve(href string) (string, error) {
	return resolveAgainst(s.base, href)
}

func resolveAgainst(base *url.URL, href string) (string, error) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}
