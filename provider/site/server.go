package site

import (
	"context"
	"net/url"
	"strings"

	"github.com/mugiwara-cli/mugiwara/dom"
	"github.com/mugiwara-cli/mugiwara/hls"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Locate finds the embed of server on an episode page.
func (s *Site) Locate(ctx context.Context, episodeURL, server string) mo.Option[source.Embed] {
	log := s.log.WithField("server", server)

	page, err := s.document(ctx, s.direct, episodeURL)
	if err != nil {
		log.WithError(err).Error("load episode page")
		return mo.None[source.Embed]()
	}

	base, err := url.Parse(episodeURL)
	if err != nil {
		log.WithError(err).Error("parse episode url")
		return mo.None[source.Embed]()
	}

	for _, find := range []func(*dom.Document, string) string{
		s.fromIframes,
		fromDataServer,
		s.fromServerScripts,
	} {
		raw := find(page, server)
		if raw == "" {
			continue
		}

		abs, err := resolveAgainst(base, raw)
		if err != nil {
			log.WithError(err).Warn("resolve embed")
			continue
		}

		log.Debugf("embed %s", abs)
		return mo.Some(source.Embed{URL: abs, Server: server})
	}

	log.Debug("no embed found")
	return mo.None[source.Embed]()
}

func (s *Site) fromIframes(page *dom.Document, server string) string {
	for _, iframe := range page.Query("iframe[src]") {
		if src := iframe.Attr("src"); IsVideoServer(src, server, s.cfg.Servers) {
			return src
		}
	}
	return ""
}

func fromDataServer(page *dom.Document, server string) string {
	name := strings.ToLower(server)

	for _, el := range page.Query("[data-server]") {
		if !strings.Contains(strings.ToLower(el.Attr("data-server")), name) {
			continue
		}
		if raw := lo.CoalesceOrEmpty(el.Attr("data-url"), el.Attr("data-src")); raw != "" {
			return raw
		}
	}
	return ""
}

func (s *Site) fromServerScripts(page *dom.Document, server string) string {
	name := strings.ToLower(server)

	for _, script := range page.Query("script") {
		body := script.Text()
		if !strings.Contains(strings.ToLower(body), name) {
			continue
		}

		for _, m := range quotedURLRe.FindAllStringSubmatch(body, -1) {
			if IsVideoServer(m[1], server, s.cfg.Servers) {
				return m[1]
			}
		}
	}
	return ""
}

// Resolve locates and extracts the streams of episode on server.
// A server that yields nothing is reported as unavailable rather than failing.
func (s *Site) Resolve(ctx context.Context, episode *source.Episode, server string) *source.Server {
	if episode == nil {
		return source.Unavailable(server)
	}

	pageURL := lo.CoalesceOrEmpty(episode.ID, episode.URL)
	if pageURL == "" {
		return source.Unavailable(server)
	}

	embed, ok := s.Locate(ctx, pageURL, server).Get()
	if !ok {
		return source.Unavailable(server)
	}

	videos := s.Extract(ctx, embed.URL, server)
	if len(videos) == 0 {
		s.log.WithField("server", server).Debug("nothing extracted, falling back to the embed")
		videos = []*source.Video{source.NewVideo(embed.URL, source.HLS, server, hls.Auto)}
	}

	origin := originOf(pageURL)
	return &source.Server{
		Name: server,
		Headers: map[string]string{
			"referer": origin,
			"origin":  origin,
		},
		Videos: videos,
	}
}

// originOf returns scheme://host of rawURL.
func originOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}
