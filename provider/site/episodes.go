package site

import (
	"cmp"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mugiwara-cli/mugiwara/dom"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// discovery finds episodes on a title page. It returns nothing when its markers are absent.
type discovery struct {
	name string
	find func(ctx context.Context, page *dom.Document, pageURL string) []*source.Episode
}

func (s *Site) discoveries() []discovery {
	return []discovery{
		{"seasons", s.fromSeasons},
		{"attributes", func(_ context.Context, page *dom.Document, pageURL string) []*source.Episode {
			return s.fromAttributes(page, pageURL)
		}},
		{"scripts", func(_ context.Context, page *dom.Document, pageURL string) []*source.Episode {
			return s.fromScripts(page, pageURL)
		}},
		{"links", func(_ context.Context, page *dom.Document, _ string) []*source.Episode {
			return s.fromLinks(page)
		}},
	}
}

// Episodes lists the episodes of a title, ordered by number.
// Discovery strategies are tried in turn until one finds something.
func (s *Site) Episodes(ctx context.Context, titleURL string) []*source.Episode {
	log := s.log.WithField("title", titleURL)

	page, err := s.document(ctx, s.direct, titleURL)
	if err != nil {
		log.WithError(err).Error("load title page")
		return []*source.Episode{}
	}

	for _, d := range s.discoveries() {
		found := d.find(ctx, page, titleURL)
		if len(found) == 0 {
			log.Debugf("%s: nothing found", d.name)
			continue
		}

		episodes := normalizeEpisodes(found)
		log.Debugf("%s: %d episodes", d.name, len(episodes))
		return episodes
	}

	log.Warn("no episode found")
	return []*source.Episode{}
}

// fromSeasons follows the first per-season listing, if the page links to one,
// and reads its episodes through their data attributes.
func (s *Site) fromSeasons(ctx context.Context, page *dom.Document, pageURL string) []*source.Episode {
	seasonURL, ok := s.firstSeason(page, pageURL)
	if !ok {
		return nil
	}

	season, err := s.document(ctx, s.direct, seasonURL)
	if err != nil {
		s.log.WithError(err).Warnf("load season %s", seasonURL)
		return nil
	}

	return s.fromAttributes(season, seasonURL)
}

// firstSeason picks the first season link below the title page.
// Season links of other catalogue entries are ignored.
func (s *Site) firstSeason(page *dom.Document, pageURL string) (string, bool) {
	self := strings.TrimRight(pageURL, "/")

	for _, link := range page.Query(s.cfg.Selectors.SeasonLink) {
		href := link.Attr("href")
		if !seasonRe.MatchString(href) {
			continue
		}

		abs, err := s.resolve(href)
		if err != nil {
			continue
		}

		if strings.HasPrefix(abs, self+"/") {
			return abs, true
		}
	}

	return "", false
}

// fromAttributes reads elements carrying an episode number attribute.
func (s *Site) fromAttributes(page *dom.Document, pageURL string) []*source.Episode {
	var episodes []*source.Episode

	for i, el := range page.Query(s.cfg.Selectors.Episode) {
		number := numberOr(el.Attr("data-episode"), i+1)

		href := lo.CoalesceOrEmpty(el.Attr("href"), el.Attr("data-url"))
		if href == "" {
			href = synthesize(pageURL, number)
		}

		abs, err := s.resolve(href)
		if err != nil {
			continue
		}
		episodes = append(episodes, source.NewEpisode(abs, number))
	}

	return episodes
}

// fromScripts mines the first inline script mentioning episode numbers.
func (s *Site) fromScripts(page *dom.Document, pageURL string) []*source.Episode {
	for _, script := range page.Query("script") {
		body := script.Text()
		if !strings.Contains(strings.ToLower(body), "episode") {
			continue
		}

		matches := scriptEpisodeRe.FindAllStringSubmatch(body, -1)
		if len(matches) == 0 {
			continue
		}

		episodes := make([]*source.Episode, 0, len(matches))
		for i, m := range matches {
			number := numberOr(m[1], i+1)
			episodes = append(episodes, source.NewEpisode(synthesize(pageURL, number), number))
		}
		return episodes
	}

	return nil
}

// fromLinks reads anchors whose href or text names an episode.
func (s *Site) fromLinks(page *dom.Document) []*source.Episode {
	var episodes []*source.Episode

	for _, a := range page.Query("a[href]") {
		href := a.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") {
			continue
		}

		number, ok := linkEpisode(href, a.Text())
		if !ok {
			continue
		}

		abs, err := s.resolve(href)
		if err != nil {
			continue
		}
		episodes = append(episodes, source.NewEpisode(abs, number))
	}

	return episodes
}

func linkEpisode(href, text string) (int, bool) {
	for _, candidate := range []string{href, text} {
		if decoded, err := url.PathUnescape(candidate); err == nil {
			candidate = decoded
		}
		for _, re := range linkEpisodeRes {
			if n, ok := episodeNumber(re, candidate); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// normalizeEpisodes applies the ordinal fallback, drops repeated numbers keeping the
// first occurrence and sorts by number.
func normalizeEpisodes(episodes []*source.Episode) []*source.Episode {
	for i, ep := range episodes {
		if ep.Number < 1 {
			*ep = *source.NewEpisode(ep.URL, i+1)
		}
	}

	unique := lo.UniqBy(episodes, func(ep *source.Episode) int {
		return ep.Number
	})

	slices.SortStableFunc(unique, func(a, b *source.Episode) int {
		return cmp.Compare(a.Number, b.Number)
	})

	return unique
}

func numberOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func synthesize(pageURL string, number int) string {
	return fmt.Sprintf("%s/episode-%d", strings.TrimRight(pageURL, "/"), number)
}
