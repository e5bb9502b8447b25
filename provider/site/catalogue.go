package site

import (
	"cmp"
	"context"
	"strings"
	"unicode/utf8"

	"github.com/mugiwara-cli/mugiwara/dom"
	"github.com/mugiwara-cli/mugiwara/match"
	"github.com/mugiwara-cli/mugiwara/source"
	"golang.org/x/exp/slices"
)

// maxScanned bounds how many catalogue links are examined.
const maxScanned = 50

// Search ranks the catalogue entries matching query.
func (s *Site) Search(ctx context.Context, query string, dub bool) []*source.Result {
	log := s.log.WithField("query", query)

	terms := match.Terms(query)
	if len(terms) == 0 {
		log.Warn("query is empty after normalization")
		return []*source.Result{}
	}

	doc, err := s.document(ctx, s.direct, s.cfg.CatalogueURL)
	if err != nil {
		log.WithError(err).Error("load catalogue")
		return []*source.Result{}
	}

	candidates := s.candidates(doc)
	log.Debugf("%d candidates, terms %v", len(candidates), terms)

	results := make([]*source.Result, 0, len(candidates))
	for _, c := range candidates {
		score := match.Score(c.Title, terms)
		if !match.Qualifies(score) {
			continue
		}
		log.Debugf("match %.2f %q", score, c.Title)
		results = append(results, source.NewResult(c, score, dub))
	}

	slices.SortStableFunc(results, func(a, b *source.Result) int {
		return cmp.Compare(b.Score, a.Score)
	})

	if len(results) > source.MaxResults {
		results = results[:source.MaxResults]
	}

	if len(results) == 0 {
		log.Warn("no catalogue entry matched")
	}

	return results
}

// candidates extracts title/URL pairs, relaxing the selector until something matches.
func (s *Site) candidates(doc *dom.Document) []source.Candidate {
	var links []dom.Element
	for _, selector := range s.cfg.Selectors.Catalogue {
		if links = doc.Query(selector); len(links) > 0 {
			s.log.Debugf("catalogue selector %q matched %d links", selector, len(links))
			break
		}
	}

	var candidates []source.Candidate
	for i, link := range links {
		if i >= maxScanned {
			break
		}

		href := link.Attr("href")
		if href == "" || s.isCatalogueRoot(href) {
			continue
		}

		title := s.titleOf(link)
		if utf8.RuneCountInString(title) < 2 {
			continue
		}

		abs, err := s.resolve(href)
		if err != nil {
			continue
		}

		candidates = append(candidates, source.Candidate{Title: title, URL: abs})
	}

	return candidates
}

// titleOf prefers nested headings, then the title attribute, then the link text.
func (s *Site) titleOf(link dom.Element) string {
	for _, heading := range s.cfg.Selectors.Headings {
		for _, h := range link.Find(heading) {
			if text := h.Text(); text != "" {
				return text
			}
		}
	}

	if title := link.Attr("title"); title != "" {
		return title
	}

	return link.Text()
}

func (s *Site) isCatalogueRoot(href string) bool {
	trimmed := strings.TrimRight(href, "/")
	if trimmed == s.cfg.CataloguePath {
		return true
	}

	abs, err := s.resolve(href)
	if err != nil {
		return false
	}
	return strings.TrimRight(abs, "/") == strings.TrimRight(s.cfg.CatalogueURL, "/")
}
