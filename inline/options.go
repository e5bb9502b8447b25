package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/mugiwara-cli/mugiwara/match"
	"github.com/mugiwara-cli/mugiwara/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	TitlePicker    func([]*source.Result) *source.Result
	EpisodesFilter func([]*source.Episode) ([]*source.Episode, error)
)

type Options struct {
	Out            io.Writer
	Source         source.Source
	Json           bool
	Query          string
	Dub            bool
	TitlePicker    mo.Option[TitlePicker]
	EpisodesFilter mo.Option[EpisodesFilter]
	// Servers to resolve every selected episode on. None means episodes are listed only.
	Servers []string
}

// ParseTitlePicker parses a title selector: first, last, exact, closest or an index.
// exact and closest compare titles with query.
func ParseTitlePicker(description, query string) (TitlePicker, error) {
	switch description {
	case "first":
		return func(results []*source.Result) *source.Result {
			if len(results) == 0 {
				return nil
			}
			return results[0]
		}, nil
	case "last":
		return func(results []*source.Result) *source.Result {
			if len(results) == 0 {
				return nil
			}
			return results[len(results)-1]
		}, nil
	case "exact":
		return func(results []*source.Result) *source.Result {
			r, _ := lo.Find(results, func(r *source.Result) bool {
				return match.Normalize(r.Title) == match.Normalize(query)
			})
			return r
		}, nil
	case "closest":
		return func(results []*source.Result) *source.Result {
			if len(results) == 0 {
				return nil
			}
			q := match.Normalize(query)
			return lo.MinBy(results, func(a, b *source.Result) bool {
				return levenshtein.Distance(q, match.Normalize(a.Title)) < levenshtein.Distance(q, match.Normalize(b.Title))
			})
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid title selector: %s", description)
	}
	return func(results []*source.Result) *source.Result {
		if len(results) == 0 {
			return nil
		}
		return results[min(idx, uint64(len(results)-1))]
	}, nil
}

// ParseEpisodesFilter parses an episode selector.
//
//	first, last, all
//	5     episode number 5
//	1-12  episode numbers 1 to 12, inclusive
//	@ova@ episodes whose name contains "ova"
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return lo.Subset(episodes, 0, 1), nil
		}, nil
	case "last":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return lo.Subset(episodes, -1, 1), nil
		}, nil
	case "all":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return episodes, nil
		}, nil
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Name), sub)
			}), nil
		}, nil
	}

	from, to, err := parseRange(description)
	if err != nil {
		return nil, err
	}
	return func(episodes []*source.Episode) ([]*source.Episode, error) {
		return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
			return e.Number >= from && e.Number <= to
		}), nil
	}, nil
}

func parseRange(description string) (from, to int, err error) {
	first, last, isRange := strings.Cut(description, "-")
	if !isRange {
		last = first
	}

	from, err1 := strconv.Atoi(strings.TrimSpace(first))
	to, err2 := strconv.Atoi(strings.TrimSpace(last))
	if err1 != nil || err2 != nil || from < 1 || to < from {
		return 0, 0, fmt.Errorf("invalid episode selector: %s", description)
	}
	return from, to, nil
}
