// Package query keeps the history of search queries to suggest them back.
package query

import (
	"cmp"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/mugiwara-cli/mugiwara/filesystem"
	"github.com/mugiwara-cli/mugiwara/key"
	"github.com/mugiwara-cli/mugiwara/match"
	"github.com/mugiwara-cli/mugiwara/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var (
	cacher = sync.OnceValue(func() *gache.Cache[map[string]*queryRecord] {
		return gache.New[map[string]*queryRecord](&gache.Options{
			Path:       where.Queries(),
			FileSystem: &filesystem.GacheFs{},
		})
	})

	mu          sync.Mutex
	suggestions = make(map[string][]*queryRecord)
)

// Remember records a search query or raises its rank by weight.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	records := load()
	if record, ok := records[q]; ok {
		record.Rank += weight
	} else {
		records[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(suggestions)
	return cacher().Set(records)
}

// Suggest returns the best ranked past query matching q.
func Suggest(q string) mo.Option[string] {
	many := SuggestMany(q)
	if len(many) == 0 {
		return mo.None[string]()
	}
	return mo.Some(many[0])
}

// SuggestMany returns the past queries fuzzily matching q, most used first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	records, ok := suggestions[q]
	if !ok {
		records = lo.Filter(lo.Values(load()), func(r *queryRecord, _ int) bool {
			return fuzzy.MatchNormalizedFold(q, r.Query)
		})

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if c := cmp.Compare(b.Rank, a.Rank); c != 0 {
				return c
			}
			return cmp.Compare(a.Query, b.Query)
		})

		suggestions[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

// Forget drops the whole history.
func Forget() error {
	mu.Lock()
	defer mu.Unlock()

	clear(suggestions)
	return cacher().Set(make(map[string]*queryRecord))
}

func load() map[string]*queryRecord {
	cached, expired, err := cacher().Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}
	return cached
}

// sanitize folds case and diacritics so that "Pokémon" and "pokemon" share a record.
func sanitize(q string) string {
	return match.Normalize(q)
}
