package query

import (
	"strings"
	"sync"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// mu guards the history file and the suggestion memo.
var (
	mu              sync.Mutex
	suggestionCache = make(map[string][]*queryRecord)
)

// records returns a private copy of the stored history. Callers must hold mu.
func records() map[string]*queryRecord {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}

	copied := make(map[string]*queryRecord, len(cached))
	for q, record := range cached {
		r := *record
		copied[q] = &r
	}
	return copied
}

// Remember stores a search in the history, or raises its rank by weight.
// Nothing is stored when search.remember_queries is off. Safe for concurrent use.
func Remember(q string, weight int) error {
	if !viper.GetBool(key.SearchRememberQueries) {
		return nil
	}

	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	saved := records()
	if record, ok := saved[q]; ok {
		record.Rank += weight
	} else {
		saved[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(suggestionCache)
	return cacher.Set(saved)
}

// Suggest returns the best past search for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns past searches fuzzily matching q, most used first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	matched, ok := suggestionCache[q]
	if !ok {
		for _, record := range records() {
			if fuzzy.Match(q, record.Query) {
				matched = append(matched, record)
			}
		}

		slices.SortFunc(matched, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[q] = matched
	}

	return lo.Map(matched, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
