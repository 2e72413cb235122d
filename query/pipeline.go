// Package query derives the visible view of a collection: text search, tag
// filtering and sorting, plus a history of past searches for suggestions.
//
// Every function here is pure. The input collection is never modified and
// results are always derived from the collection as given.
package query

import (
	"fmt"
	"strings"

	"github.com/boomerplus/boomerplus/media"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects one of the four orderings.
type SortKey string

const (
	TitleAsc  SortKey = "title-asc"
	TitleDesc SortKey = "title-desc"
	YearDesc  SortKey = "year-desc"
	YearAsc   SortKey = "year-asc"
)

var sortKeys = []SortKey{TitleAsc, TitleDesc, YearDesc, YearAsc}

// SortKeys lists the orderings in menu order.
func SortKeys() []SortKey {
	return append([]SortKey(nil), sortKeys...)
}

// ParseSortKey accepts the key names; the empty string is the default.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return TitleAsc, nil
	}

	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if lo.Contains(sortKeys, k) {
		return k, nil
	}

	return "", fmt.Errorf("unknown sort %q, expected one of %s", s, strings.Join(lo.Map(sortKeys, func(k SortKey, _ int) string { return string(k) }), ", "))
}

// Label is the menu text of the key.
func (k SortKey) Label() string {
	switch k {
	case TitleDesc:
		return "Title Z-A"
	case YearDesc:
		return "Newest First"
	case YearAsc:
		return "Oldest First"
	default:
		return "Title A-Z"
	}
}

// Next cycles through the keys.
func (k SortKey) Next() SortKey {
	i := lo.IndexOf(sortKeys, k)
	return sortKeys[(i+1)%len(sortKeys)]
}

// State is what the user has asked for.
type State struct {
	Text string   `json:"q"`
	Tags []string `json:"tags"`
	Sort SortKey  `json:"sort"`
}

// Search keeps the items whose title or one of whose tags contains text, ignoring case.
// Empty text keeps everything. Order is preserved.
func Search(items []*media.Item, text string) []*media.Item {
	needle := strings.ToLower(text)
	if needle == "" {
		return slices.Clone(items)
	}

	return lo.Filter(items, func(item *media.Item, _ int) bool {
		return Matches(item, needle)
	})
}

// Matches reports whether item matches the already lower-cased needle.
func Matches(item *media.Item, needle string) bool {
	if strings.Contains(strings.ToLower(item.Title), needle) {
		return true
	}
	return lo.ContainsBy(item.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

// FilterTags keeps the items carrying at least one of tags. No tags keeps everything.
func FilterTags(items []*media.Item, tags []string) []*media.Item {
	if len(tags) == 0 {
		return slices.Clone(items)
	}

	return lo.Filter(items, func(item *media.Item, _ int) bool {
		return lo.SomeBy(tags, item.HasTag)
	})
}

// Sort returns a sorted copy. Equal elements keep their relative order.
// Unknown years count as 0, so they come last newest-first and first oldest-first.
func Sort(items []*media.Item, by SortKey) []*media.Item {
	sorted := slices.Clone(items)

	switch by {
	case YearDesc:
		slices.SortStableFunc(sorted, func(a, b *media.Item) int {
			return b.SortYear() - a.SortYear()
		})
	case YearAsc:
		slices.SortStableFunc(sorted, func(a, b *media.Item) int {
			return a.SortYear() - b.SortYear()
		})
	case TitleDesc:
		collator := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b *media.Item) int {
			return collator.CompareString(b.Title, a.Title)
		})
	default:
		collator := collate.New(language.English)
		slices.SortStableFunc(sorted, func(a, b *media.Item) int {
			return collator.CompareString(a.Title, b.Title)
		})
	}

	return sorted
}

// Run applies text search, then the tag filter, then the sort.
func Run(items []*media.Item, state State) []*media.Item {
	return Sort(FilterTags(Search(items, state.Text), state.Tags), state.Sort)
}

// AllTags is the sorted set of every tag in items.
func AllTags(items []*media.Item) []string {
	tags := lo.Uniq(lo.FlatMap(items, func(item *media.Item, _ int) []string {
		return item.Tags
	}))
	slices.Sort(tags)
	return tags
}

// ToggleTag adds tag to the selection, or removes it when already selected.
func ToggleTag(selected []string, tag string) []string {
	if lo.Contains(selected, tag) {
		return lo.Without(selected, tag)
	}
	return append(slices.Clone(selected), tag)
}

// Aggregate concatenates the items of every dataset, in category order.
func Aggregate(datasets map[media.Category]*media.Dataset) []*media.Item {
	var items []*media.Item
	for _, c := range media.Categories() {
		if ds, ok := datasets[c]; ok && ds != nil {
			items = append(items, ds.Items...)
		}
	}
	return items
}

// Bucket is the part of a result that belongs to one category.
type Bucket struct {
	Category media.Category `json:"category"`
	Items    []*media.Item  `json:"items"`
}

// Buckets partitions items by category, one bucket per category in category order.
func Buckets(items []*media.Item) []Bucket {
	return lo.Map(media.Categories(), func(c media.Category, _ int) Bucket {
		return Bucket{
			Category: c,
			Items: lo.Filter(items, func(item *media.Item, _ int) bool {
				return item.Category == c
			}),
		}
	})
}
