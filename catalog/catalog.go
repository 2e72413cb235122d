// Package catalog is the page-level controller shared by the terminal
// browser, the web front-end and the scriptable commands.
//
// It owns the datasets it loads. Views it returns point at the loaded items
// and must be treated as read-only.
package catalog

import (
	"context"
	"strings"

	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/query"
	"github.com/boomerplus/boomerplus/resolve"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Source loads datasets. *loader.Loader is the production implementation.
type Source interface {
	LoadCategory(ctx context.Context, c media.Category) mo.Option[*media.Dataset]
	LoadAll(ctx context.Context, categories []media.Category) map[media.Category]*media.Dataset
}

// Catalog answers page requests over a Source.
type Catalog struct {
	source Source
}

func New(source Source) *Catalog {
	return &Catalog{source: source}
}

// Dataset loads the raw dataset of c.
func (c *Catalog) Dataset(ctx context.Context, category media.Category) mo.Option[*media.Dataset] {
	return c.source.LoadCategory(ctx, category)
}

// View is a category page: the derived items plus what the filter UI needs.
type View struct {
	Category    media.Category  `json:"category"`
	Label       string          `json:"label"`
	Version     int             `json:"version"`
	GeneratedAt media.Timestamp `json:"generated_at"`
	Total       int             `json:"total"`
	Tags        []string        `json:"tags"`
	State       query.State     `json:"state"`
	Items       []*media.Item   `json:"items"`
}

// Browse loads c and runs state over it. ok is false when the dataset is absent.
func (c *Catalog) Browse(ctx context.Context, category media.Category, state query.State) (view View, ok bool) {
	view = View{Category: category, Label: category.Label(), State: state}

	ds, ok := c.source.LoadCategory(ctx, category).Get()
	if !ok {
		return view, false
	}

	return Derive(category, ds, state), true
}

// Derive builds the view of an already loaded dataset.
func Derive(category media.Category, ds *media.Dataset, state query.State) View {
	return View{
		Category:    category,
		Label:       category.Label(),
		Version:     ds.Version,
		GeneratedAt: ds.GeneratedAt,
		Total:       len(ds.Items),
		Tags:        query.AllTags(ds.Items),
		State:       state,
		Items:       query.Run(ds.Items, state),
	}
}

// Status tells the three outcomes of an item lookup apart.
type Status int

const (
	Found Status = iota
	NotFound
	Unavailable
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	default:
		return "unavailable"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ItemResult is an item page.
type ItemResult struct {
	Status      Status         `json:"status"`
	Category    media.Category `json:"category"`
	Slug        string         `json:"slug"`
	Item        *media.Item    `json:"item,omitempty"`
	Playback    Playback       `json:"playback"`
	Suggestions []*media.Item  `json:"suggestions,omitempty"`
}

// Playback is how the item page offers the item's sources.
type Playback struct {
	Primary resolve.Resolution `json:"primary"`
	Backup  resolve.Resolution `json:"backup"`
}

// PlaybackOf resolves the primary and backup sources of item.
func PlaybackOf(item *media.Item) Playback {
	return Playback{
		Primary: resolve.Classify(resolve.Primary(item.Sources)),
		Backup:  resolve.Classify(resolve.Backup(item.Sources)),
	}
}

const maxSuggestions = 3

// Item looks slug up in category.
func (c *Catalog) Item(ctx context.Context, category media.Category, slug string) ItemResult {
	result := ItemResult{Category: category, Slug: slug}

	ds, ok := c.source.LoadCategory(ctx, category).Get()
	if !ok {
		result.Status = Unavailable
		return result
	}

	item, ok := ds.Find(slug).Get()
	if !ok {
		result.Status = NotFound
		result.Suggestions = suggest(ds, slug)
		return result
	}

	result.Status = Found
	result.Item = item
	result.Playback = PlaybackOf(item)
	return result
}

// suggest ranks the slugs of ds by closeness to slug.
func suggest(ds *media.Dataset, slug string) []*media.Item {
	slug = strings.ToLower(slug)
	if slug == "" {
		return nil
	}

	type candidate struct {
		item     *media.Item
		distance int
	}

	limit := max(3, len(slug)/2)
	var candidates []candidate
	for _, item := range ds.Items {
		target := strings.ToLower(item.Slug)
		distance := fuzzy.LevenshteinDistance(slug, target)

		if fuzzy.Match(slug, target) || fuzzy.Match(target, slug) || distance <= limit {
			candidates = append(candidates, candidate{item, distance})
		}
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.distance - b.distance
	})

	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	return lo.Map(candidates, func(c candidate, _ int) *media.Item { return c.item })
}

// SearchResult is the site-wide search page.
type SearchResult struct {
	Text    string           `json:"q"`
	Loaded  []media.Category `json:"loaded"`
	Items   []*media.Item    `json:"items"`
	Buckets []query.Bucket   `json:"buckets"`
}

// Search filters every category by text. Empty text searches nothing.
func (c *Catalog) Search(ctx context.Context, text string) SearchResult {
	result := SearchResult{Text: text}

	if strings.TrimSpace(text) == "" {
		result.Buckets = query.Buckets(nil)
		return result
	}

	datasets := c.source.LoadAll(ctx, media.Categories())
	result.Loaded = lo.Filter(media.Categories(), func(c media.Category, _ int) bool {
		_, ok := datasets[c]
		return ok
	})

	result.Items = query.Search(query.Aggregate(datasets), text)
	result.Buckets = query.Buckets(result.Items)
	return result
}

// Shelf is one category row of the home page.
type Shelf struct {
	Category media.Category `json:"category"`
	Label    string         `json:"label"`
	Total    int            `json:"total"`
	Items    []*media.Item  `json:"items"`
}

// Home returns the first n items of every category that loaded.
func (c *Catalog) Home(ctx context.Context, n int) []Shelf {
	datasets := c.source.LoadAll(ctx, media.Categories())

	var shelves []Shelf
	for _, category := range media.Categories() {
		ds, ok := datasets[category]
		if !ok {
			continue
		}

		items := ds.Items
		if n >= 0 && len(items) > n {
			items = items[:n]
		}

		shelves = append(shelves, Shelf{
			Category: category,
			Label:    category.Label(),
			Total:    len(ds.Items),
			Items:    items,
		})
	}
	return shelves
}
