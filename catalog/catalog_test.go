package catalog

import (
	"context"
	"io"
	"testing"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/query"
	"github.com/boomerplus/boomerplus/resolve"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

// stubSource serves fixed datasets from memory.
type stubSource map[media.Category]*media.Dataset

func (s stubSource) LoadCategory(_ context.Context, c media.Category) mo.Option[*media.Dataset] {
	ds, ok := s[c]
	return mo.TupleToOption(ds, ok)
}

func (s stubSource) LoadAll(ctx context.Context, categories []media.Category) map[media.Category]*media.Dataset {
	out := make(map[media.Category]*media.Dataset)
	for _, c := range categories {
		if ds, ok := s.LoadCategory(ctx, c).Get(); ok {
			out[c] = ds
		}
	}
	return out
}

func init() {
	filesystem.SetMemMapFs()
	log.SetOutput(io.Discard)
}

func movie(slug, title string, tags ...string) *media.Item {
	return &media.Item{
		Slug:     slug,
		Category: media.Movies,
		Title:    title,
		Tags:     tags,
		Sources:  media.Source{VideoPrimary: "https://archive.org/details/" + slug},
		Variant:  &media.Movie{},
	}
}

func fixture() stubSource {
	return stubSource{
		media.Movies: {Version: 1, Items: []*media.Item{
			movie("zebra", "Zebra", "classic"),
			movie("apple", "Apple", "rare"),
			movie("detour-1945", "Detour", "noir"),
		}},
		media.Radio: {Version: 1, Items: []*media.Item{
			{Slug: "dragnet", Category: media.Radio, Title: "Dragnet", Tags: []string{"crime", "classic"}, Variant: &media.RadioShow{}},
		}},
	}
}

func TestBrowse(t *testing.T) {
	ctx := context.Background()

	Convey("Given a catalog", t, func() {
		c := New(fixture())

		Convey("A category view runs the pipeline over the whole dataset", func() {
			view, ok := c.Browse(ctx, media.Movies, query.State{Tags: []string{"rare", "noir"}})
			So(ok, ShouldBeTrue)
			So(view.Total, ShouldEqual, 3)
			So(view.Tags, ShouldResemble, []string{"classic", "noir", "rare"})
			So(lo.Map(view.Items, func(it *media.Item, _ int) string { return it.Title }), ShouldResemble, []string{"Apple", "Detour"})
			So(view.Label, ShouldEqual, "Classic Movies")
		})

		Convey("An absent dataset is an empty state", func() {
			view, ok := c.Browse(ctx, media.TV, query.State{})
			So(ok, ShouldBeFalse)
			So(view.Items, ShouldBeEmpty)
			So(view.Label, ShouldEqual, "Classic TV Shows")
		})
	})
}

func TestItem(t *testing.T) {
	ctx := context.Background()

	Convey("Given a catalog", t, func() {
		c := New(fixture())

		Convey("A known slug is found and resolved", func() {
			r := c.Item(ctx, media.Movies, "apple")
			So(r.Status, ShouldEqual, Found)
			So(r.Item.Title, ShouldEqual, "Apple")
			So(r.Playback.Primary.Kind, ShouldEqual, resolve.Embed)
			So(r.Playback.Backup.Kind, ShouldEqual, resolve.None)
		})

		Convey("An unknown slug is not found, with suggestions", func() {
			r := c.Item(ctx, media.Movies, "detour")
			So(r.Status, ShouldEqual, NotFound)
			So(r.Item, ShouldBeNil)
			So(len(r.Suggestions), ShouldBeGreaterThan, 0)
			So(r.Suggestions[0].Slug, ShouldEqual, "detour-1945")
			So(len(r.Suggestions), ShouldBeLessThanOrEqualTo, 3)
		})

		Convey("A missing dataset is unavailable, not not-found", func() {
			So(c.Item(ctx, media.Concerts, "x").Status, ShouldEqual, Unavailable)
		})
	})
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	Convey("Given a catalog", t, func() {
		c := New(fixture())

		Convey("Search spans every loaded category", func() {
			r := c.Search(ctx, "classic")
			So(len(r.Items), ShouldEqual, 2)
			So(r.Loaded, ShouldResemble, []media.Category{media.Movies, media.Radio})

			buckets := lo.KeyBy(r.Buckets, func(b query.Bucket) media.Category { return b.Category })
			So(buckets[media.Movies].Items, ShouldHaveLength, 1)
			So(buckets[media.Radio].Items, ShouldHaveLength, 1)
			So(buckets[media.TV].Items, ShouldBeEmpty)
		})

		Convey("Empty text finds nothing", func() {
			r := c.Search(ctx, "  ")
			So(r.Items, ShouldBeEmpty)
			So(r.Buckets, ShouldHaveLength, len(media.Categories()))
		})

		Convey("Home shows the first items of each loaded category", func() {
			shelves := c.Home(ctx, 2)
			So(shelves, ShouldHaveLength, 2)
			So(shelves[0].Items, ShouldHaveLength, 2)
			So(shelves[0].Total, ShouldEqual, 3)
			So(shelves[1].Category, ShouldEqual, media.Radio)
		})
	})
}
