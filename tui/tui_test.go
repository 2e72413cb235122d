package tui

import (
	"context"
	"io"
	"testing"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/player"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type memorySource map[media.Category]*media.Dataset

func (s memorySource) LoadCategory(_ context.Context, c media.Category) mo.Option[*media.Dataset] {
	ds, ok := s[c]
	return mo.TupleToOption(ds, ok)
}

func (s memorySource) LoadAll(ctx context.Context, categories []media.Category) map[media.Category]*media.Dataset {
	return lo.PickByKeys(map[media.Category]*media.Dataset(s), categories)
}

type recorder struct {
	browsed []string
	media   []string
}

func (r *recorder) Browse(url string) error {
	r.browsed = append(r.browsed, url)
	return nil
}

func (r *recorder) Media(url, _ string) error {
	r.media = append(r.media, url)
	return nil
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

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func titles(l list.Model) []string {
	return lo.Map(l.Items(), func(i list.Item, _ int) string {
		return i.(*listItem).internal.(*media.Item).Title
	})
}

func send(b *statefulBubble, msgs ...tea.Msg) {
	for _, msg := range msgs {
		b.Update(msg)
	}
}

func TestBubble(t *testing.T) {
	Convey("Given a browser over a movie dataset", t, func() {
		rec := &recorder{}
		source := memorySource{
			media.Movies: {Version: 1, Items: []*media.Item{
				movie("zebra", "Zebra", "classic"),
				movie("apple", "Apple", "rare"),
				movie("detour-1945", "Detour", "noir"),
			}},
		}

		b := newBubble(context.Background(), &Options{
			Catalog: catalog.New(source),
			Handoff: &player.Handoff{Launcher: rec},
		})
		b.resize(120, 40)

		So(b.state, ShouldEqual, categoriesState)

		Convey("Picking a category loads it", func() {
			send(b, tea.KeyMsg{Type: tea.KeyEnter})
			So(b.state, ShouldEqual, loadingState)
			So(b.category, ShouldEqual, media.Movies)

			send(b, b.loadDataset(media.Movies)())
			So(b.state, ShouldEqual, itemsState)
			So(titles(b.itemsC), ShouldResemble, []string{"Apple", "Detour", "Zebra"})
			So(b.View(), ShouldContainSubstring, "Apple")

			Convey("Typing a search narrows the list on every key", func() {
				send(b, runes("/"))
				So(b.state, ShouldEqual, searchState)

				send(b, runes("a"), runes("p"))
				So(b.query.Text, ShouldEqual, "ap")
				So(titles(b.itemsC), ShouldResemble, []string{"Apple"})

				Convey("Escape clears it and restores the full list", func() {
					send(b, tea.KeyMsg{Type: tea.KeyEsc})
					So(b.state, ShouldEqual, itemsState)
					So(b.query.Text, ShouldBeEmpty)
					So(len(b.itemsC.Items()), ShouldEqual, 3)
				})

				Convey("Enter keeps it", func() {
					send(b, tea.KeyMsg{Type: tea.KeyEnter})
					So(b.state, ShouldEqual, itemsState)
					So(b.query.Text, ShouldEqual, "ap")
				})
			})

			Convey("Toggling a tag filters the items", func() {
				send(b, runes("t"))
				So(b.state, ShouldEqual, tagsState)
				So(len(b.tagsC.Items()), ShouldEqual, 3)

				send(b, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
				So(b.query.Tags, ShouldResemble, []string{"classic"})
				So(titles(b.itemsC), ShouldResemble, []string{"Zebra"})

				send(b, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
				So(b.query.Tags, ShouldBeEmpty)
				So(len(b.itemsC.Items()), ShouldEqual, 3)
			})

			Convey("Cycling the sort reorders the items", func() {
				send(b, runes("s"))
				So(titles(b.itemsC), ShouldResemble, []string{"Zebra", "Detour", "Apple"})
			})

			Convey("The detail view plays the primary source", func() {
				send(b, tea.KeyMsg{Type: tea.KeyEnter})
				So(b.state, ShouldEqual, detailState)
				So(b.selected.Title, ShouldEqual, "Apple")
				So(b.View(), ShouldContainSubstring, "Playback")

				_, cmd := b.updateDetail(runes("p"))
				So(cmd, ShouldNotBeNil)
				played, ok := cmd().(playedMsg)
				So(ok, ShouldBeTrue)
				So(played.err, ShouldBeNil)
				So(rec.browsed, ShouldHaveLength, 1)
				So(rec.browsed[0], ShouldContainSubstring, "apple")

				send(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, itemsState)
			})
		})

		Convey("An unavailable category is an error screen", func() {
			send(b, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
			So(b.category, ShouldEqual, media.TV)

			send(b, b.loadDataset(media.TV)())
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, "unavailable")

			send(b, tea.KeyMsg{Type: tea.KeyEsc})
			So(b.state, ShouldEqual, categoriesState)
		})
	})
}
