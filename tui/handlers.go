package tui

import (
	"fmt"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/history"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/player"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/resolve"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type datasetLoadedMsg struct {
	category media.Category
	dataset  mo.Option[*media.Dataset]
}

type playedMsg struct {
	title  string
	action string
	err    error
}

func (b *statefulBubble) loadDataset(c media.Category) tea.Cmd {
	return func() tea.Msg {
		return datasetLoadedMsg{
			category: c,
			dataset:  b.catalog.Dataset(b.ctx, c),
		}
	}
}

// refresh re-derives the items and tags lists from the loaded dataset.
func (b *statefulBubble) refresh() tea.Cmd {
	ds, ok := b.dataset.Get()
	if !ok {
		return nil
	}

	view := catalog.Derive(b.category, ds, b.query)

	b.itemsC.Title = fmt.Sprintf("%s (%s)", view.Label, present.CountLabel(len(view.Items)))
	itemsCmd := b.itemsC.SetItems(lo.Map(view.Items, func(item *media.Item, _ int) list.Item {
		return &listItem{internal: item}
	}))
	if b.itemsC.Index() >= len(view.Items) {
		b.itemsC.ResetSelected()
	}

	tagsCmd := b.tagsC.SetItems(lo.Map(view.Tags, func(tag string, _ int) list.Item {
		return &listItem{internal: &tagItem{name: tag, selected: lo.Contains(b.query.Tags, tag)}}
	}))

	return tea.Batch(itemsCmd, tagsCmd, b.itemsC.NewStatusMessage(b.query.Sort.Label()))
}

func (b *statefulBubble) selectedItem() mo.Option[*media.Item] {
	selected, ok := b.itemsC.SelectedItem().(*listItem)
	if !ok {
		return mo.None[*media.Item]()
	}

	item, ok := selected.internal.(*media.Item)
	return mo.TupleToOption(item, ok)
}

func (b *statefulBubble) play(item *media.Item, r resolve.Resolution) tea.Cmd {
	return func() tea.Msg {
		action := player.Describe(r, viper.GetString(key.Player))
		log.With(log.Fields{"title": item.Title, "kind": r.Kind.String()}).Info(action)

		err := b.handoff.Play(r, item.Title)
		if err == nil {
			if err := history.Save(item); err != nil {
				log.Warn(err)
			}
		}
		return playedMsg{title: item.Title, action: action, err: err}
	}
}

func (b *statefulBubble) openSourceURL(item *media.Item) tea.Cmd {
	return func() tea.Msg {
		raw, _ := resolve.Primary(item.Sources)
		if raw == "" {
			return playedMsg{title: item.Title, err: player.ErrNoSource}
		}
		return playedMsg{title: item.Title, action: "open link in browser", err: b.handoff.Launcher.Browse(raw)}
	}
}
