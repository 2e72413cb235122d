package tui

import (
	"fmt"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/icon"
	"github.com/boomerplus/boomerplus/internal/ui"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/query"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	notifyCmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, notifyCmd
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case playedMsg:
		if msg.err != nil {
			return b, tea.Batch(notifyCmd, ui.Notify(fmt.Sprintf("%s %s: %s", icon.Get(icon.Cross), msg.title, msg.err)))
		}
		return b, tea.Batch(notifyCmd, ui.Notify(fmt.Sprintf("%s %s: %s", icon.Get(icon.Play), msg.title, msg.action)))
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	var (
		model tea.Model
		cmd   tea.Cmd
	)

	switch b.state {
	case categoriesState:
		model, cmd = b.updateCategories(msg)
	case loadingState:
		model, cmd = b.updateLoading(msg)
	case itemsState:
		model, cmd = b.updateItems(msg)
	case searchState:
		model, cmd = b.updateSearch(msg)
	case tagsState:
		model, cmd = b.updateTags(msg)
	case detailState:
		model, cmd = b.updateDetail(msg)
	case errorState:
		model, cmd = b.updateError(msg)
	default:
		model = b
	}

	return model, tea.Batch(notifyCmd, cmd)
}

func (b *statefulBubble) updateCategories(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.confirm):
			selected, ok := b.categoriesC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			return b, b.browse(selected.internal.(media.Category))
		}
	}

	b.categoriesC, cmd = b.categoriesC.Update(msg)
	return b, cmd
}

// browse starts loading c. A fresh category starts from an empty query.
func (b *statefulBubble) browse(c media.Category) tea.Cmd {
	b.category = c
	b.dataset = mo.None[*media.Dataset]()
	b.query.Text = ""
	b.query.Tags = nil
	b.inputC.SetValue("")
	b.itemsC.ResetSelected()
	b.tagsC.ResetSelected()
	b.newState(loadingState)
	return tea.Batch(b.spinnerC.Tick, b.loadDataset(c))
}

func (b *statefulBubble) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.back) {
			if b.statesHistory.Len() == 0 {
				return b, tea.Quit
			}
			b.previousState()
			return b, nil
		}
	case datasetLoadedMsg:
		if msg.category != b.category {
			return b, nil
		}

		ds, ok := msg.dataset.Get()
		if !ok {
			b.raiseError(fmt.Errorf("%s are unavailable right now", msg.category.Label()))
			return b, nil
		}

		b.dataset = mo.Some(ds)
		b.newState(itemsState)
		return b, b.refresh()
	}

	b.spinnerC, cmd = b.spinnerC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateItems(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.selectedItem().Get(); ok {
				b.selected = item
				b.newState(detailState)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.play):
			if item, ok := b.selectedItem().Get(); ok {
				return b, b.play(item, catalog.PlaybackOf(item).Primary)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.search):
			b.newState(searchState)
			b.inputC.CursorEnd()
			return b, tea.Batch(b.inputC.Focus(), textinput.Blink)
		case bubblesKey.Matches(msg, b.keymap.tags):
			b.newState(tagsState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.cycleSort):
			b.query.Sort = b.query.Sort.Next()
			return b, b.refresh()
		case bubblesKey.Matches(msg, b.keymap.clearTags):
			b.query.Tags = nil
			return b, b.refresh()
		}
	}

	b.itemsC, cmd = b.itemsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if b.query.Text != "" {
				go query.Remember(b.query.Text, 1)
			}
			b.inputC.Blur()
			b.searchSuggestion = mo.None[string]()
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSearchSuggestion) && b.searchSuggestion.IsPresent():
			b.inputC.SetValue(b.searchSuggestion.MustGet())
			b.searchSuggestion = mo.None[string]()
			b.inputC.CursorEnd()
			b.query.Text = b.inputC.Value()
			return b, b.refresh()
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.SetValue("")
			b.inputC.Blur()
			b.query.Text = ""
			b.searchSuggestion = mo.None[string]()
			b.previousState()
			return b, b.refresh()
		}
	}

	b.inputC, cmd = b.inputC.Update(msg)

	if value := b.inputC.Value(); value != "" {
		if suggestion, ok := query.Suggest(value).Get(); ok && suggestion != value {
			b.searchSuggestion = mo.Some(suggestion)
		} else {
			b.searchSuggestion = mo.None[string]()
		}
	} else if b.searchSuggestion.IsPresent() {
		b.searchSuggestion = mo.None[string]()
	}

	if b.inputC.Value() == b.query.Text {
		return b, cmd
	}

	b.query.Text = b.inputC.Value()
	b.itemsC.ResetSelected()
	return b, tea.Batch(cmd, b.refresh())
}

func (b *statefulBubble) updateTags(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.toggleTag):
			selected, ok := b.tagsC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}
			b.query.Tags = query.ToggleTag(b.query.Tags, selected.internal.(*tagItem).name)
			b.itemsC.ResetSelected()
			return b, b.refresh()
		case bubblesKey.Matches(msg, b.keymap.clearTags):
			b.query.Tags = nil
			return b, b.refresh()
		}
	}

	b.tagsC, cmd = b.tagsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if b.selected == nil {
		b.previousState()
		return b, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.play), bubblesKey.Matches(msg, b.keymap.confirm):
			return b, b.play(b.selected, catalog.PlaybackOf(b.selected).Primary)
		case bubblesKey.Matches(msg, b.keymap.playBackup):
			return b, b.play(b.selected, catalog.PlaybackOf(b.selected).Backup)
		case bubblesKey.Matches(msg, b.keymap.openURL):
			return b, b.openSourceURL(b.selected)
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		}
	}
	return b, nil
}
