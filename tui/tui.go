// Package tui is the interactive terminal browser over the catalog.
package tui

import (
	"context"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/player"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
)

// Options configure a browser session.
type Options struct {
	Catalog *catalog.Catalog
	// Handoff plays resolved sources. player.Default when nil.
	Handoff *player.Handoff
	// Category opens straight into one category instead of the picker.
	Category mo.Option[media.Category]
}

// Init opens the requested category, if any.
func (b *statefulBubble) Init() tea.Cmd {
	if b.state == loadingState {
		return tea.Batch(textinput.Blink, b.spinnerC.Tick, b.loadDataset(b.category))
	}
	return textinput.Blink
}

// Run starts the browser and blocks until it exits.
func Run(ctx context.Context, options *Options) error {
	bubble := newBubble(ctx, options)

	if c, ok := options.Category.Get(); ok {
		bubble.category = c
		bubble.statesHistory.Push(categoriesState)
		bubble.setState(loadingState)
	} else {
		bubble.setState(categoriesState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
