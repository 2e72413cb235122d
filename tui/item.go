package tui

import (
	"fmt"
	"strings"

	"github.com/boomerplus/boomerplus/icon"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/resolve"
	"github.com/boomerplus/boomerplus/style"
	"github.com/spf13/viper"
)

// tagItem is one row of the tag filter panel.
type tagItem struct {
	name     string
	selected bool
}

// listItem adapts categories, items and tags to list.Item.
type listItem struct {
	internal interface{}
}

func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case media.Category:
		return fmt.Sprintf("%s %s", icon.Get(icon.Category(e)), e.Label())
	case *media.Item:
		return e.Title
	case *tagItem:
		if e.selected {
			return fmt.Sprintf("%s %s", e.name, style.Fg(style.AccentColor)(icon.Get(icon.Check)))
		}
		return e.name
	default:
		return t.FilterValue()
	}
}

func (t *listItem) Description() string {
	e, ok := t.internal.(*media.Item)
	if !ok {
		return ""
	}

	parts := []string{present.YearLabel(e)}
	if runtime := present.FormatRuntime(e.Runtime()); runtime != "" {
		parts = append(parts, runtime)
	}
	if tags := present.TagPreview(e, 3); len(tags) > 0 {
		parts = append(parts, style.Faint(strings.Join(tags, ", ")))
	}

	description := strings.Join(parts, " • ")

	if viper.GetBool(key.TUIShowURLs) {
		if u, _ := resolve.Primary(e.Sources); u != "" {
			description += "\n" + style.Faint(u)
		}
	}

	return description
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case media.Category:
		return string(e)
	case *media.Item:
		return e.Title
	case *tagItem:
		return e.name
	default:
		return ""
	}
}
