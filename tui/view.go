package tui

import (
	"fmt"
	"strings"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/icon"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/player"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/resolve"
	"github.com/boomerplus/boomerplus/style"
	"github.com/boomerplus/boomerplus/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case categoriesState:
		output = b.viewCategories()
	case loadingState:
		output = b.viewLoading()
	case itemsState, searchState:
		output = b.viewItems()
	case tagsState:
		output = b.viewTags()
	case detailState:
		output = b.viewDetail()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewCategories() string {
	return listExtraPaddingStyle.Render(b.categoriesC.View())
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Loading"),
			"",
			b.spinnerC.View() + " " + b.category.Label(),
		},
	)
}

// filterLine shows the search input while typing, else the active query.
func (b *statefulBubble) filterLine() string {
	if b.state == searchState {
		line := b.inputC.View()
		if suggestion, ok := b.searchSuggestion.Get(); ok {
			line += " " + style.Faint(fmt.Sprintf("tab: %s", suggestion))
		}
		return line
	}

	var parts []string
	if b.query.Text != "" {
		parts = append(parts, fmt.Sprintf("%s %q", icon.Get(icon.Search), b.query.Text))
	}
	if len(b.query.Tags) > 0 {
		parts = append(parts, strings.Join(lo.Map(b.query.Tags, func(tag string, _ int) string {
			return style.Chip(tag, true)
		}), " "))
	}
	if len(parts) == 0 {
		return style.Faint("/ to search, t to filter by tag")
	}
	return strings.Join(parts, "  ")
}

func (b *statefulBubble) viewItems() string {
	return listExtraPaddingStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, " "+b.filterLine(), "", b.itemsC.View()),
	)
}

func (b *statefulBubble) viewTags() string {
	return listExtraPaddingStyle.Render(b.tagsC.View())
}

func (b *statefulBubble) viewDetail() string {
	item := b.selected
	if item == nil {
		return b.viewItems()
	}

	width := b.width
	lines := []string{
		style.CategoryTitle(item.Category)(item.Title),
		"",
	}

	for _, d := range present.Details(item) {
		lines = append(lines, style.Truncate(width)(fmt.Sprintf("%s %s", style.Faint(d.Label+":"), d.Value)))
	}
	if len(item.Tags) > 0 {
		lines = append(lines, "", util.Wrap(strings.Join(lo.Map(item.Tags, func(tag string, _ int) string {
			return style.Chip(tag, lo.Contains(b.query.Tags, tag))
		}), " "), width))
	}
	if item.Description != "" {
		lines = append(lines, "", util.Wrap(item.Description, width))
	}
	if license := present.LicenseLabel(item); license != "" {
		lines = append(lines, "", style.Faint("License: "+license))
	}

	playback := catalog.PlaybackOf(item)
	lines = append(lines, "", style.Bold("Playback"))
	lines = append(lines, b.playbackLine("p", playback.Primary))
	if playback.Backup.Kind != resolve.None {
		lines = append(lines, b.playbackLine("b", playback.Backup))
	}
	if viper.GetBool(key.TUIShowURLs) && playback.Primary.URL != "" {
		lines = append(lines, style.Truncate(width)(style.Faint(playback.Primary.URL)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) playbackLine(binding string, r resolve.Resolution) string {
	return fmt.Sprintf(
		"%s %s %s",
		style.Fg(color.Orange)(binding),
		icon.Get(icon.Play),
		player.Describe(r, viper.GetString(key.Player)),
	)
}

func (b *statefulBubble) viewError() string {
	errorMsg := util.Wrap(style.Fg(style.ErrorColor)(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Cross) + " Something went wrong:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := lipgloss.Height(strings.Join(lines, "\n"))
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
