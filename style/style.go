// Package style composes lipgloss styles into plain string renderers.
package style

import (
	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/media"
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored is a style with fg and bg set. Empty colors are left unset.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a renderer that paints the foreground.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a renderer that constrains output to max columns.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().MaxWidth(max).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a renderer that draws s as a padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// CategoryTitle is Title in the accent of c.
func CategoryTitle(c media.Category) func(string) string {
	return Tag(Base, color.Category(c))
}

// Chip renders one item tag; selected tags are highlighted.
func Chip(tag string, selected bool) string {
	if selected {
		return Tag(Base, AccentColor)(tag)
	}
	return Colored(Subtext, Surface).Padding(0, 1).Render(tag)
}
