// Package color is the terminal palette, plus one accent per category.
package color

import (
	"github.com/boomerplus/boomerplus/media"
	"github.com/charmbracelet/lipgloss"
)

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)

var categoryColors = map[media.Category]lipgloss.Color{
	media.Movies:      New("#f38ba8"),
	media.TV:          New("#89b4fa"),
	media.Radio:       New("#f9e2af"),
	media.Concerts:    New("#cba6f7"),
	media.Commercials: New("#fab387"),
	media.Images:      New("#94e2d5"),
}

// Category is the accent of c. Unknown categories are gray.
func Category(c media.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return Gray
}
