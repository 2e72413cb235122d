// Package player hands a resolved source over to whatever can play it:
// an external media player for direct files, the browser for everything else.
package player

import (
	"errors"
	"fmt"

	"github.com/boomerplus/boomerplus/resolve"
)

// ErrNoSource is returned when an item has nothing to play.
var ErrNoSource = errors.New("no playable source")

// Launcher starts external programs.
type Launcher interface {
	// Browse opens url in the default browser.
	Browse(url string) error
	// Media plays a direct file URL in the media player.
	Media(url, title string) error
}

// Handoff plays resolutions through a Launcher.
type Handoff struct {
	Launcher Launcher
}

// Default uses the system launcher and the configured player.
var Default = &Handoff{Launcher: System{}}

// Play starts r. Direct files go to the media player, embeds open their
// embed page and other links open as they are.
func (h *Handoff) Play(r resolve.Resolution, title string) error {
	switch r.Kind {
	case resolve.DirectVideo, resolve.DirectAudio:
		return h.Launcher.Media(r.URL, title)
	case resolve.Embed:
		return h.Launcher.Browse(r.EmbedURL)
	case resolve.SearchLink, resolve.Outbound:
		return h.Launcher.Browse(r.URL)
	default:
		return ErrNoSource
	}
}

// Play starts r with the default hand-off.
func Play(r resolve.Resolution, title string) error {
	return Default.Play(r, title)
}

// Describe says what Play will do with r.
func Describe(r resolve.Resolution, player string) string {
	switch r.Kind {
	case resolve.DirectVideo:
		return fmt.Sprintf("play video in %s", player)
	case resolve.DirectAudio:
		return fmt.Sprintf("play audio in %s", player)
	case resolve.Embed:
		return "open archive player in browser"
	case resolve.SearchLink:
		return "open archive search in browser"
	case resolve.Outbound:
		return "open link in browser"
	default:
		return "nothing to play"
	}
}
