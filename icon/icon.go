// Package icon renders UI symbols in the variant chosen by icons.variant:
// emoji, nerd-font glyphs, plain ASCII, kaomoji or Unicode squares.
package icon

import (
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/media"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon names a symbol.
type Icon int

const (
	Movie Icon = iota + 1
	TV
	Radio
	Concert
	Commercial
	Image
	Play
	Link
	Search
	Tag
	Check
	Cross
	Unknown
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Movie:      {emoji: "🎬", nerd: "", plain: "[M]", kaomoji: "(⌐■_■)", squares: "▣"},
	TV:         {emoji: "📺", nerd: "", plain: "[T]", kaomoji: "(°▽°)", squares: "▤"},
	Radio:      {emoji: "📻", nerd: "", plain: "[R]", kaomoji: "(´∀`)♪", squares: "▥"},
	Concert:    {emoji: "🎻", nerd: "", plain: "[C]", kaomoji: "♪(´ε` )", squares: "▦"},
	Commercial: {emoji: "📣", nerd: "", plain: "[A]", kaomoji: "(・o・)", squares: "▧"},
	Image:      {emoji: "🖼", nerd: "", plain: "[I]", kaomoji: "(◕‿◕)", squares: "▨"},
	Play:       {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(ง •̀_•́)ง", squares: "▶"},
	Link:       {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(・_・)ノ", squares: "◈"},
	Search:     {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(・・ )?", squares: "◎"},
	Tag:        {emoji: "🏷", nerd: "", plain: "#", kaomoji: "(￣▽￣)", squares: "◆"},
	Check:      {emoji: "✅", nerd: "", plain: "+", kaomoji: "(ᵔᴥᵔ)", squares: "■"},
	Cross:      {emoji: "❌", nerd: "", plain: "x", kaomoji: "(╥﹏╥)", squares: "□"},
	Unknown:    {emoji: "❔", nerd: "", plain: "?", kaomoji: "(・_・;)", squares: "▢"},
}

// Get renders i in the configured variant. Unknown icons render empty.
func Get(i Icon) string {
	def, ok := icons[i]
	if !ok {
		return ""
	}
	return def.Get()
}

// Category is the symbol of c.
func Category(c media.Category) Icon {
	switch c {
	case media.Movies:
		return Movie
	case media.TV:
		return TV
	case media.Radio:
		return Radio
	case media.Concerts:
		return Concert
	case media.Commercials:
		return Commercial
	case media.Images:
		return Image
	default:
		return Unknown
	}
}
