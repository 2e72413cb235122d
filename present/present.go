// Package present derives display-only values from records.
package present

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/boomerplus/boomerplus/media"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// UnknownDate is shown in place of a missing year.
const UnknownDate = "Date unknown"

// Initials takes the first rune of the first two words of title, upper-cased.
func Initials(title string) string {
	words := strings.Fields(title)
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

// FormatMinutes renders a runtime: "45 min", "2h", "1h 30m". Zero or less is "".
func FormatMinutes(minutes int) string {
	switch {
	case minutes <= 0:
		return ""
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	case minutes%60 == 0:
		return fmt.Sprintf("%dh", minutes/60)
	default:
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
}

// FormatRuntime is FormatMinutes over an optional runtime.
func FormatRuntime(minutes mo.Option[int]) string {
	return FormatMinutes(minutes.OrEmpty())
}

// YearLabel is the display year or UnknownDate.
func YearLabel(item *media.Item) string {
	return item.Year().OrElse(UnknownDate)
}

// Detail is one labelled row of the item page.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Details lists the populated detail rows of item in page order.
func Details(item *media.Item) []Detail {
	rows := []Detail{
		{"Year", item.Year().OrEmpty()},
		{"Country", item.Country()},
		{"Runtime", FormatRuntime(item.Runtime())},
		{"Artist", item.Artist()},
		{"Host", item.Host()},
		{"Type", item.WorkType()},
		{"Instrumentation", strings.Join(item.Instrumentation(), ", ")},
	}

	return lo.Filter(rows, func(d Detail, _ int) bool {
		return d.Value != ""
	})
}

// TagPreview is the first n tags.
func TagPreview(item *media.Item, n int) []string {
	if n < 0 || len(item.Tags) <= n {
		return item.Tags
	}
	return item.Tags[:n]
}

// CountLabel renders "1 item" or "N items".
func CountLabel(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}

// UpdatedLabel renders the generation date of a dataset, or "" when unknown.
func UpdatedLabel(ds *media.Dataset) string {
	if ds == nil {
		return ""
	}
	return UpdatedAt(ds.GeneratedAt)
}

// UpdatedAt renders a generation timestamp as "Updated Jan 2, 2006", or "" when unknown.
func UpdatedAt(ts media.Timestamp) string {
	t, ok := ts.Get()
	if !ok {
		return ""
	}
	return "Updated " + t.Format("Jan 2, 2006")
}

// Poster is the artwork of an item: its poster URL, or the placeholder initials.
type Poster struct {
	URL      string `json:"url,omitempty"`
	Initials string `json:"initials"`
}

// PosterOf returns the artwork of item.
func PosterOf(item *media.Item) Poster {
	return Poster{URL: item.Sources.PosterImage, Initials: Initials(item.Title)}
}

// LicenseLabel summarises the public-domain claims of item, or "" when it makes none.
func LicenseLabel(item *media.Item) string {
	l := item.License
	if l.LicenseNotes != "" {
		return l.LicenseNotes
	}

	claims := lo.FilterMap([]lo.Tuple2[string, *bool]{
		{A: "film", B: l.FilmPD},
		{A: "broadcast", B: l.BroadcastPD},
		{A: "recording", B: l.RecordingPD},
		{A: "work", B: l.WorkPD},
	}, func(t lo.Tuple2[string, *bool], _ int) (string, bool) {
		return t.A, t.B != nil && *t.B
	})
	if len(claims) == 0 {
		return ""
	}
	return "Public domain (" + strings.Join(claims, ", ") + ")"
}
