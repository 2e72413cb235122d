package media

import (
	"regexp"
	"strconv"

	"github.com/samber/mo"
)

// Variant is the category-specific payload of an Item.
//
// Every projection of a category-specific field is a method here, so adding a
// category means adding a type that implements all of them; the decoder in
// item.go refuses to compile until it does.
type Variant interface {
	Category() Category

	displayYear() mo.Option[string]
	sortYear() int
	runtime() mo.Option[int]
	country() string
	host() string
	artist() string
	workType() string
	instrumentation() []string
}

// Movie is the payload of the movies category.
type Movie struct {
	YearReleased   *int   `json:"year_released,omitempty"`
	Country        string `json:"country,omitempty"`
	RuntimeMinutes *int   `json:"runtime_minutes,omitempty"`
	WorkType       string `json:"work_type,omitempty"`
	SpeakerOrHost  string `json:"speaker_or_host,omitempty"`
}

// TVShow is the payload of the tv category.
type TVShow struct {
	YearsAired     string `json:"years_aired,omitempty" jsonschema:"example=1951-1957"`
	Country        string `json:"country,omitempty"`
	RuntimeMinutes *int   `json:"runtime_minutes,omitempty"`
	WorkType       string `json:"work_type,omitempty"`
}

// RadioShow is the payload of the radio category.
type RadioShow struct {
	YearBroadcast *int   `json:"year_broadcast,omitempty"`
	Years         string `json:"years,omitempty"`
	SpeakerOrHost string `json:"speaker_or_host,omitempty"`
	Country       string `json:"country,omitempty"`
}

// Concert is the payload of the concerts category.
type Concert struct {
	ComposerOrArtist string   `json:"composer_or_artist,omitempty"`
	YearComposed     *int     `json:"year_composed,omitempty"`
	CatalogNumber    string   `json:"catalog_number,omitempty"`
	Instrumentation  []string `json:"instrumentation,omitempty"`
}

// Commercial is the payload of the commercials category. It has no extra fields.
type Commercial struct{}

// Image is the payload of the images category. It has no extra fields.
type Image struct{}

func (*Movie) Category() Category      { return Movies }
func (*TVShow) Category() Category     { return TV }
func (*RadioShow) Category() Category  { return Radio }
func (*Concert) Category() Category    { return Concerts }
func (*Commercial) Category() Category { return Commercials }
func (*Image) Category() Category      { return Images }

func intYear(y *int) mo.Option[string] {
	if y == nil || *y == 0 {
		return mo.None[string]()
	}
	return mo.Some(strconv.Itoa(*y))
}

func stringYear(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}

func sortable(y *int) int {
	if y == nil {
		return 0
	}
	return *y
}

func minutes(m *int) mo.Option[int] {
	if m == nil || *m == 0 {
		return mo.None[int]()
	}
	return mo.Some(*m)
}

var leadingYear = regexp.MustCompile(`^\s*(\d{4})`)

// rangeStart reads the first year of a range such as "1951-1957".
func rangeStart(s string) int {
	m := leadingYear.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	y, _ := strconv.Atoi(m[1])
	return y
}

func (m *Movie) displayYear() mo.Option[string] { return intYear(m.YearReleased) }
func (m *Movie) sortYear() int                  { return sortable(m.YearReleased) }
func (m *Movie) runtime() mo.Option[int]        { return minutes(m.RuntimeMinutes) }
func (m *Movie) country() string                { return m.Country }
func (m *Movie) host() string                   { return m.SpeakerOrHost }
func (m *Movie) artist() string                 { return "" }
func (m *Movie) workType() string               { return m.WorkType }
func (m *Movie) instrumentation() []string      { return nil }

func (t *TVShow) displayYear() mo.Option[string] { return stringYear(t.YearsAired) }
func (t *TVShow) sortYear() int                  { return rangeStart(t.YearsAired) }
func (t *TVShow) runtime() mo.Option[int]        { return minutes(t.RuntimeMinutes) }
func (t *TVShow) country() string                { return t.Country }
func (t *TVShow) host() string                   { return "" }
func (t *TVShow) artist() string                 { return "" }
func (t *TVShow) workType() string               { return t.WorkType }
func (t *TVShow) instrumentation() []string      { return nil }

func (r *RadioShow) displayYear() mo.Option[string] {
	if y := intYear(r.YearBroadcast); y.IsPresent() {
		return y
	}
	return stringYear(r.Years)
}
func (r *RadioShow) sortYear() int             { return sortable(r.YearBroadcast) }
func (r *RadioShow) runtime() mo.Option[int]   { return mo.None[int]() }
func (r *RadioShow) country() string           { return r.Country }
func (r *RadioShow) host() string              { return r.SpeakerOrHost }
func (r *RadioShow) artist() string            { return "" }
func (r *RadioShow) workType() string          { return "" }
func (r *RadioShow) instrumentation() []string { return nil }

func (c *Concert) displayYear() mo.Option[string] { return intYear(c.YearComposed) }
func (c *Concert) sortYear() int                  { return sortable(c.YearComposed) }
func (c *Concert) runtime() mo.Option[int]        { return mo.None[int]() }
func (c *Concert) country() string                { return "" }
func (c *Concert) host() string                   { return "" }
func (c *Concert) artist() string                 { return c.ComposerOrArtist }
func (c *Concert) workType() string               { return "" }
func (c *Concert) instrumentation() []string      { return c.Instrumentation }

func (*Commercial) displayYear() mo.Option[string] { return mo.None[string]() }
func (*Commercial) sortYear() int                  { return 0 }
func (*Commercial) runtime() mo.Option[int]        { return mo.None[int]() }
func (*Commercial) country() string                { return "" }
func (*Commercial) host() string                   { return "" }
func (*Commercial) artist() string                 { return "" }
func (*Commercial) workType() string               { return "" }
func (*Commercial) instrumentation() []string      { return nil }

func (*Image) displayYear() mo.Option[string] { return mo.None[string]() }
func (*Image) sortYear() int                  { return 0 }
func (*Image) runtime() mo.Option[int]        { return mo.None[int]() }
func (*Image) country() string                { return "" }
func (*Image) host() string                   { return "" }
func (*Image) artist() string                 { return "" }
func (*Image) workType() string               { return "" }
func (*Image) instrumentation() []string      { return nil }

// newVariant returns an empty payload for c.
func newVariant(c Category) (Variant, error) {
	switch c {
	case Movies:
		return &Movie{}, nil
	case TV:
		return &TVShow{}, nil
	case Radio:
		return &RadioShow{}, nil
	case Concerts:
		return &Concert{}, nil
	case Commercials:
		return &Commercial{}, nil
	case Images:
		return &Image{}, nil
	default:
		return nil, ErrUnknownCategory
	}
}
