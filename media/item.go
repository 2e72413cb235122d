package media

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/mo"
)

// Item is one catalog record: the fields shared by every category plus the
// payload of its own category.
type Item struct {
	Slug        string
	Category    Category
	Title       string
	Description string
	Tags        []string
	Sources     Source
	License     License
	Audit       Audit
	Ingestion   Ingestion

	// Variant is nil only for a zero Item.
	Variant Variant
}

// common is the wire shape of the shared fields.
type common struct {
	Slug        string    `json:"slug"`
	Category    Category  `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	Sources     Source    `json:"sources"`
	License     License   `json:"license"`
	Audit       Audit     `json:"pd_audit"`
	Ingestion   Ingestion `json:"ingestion"`
}

// Year is the display year: the range string for TV, the decimal year otherwise.
func (it *Item) Year() mo.Option[string] {
	if it == nil || it.Variant == nil {
		return mo.None[string]()
	}
	return it.Variant.displayYear()
}

// SortYear is the year used by year sorts. Unknown is 0.
func (it *Item) SortYear() int {
	if it == nil || it.Variant == nil {
		return 0
	}
	return it.Variant.sortYear()
}

// Runtime in minutes. Only movies and TV carry it.
func (it *Item) Runtime() mo.Option[int] {
	if it == nil || it.Variant == nil {
		return mo.None[int]()
	}
	return it.Variant.runtime()
}

// Country is the country of production or broadcast, "" when unknown.
func (it *Item) Country() string {
	if it == nil || it.Variant == nil {
		return ""
	}
	return it.Variant.country()
}

// Host is the speaker or host of a movie or radio show.
func (it *Item) Host() string {
	if it == nil || it.Variant == nil {
		return ""
	}
	return it.Variant.host()
}

// Artist is the composer or performer of a concert.
func (it *Item) Artist() string {
	if it == nil || it.Variant == nil {
		return ""
	}
	return it.Variant.artist()
}

// WorkType is the kind of work (feature, serial, short...) of movies and TV.
func (it *Item) WorkType() string {
	if it == nil || it.Variant == nil {
		return ""
	}
	return it.Variant.workType()
}

// Instrumentation lists the instruments of a concert in dataset order.
func (it *Item) Instrumentation() []string {
	if it == nil || it.Variant == nil {
		return nil
	}
	return it.Variant.instrumentation()
}

// HasTag reports whether tag is one of the item's tags, compared as stored.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// UnmarshalJSON reads the shared fields, then the payload of the item's category.
// An unknown category fails the decode.
func (it *Item) UnmarshalJSON(b []byte) error {
	return it.decode(b, "")
}

// decode reads the shared fields, then the payload of the item's category.
// fallback is used when the record carries no category at all.
func (it *Item) decode(b []byte, fallback Category) error {
	var c common
	if err := json.Unmarshal(b, &c); err != nil {
		return err
	}

	if c.Category == "" {
		c.Category = fallback
	}

	if c.Category == "" {
		return errors.New("item has no category")
	}

	variant, err := newVariant(c.Category)
	if err != nil {
		return fmt.Errorf("item %q: %w: %q", c.Slug, err, c.Category)
	}

	if err = json.Unmarshal(b, variant); err != nil {
		return fmt.Errorf("item %q: %w", c.Slug, err)
	}

	*it = Item{
		Slug:        c.Slug,
		Category:    c.Category,
		Title:       c.Title,
		Description: c.Description,
		Tags:        c.Tags,
		Sources:     c.Sources,
		License:     c.License,
		Audit:       c.Audit,
		Ingestion:   c.Ingestion,
		Variant:     variant,
	}
	return nil
}

// MarshalJSON writes the shared fields and the variant payload as one flat object.
func (it Item) MarshalJSON() ([]byte, error) {
	head, err := json.Marshal(common{
		Slug:        it.Slug,
		Category:    it.Category,
		Title:       it.Title,
		Description: it.Description,
		Tags:        it.Tags,
		Sources:     it.Sources,
		License:     it.License,
		Audit:       it.Audit,
		Ingestion:   it.Ingestion,
	})
	if err != nil {
		return nil, err
	}

	if it.Variant == nil {
		return head, nil
	}

	tail, err := json.Marshal(it.Variant)
	if err != nil {
		return nil, err
	}

	return mergeObjects(head, tail), nil
}

// mergeObjects joins two encoded JSON objects into one.
func mergeObjects(a, b []byte) []byte {
	b = bytes.TrimSpace(b)
	if len(b) <= 2 {
		return a
	}

	a = bytes.TrimSpace(a)
	var buf bytes.Buffer
	buf.Grow(len(a) + len(b))
	buf.Write(a[:len(a)-1])
	if len(a) > 2 {
		buf.WriteByte(',')
	}
	buf.Write(b[1:])
	return buf.Bytes()
}
