package media

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/mo"
)

// Dataset is the versioned collection of one category's items.
type Dataset struct {
	Version     int       `json:"version"`
	GeneratedAt Timestamp `json:"generated_at"`
	Items       []*Item   `json:"items"`
}

type rawDataset struct {
	Version     int               `json:"version"`
	GeneratedAt Timestamp         `json:"generated_at"`
	Items       []json.RawMessage `json:"items"`
}

// DecodeDataset reads a dataset of category c. Items that do not name a
// category are taken to belong to c.
func DecodeDataset(r io.Reader, c Category) (*Dataset, error) {
	var raw rawDataset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	ds := &Dataset{
		Version:     raw.Version,
		GeneratedAt: raw.GeneratedAt,
		Items:       make([]*Item, 0, len(raw.Items)),
	}

	for i, b := range raw.Items {
		item := &Item{}
		if err := item.decode(b, c); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		ds.Items = append(ds.Items, item)
	}

	return ds, nil
}

// Find looks an item up by slug.
func (d *Dataset) Find(slug string) mo.Option[*Item] {
	if d == nil {
		return mo.None[*Item]()
	}

	for _, item := range d.Items {
		if item.Slug == slug {
			return mo.Some(item)
		}
	}

	return mo.None[*Item]()
}

// Slugs lists the item slugs in dataset order.
func (d *Dataset) Slugs() []string {
	if d == nil {
		return nil
	}

	slugs := make([]string, len(d.Items))
	for i, item := range d.Items {
		slugs[i] = item.Slug
	}
	return slugs
}
