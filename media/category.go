// Package media defines the catalog's record model: categories, items and their per-category payloads, sources and datasets.
package media

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownCategory is returned when a string names no known category.
var ErrUnknownCategory = errors.New("unknown category")

// Category partitions the catalog. Each category has its own dataset.
type Category string

const (
	Movies      Category = "movies"
	TV          Category = "tv"
	Radio       Category = "radio"
	Concerts    Category = "concerts"
	Commercials Category = "commercials"
	Images      Category = "images"
)

var categories = []Category{Movies, TV, Radio, Concerts, Commercials, Images}

// Categories returns every category in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ParseCategory maps a name such as "movies" to its Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if lo.Contains(categories, c) {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Names returns the category names, for flag completion.
func Names() []string {
	return lo.Map(categories, func(c Category, _ int) string { return string(c) })
}

func (c Category) String() string {
	return string(c)
}

// Label is the page heading for the category.
func (c Category) Label() string {
	switch c {
	case Movies:
		return "Classic Movies"
	case TV:
		return "Classic TV Shows"
	case Radio:
		return "Classic Radio Shows"
	case Concerts:
		return "Classical Concerts"
	case Commercials:
		return "Vintage Commercials"
	case Images:
		return "Images"
	default:
		return "Media"
	}
}

// Short is the tab label used in search results.
func (c Category) Short() string {
	switch c {
	case Movies:
		return "Movies"
	case TV:
		return "TV"
	case Radio:
		return "Radio"
	case Concerts:
		return "Concerts"
	case Commercials:
		return "Commercials"
	case Images:
		return "Images"
	default:
		return string(c)
	}
}
