// Package inline is the scriptable, non-interactive mode: run a query, pick
// items from the result and print them as text or JSON.
package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker narrows a result list.
type Picker func([]*media.Item) []*media.Item

type Options struct {
	Out io.Writer
	// Category restricts the query to one dataset. Without it the text is
	// searched across every category.
	Category mo.Option[media.Category]
	State    query.State
	Picker   mo.Option[Picker]
	Json     bool
	// URLs prints the primary source URL of each item instead of a summary.
	URLs bool
}

// ParsePicker parses an item selector:
//
//	first, last, all
//	N        the item at index N (from 0)
//	A-B      items A to B inclusive
//	@text@   items whose title contains text
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(items []*media.Item) []*media.Item {
			return items[:min(1, len(items))]
		}, nil
	case "last":
		return func(items []*media.Item) []*media.Item {
			return items[max(0, len(items)-1):]
		}, nil
	case "all":
		return func(items []*media.Item) []*media.Item {
			return items
		}, nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(items []*media.Item) []*media.Item {
			return lo.Filter(items, func(item *media.Item, _ int) bool {
				return strings.Contains(strings.ToLower(item.Title), sub)
			})
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		a, errA := strconv.ParseUint(from, 10, 16)
		b, errB := strconv.ParseUint(to, 10, 16)
		if errA == nil && errB == nil {
			return func(items []*media.Item) []*media.Item {
				start := min(int(a), len(items))
				end := min(int(b)+1, len(items))
				if start > end {
					return nil
				}
				return items[start:end]
			}, nil
		}
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(items []*media.Item) []*media.Item {
			if int(idx) >= len(items) {
				return nil
			}
			return items[idx : idx+1]
		}, nil
	}

	return nil, fmt.Errorf("invalid item selector: %s", description)
}
