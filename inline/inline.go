package inline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/query"
	"github.com/boomerplus/boomerplus/resolve"
)

// Run queries c and writes the picked items to options.Out.
func Run(ctx context.Context, c *catalog.Catalog, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	items, err := Select(ctx, c, options)
	if err != nil {
		return err
	}

	if options.Json {
		return writeJson(options.Out, items, options)
	}

	for _, item := range items {
		if options.URLs {
			if u, _ := resolve.Primary(item.Sources); u != "" {
				fmt.Fprintln(options.Out, u)
			}
			continue
		}

		fmt.Fprintf(options.Out, "%s\t%s\t%s\t%s\n",
			item.Slug,
			item.Title,
			present.YearLabel(item),
			strings.Join(present.TagPreview(item, -1), ", "),
		)
	}

	return nil
}

// Select runs the query and applies the picker.
func Select(ctx context.Context, c *catalog.Catalog, options *Options) ([]*media.Item, error) {
	var items []*media.Item

	if category, ok := options.Category.Get(); ok {
		view, ok := c.Browse(ctx, category, options.State)
		if !ok {
			return nil, fmt.Errorf("%s are unavailable", category.Label())
		}
		items = view.Items
	} else {
		result := c.Search(ctx, options.State.Text)
		items = query.Sort(query.FilterTags(result.Items, options.State.Tags), options.State.Sort)
	}

	if picker, ok := options.Picker.Get(); ok {
		items = picker(items)
	}

	return items, nil
}

func writeJson(out io.Writer, items []*media.Item, options *Options) error {
	data, err := asJson(items, options)
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return err
}
