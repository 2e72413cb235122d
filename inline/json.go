package inline

import (
	"encoding/json"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/query"
)

type Entry struct {
	Item     *media.Item      `json:"item"`
	Playback catalog.Playback `json:"playback"`
}

type Output struct {
	Query    string         `json:"query"`
	Category media.Category `json:"category,omitempty"`
	Tags     []string       `json:"tags,omitempty"`
	Sort     query.SortKey  `json:"sort,omitempty"`
	Result   []*Entry       `json:"result"`
}

func asJson(items []*media.Item, options *Options) ([]byte, error) {
	result := make([]*Entry, len(items))
	for i, item := range items {
		result[i] = &Entry{Item: item, Playback: catalog.PlaybackOf(item)}
	}

	return json.Marshal(&Output{
		Query:    options.State.Text,
		Category: options.Category.OrEmpty(),
		Tags:     options.State.Tags,
		Sort:     options.State.Sort,
		Result:   result,
	})
}
