// Package history remembers which catalog items were played.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// Play is one remembered item.
type Play struct {
	Category media.Category `json:"category"`
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	Times    int            `json:"times"`
	LastAt   time.Time      `json:"last_at"`
}

func (p *Play) encode() string {
	return fmt.Sprintf("%s/%s", p.Category, p.Slug)
}

// String renders the title with its category tab label.
func (p *Play) String() string {
	return fmt.Sprintf("%s (%s)", p.Title, p.Category.Short())
}

var cacher = gache.New[map[string]*Play](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// now is swapped in tests.
var now = time.Now

// mu serialises access to the history file.
var mu sync.Mutex

// load returns a private copy of the stored plays. Callers must hold mu.
func load() (map[string]*Play, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Play), nil
	}

	copied := make(map[string]*Play, len(cached))
	for k, p := range cached {
		play := *p
		copied[k] = &play
	}
	return copied, nil
}

// Get returns every remembered play, most recent first.
func Get() ([]*Play, error) {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return nil, err
	}

	plays := lo.Values(saved)
	slices.SortFunc(plays, func(a, b *Play) int {
		return b.LastAt.Compare(a.LastAt)
	})
	return plays, nil
}

// Save records that item was played. It does nothing when history.save is off.
func Save(item *media.Item) error {
	if !viper.GetBool(key.HistorySave) {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return err
	}

	record := &Play{Category: item.Category, Slug: item.Slug, Title: item.Title}
	if existing, ok := saved[record.encode()]; ok {
		record.Times = existing.Times
	}
	record.Times++
	record.LastAt = now()

	saved[record.encode()] = record
	return cacher.Set(saved)
}

// Remove forgets one play.
func Remove(play *Play) error {
	mu.Lock()
	defer mu.Unlock()

	saved, err := load()
	if err != nil {
		return err
	}

	delete(saved, play.encode())
	return cacher.Set(saved)
}
