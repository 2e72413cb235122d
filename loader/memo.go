package loader

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/media"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// memo keeps one gache file per category under dir.
type memo struct {
	dir      string
	lifetime time.Duration

	mu     sync.Mutex
	caches map[media.Category]*gache.Cache[*media.Dataset]
}

func newMemo(dir string, lifetime time.Duration) *memo {
	return &memo{
		dir:      dir,
		lifetime: lifetime,
		caches:   make(map[media.Category]*gache.Cache[*media.Dataset]),
	}
}

func (m *memo) cache(c media.Category) *gache.Cache[*media.Dataset] {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cache, ok := m.caches[c]; ok {
		return cache
	}

	cache := gache.New[*media.Dataset](&gache.Options{
		Path:       filepath.Join(m.dir, string(c)+".json"),
		Lifetime:   m.lifetime,
		FileSystem: &filesystem.GacheFs{},
	})
	m.caches[c] = cache
	return cache
}

func (m *memo) get(c media.Category) mo.Option[*media.Dataset] {
	ds, expired, err := m.cache(c).Get()
	if err != nil || expired || ds == nil {
		return mo.None[*media.Dataset]()
	}
	return mo.Some(ds)
}

func (m *memo) set(c media.Category, ds *media.Dataset) error {
	return m.cache(c).Set(ds)
}
