// Package loader fetches category datasets, one resource per category.
//
// A failed fetch is never an error to the caller: it is logged and the
// dataset is reported as absent.
package loader

import (
	"context"
	"time"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/network"
	"github.com/boomerplus/boomerplus/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// Loader loads datasets through a Fetcher, optionally memoizing them.
type Loader struct {
	fetcher Fetcher
	memo    *memo
}

// Option configures a Loader.
type Option func(*Loader)

// WithMemo memoizes successful fetches in dir for lifetime.
func WithMemo(dir string, lifetime time.Duration) Option {
	return func(l *Loader) {
		l.memo = newMemo(dir, lifetime)
	}
}

// New returns a loader reading through fetcher. Without options every call fetches.
func New(fetcher Fetcher, options ...Option) *Loader {
	l := &Loader{fetcher: fetcher}
	for _, option := range options {
		option(l)
	}
	return l
}

// FromConfig builds the loader described by the data.* keys.
func FromConfig() *Loader {
	fetcher := NewFetcher(viper.GetString(key.DataBase), network.Client, filesystem.ReadOnly())

	var options []Option
	if viper.GetBool(key.DataCacheEnable) {
		options = append(options, WithMemo(where.Datasets(), viper.GetDuration(key.DataCacheLifetime)))
	}

	return New(fetcher, options...)
}

// Describe is the address the dataset of c is read from.
func (l *Loader) Describe(c media.Category) string {
	return l.fetcher.Address(c)
}

// LoadCategory fetches and decodes the dataset of c in a single attempt.
func (l *Loader) LoadCategory(ctx context.Context, c media.Category) mo.Option[*media.Dataset] {
	logger := log.With(log.Fields{"category": c, "address": l.Describe(c)})

	if l.memo != nil {
		if ds, ok := l.memo.get(c).Get(); ok {
			logger.Debug("dataset served from memo")
			return mo.Some(ds)
		}
	}

	body, err := l.fetcher.Fetch(ctx, c)
	if err != nil {
		logger.Warnf("dataset unavailable: %s", err)
		return mo.None[*media.Dataset]()
	}
	defer body.Close()

	ds, err := media.DecodeDataset(body, c)
	if err != nil {
		logger.Warnf("dataset malformed: %s", err)
		return mo.None[*media.Dataset]()
	}

	logger.WithField("items", len(ds.Items)).Debug("dataset loaded")

	if l.memo != nil {
		if err := l.memo.set(c, ds); err != nil {
			logger.Warnf("dataset not memoized: %s", err)
		}
	}

	return mo.Some(ds)
}

// LoadAll fetches every category concurrently and waits for all of them.
// Only the categories that loaded are present in the result.
func (l *Loader) LoadAll(ctx context.Context, categories []media.Category) map[media.Category]*media.Dataset {
	categories = lo.Uniq(categories)
	slots := make([]mo.Option[*media.Dataset], len(categories))

	var group errgroup.Group
	for i, c := range categories {
		i, c := i, c
		group.Go(func() error {
			slots[i] = l.LoadCategory(ctx, c)
			return nil
		})
	}
	_ = group.Wait()

	loaded := make(map[media.Category]*media.Dataset, len(categories))
	for i, c := range categories {
		if ds, ok := slots[i].Get(); ok {
			loaded[c] = ds
		}
	}
	return loaded
}
