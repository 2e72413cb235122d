package loader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/media"
	"github.com/spf13/afero"
)

// Fetcher opens the raw dataset of a category.
type Fetcher interface {
	Fetch(ctx context.Context, c media.Category) (io.ReadCloser, error)
	// Address is where the dataset of c is read from.
	Address(c media.Category) string
}

// resource is the file name of a category's dataset.
func resource(c media.Category) string {
	return string(c) + constant.DatasetSuffix
}

func isURL(base string) bool {
	return strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://")
}

// NewFetcher picks the HTTP fetcher for http(s) bases and the filesystem one otherwise.
func NewFetcher(base string, client *http.Client, fs afero.Fs) Fetcher {
	if isURL(base) {
		return &HTTPFetcher{Base: base, Client: client}
	}
	return &FileFetcher{Base: base, Fs: fs}
}

// HTTPFetcher issues one GET per dataset.
type HTTPFetcher struct {
	Base   string
	Client *http.Client
}

// Address is the URL of the dataset of c under Base.
func (h *HTTPFetcher) Address(c media.Category) string {
	return strings.TrimRight(h.Base, "/") + "/" + resource(c)
}

// Fetch GETs the dataset of c. Any non-2xx status is an error.
func (h *HTTPFetcher) Fetch(ctx context.Context, c media.Category) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Address(c), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_ = res.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", res.Status)
	}

	return res.Body, nil
}

// FileFetcher reads datasets from a directory of the filesystem backend.
type FileFetcher struct {
	Base string
	Fs   afero.Fs
}

// Address is the path of the dataset of c under Base.
func (f *FileFetcher) Address(c media.Category) string {
	return filepath.Join(f.Base, resource(c))
}

// Fetch opens the dataset file of c.
func (f *FileFetcher) Fetch(_ context.Context, c media.Category) (io.ReadCloser, error) {
	return f.Fs.Open(f.Address(c))
}
