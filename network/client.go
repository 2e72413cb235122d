// Package network holds the HTTP client datasets are fetched with.
package network

import (
	"net/http"
	"time"

	"github.com/boomerplus/boomerplus/constant"
)

// Client is shared by every remote dataset fetch. It runs one attempt per
// request with no retries and no deadline of its own; a fetch ends when the
// caller's context does.
var Client = &http.Client{
	Transport: &userAgent{next: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	// one connection per category is enough for a full fan-out
	t.MaxIdleConnsPerHost = 8
	t.IdleConnTimeout = 30 * time.Second
	return t
}

// userAgent stamps requests that do not carry a User-Agent yet.
type userAgent struct {
	next http.RoundTripper
}

func (u *userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", constant.UserAgent)
	return u.next.RoundTrip(req)
}
