package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/boomerplus/boomerplus/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the user agent", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Agent", r.UserAgent())
		}))
		defer server.Close()

		Convey("Requests are stamped with the application agent", func() {
			res, err := Client.Get(server.URL)
			So(err, ShouldBeNil)
			defer res.Body.Close()
			So(res.Header.Get("X-Agent"), ShouldEqual, constant.UserAgent)
		})

		Convey("The client sets no deadline of its own", func() {
			So(Client.Timeout, ShouldEqual, time.Duration(0))
			transport := Client.Transport.(*userAgent).next.(*http.Transport)
			So(transport.ResponseHeaderTimeout, ShouldEqual, time.Duration(0))
		})

		Convey("An explicit agent is kept", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom")
			res, err := Client.Do(req)
			So(err, ShouldBeNil)
			defer res.Body.Close()
			So(res.Header.Get("X-Agent"), ShouldEqual, "custom")
		})
	})

	Convey("Given a server that never answers", t, func() {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-release:
			}
		}))
		defer server.Close()
		defer close(release)

		Convey("The fetch ends when the caller's context does", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
			_, err := Client.Do(req)
			So(errors.Is(err, context.DeadlineExceeded), ShouldBeTrue)
		})
	})
}
