package loader

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/media"
	. "github.com/smartystreets/goconvey/convey"
)

const moviesJSON = `{"version":1,"generated_at":null,"items":[
	{"slug":"a","category":"movies","title":"Zebra","tags":["classic"]},
	{"slug":"b","category":"movies","title":"Apple","tags":["rare"]}
]}`

const radioJSON = `{"version":1,"generated_at":"2024-01-01T00:00:00Z","items":[
	{"slug":"r","category":"radio","title":"Dragnet","tags":["crime"],"year_broadcast":1949}
]}`

func init() {
	filesystem.SetMemMapFs()
	log.SetOutput(io.Discard)
}

func writeDataset(dir string, c media.Category, body string) {
	So(filesystem.API().WriteFile(filepath.Join(dir, resource(c)), []byte(body), 0o644), ShouldBeNil)
}

func TestFileLoader(t *testing.T) {
	ctx := context.Background()

	Convey("Given a data directory with two good datasets and a broken one", t, func() {
		dir := "/data-" + t.Name()
		writeDataset(dir, media.Movies, moviesJSON)
		writeDataset(dir, media.Radio, radioJSON)
		writeDataset(dir, media.Concerts, `{"items": [`)

		l := New(NewFetcher(dir, nil, filesystem.ReadOnly()))

		Convey("A single category loads", func() {
			ds, ok := l.LoadCategory(ctx, media.Movies).Get()
			So(ok, ShouldBeTrue)
			So(len(ds.Items), ShouldEqual, 2)
			So(ds.Items[0].Title, ShouldEqual, "Zebra")
		})

		Convey("A missing category is absent", func() {
			So(l.LoadCategory(ctx, media.TV).IsAbsent(), ShouldBeTrue)
		})

		Convey("A malformed category is absent", func() {
			So(l.LoadCategory(ctx, media.Concerts).IsAbsent(), ShouldBeTrue)
		})

		Convey("Loading everything keeps only what loaded", func() {
			all := l.LoadAll(ctx, media.Categories())
			So(len(all), ShouldEqual, 2)
			So(all, ShouldContainKey, media.Movies)
			So(all, ShouldContainKey, media.Radio)
			So(all, ShouldNotContainKey, media.Concerts)
			So(all, ShouldNotContainKey, media.TV)
			So(all[media.Radio].Items[0].SortYear(), ShouldEqual, 1949)
		})

		Convey("The address is base/category.full.json", func() {
			So(l.Describe(media.Movies), ShouldEqual, filepath.Join(dir, "movies.full.json"))
		})
	})
}

func TestHTTPLoader(t *testing.T) {
	ctx := context.Background()

	Convey("Given a server where one category fails", t, func() {
		hits := make(chan string, 16)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits <- r.URL.Path
			switch r.URL.Path {
			case "/datasets/movies.full.json":
				_, _ = io.WriteString(w, moviesJSON)
			case "/datasets/radio.full.json":
				_, _ = io.WriteString(w, radioJSON)
			case "/datasets/tv.full.json":
				http.Error(w, "boom", http.StatusInternalServerError)
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		l := New(NewFetcher(server.URL+"/datasets/", server.Client(), nil))

		Convey("The failure does not affect the others", func() {
			all := l.LoadAll(ctx, []media.Category{media.Movies, media.TV, media.Radio})
			So(len(all), ShouldEqual, 2)
			So(all, ShouldNotContainKey, media.TV)
			So(len(all[media.Movies].Items), ShouldEqual, 2)
			So(len(hits), ShouldEqual, 3)
		})

		Convey("A non-success status is absent", func() {
			So(l.LoadCategory(ctx, media.TV).IsAbsent(), ShouldBeTrue)
			So(l.LoadCategory(ctx, media.Images).IsAbsent(), ShouldBeTrue)
		})

		Convey("Without a memo every call fetches", func() {
			l.LoadCategory(ctx, media.Movies)
			l.LoadCategory(ctx, media.Movies)
			So(len(hits), ShouldEqual, 2)
		})
	})

	Convey("Given an unreachable server", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		base := server.URL
		server.Close()

		l := New(NewFetcher(base, nil, nil))
		So(l.LoadAll(ctx, media.Categories()), ShouldBeEmpty)
	})
}

func TestMemo(t *testing.T) {
	ctx := context.Background()

	Convey("Given a memoizing loader", t, func() {
		var count int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count++
			if strings.HasSuffix(r.URL.Path, "movies.full.json") {
				_, _ = io.WriteString(w, moviesJSON)
				return
			}
			http.NotFound(w, r)
		}))
		defer server.Close()

		l := New(
			NewFetcher(server.URL, server.Client(), nil),
			WithMemo("/memo-"+t.Name(), time.Hour),
		)

		Convey("A loaded dataset is served again without fetching", func() {
			first := l.LoadCategory(ctx, media.Movies)
			So(first.IsPresent(), ShouldBeTrue)

			second, ok := l.LoadCategory(ctx, media.Movies).Get()
			So(ok, ShouldBeTrue)
			So(count, ShouldEqual, 1)
			So(second.Items[1].Title, ShouldEqual, "Apple")
		})

		Convey("Failures are not memoized", func() {
			l.LoadCategory(ctx, media.TV)
			l.LoadCategory(ctx, media.TV)
			So(count, ShouldEqual, 2)
		})
	})
}
