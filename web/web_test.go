package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/query"
	"github.com/gin-gonic/gin"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

type memorySource map[media.Category]*media.Dataset

func (s memorySource) LoadCategory(_ context.Context, c media.Category) mo.Option[*media.Dataset] {
	ds, ok := s[c]
	return mo.TupleToOption(ds, ok)
}

func (s memorySource) LoadAll(ctx context.Context, categories []media.Category) map[media.Category]*media.Dataset {
	out := make(map[media.Category]*media.Dataset)
	for _, c := range categories {
		if ds, ok := s[c]; ok {
			out[c] = ds
		}
	}
	return out
}

// countingSource counts the category loads it serves.
type countingSource struct {
	memorySource
	mu    sync.Mutex
	loads int
}

func (s *countingSource) LoadCategory(ctx context.Context, c media.Category) mo.Option[*media.Dataset] {
	s.mu.Lock()
	s.loads++
	s.mu.Unlock()
	return s.memorySource.LoadCategory(ctx, c)
}

func init() {
	gin.SetMode(gin.TestMode)
	filesystem.SetMemMapFs()
	log.SetOutput(io.Discard)
}

func router() *gin.Engine {
	year := 1945
	source := memorySource{
		media.Movies: {Version: 2, Items: []*media.Item{
			{
				Slug: "detour-1945", Category: media.Movies, Title: "Detour", Tags: []string{"noir", "crime"},
				Sources: media.Source{VideoPrimary: "https://archive.org/details/detour-1945"},
				Variant: &media.Movie{YearReleased: &year, Country: "USA"},
			},
			{
				Slug: "his-girl-friday", Category: media.Movies, Title: "His Girl Friday", Tags: []string{"comedy"},
				Sources: media.Source{VideoPrimary: "https://example.org/friday.mp4"},
				Variant: &media.Movie{},
			},
		}},
		media.Radio: {Version: 1, Items: []*media.Item{
			{
				Slug: "dragnet", Category: media.Radio, Title: "Dragnet", Tags: []string{"crime"},
				Sources: media.Source{AudioPrimary: "https://archive.org/search?query=dragnet"},
				Variant: &media.RadioShow{},
			},
		}},
	}

	return NewRouter(Options{Catalog: catalog.New(source), Origins: []string{"*"}})
}

func get(r http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	So(json.Unmarshal(w.Body.Bytes(), &out), ShouldBeNil)
	return out
}

func TestPages(t *testing.T) {
	Convey("Given the web front-end", t, func() {
		r := router()

		Convey("Health answers ok", func() {
			w := get(r, "/health")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(decode(w)["status"], ShouldEqual, "ok")
		})

		Convey("Home lists a shelf per loaded category", func() {
			w := get(r, "/")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Classic Movies")
			So(w.Body.String(), ShouldContainSubstring, "Classic Radio Shows")
			So(w.Body.String(), ShouldNotContainSubstring, "Classic TV Shows</a>")
		})

		Convey("A category page applies the query", func() {
			w := get(r, "/movies?tag=noir")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Detour")
			So(w.Body.String(), ShouldNotContainSubstring, "<h3>His Girl Friday</h3>")
		})

		Convey("An absent dataset is an empty state", func() {
			w := get(r, "/tv")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "unavailable right now")
		})

		Convey("An unknown category is a 404 page", func() {
			w := get(r, "/podcasts")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(w.Body.String(), ShouldContainSubstring, "Page Not Found")
		})

		Convey("An item page embeds archive sources", func() {
			w := get(r, "/movies/detour-1945")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "https://archive.org/embed/detour-1945")
			So(w.Body.String(), ShouldContainSubstring, "USA")
		})

		Convey("A direct file plays in a video element", func() {
			w := get(r, "/movies/his-girl-friday")
			So(w.Body.String(), ShouldContainSubstring, "<video controls")
		})

		Convey("A missing item suggests close slugs", func() {
			w := get(r, "/movies/detour")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(w.Body.String(), ShouldContainSubstring, "Item Not Found")
			So(w.Body.String(), ShouldContainSubstring, "/movies/detour-1945")
		})

		Convey("Search renders tabs per category", func() {
			w := get(r, "/search?q=crime")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "All (2)")
			So(w.Body.String(), ShouldContainSubstring, "Movies (1)")
			So(w.Body.String(), ShouldContainSubstring, "Radio (1)")
		})
	})
}

func TestCategoryPageLoadsOnce(t *testing.T) {
	Convey("Given a dated dataset", t, func() {
		source := &countingSource{memorySource: memorySource{
			media.Concerts: {
				Version:     1,
				GeneratedAt: media.NewTimestamp(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
				Items: []*media.Item{
					{Slug: "ode", Category: media.Concerts, Title: "Ode to Joy", Variant: &media.Concert{}},
				},
			},
		}}
		r := NewRouter(Options{Catalog: catalog.New(source)})

		Convey("The category page shows the date from a single fetch", func() {
			w := get(r, "/concerts")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "Updated Mar 5, 2024")
			So(source.loads, ShouldEqual, 1)
		})
	})
}

func TestAPI(t *testing.T) {
	Convey("Given the JSON API", t, func() {
		r := router()

		Convey("A category view honours q and sort", func() {
			w := get(r, "/api/movies?sort=title-desc")
			So(w.Code, ShouldEqual, http.StatusOK)

			body := decode(w)
			items := body["items"].([]any)
			So(items, ShouldHaveLength, 2)
			So(items[0].(map[string]any)["title"], ShouldEqual, "His Girl Friday")
			So(body["total"], ShouldEqual, float64(2))
		})

		Convey("A bad sort is rejected", func() {
			w := get(r, "/api/movies?sort=random")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(w)["error"].(map[string]any)["code"], ShouldEqual, "bad_sort")
		})

		Convey("An absent dataset is unavailable", func() {
			So(get(r, "/api/tv").Code, ShouldEqual, http.StatusServiceUnavailable)
		})

		Convey("An item carries its playback", func() {
			w := get(r, "/api/radio/dragnet")
			So(w.Code, ShouldEqual, http.StatusOK)

			body := decode(w)
			So(body["status"], ShouldEqual, "found")
			playback := body["playback"].(map[string]any)
			So(playback["primary"].(map[string]any)["kind"], ShouldEqual, "search")
		})

		Convey("A missing item is 404", func() {
			w := get(r, "/api/movies/nope")
			So(w.Code, ShouldEqual, http.StatusNotFound)
			So(decode(w)["status"], ShouldEqual, "not found")
		})

		Convey("Search with empty text finds nothing", func() {
			w := get(r, "/api/search?q=")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(decode(w)["items"], ShouldBeNil)
		})

		Convey("Concurrent searches are served without remembering visitors' queries", func() {
			viper.Set(key.SearchRememberQueries, true)
			viper.Set(key.SearchShowQuerySuggestions, true)

			var wg sync.WaitGroup
			codes := make([]int, 32)
			for i := range codes {
				i := i
				wg.Add(1)
				go func() {
					defer wg.Done()
					for n := 0; n < 20; n++ {
						codes[i] = get(r, "/api/search?q=dI-J").Code
						_ = get(r, "/search?q=dI-J")
					}
				}()
			}
			wg.Wait()

			for _, code := range codes {
				So(code, ShouldEqual, http.StatusOK)
			}
			So(query.SuggestMany("di"), ShouldBeEmpty)
		})

		Convey("CORS headers are set on the API", func() {
			w := get(r, "/api/movies", "Origin", "https://example.com")
			So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
		})
	})
}
