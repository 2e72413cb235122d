package web

import (
	"net/http"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/query"
	"github.com/boomerplus/boomerplus/resolve"
	"github.com/gin-gonic/gin"
)

type homePage struct {
	Title   string
	Shelves []catalog.Shelf
}

type categoryPage struct {
	Title     string
	View      catalog.View
	Available bool
	Updated   string
}

type itemPage struct {
	Title    string
	Result   catalog.ItemResult
	Details  []present.Detail
	Poster   present.Poster
	Primary  resolve.Resolution
	Backup   resolve.Resolution
	Inline   bool
	Category string
}

type tab struct {
	Key    string
	Label  string
	Items  []*media.Item
	Active bool
}

type searchPage struct {
	Title  string
	Result catalog.SearchResult
	Tabs   []tab
	Active tab
}

type notFoundPage struct {
	Title   string
	Message string
}

func (s *server) home(c *gin.Context) {
	c.Render(http.StatusOK, s.pages.render("home", homePage{
		Title:   "Public Domain Classics",
		Shelves: s.catalog.Home(c.Request.Context(), s.latest),
	}))
}

func (s *server) category(c *gin.Context) {
	category, err := categoryOf(c)
	if err != nil {
		s.notFound(c)
		return
	}

	state, err := stateOf(c)
	if err != nil {
		_ = c.Error(err)
		state.Sort = query.TitleAsc
	}

	view, ok := s.catalog.Browse(c.Request.Context(), category, state)

	page := categoryPage{Title: view.Label, View: view, Available: ok}
	if ok {
		page.Updated = present.UpdatedAt(view.GeneratedAt)
	}
	c.Render(http.StatusOK, s.pages.render("category", page))
}

func (s *server) item(c *gin.Context) {
	category, err := categoryOf(c)
	if err != nil {
		s.notFound(c)
		return
	}

	result := s.catalog.Item(c.Request.Context(), category, c.Param("slug"))
	page := itemPage{
		Title:    "Item Not Found",
		Result:   result,
		Primary:  result.Playback.Primary,
		Backup:   result.Playback.Backup,
		Category: category.Label(),
	}

	status := http.StatusOK
	switch result.Status {
	case catalog.Found:
		page.Title = result.Item.Title
		page.Details = present.Details(result.Item)
		page.Poster = present.PosterOf(result.Item)
		page.Inline = result.Playback.Primary.Kind.Inline()
	case catalog.NotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusServiceUnavailable
	}

	c.Render(status, s.pages.render("item", page))
}

func (s *server) search(c *gin.Context) {
	result := s.catalog.Search(c.Request.Context(), c.Query("q"))

	tabs := []tab{{Key: "all", Label: "All", Items: result.Items}}
	for _, bucket := range result.Buckets {
		if len(bucket.Items) == 0 {
			continue
		}
		tabs = append(tabs, tab{Key: bucket.Category.String(), Label: bucket.Category.Short(), Items: bucket.Items})
	}

	active := 0
	for i, t := range tabs {
		if t.Key == c.Query("tab") {
			active = i
		}
	}
	tabs[active].Active = true

	c.Render(http.StatusOK, s.pages.render("search", searchPage{
		Title:  "Search: " + result.Text,
		Result: result,
		Tabs:   tabs,
		Active: tabs[active],
	}))
}

func (s *server) notFound(c *gin.Context) {
	c.Render(http.StatusNotFound, s.pages.render("notfound", notFoundPage{
		Title:   "Page Not Found",
		Message: "There is nothing at " + c.Request.URL.Path,
	}))
}
