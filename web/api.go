package web

import (
	"errors"
	"net/http"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/query"
	"github.com/gin-gonic/gin"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
		_ = c.Error(err)
	}
	c.JSON(status, errorEnvelope{Error: apiError{Message: msg, Code: code}})
}

// stateOf reads q, the repeated tag and sort parameters.
func stateOf(c *gin.Context) (query.State, error) {
	sort, err := query.ParseSortKey(c.Query("sort"))
	return query.State{
		Text: c.Query("q"),
		Tags: c.QueryArray("tag"),
		Sort: sort,
	}, err
}

func categoryOf(c *gin.Context) (media.Category, error) {
	return media.ParseCategory(c.Param("category"))
}

func (s *server) apiCategory(c *gin.Context) {
	category, err := categoryOf(c)
	if err != nil {
		respondError(c, http.StatusNotFound, "unknown_category", err)
		return
	}

	state, err := stateOf(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "bad_sort", err)
		return
	}

	view, ok := s.catalog.Browse(c.Request.Context(), category, state)
	if !ok {
		respondError(c, http.StatusServiceUnavailable, "unavailable", errors.New(category.Label()+" are unavailable"))
		return
	}

	c.JSON(http.StatusOK, view)
}

type itemResponse struct {
	catalog.ItemResult
	Details []present.Detail `json:"details,omitempty"`
	Poster  *present.Poster  `json:"poster,omitempty"`
}

func (s *server) apiItem(c *gin.Context) {
	category, err := categoryOf(c)
	if err != nil {
		respondError(c, http.StatusNotFound, "unknown_category", err)
		return
	}

	result := s.catalog.Item(c.Request.Context(), category, c.Param("slug"))
	switch result.Status {
	case catalog.Found:
		poster := present.PosterOf(result.Item)
		c.JSON(http.StatusOK, itemResponse{
			ItemResult: result,
			Details:    present.Details(result.Item),
			Poster:     &poster,
		})
	case catalog.NotFound:
		c.JSON(http.StatusNotFound, itemResponse{ItemResult: result})
	default:
		c.JSON(http.StatusServiceUnavailable, itemResponse{ItemResult: result})
	}
}

func (s *server) apiSearch(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Search(c.Request.Context(), c.Query("q")))
}
