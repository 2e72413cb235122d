// Package web serves the catalog as HTML pages and a JSON API.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// Options configure the router.
type Options struct {
	Catalog *catalog.Catalog
	// Origins allowed to call /api. "*" allows any. Empty disables CORS.
	Origins []string
	// Latest is the number of items per home page shelf.
	Latest int
}

type server struct {
	catalog *catalog.Catalog
	pages   *pages
	latest  int
}

// NewRouter builds the gin engine with every page and API route.
func NewRouter(options Options) *gin.Engine {
	s := &server{
		catalog: options.Catalog,
		pages:   mustParsePages(),
		latest:  options.Latest,
	}
	if s.latest <= 0 {
		s.latest = constant.LatestCount
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	router.GET("/health", healthCheck)
	router.GET("/", s.home)
	router.GET("/search", s.search)
	router.GET("/:category", s.category)
	router.GET("/:category/:slug", s.item)

	api := router.Group("/api")
	if cfg, ok := corsConfig(options.Origins); ok {
		api.Use(cors.New(cfg))
	}
	{
		api.GET("/search", s.apiSearch)
		api.GET("/:category", s.apiCategory)
		api.GET("/:category/:slug", s.apiItem)
	}

	router.NoRoute(s.notFound)

	return router
}

func corsConfig(origins []string) (cors.Config, bool) {
	if len(origins) == 0 {
		return cors.Config{}, false
	}

	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}
	if lo.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg, true
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.With(log.Fields{"addr": addr}).Info("listening")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
