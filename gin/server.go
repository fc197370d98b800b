// Package gin exposes the search service over HTTP using the Gin
// framework: a single search endpoint plus a health probe, with
// permissive CORS for browser clients.
package gin

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/x7007x/hadithsearch"
)

// setModeOnce guards the global gin mode switch so concurrent NewServer
// calls (tests construct servers in parallel) don't race on it.
var setModeOnce sync.Once

// Server is the HTTP API surface around a Searcher.
type Server struct {
	searcher hadithsearch.Searcher
	router   *gin.Engine
}

// NewServer creates the API server around the given searcher.
func NewServer(searcher hadithsearch.Searcher) *Server {
	setModeOnce.Do(func() { gin.SetMode(gin.ReleaseMode) })

	s := &Server{
		searcher: searcher,
		router:   gin.New(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Accept", "Origin"},
		MaxAge:       12 * time.Hour,
	}))

	s.router.GET("/search", s.handleSearch)
	s.router.GET("/healthz", s.handleHealth)

	return s
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server listening on addr and blocks until the listener
// fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: q"})
		return
	}

	// An unparseable max_pages is ignored rather than rejected; parseable
	// values below 1 clamp to 1.
	var maxPages *int
	if raw := strings.TrimSpace(c.Query("max_pages")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			if n < 1 {
				n = 1
			}
			maxPages = &n
		}
	}

	result, err := s.searcher.Search(c.Request.Context(), q, maxPages)
	if err != nil {
		switch hadithsearch.ErrorCode(err) {
		case hadithsearch.EINVALID:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": hadithsearch.ErrorMessage(err),
			})
		case hadithsearch.EUNAVAILABLE:
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "Upstream request failed",
				"details": hadithsearch.ErrorMessage(err),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal error while scraping",
				"details": hadithsearch.ErrorMessage(err),
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
