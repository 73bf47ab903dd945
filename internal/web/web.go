// ABOUTME: Site wires the wiki service, renderer, and render cache to HTTP routes
// ABOUTME: Parses embedded templates once and registers page and JSON API handlers on a mux

package web

import (
	"log/slog"
	"net/http"

	"github.com/2389/coven-wiki/internal/markup"
	"github.com/2389/coven-wiki/internal/rendercache"
	"github.com/2389/coven-wiki/internal/wiki"
)

// Config holds the dependencies of a Site.
type Config struct {
	Service  *wiki.Service
	Renderer *markup.Renderer
	Cache    *rendercache.Cache // optional; nil renders every request
	Logger   *slog.Logger
}

// Site serves the wiki's HTML pages and JSON API.
type Site struct {
	svc       *wiki.Service
	renderer  *markup.Renderer
	cache     *rendercache.Cache
	logger    *slog.Logger
	templates *pageTemplates
}

// New creates a Site. It panics if the embedded templates fail to parse.
func New(cfg Config) *Site {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = markup.New(markup.Options{})
	}
	return &Site{
		svc:       cfg.Service,
		renderer:  renderer,
		cache:     cfg.Cache,
		logger:    logger.With("component", "web"),
		templates: parseTemplates(),
	}
}

// RegisterRoutes registers all wiki routes on the given mux.
func (s *Site) RegisterRoutes(mux *http.ServeMux) {
	// Pages
	mux.HandleFunc("GET /{$}", s.withCSRF(s.handleIndex))
	mux.HandleFunc("GET /wiki/{name}", s.withCSRF(s.handleArticle))
	mux.HandleFunc("GET /search", s.handleSearchRedirect)
	mux.HandleFunc("POST /search", s.withCSRF(s.handleSearch))
	mux.HandleFunc("GET /edit/{name}", s.withCSRF(s.handleEditForm))
	mux.HandleFunc("POST /edit/{name}", s.withCSRF(s.handleEditSubmit))
	mux.HandleFunc("GET /new", s.withCSRF(s.handleNewForm))
	mux.HandleFunc("POST /new", s.withCSRF(s.handleNewSubmit))
	mux.HandleFunc("GET /random_page", s.handleRandom)

	// JSON API
	mux.HandleFunc("GET /api/entries", s.handleAPIEntries)
	mux.HandleFunc("GET /api/entries/{name}", s.handleAPIEntry)
	mux.HandleFunc("GET /api/search", s.handleAPISearch)
}

// Handler returns the registered routes wrapped in request ID and access log middleware.
func (s *Site) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.Middleware(mux)
}

// render converts an article body to HTML, going through the cache when one is configured.
func (s *Site) render(body string) (markup.Document, error) {
	if s.cache != nil {
		return s.cache.Render(s.renderer, body)
	}
	return s.renderer.Render(body)
}
