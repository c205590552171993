package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docsite"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes the documentation core over HTTP: rendered documents,
// search, navigation, per-document outlines and a sitemap. It holds no
// session state of its own; everything it serves derives from static
// assets.
type Server struct {
	router   chi.Router
	tree     *docsite.NavTree
	renderer docsite.Renderer
	searcher docsite.Searcher
	logger   *slog.Logger

	// PublicURL is the externally visible site base used in sitemap locs.
	publicURL string
}

// NewServer creates and configures the site server.
func NewServer(tree *docsite.NavTree, renderer docsite.Renderer, searcher docsite.Searcher, logger *slog.Logger, publicURL string) *Server {
	s := &Server{
		tree:      tree,
		renderer:  renderer,
		searcher:  searcher,
		logger:    logger,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(RequestLogger(s.logger))

	r.Get("/health", s.handleHealth)
	r.Get("/sitemap.xml", s.handleSitemap)

	r.Get("/api/nav", s.handleNav)
	r.Get("/api/search", s.handleSearch)
	r.Get("/api/toc/*", s.handleToc)

	r.Get("/docs/*", s.handleDocument)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.tree.Roots())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.searcher.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if results == nil {
		results = []docsite.SearchResult{}
	}
	writeJSON(w, results)
}

func (s *Server) handleToc(w http.ResponseWriter, r *http.Request) {
	doc, err := s.renderer.Render(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, doc.Headings)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	route := chi.URLParam(r, "*")
	doc, err := s.renderer.Render(r.Context(), route)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Documents are immutable per session, so the content hash is a
	// stable validator.
	etag := `"` + doc.ContentHash + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc.HTML))
}

// handleSitemap derives a sitemap from the navigation tree's leaves.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := xml.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	for _, leaf := range s.tree.Leaves() {
		urlEl := urlset.CreateElement("url")
		urlEl.CreateElement("loc").SetText(s.publicURL + "/docs/" + leaf.Route)
	}

	w.Header().Set("Content-Type", "application/xml")
	xml.Indent(2)
	if _, err := xml.WriteTo(w); err != nil {
		s.logger.Error("sitemap write failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := docsite.ErrorCode(err)
	status := http.StatusInternalServerError
	switch code {
	case docsite.ENOTFOUND:
		status = http.StatusNotFound
	case docsite.EINVALID:
		status = http.StatusBadRequest
	case docsite.EDECODE:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("internal error", "path", r.URL.Path, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": docsite.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
