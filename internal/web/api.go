// ABOUTME: Read-only JSON API over the wiki for scripts and tooling
// ABOUTME: Lists entries, fetches raw bodies, and runs title search

package web

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/2389/coven-wiki/internal/wiki"
)

type entriesResponse struct {
	Entries []string `json:"entries"`
}

type entryResponse struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

type searchResponse struct {
	Query   string   `json:"query"`
	Outcome string   `json:"outcome"`
	Names   []string `json:"names"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Site) handleAPIEntries(w http.ResponseWriter, r *http.Request) {
	names, err := s.svc.Index(r.Context())
	if err != nil {
		s.apiError(w, r, http.StatusInternalServerError, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, r, http.StatusOK, entriesResponse{Entries: names})
}

func (s *Site) handleAPIEntry(w http.ResponseWriter, r *http.Request) {
	article, err := s.svc.Article(r.Context(), r.PathValue("name"))
	if errors.Is(err, wiki.ErrNotFound) {
		s.writeJSON(w, r, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	}
	if err != nil {
		s.apiError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, entryResponse{Name: article.Name, Body: article.Body})
}

func (s *Site) handleAPISearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	result, err := s.svc.Search(r.Context(), query)
	if err != nil {
		s.apiError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, searchResponse{
		Query:   query,
		Outcome: result.Outcome.String(),
		Names:   result.Names,
	})
}

// apiError logs err and responds without exposing its text.
func (s *Site) apiError(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := RequestID(r.Context())
	s.logger.Error("api request failed", "path", r.URL.Path, "error", err, "request_id", id)
	s.writeJSON(w, r, status, errorResponse{Error: http.StatusText(status), RequestID: id})
}

func (s *Site) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err, "request_id", RequestID(r.Context()))
	}
}
