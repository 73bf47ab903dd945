// ABOUTME: Template parsing and rendering for wiki pages
// ABOUTME: Each page template is parsed together with the shared layout at startup

package web

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/2389/coven-wiki/internal/markup"
)

var templateFuncs = template.FuncMap{
	"articleURL": articleURL,
	"editURL":    editURL,
}

func articleURL(name string) string { return "/wiki/" + url.PathEscape(name) }

func editURL(name string) string { return "/edit/" + url.PathEscape(name) }

type pageTemplates struct {
	index   *template.Template
	article *template.Template
	edit    *template.Template
	newPage *template.Template
	search  *template.Template
	errPage *template.Template
}

func parseTemplates() *pageTemplates {
	parse := func(page string) *template.Template {
		return template.Must(template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+page))
	}
	return &pageTemplates{
		index:   parse("index.html"),
		article: parse("article.html"),
		edit:    parse("edit.html"),
		newPage: parse("new.html"),
		search:  parse("search.html"),
		errPage: parse("error.html"),
	}
}

// page holds the fields every template reads from the layout.
type page struct {
	Title     string
	Notice    string
	CSRFToken string
}

type indexData struct {
	page
	Entries []string
}

type articleData struct {
	page
	Name string
	Doc  markup.Document
}

// formData backs both the edit and new forms.
type formData struct {
	page
	Name string
	Body string
}

type searchData struct {
	page
	Query   string
	Results []string
}

type errorData struct {
	page
	RequestID string
}

// newPage builds the layout fields for r, decoding any notice on its URL.
func newPage(r *http.Request, title string) page {
	return page{
		Title:     title,
		Notice:    noticeFromQuery(r.URL.Query()).Message(),
		CSRFToken: getCSRFToken(r),
	}
}

func (s *Site) renderTemplate(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.Execute(w, data); err != nil {
		s.logger.Error("failed to render template",
			"template", tmpl.Name(),
			"error", err,
			"request_id", RequestID(r.Context()),
		)
	}
}

// renderError logs err and responds with the generic 500 page.
func (s *Site) renderError(w http.ResponseWriter, r *http.Request, err error) {
	id := RequestID(r.Context())
	s.logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", id)
	s.renderTemplate(w, r, s.templates.errPage, http.StatusInternalServerError, errorData{
		page:      page{Title: "Error", CSRFToken: getCSRFToken(r)},
		RequestID: id,
	})
}

// redirect sends a 302 to target with n attached.
func redirect(w http.ResponseWriter, r *http.Request, target string, n Notice) {
	http.Redirect(w, r, n.AppendTo(target), http.StatusFound)
}
