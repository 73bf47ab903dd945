// ABOUTME: HTML page handlers for listing, reading, searching, editing, and creating articles
// ABOUTME: Domain outcomes map to redirects with notices; storage failures map to a 500 page

package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/2389/coven-wiki/internal/store"
	"github.com/2389/coven-wiki/internal/wiki"
)

func (s *Site) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := s.svc.Index(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.renderTemplate(w, r, s.templates.index, http.StatusOK, indexData{
		page:    newPage(r, "Encyclopedia"),
		Entries: names,
	})
}

func (s *Site) handleArticle(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	article, err := s.svc.Article(r.Context(), name)
	if errors.Is(err, wiki.ErrNotFound) {
		redirect(w, r, "/", Notice{Code: NoticeMissing, Subject: name})
		return
	}
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	doc, err := s.render(article.Body)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.renderTemplate(w, r, s.templates.article, http.StatusOK, articleData{
		page: newPage(r, article.Name),
		Name: article.Name,
		Doc:  doc,
	})
}

// handleSearchRedirect sends bare GETs of the search endpoint home.
func (s *Site) handleSearchRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Site) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.FormValue("q")
	result, err := s.svc.Search(r.Context(), query)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	switch result.Outcome {
	case wiki.NoMatch:
		redirect(w, r, "/", Notice{Code: NoticeNoResults})
	case wiki.DirectHit:
		http.Redirect(w, r, articleURL(result.Name()), http.StatusFound)
	default:
		s.renderTemplate(w, r, s.templates.search, http.StatusOK, searchData{
			page:    newPage(r, "Search"),
			Query:   query,
			Results: result.Names,
		})
	}
}

func (s *Site) handleEditForm(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	article, err := s.svc.Article(r.Context(), name)
	if err != nil && !errors.Is(err, wiki.ErrNotFound) {
		s.renderError(w, r, err)
		return
	}
	s.renderTemplate(w, r, s.templates.edit, http.StatusOK, formData{
		page: newPage(r, "Edit "+name),
		Name: name,
		Body: article.Body,
	})
}

func (s *Site) handleEditSubmit(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	body := r.FormValue("myedit")

	err := s.svc.Edit(r.Context(), name, body)
	switch {
	case err == nil:
		redirect(w, r, articleURL(name), Notice{Code: NoticeEditSaved})
	case errors.Is(err, wiki.ErrEmptyBody):
		s.renderForm(w, r, s.templates.edit, http.StatusOK, "Edit "+name, name, body, NoticeEmptyBody)
	case errors.Is(err, store.ErrInvalidName):
		s.renderForm(w, r, s.templates.edit, http.StatusUnprocessableEntity, "Edit "+name, name, body, NoticeInvalidTitle)
	default:
		s.renderError(w, r, err)
	}
}

func (s *Site) handleNewForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, r, s.templates.newPage, http.StatusOK, formData{
		page: newPage(r, "Create New Page"),
	})
}

func (s *Site) handleNewSubmit(w http.ResponseWriter, r *http.Request) {
	title := r.FormValue("title")
	body := r.FormValue("myedit")

	err := s.svc.Create(r.Context(), title, body)
	switch {
	case err == nil:
		redirect(w, r, articleURL(title), Notice{Code: NoticeArticleSaved})
	case errors.Is(err, wiki.ErrDuplicateName):
		s.renderForm(w, r, s.templates.newPage, http.StatusConflict, "Create New Page", title, body, NoticeDuplicate)
	case errors.Is(err, store.ErrInvalidName):
		s.renderForm(w, r, s.templates.newPage, http.StatusUnprocessableEntity, "Create New Page", title, body, NoticeInvalidTitle)
	default:
		s.renderError(w, r, err)
	}
}

// renderForm redisplays a form with the submitted values and an inline notice.
func (s *Site) renderForm(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, title, name, body string, code NoticeCode) {
	p := newPage(r, title)
	p.Notice = Notice{Code: code, Subject: name}.Message()
	s.renderTemplate(w, r, tmpl, status, formData{page: p, Name: name, Body: body})
}

func (s *Site) handleRandom(w http.ResponseWriter, r *http.Request) {
	name, err := s.svc.Random(r.Context())
	if errors.Is(err, wiki.ErrEmptyStore) {
		redirect(w, r, "/", Notice{Code: NoticeEmptyWiki})
		return
	}
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, articleURL(name), http.StatusFound)
}
