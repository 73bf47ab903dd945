// Package web serves the wiki over HTTP.
//
// # Pages
//
//	GET  /                 list every article
//	GET  /wiki/{name}      render an article as HTML
//	POST /search           title search (q); one hit redirects to the article
//	GET  /edit/{name}      edit form with the raw body
//	POST /edit/{name}      save the submitted body (myedit)
//	GET  /new              creation form
//	POST /new              create an article (title, myedit)
//	GET  /random_page      redirect to a random article
//
// Outcomes that end in a redirect carry a [Notice] in the target's query
// string. Only codes from a fixed table render, so a crafted URL cannot
// inject message text.
//
// Every form post must echo the wiki_csrf cookie in its csrf_token field
// (or the X-CSRF-Token header); mismatches get 403.
//
// # JSON API
//
//	GET /api/entries         {"entries": [...]}
//	GET /api/entries/{name}  {"name": ..., "body": ...}
//	GET /api/search?q=       {"query": ..., "outcome": ..., "names": [...]}
package web
