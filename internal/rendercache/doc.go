// Package rendercache caches rendered article HTML keyed by a hash of the
// article body, so repeated views skip Markdown rendering without ever serving
// output for an older version of the article.
package rendercache
