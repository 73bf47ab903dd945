// Package markup renders article bodies from Markdown to HTML with goldmark.
//
// A body may open with a YAML (---) or TOML (+++) front matter block holding
// title, summary, and tags; it is stripped from the output and returned as
// Document.Meta.
package markup
