// ABOUTME: Markdown rendering for article bodies using goldmark
// ABOUTME: Strips optional front matter and maps configured extension names to goldmark extenders

package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options configures a Renderer.
type Options struct {
	// Extensions lists goldmark extensions by name ("gfm", "table", "footnote", ...).
	// Empty selects GFM. Unknown names are ignored.
	Extensions []string
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// Unsafe passes raw HTML in article bodies through unescaped.
	Unsafe bool
}

// Meta is the optional front matter block at the top of an article.
type Meta struct {
	Title   string   `yaml:"title" toml:"title"`
	Summary string   `yaml:"summary" toml:"summary"`
	Tags    []string `yaml:"tags" toml:"tags"`
}

// Document is a rendered article.
type Document struct {
	HTML template.HTML
	Meta Meta
}

// Renderer converts Markdown article bodies to HTML. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a Renderer from opts.
func New(opts Options) *Renderer {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithExtensions(collectExtensions(opts.Extensions)...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	return &Renderer{md: goldmark.New(engineOptions...)}
}

// Render converts body to HTML. A leading front matter block is parsed into
// Document.Meta and excluded from the output; if it cannot be parsed the whole
// body is rendered as Markdown.
func (r *Renderer) Render(body string) (Document, error) {
	var doc Document

	content := []byte(body)
	var meta Meta
	rest, err := frontmatter.Parse(strings.NewReader(body), &meta)
	if err == nil {
		content = rest
		doc.Meta = meta
	}

	var buf bytes.Buffer
	if err := r.md.Convert(content, &buf); err != nil {
		return Document{}, fmt.Errorf("rendering markdown: %w", err)
	}
	doc.HTML = template.HTML(buf.String())
	return doc, nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// KnownExtension reports whether name is a supported extension name.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}
