package note

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// sanitizer keeps the rendered HTML down to basic formatting, links and
// tables. Everything else, scripts included, is stripped.
var sanitizer = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "em", "del", "ul", "ol", "li",
		"blockquote", "pre", "code", "hr",
		"table", "thead", "tbody", "tr", "th", "td",
	)
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowStandardURLs()
	return p
}()

// RenderedContent converts the note's markdown source to sanitized HTML.
func (n *Note) RenderedContent() string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(n.Content), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}
