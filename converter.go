package entrymd

import (
	"github.com/openscribe/entrymd/internal/pipeline"
)

// ContentConverter is the surface persistence and transport layers consume.
// Implementations must be stateless: both methods may be called from any
// goroutine without synchronization.
type ContentConverter interface {
	// ToMarkdown converts stored entry HTML to Markdown.
	ToMarkdown(html string) string

	// ToHTML converts Markdown to the editor's storage HTML.
	ToHTML(markdown string) string

	// Name returns a human-readable converter name for logging.
	Name() string
}

// Compile-time interface implementation check.
var _ ContentConverter = (*Converter)(nil)

// Converter converts between entry HTML and Markdown. The zero value is
// ready to use; NewConverter exists for symmetry with dependency-injected
// callers.
type Converter struct{}

// NewConverter returns a ready Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ToMarkdown converts stored entry HTML to Markdown. It never fails: empty
// input yields "", malformed markup degrades to literal text, and any
// internal invariant violation is caught at this boundary, returning the
// input unchanged rather than propagating a panic to callers.
func (c *Converter) ToMarkdown(html string) (md string) {
	defer func() {
		if recover() != nil {
			md = html
		}
	}()
	return pipeline.HTMLToMarkdown(html)
}

// ToHTML converts Markdown to the editor's storage HTML under the same
// never-fail contract as ToMarkdown.
func (c *Converter) ToHTML(markdown string) (html string) {
	defer func() {
		if recover() != nil {
			html = markdown
		}
	}()
	return pipeline.MarkdownToHTML(markdown)
}

// Name implements ContentConverter.
func (c *Converter) Name() string {
	return "entrymd"
}

// defaultConverter backs the package-level entry points.
var defaultConverter = NewConverter()

// HTMLToMarkdown converts stored entry HTML to Markdown using the shared
// default Converter.
func HTMLToMarkdown(html string) string {
	return defaultConverter.ToMarkdown(html)
}

// MarkdownToHTML converts Markdown to storage HTML using the shared default
// Converter.
func MarkdownToHTML(markdown string) string {
	return defaultConverter.ToHTML(markdown)
}
