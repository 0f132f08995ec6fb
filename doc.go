// Package entrymd converts journal-entry content between the editor's
// stored HTML and the Markdown exposed to API and agent consumers.
//
// # Quick Start
//
// Both directions are plain function calls:
//
//	md := entrymd.HTMLToMarkdown(entry.Content)
//	html := entrymd.MarkdownToHTML(incoming.Markdown)
//
// Empty input produces empty output, and neither function ever fails:
// malformed markup degrades to literal text instead of an error. A second
// round trip produces byte-identical output to the first, so stored content
// never drifts under repeated conversion.
//
// # Conversion Pipeline
//
// Each direction runs a fixed sequence of stages:
//
//  1. Tables (GFM pipe tables <-> <table> markup)
//  2. Lists, including task lists, by recursive descent over balanced tags
//  3. Block elements (headings, blockquotes, fenced code, rules)
//  4. Inline spans (code, bold, italic, underline, strikethrough, links,
//     images)
//  5. Entity escaping and whitespace normalization
//
// Tables and lists run first so their cell and item content is flattened
// before any other substitution can touch it.
//
// # Supported Dialect
//
// The converter targets the editor's HTML shape (paragraph-wrapped list
// items, data-checked task items, colgroup tables) and the GFM task-list
// and table dialect on the Markdown side. It is not a general-purpose
// HTML5 or CommonMark engine.
//
// # Concurrency
//
// Conversion is pure and stateless; a Converter is safe for concurrent use
// without synchronization.
package entrymd
