// Package pipeline implements the HTML/Markdown conversion stages.
//
// Each direction is a sequence of independent transformations:
//   - Balanced-tag scanning and direct-child extraction (the structural
//     primitives all list and table handling builds on)
//   - List conversion, both directions, including task lists
//   - GFM pipe-table conversion
//   - Inline spans (code, bold, italic, underline, strikethrough, links,
//     images)
//   - Block elements (headings, blockquotes, fenced code, rules,
//     paragraphs) and entity escaping
//
// Tables and lists always convert before anything else so later
// substitutions cannot corrupt Markdown or HTML syntax embedded in cell or
// item content. Nested structures are handled by an explicit recursive
// descent over balanced tag spans rather than chained regular expressions,
// which cannot track nesting depth.
//
// Nothing in this package returns an error: malformed input degrades to
// literal text and repeated conversion stabilizes after the first
// normalization.
package pipeline
