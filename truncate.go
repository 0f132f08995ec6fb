package entrymd

import "unicode/utf8"

// Truncate shortens Markdown output to at most limit characters plus a
// trailing ellipsis. Response size capping is the caller's concern, not the
// converter's, so this lives beside the conversion API rather than inside
// it. A non-positive limit or content within the limit returns md
// unchanged. The cut is rune-safe.
func Truncate(md string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(md) <= limit {
		return md
	}
	runes := []rune(md)
	return string(runes[:limit]) + "..."
}
