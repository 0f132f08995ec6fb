package pipeline

import "strings"

// NotFound is returned by scanning functions when no balanced match exists.
const NotFound = -1

// isOpenTagAt reports whether html[i:] starts an opening tag named tag.
// The name must be followed by whitespace, '>', or end of string so that
// "<ul" does not match "<ulx>".
func isOpenTagAt(html, tag string, i int) bool {
	if !strings.HasPrefix(html[i:], "<"+tag) {
		return false
	}
	rest := i + 1 + len(tag)
	if rest >= len(html) {
		return true
	}
	switch html[rest] {
	case ' ', '\t', '\n', '\r', '>':
		return true
	}
	return false
}

// FindBalancedTagEnd scans forward from start, which must point at the '<' of
// an opening tag named tag, and returns the offset immediately past the
// matching closing tag. Nested openings of the same tag name are counted
// against closings. Returns NotFound when start does not open tag or the
// markup is unbalanced or truncated.
//
// The scan is a single forward pass; it never backtracks.
func FindBalancedTagEnd(html, tag string, start int) int {
	if start < 0 || start >= len(html) || !isOpenTagAt(html, tag, start) {
		return NotFound
	}

	closing := "</" + tag + ">"
	depth := 0
	i := start
	for i < len(html) {
		if strings.HasPrefix(html[i:], closing) {
			depth--
			i += len(closing)
			if depth == 0 {
				return i
			}
			continue
		}
		if isOpenTagAt(html, tag, i) {
			depth++
			i += 1 + len(tag)
			continue
		}
		i++
	}
	return NotFound
}

// FindNextOpenTag returns the offset of the next opening tag named tag at or
// after from, or NotFound.
func FindNextOpenTag(html, tag string, from int) int {
	if from < 0 {
		from = 0
	}
	needle := "<" + tag
	for from < len(html) {
		idx := strings.Index(html[from:], needle)
		if idx < 0 {
			return NotFound
		}
		at := from + idx
		if isOpenTagAt(html, tag, at) {
			return at
		}
		from = at + 1
	}
	return NotFound
}
