package pipeline

import "strings"

// ExtractDirectChildren returns the immediate child occurrences of tag within
// html, each as the full substring from its opening '<' through its closing
// tag. Nested occurrences inside an already-captured span are not re-emitted:
// the cursor always advances past the balanced end of each captured child.
//
// An opening tag with no balanced close is skipped as literal text and the
// scan continues past it.
func ExtractDirectChildren(html, tag string) []string {
	var children []string
	i := 0
	for {
		open := FindNextOpenTag(html, tag, i)
		if open == NotFound {
			return children
		}
		end := FindBalancedTagEnd(html, tag, open)
		if end == NotFound {
			i = open + 1 + len(tag)
			continue
		}
		children = append(children, html[open:end])
		i = end
	}
}

// innerContent strips the outer opening and closing tags from a balanced
// element substring, returning only its content. Returns "" when the
// substring is too malformed to carry content.
func innerContent(element string) string {
	openEnd := strings.IndexByte(element, '>')
	if openEnd < 0 {
		return ""
	}
	closeStart := strings.LastIndex(element, "</")
	if closeStart <= openEnd {
		return ""
	}
	return element[openEnd+1 : closeStart]
}
