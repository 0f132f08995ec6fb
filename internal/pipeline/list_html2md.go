package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

var spacesRe = regexp.MustCompile(`\s+`)

// listItemKind classifies one list item line.
type listItemKind int

const (
	kindBullet listItemKind = iota
	kindOrdered
	kindTaskChecked
	kindTaskUnchecked
)

// isTask reports whether the kind belongs to the task-list category.
func (k listItemKind) isTask() bool {
	return k == kindTaskChecked || k == kindTaskUnchecked
}

// earliestListTag locates whichever of <ul>/<ol> opens first at or after
// from. Returns (offset, tag) or (NotFound, "").
func earliestListTag(html string, from int) (int, string) {
	ul := FindNextOpenTag(html, "ul", from)
	ol := FindNextOpenTag(html, "ol", from)
	switch {
	case ul == NotFound && ol == NotFound:
		return NotFound, ""
	case ol == NotFound || (ul != NotFound && ul < ol):
		return ul, "ul"
	default:
		return ol, "ol"
	}
}

// splitNestedLists separates an <li> body into its own inline content and
// the nested <ul>/<ol> blocks that followed it, preserving nested order.
func splitNestedLists(body string) (inline string, nested []string) {
	var b strings.Builder
	i := 0
	for {
		at, tag := earliestListTag(body, i)
		if at == NotFound {
			b.WriteString(body[i:])
			return b.String(), nested
		}
		end := FindBalancedTagEnd(body, tag, at)
		if end == NotFound {
			// Unbalanced nested list: keep the opening as literal text.
			b.WriteString(body[i : at+1+len(tag)])
			i = at + 1 + len(tag)
			continue
		}
		b.WriteString(body[i:at])
		nested = append(nested, body[at:end])
		i = end
	}
}

// classifyItem reads the item's opening tag for data-checked task markers,
// falling back to the surrounding list's category.
func classifyItem(openTag string, ordered bool) listItemKind {
	switch {
	case strings.Contains(openTag, `data-checked="true"`):
		return kindTaskChecked
	case strings.Contains(openTag, `data-checked="false"`):
		return kindTaskUnchecked
	case ordered:
		return kindOrdered
	default:
		return kindBullet
	}
}

// listBlockToMd converts one balanced <ul>/<ol> element to Markdown lines.
// depth controls indentation at two spaces per level; nested lists recurse
// at depth+1 immediately after their parent item's line.
func listBlockToMd(listHTML string, depth int) string {
	ordered := strings.HasPrefix(listHTML, "<ol")
	items := ExtractDirectChildren(innerContent(listHTML), "li")

	indent := strings.Repeat("  ", depth)
	counter := 0
	var lines []string
	for _, item := range items {
		openEnd := strings.IndexByte(item, '>')
		if openEnd < 0 {
			continue
		}
		body := innerContent(item)
		kind := classifyItem(item[:openEnd+1], ordered)

		inline, nested := splitNestedLists(body)
		text := InlineHTMLToMd(StripItemWrappers(inline))
		text = strings.TrimSpace(spacesRe.ReplaceAllString(text, " "))

		var marker string
		switch kind {
		case kindTaskChecked:
			marker = "- [x] "
		case kindTaskUnchecked:
			marker = "- [ ] "
		case kindOrdered:
			counter++
			marker = strconv.Itoa(counter) + ". "
		default:
			marker = "- "
		}
		lines = append(lines, indent+marker+text)

		for _, sub := range nested {
			lines = append(lines, listBlockToMd(sub, depth+1))
		}
	}
	return strings.Join(lines, "\n")
}

// ConvertHTMLListsToMd replaces every top-level <ul>/<ol> block in the
// document with its Markdown rendering. Runs before all other HTML-to-
// Markdown transforms so later substitutions cannot corrupt item content.
func ConvertHTMLListsToMd(html string) string {
	var b strings.Builder
	i := 0
	for i < len(html) {
		at, tag := earliestListTag(html, i)
		if at == NotFound {
			b.WriteString(html[i:])
			break
		}
		end := FindBalancedTagEnd(html, tag, at)
		if end == NotFound {
			// Treat the unbalanced opening as literal text and move on.
			b.WriteString(html[i : at+1+len(tag)])
			i = at + 1 + len(tag)
			continue
		}
		b.WriteString(html[i:at])
		b.WriteString("\n\n")
		b.WriteString(listBlockToMd(html[at:end], 0))
		b.WriteString("\n\n")
		i = end
	}
	return b.String()
}
