package pipeline

import (
	"regexp"
	"strings"
)

// listLineRe is the list grammar: indentation, then a bullet, ordered, or
// task marker, then the item text.
var listLineRe = regexp.MustCompile(`^(\s*)(- \[x\] |- \[ \] |- |\d+\. )(.*)$`)

// listLine is one classified line of a Markdown list run.
type listLine struct {
	indent int
	kind   listItemKind
	text   string
}

// classifyListLine parses a single line against the list grammar.
func classifyListLine(line string) (listLine, bool) {
	m := listLineRe.FindStringSubmatch(line)
	if m == nil {
		return listLine{}, false
	}
	var kind listItemKind
	switch m[2] {
	case "- [x] ":
		kind = kindTaskChecked
	case "- [ ] ":
		kind = kindTaskUnchecked
	case "- ":
		kind = kindBullet
	default:
		kind = kindOrdered
	}
	return listLine{indent: len(m[1]), kind: kind, text: m[3]}, true
}

// renderListItem emits one <li> in the editor's storage shape. Task items
// carry the data-checked attribute and checkbox scaffolding; plain items
// wrap their text in a paragraph.
func renderListItem(it listLine) string {
	switch it.kind {
	case kindTaskChecked:
		return `<li data-checked="true" data-type="taskItem"><label><input type="checkbox" checked="checked"><span></span></label><div><p>` +
			it.text + `</p></div></li>`
	case kindTaskUnchecked:
		return `<li data-checked="false" data-type="taskItem"><label><input type="checkbox"><span></span></label><div><p>` +
			it.text + `</p></div></li>`
	default:
		return "<li><p>" + it.text + "</p></li>"
	}
}

// buildNestedListHTML reconstructs one nested list from classified lines.
// It consumes items at exactly baseIndent, recursing whenever the next line
// is indented deeper and splicing the sub-list into the just-emitted <li>
// before its closing tag. Returns the HTML and the index of the first
// unconsumed line.
//
// The wrapper kind is taken from the first item; later items of a different
// kind at the same indent are coerced to it.
func buildNestedListHTML(items []listLine, start, baseIndent int) (string, int) {
	first := items[start].kind

	var open, close string
	switch {
	case first.isTask():
		open, close = `<ul data-type="taskList">`, "</ul>"
	case first == kindOrdered:
		open, close = "<ol>", "</ol>"
	default:
		open, close = "<ul>", "</ul>"
	}

	var b strings.Builder
	b.WriteString(open)
	i := start
	for i < len(items) {
		it := items[i]
		if it.indent < baseIndent {
			break
		}
		if it.indent > baseIndent {
			// Malformed jump past the expected level: nest it anyway so the
			// content survives.
			sub, next := buildNestedListHTML(items, i, it.indent)
			b.WriteString("<li>" + sub + "</li>")
			i = next
			continue
		}

		// Mixed kinds at one level coerce to the first item's category.
		if it.kind.isTask() != first.isTask() {
			if first.isTask() {
				it.kind = kindTaskUnchecked
			} else {
				it.kind = first
			}
		}
		li := renderListItem(it)
		i++
		if i < len(items) && items[i].indent > baseIndent {
			sub, next := buildNestedListHTML(items, i, items[i].indent)
			li = li[:len(li)-len("</li>")] + sub + "</li>"
			i = next
		}
		b.WriteString(li)
	}
	b.WriteString(close)
	return b.String(), i
}

// ConvertMdListsToHTML scans the document line by line, grouping contiguous
// runs of list-grammar lines into nested HTML lists. A single blank line
// between two list lines is swallowed into the run. Non-list lines pass
// through unchanged.
func ConvertMdListsToHTML(text string) string {
	lines := strings.Split(text, "\n")
	var out []string

	i := 0
	for i < len(lines) {
		first, ok := classifyListLine(lines[i])
		if !ok {
			out = append(out, lines[i])
			i++
			continue
		}

		run := []listLine{first}
		i++
		for i < len(lines) {
			if it, ok := classifyListLine(lines[i]); ok {
				run = append(run, it)
				i++
				continue
			}
			// Tolerate one blank line inside a run.
			if strings.TrimSpace(lines[i]) == "" && i+1 < len(lines) {
				if it, ok := classifyListLine(lines[i+1]); ok {
					run = append(run, it)
					i += 2
					continue
				}
			}
			break
		}

		html, _ := buildNestedListHTML(run, 0, run[0].indent)
		out = append(out, html)
	}
	return strings.Join(out, "\n")
}
