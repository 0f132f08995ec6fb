package pipeline

import (
	"regexp"
	"strings"
)

// sepColRe validates one column of a GFM separator row.
var sepColRe = regexp.MustCompile(`^:?-+:?$`)

// cellBlockTagRe strips block-level markup inside a table cell so the cell
// collapses to single-line GFM content.
var cellBlockTagRe = regexp.MustCompile(`</?(?:p|div|span|ul|ol|li|h[1-6]|blockquote|br)[^>]*>`)

// tableModel is the transient shape of one parsed table. Every row holds
// exactly len(headers) cells.
type tableModel struct {
	headers []string
	rows    [][]string
}

// extractCells returns the th/td cells of one row in document order.
func extractCells(rowHTML string) []string {
	var cells []string
	i := 0
	for {
		th := FindNextOpenTag(rowHTML, "th", i)
		td := FindNextOpenTag(rowHTML, "td", i)
		at, tag := th, "th"
		if th == NotFound || (td != NotFound && td < th) {
			at, tag = td, "td"
		}
		if at == NotFound {
			return cells
		}
		end := FindBalancedTagEnd(rowHTML, tag, at)
		if end == NotFound {
			i = at + 1 + len(tag)
			continue
		}
		cells = append(cells, innerContent(rowHTML[at:end]))
		i = end
	}
}

// cellToMd flattens one HTML cell to single-line Markdown with literal
// pipes escaped.
func cellToMd(cell string) string {
	cell = cellBlockTagRe.ReplaceAllString(cell, " ")
	cell = InlineHTMLToMd(cell)
	cell = strings.ReplaceAll(cell, "|", `\|`)
	return strings.TrimSpace(spacesRe.ReplaceAllString(cell, " "))
}

// parseHTMLTable builds a tableModel from one balanced <table> element.
// Short rows are padded with empty cells; extra cells beyond the header
// width are dropped.
func parseHTMLTable(tableHTML string) (tableModel, bool) {
	trs := ExtractDirectChildren(innerContent(tableHTML), "tr")
	if len(trs) == 0 {
		return tableModel{}, false
	}

	var m tableModel
	for _, cell := range extractCells(trs[0]) {
		m.headers = append(m.headers, cellToMd(cell))
	}
	if len(m.headers) == 0 {
		return tableModel{}, false
	}

	for _, tr := range trs[1:] {
		row := make([]string, len(m.headers))
		for i, cell := range extractCells(tr) {
			if i >= len(m.headers) {
				break
			}
			row[i] = cellToMd(cell)
		}
		m.rows = append(m.rows, row)
	}
	return m, true
}

// renderMdTable emits a GFM pipe table with a separator row sized to the
// header's column count.
func renderMdTable(m tableModel) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(m.headers, " | ") + " |\n")
	seps := make([]string, len(m.headers))
	for i := range seps {
		seps[i] = "---"
	}
	b.WriteString("| " + strings.Join(seps, " | ") + " |")
	for _, row := range m.rows {
		b.WriteString("\n| " + strings.Join(row, " | ") + " |")
	}
	return b.String()
}

// ConvertHTMLTablesToMd replaces every <table> block with a GFM pipe table.
// Applied first in the HTML-to-Markdown direction so cell content containing
// list or heading markup is flattened before those stages run.
func ConvertHTMLTablesToMd(html string) string {
	var b strings.Builder
	i := 0
	for i < len(html) {
		at := FindNextOpenTag(html, "table", i)
		if at == NotFound {
			b.WriteString(html[i:])
			break
		}
		end := FindBalancedTagEnd(html, "table", at)
		if end == NotFound {
			b.WriteString(html[i : at+len("<table")])
			i = at + len("<table")
			continue
		}
		b.WriteString(html[i:at])
		if m, ok := parseHTMLTable(html[at:end]); ok {
			b.WriteString("\n\n" + renderMdTable(m) + "\n\n")
		} else {
			b.WriteString(html[at:end])
		}
		i = end
	}
	return b.String()
}

// splitTableRow splits one pipe-table line into trimmed cells, honoring
// escaped pipes.
func splitTableRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")

	var cells []string
	var cur strings.Builder
	escaped := false
	for _, r := range line {
		switch {
		case escaped:
			if r != '|' {
				cur.WriteByte('\\')
			}
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		cur.WriteByte('\\')
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}

// isSeparatorRow reports whether line is a valid GFM separator with at
// least one column.
func isSeparatorRow(line string) bool {
	if !strings.Contains(line, "-") || !strings.Contains(line, "|") {
		return false
	}
	cols := splitTableRow(line)
	if len(cols) == 0 {
		return false
	}
	for _, c := range cols {
		if !sepColRe.MatchString(c) {
			return false
		}
	}
	return true
}

// renderHTMLTable emits the editor's table shape: colgroup sized to the
// header, thead with th cells, tbody with td cells.
func renderHTMLTable(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("<table><colgroup>")
	b.WriteString(strings.Repeat("<col>", len(headers)))
	b.WriteString("</colgroup><thead><tr>")
	for _, h := range headers {
		b.WriteString("<th>" + h + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString("<td>" + cell + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

// ConvertMdTablesToHTML converts GFM pipe tables back to HTML tables. A
// candidate block whose separator row fails validation is left untouched.
func ConvertMdTablesToHTML(text string) string {
	lines := strings.Split(text, "\n")
	var out []string

	i := 0
	for i < len(lines) {
		if i+1 < len(lines) &&
			strings.Contains(lines[i], "|") &&
			isSeparatorRow(lines[i+1]) {
			headers := splitTableRow(lines[i])
			i += 2
			var rows [][]string
			for i < len(lines) && strings.Contains(lines[i], "|") {
				rows = append(rows, splitTableRow(lines[i]))
				i++
			}
			out = append(out, renderHTMLTable(headers, rows))
			continue
		}
		out = append(out, lines[i])
		i++
	}
	return strings.Join(out, "\n")
}
