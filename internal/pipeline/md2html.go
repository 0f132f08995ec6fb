package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Code placeholders use Unicode Private Use Area characters, so stashed
// code cannot collide with document text while the other stages run.
const (
	codeStartPlaceholder = ""
	codeEndPlaceholder   = ""
)

var codePlaceholderRe = regexp.MustCompile(codeStartPlaceholder + `(\d+)` + codeEndPlaceholder)

// MarkdownToHTML converts Markdown to the editor's storage HTML. Code spans
// and fenced blocks are stashed behind placeholders first so no later
// substitution can reach into literal code; tables and lists convert before
// paragraph wrapping. Empty input yields empty output; the function never
// fails.
func MarkdownToHTML(md string) string {
	if md == "" {
		return ""
	}

	out := crlfRe.ReplaceAllString(md, "\n")
	// The placeholder characters must never come from the document itself,
	// or a forged sequence could address the stash. Strip them up front.
	out = strings.ReplaceAll(out, codeStartPlaceholder, "")
	out = strings.ReplaceAll(out, codeEndPlaceholder, "")
	out = EscapeEntities(out)

	var stash []string
	stashed := func(html string) string {
		stash = append(stash, html)
		return codeStartPlaceholder + strconv.Itoa(len(stash)-1) + codeEndPlaceholder
	}

	out = mdFencedRe.ReplaceAllStringFunc(out, func(block string) string {
		m := mdFencedRe.FindStringSubmatch(block)
		return stashed(fencedToHTML(m[1], m[2]))
	})
	out = mdCodeRe.ReplaceAllStringFunc(out, func(span string) string {
		m := mdCodeRe.FindStringSubmatch(span)
		return stashed("<code>" + m[1] + "</code>")
	})

	out = ConvertMdTablesToHTML(out)
	out = ConvertMdHeadingsToHTML(out)
	out = InlineMdToHTML(out)
	out = ConvertMdHrToHTML(out)
	out = ConvertMdBlockquotesToHTML(out)
	out = ConvertMdListsToHTML(out)

	// Restore before paragraph wrapping: <pre> blocks keep their interior
	// newlines and inline code lands back inside its line.
	out = codePlaceholderRe.ReplaceAllStringFunc(out, func(ph string) string {
		m := codePlaceholderRe.FindStringSubmatch(ph)
		idx, err := strconv.Atoi(m[1])
		if err != nil || idx < 0 || idx >= len(stash) {
			return ph
		}
		return stash[idx]
	})
	return WrapBareLines(out)
}
