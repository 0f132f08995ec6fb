package pipeline

import (
	"regexp"
	"strings"
)

// crlfRe normalizes \r\n and \r line endings.
var crlfRe = regexp.MustCompile(`\r\n?`)

// HTMLToMarkdown converts stored entry HTML to Markdown. Tables and lists
// convert first: their cell and item content is flattened before the
// regex-style substitutions of later stages can corrupt it. Empty input
// yields empty output and malformed markup degrades to literal text; the
// function never fails.
func HTMLToMarkdown(html string) string {
	if html == "" {
		return ""
	}

	out := crlfRe.ReplaceAllString(html, "\n")
	out = ConvertHTMLTablesToMd(out)
	out = ConvertHTMLListsToMd(out)
	out = ConvertHTMLCodeBlocksToMd(out)
	out = ConvertHTMLHeadingsToMd(out)
	out = ConvertHTMLBlockquotesToMd(out)
	out = InlineHTMLToMd(out)
	out = htmlHrRe.ReplaceAllString(out, "\n\n---\n\n")
	out = htmlBrRe.ReplaceAllString(out, "\n")
	out = htmlParaOpenRe.ReplaceAllString(out, "")
	out = strings.ReplaceAll(out, "</p>", "\n\n")
	out = htmlDivSpanRe.ReplaceAllString(out, "")
	out = UnescapeEntities(out)
	return NormalizeWhitespace(out)
}
