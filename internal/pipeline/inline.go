package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled inline-span patterns, HTML to Markdown direction.
var (
	htmlCodeRe       = regexp.MustCompile(`<code[^>]*>(.*?)</code>`)
	htmlBoldItalicRe = regexp.MustCompile(`<strong><em>(.*?)</em></strong>`)
	htmlBoldRe       = regexp.MustCompile(`<(?:strong|b)>(.*?)</(?:strong|b)>`)
	htmlItalicRe     = regexp.MustCompile(`<(?:em|i)>(.*?)</(?:em|i)>`)
	htmlUnderlineRe  = regexp.MustCompile(`<u>(.*?)</u>`)
	htmlStrikeRe     = regexp.MustCompile(`<(?:s|del|strike)>(.*?)</(?:s|del|strike)>`)
	htmlLinkRe       = regexp.MustCompile(`<a\s[^>]*>.*?</a>`)
	htmlLinkPartsRe  = regexp.MustCompile(`<a\s[^>]*>(.*?)</a>`)
	htmlImageRe      = regexp.MustCompile(`<img\s[^>]*/?>`)
)

// Precompiled inline-span patterns, Markdown to HTML direction.
var (
	mdCodeRe       = regexp.MustCompile("`([^`\n]+)`")
	mdBoldItalicRe = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	mdBoldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdItalicRe     = regexp.MustCompile(`\*([^*\n]+)\*`)
	mdUnderlineRe  = regexp.MustCompile(`\b_([^_\n]+)_\b`)
	mdStrikeRe     = regexp.MustCompile(`~~([^~\n]+)~~`)
	mdImageRe      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)\)`)
	mdLinkRe       = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)`)
)

// Task-item wrapper markup stripped before inline conversion.
var (
	checkboxInputRe = regexp.MustCompile(`<input[^>]*>`)
	wrapperTagRe    = regexp.MustCompile(`</?(?:label|span|div|p|br)[^>]*>`)
)

// attrValue extracts the value of a double-quoted attribute from a single
// opening tag, or "" when absent.
func attrValue(tag, name string) string {
	idx := strings.Index(tag, name+`="`)
	if idx < 0 {
		return ""
	}
	rest := tag[idx+len(name)+2:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// InlineHTMLToMd converts inline HTML spans to their Markdown equivalents.
// Substitution order matters: code spans first so later patterns cannot
// corrupt literal content, then combined emphasis before its components.
// Malformed spans are left as literal text.
func InlineHTMLToMd(s string) string {
	s = htmlCodeRe.ReplaceAllString(s, "`$1`")
	s = htmlBoldItalicRe.ReplaceAllString(s, "***$1***")
	s = htmlBoldRe.ReplaceAllString(s, "**$1**")
	s = htmlItalicRe.ReplaceAllString(s, "*$1*")
	s = htmlUnderlineRe.ReplaceAllString(s, "_${1}_")
	s = htmlStrikeRe.ReplaceAllString(s, "~~$1~~")

	s = htmlImageRe.ReplaceAllStringFunc(s, func(tag string) string {
		src := attrValue(tag, "src")
		if src == "" {
			return ""
		}
		return "![" + attrValue(tag, "alt") + "](" + src + ")"
	})

	s = htmlLinkRe.ReplaceAllStringFunc(s, func(anchor string) string {
		m := htmlLinkPartsRe.FindStringSubmatch(anchor)
		if m == nil {
			return anchor
		}
		href := attrValue(anchor[:strings.IndexByte(anchor, '>')+1], "href")
		if href == "" {
			return m[1]
		}
		return "[" + m[1] + "](" + href + ")"
	})

	return s
}

// InlineMdToHTML converts inline Markdown spans to HTML. Mirror order of
// InlineHTMLToMd, except images convert before links so the link pattern
// cannot claim the bracketed part of an image.
func InlineMdToHTML(s string) string {
	s = mdCodeRe.ReplaceAllString(s, "<code>$1</code>")
	s = mdBoldItalicRe.ReplaceAllString(s, "<strong><em>$1</em></strong>")
	s = mdBoldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = mdItalicRe.ReplaceAllString(s, "<em>$1</em>")
	s = mdUnderlineRe.ReplaceAllString(s, "<u>$1</u>")
	s = mdStrikeRe.ReplaceAllString(s, "<s>$1</s>")
	s = mdImageRe.ReplaceAllString(s, `<img src="$2" alt="$1">`)
	s = mdLinkRe.ReplaceAllString(s, `<a href="$2">$1</a>`)
	return s
}

// StripItemWrappers removes task-item scaffolding (checkbox input, label,
// span, div, p wrappers) from a list item's content, leaving inline markup.
func StripItemWrappers(s string) string {
	s = checkboxInputRe.ReplaceAllString(s, "")
	s = wrapperTagRe.ReplaceAllString(s, " ")
	return s
}
