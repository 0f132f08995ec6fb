package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Block-level patterns, HTML to Markdown direction.
var (
	htmlHeadingRe    = regexp.MustCompile(`(?s)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	htmlBlockquoteRe = regexp.MustCompile(`(?s)<blockquote[^>]*>(.*?)</blockquote>`)
	htmlCodeBlockRe  = regexp.MustCompile("(?s)<pre[^>]*><code(?: class=\"language-([^\"]*)\")?[^>]*>(.*?)</code></pre>")
	htmlHrRe         = regexp.MustCompile(`<hr\s*/?>`)
	htmlBrRe         = regexp.MustCompile(`<br\s*/?>`)
	htmlParaOpenRe   = regexp.MustCompile(`<p[^>]*>`)
	htmlDivSpanRe    = regexp.MustCompile(`</?(?:div|span)[^>]*>`)
	tripleNewlineRe  = regexp.MustCompile(`\n{3,}`)
)

// Block-level patterns, Markdown to HTML direction.
var (
	mdHeadingRe   = regexp.MustCompile(`(?m)^(#{1,6}) (.*)$`)
	mdHrRe        = regexp.MustCompile(`(?m)^(?:---|\*\*\*|___)\s*$`)
	mdFencedRe    = regexp.MustCompile("(?s)```([^\n`]*)\n(.*?)\n?```")
	blockTagRe    = regexp.MustCompile(`^<(?:h[1-6]|ul|ol|li|table|blockquote|pre|hr|div|p)[\s>]`)
	// The main pipeline entity-escapes before this stage runs, so the
	// quote marker may arrive as &gt;.
	mdQuoteLineRe = regexp.MustCompile(`^(?:>|&gt;) ?(.*)$`)
)

// ConvertHTMLHeadingsToMd rewrites h1-h6 elements as ATX headings.
func ConvertHTMLHeadingsToMd(html string) string {
	return htmlHeadingRe.ReplaceAllStringFunc(html, func(h string) string {
		m := htmlHeadingRe.FindStringSubmatch(h)
		level, _ := strconv.Atoi(m[1])
		text := strings.TrimSpace(InlineHTMLToMd(m[2]))
		return "\n\n" + strings.Repeat("#", level) + " " + text + "\n\n"
	})
}

// ConvertHTMLBlockquotesToMd rewrites blockquote elements, prefixing every
// content line with "> ". Inner paragraphs become separate quoted lines.
func ConvertHTMLBlockquotesToMd(html string) string {
	return htmlBlockquoteRe.ReplaceAllStringFunc(html, func(q string) string {
		m := htmlBlockquoteRe.FindStringSubmatch(q)
		inner := m[1]
		inner = htmlBrRe.ReplaceAllString(inner, "\n")
		inner = htmlParaOpenRe.ReplaceAllString(inner, "")
		inner = strings.ReplaceAll(inner, "</p>", "\n")
		inner = strings.TrimSpace(inner)

		lines := strings.Split(inner, "\n")
		for i, line := range lines {
			lines[i] = "> " + strings.TrimSpace(line)
		}
		return "\n\n" + strings.Join(lines, "\n") + "\n\n"
	})
}

// ConvertHTMLCodeBlocksToMd rewrites <pre><code> blocks as fenced code.
// Entity decoding is left to the document-wide pass so content decodes
// exactly once.
func ConvertHTMLCodeBlocksToMd(html string) string {
	return htmlCodeBlockRe.ReplaceAllStringFunc(html, func(block string) string {
		m := htmlCodeBlockRe.FindStringSubmatch(block)
		lang, code := m[1], m[2]
		code = strings.Trim(code, "\n")
		return "\n\n```" + lang + "\n" + code + "\n```\n\n"
	})
}

// UnescapeEntities decodes the entity set the editor emits. The ampersand
// decodes last so "&amp;lt;" survives a single pass as "&lt;".
func UnescapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&#x27;", "'")
	s = strings.ReplaceAll(s, "&#x2F;", "/")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// EscapeEntities encodes the characters that would otherwise read as markup
// in the stored HTML. The ampersand encodes first.
func EscapeEntities(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// NormalizeWhitespace collapses runs of three or more newlines to exactly
// two and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(tripleNewlineRe.ReplaceAllString(s, "\n\n"))
}

// ConvertMdHeadingsToHTML rewrites ATX headings as h1-h6 elements.
func ConvertMdHeadingsToHTML(text string) string {
	return mdHeadingRe.ReplaceAllStringFunc(text, func(line string) string {
		m := mdHeadingRe.FindStringSubmatch(line)
		level := strconv.Itoa(len(m[1]))
		return "<h" + level + ">" + strings.TrimSpace(m[2]) + "</h" + level + ">"
	})
}

// fencedToHTML renders one fenced block as <pre><code> with a language
// class when the fence names one. The body was entity-escaped with the
// rest of the document before extraction.
func fencedToHTML(lang, body string) string {
	lang = strings.TrimSpace(lang)
	open := "<pre><code>"
	if lang != "" {
		open = `<pre><code class="language-` + lang + `">`
	}
	return open + body + "</code></pre>"
}

// ConvertMdBlockquotesToHTML groups contiguous "> " lines into one
// blockquote with a paragraph per line.
func ConvertMdBlockquotesToHTML(text string) string {
	lines := strings.Split(text, "\n")
	var out []string

	i := 0
	for i < len(lines) {
		m := mdQuoteLineRe.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			i++
			continue
		}
		var quoted []string
		for i < len(lines) {
			m := mdQuoteLineRe.FindStringSubmatch(lines[i])
			if m == nil {
				break
			}
			quoted = append(quoted, "<p>"+m[1]+"</p>")
			i++
		}
		out = append(out, "<blockquote>"+strings.Join(quoted, "")+"</blockquote>")
	}
	return strings.Join(out, "\n")
}

// WrapBareLines wraps any remaining non-empty line that does not already
// start with a block element in a paragraph, then joins all blocks into the
// editor's single-string storage form.
func WrapBareLines(text string) string {
	lines := strings.Split(text, "\n")
	var out []string
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "<pre>") || strings.HasPrefix(trimmed, "<pre ") {
			// Code blocks keep their interior newlines verbatim.
			pre := []string{lines[i]}
			for !strings.Contains(lines[i], "</code></pre>") && i+1 < len(lines) {
				i++
				pre = append(pre, lines[i])
			}
			out = append(out, strings.Join(pre, "\n"))
			continue
		}
		if blockTagRe.MatchString(trimmed) {
			out = append(out, trimmed)
			continue
		}
		out = append(out, "<p>"+trimmed+"</p>")
	}
	return strings.Join(out, "")
}

// ConvertMdHrToHTML rewrites horizontal-rule lines.
func ConvertMdHrToHTML(text string) string {
	return mdHrRe.ReplaceAllString(text, "<hr>")
}
