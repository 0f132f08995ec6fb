package entrymd

import (
	"regexp"
	"strings"
)

// htmlTagRe matches common opening tags so content direction can be guessed
// when no file extension is available (stdin, raw API payloads).
var htmlTagRe = regexp.MustCompile(`<(p|br|div|span|b|i|u|s|strong|em|a|img|ul|ol|li|table|pre|code|h[1-6]|blockquote|hr)[\s>/]`)

// ContainsHTML reports whether s appears to contain HTML markup.
func ContainsHTML(s string) bool {
	return htmlTagRe.MatchString(strings.ToLower(s))
}
