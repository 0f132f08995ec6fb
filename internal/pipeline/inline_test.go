package pipeline

import (
	"strings"
	"testing"
)

func TestInlineHTMLToMd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bold strong", input: "<strong>x</strong>", want: "**x**"},
		{name: "bold b tag", input: "<b>x</b>", want: "**x**"},
		{name: "italic em", input: "<em>x</em>", want: "*x*"},
		{name: "italic i tag", input: "<i>x</i>", want: "*x*"},
		{name: "bold italic combined", input: "<strong><em>x</em></strong>", want: "***x***"},
		{name: "underline", input: "<u>x</u>", want: "_x_"},
		{name: "strikethrough s", input: "<s>x</s>", want: "~~x~~"},
		{name: "strikethrough del", input: "<del>x</del>", want: "~~x~~"},
		{name: "code span", input: "<code>fmt.Println</code>", want: "`fmt.Println`"},
		{name: "link", input: `<a href="https://example.com">site</a>`, want: "[site](https://example.com)"},
		{name: "link with extra attributes", input: `<a target="_blank" href="https://example.com">site</a>`, want: "[site](https://example.com)"},
		{name: "link without href keeps text", input: `<a name="anchor">site</a>`, want: "site"},
		{name: "image", input: `<img src="cat.png" alt="a cat">`, want: "![a cat](cat.png)"},
		{name: "image self closing", input: `<img src="cat.png" alt="a cat"/>`, want: "![a cat](cat.png)"},
		{name: "image without src dropped", input: `<img alt="nothing">`, want: ""},
		{name: "mixed sentence", input: "start <strong>b</strong> mid <em>i</em> end", want: "start **b** mid *i* end"},
		{name: "unmatched open left literal", input: "<strong>never closed", want: "<strong>never closed"},
		{name: "plain text untouched", input: "just words", want: "just words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := InlineHTMLToMd(tt.input); got != tt.want {
				t.Errorf("InlineHTMLToMd(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInlineMdToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bold", input: "**x**", want: "<strong>x</strong>"},
		{name: "italic", input: "*x*", want: "<em>x</em>"},
		{name: "bold italic combined", input: "***x***", want: "<strong><em>x</em></strong>"},
		{name: "underline", input: "_x_", want: "<u>x</u>"},
		{name: "underscore inside word untouched", input: "snake_case_name", want: "snake_case_name"},
		{name: "strikethrough", input: "~~x~~", want: "<s>x</s>"},
		{name: "code span", input: "`x`", want: "<code>x</code>"},
		{name: "link", input: "[site](https://example.com)", want: `<a href="https://example.com">site</a>`},
		{name: "image not eaten by link", input: "![a cat](cat.png)", want: `<img src="cat.png" alt="a cat">`},
		{name: "plain text untouched", input: "just words", want: "just words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := InlineMdToHTML(tt.input); got != tt.want {
				t.Errorf("InlineMdToHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripItemWrappers(t *testing.T) {
	t.Parallel()

	input := `<label><input type="checkbox" checked="checked"><span></span></label><div><p>Walk the dog</p></div>`
	got := StripItemWrappers(input)
	if !strings.Contains(got, "Walk the dog") {
		t.Errorf("StripItemWrappers() = %q, want it to contain %q", got, "Walk the dog")
	}
	if strings.Contains(got, "<") {
		t.Errorf("StripItemWrappers() left markup behind: %q", got)
	}
}
