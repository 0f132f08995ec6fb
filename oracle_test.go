package entrymd

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// gfmParse parses md with a reference GFM parser and returns the document
// root. The converter's output should be valid GFM; parsing it with an
// independent implementation catches marker and fence mistakes that
// string assertions would miss.
func gfmParse(md string) *ast.Document {
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := gm.Parser().Parse(text.NewReader([]byte(md)))
	return root.(*ast.Document)
}

func countKind(root ast.Node, kind ast.NodeKind) int {
	n := 0
	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && node.Kind() == kind {
			n++
		}
		return ast.WalkContinue, nil
	})
	return n
}

func TestGeneratedMarkdownParsesAsGFM(t *testing.T) {
	t.Parallel()

	t.Run("list output parses as a list", func(t *testing.T) {
		t.Parallel()
		md := HTMLToMarkdown("<ul><li><p>one</p></li><li><p>two</p></li></ul>")
		root := gfmParse(md)
		if got := countKind(root, ast.KindList); got != 1 {
			t.Errorf("lists parsed = %d, want 1", got)
		}
		if got := countKind(root, ast.KindListItem); got != 2 {
			t.Errorf("list items parsed = %d, want 2", got)
		}
	})

	t.Run("nested bullet output nests", func(t *testing.T) {
		t.Parallel()
		md := HTMLToMarkdown("<ul><li><p>a</p><ul><li><p>b</p></li></ul></li></ul>")
		root := gfmParse(md)
		// Two list nodes: the outer run and the indented child run.
		if got := countKind(root, ast.KindList); got != 2 {
			t.Errorf("lists parsed = %d, want 2", got)
		}
	})

	t.Run("task output parses as task checkboxes", func(t *testing.T) {
		t.Parallel()
		md := HTMLToMarkdown(`<ul data-type="taskList">` +
			`<li data-checked="true" data-type="taskItem"><label><input type="checkbox" checked="checked"><span></span></label><div><p>a</p></div></li>` +
			`<li data-checked="false" data-type="taskItem"><label><input type="checkbox"><span></span></label><div><p>b</p></div></li>` +
			`</ul>`)
		root := gfmParse(md)
		checked, unchecked := 0, 0
		_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
			if cb, ok := node.(*east.TaskCheckBox); ok && entering {
				if cb.IsChecked {
					checked++
				} else {
					unchecked++
				}
			}
			return ast.WalkContinue, nil
		})
		if checked != 1 || unchecked != 1 {
			t.Errorf("task boxes parsed = %d checked / %d unchecked, want 1/1", checked, unchecked)
		}
	})

	t.Run("table output parses as a GFM table", func(t *testing.T) {
		t.Parallel()
		md := HTMLToMarkdown("<table><thead><tr><th>A</th><th>B</th></tr></thead>" +
			"<tbody><tr><td>1</td><td>2</td></tr></tbody></table>")
		root := gfmParse(md)
		if got := countKind(root, east.KindTable); got != 1 {
			t.Errorf("tables parsed = %d, want 1", got)
		}
		if got := countKind(root, east.KindTableRow); got != 1 {
			t.Errorf("body rows parsed = %d, want 1", got)
		}
	})

	t.Run("heading and code output parse as their blocks", func(t *testing.T) {
		t.Parallel()
		md := HTMLToMarkdown(`<h3>T</h3><pre><code class="language-go">x</code></pre>`)
		root := gfmParse(md)
		if got := countKind(root, ast.KindHeading); got != 1 {
			t.Errorf("headings parsed = %d, want 1", got)
		}
		if got := countKind(root, ast.KindFencedCodeBlock); got != 1 {
			t.Errorf("fenced blocks parsed = %d, want 1", got)
		}
	})
}
