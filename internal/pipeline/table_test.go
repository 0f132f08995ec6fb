package pipeline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertHTMLTablesToMd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []string
	}{
		{
			name: "basic table",
			input: "<table><thead><tr><th>Name</th><th>Age</th></tr></thead>" +
				"<tbody><tr><td>Ada</td><td>36</td></tr></tbody></table>",
			wantLines: []string{
				"| Name | Age |",
				"| --- | --- |",
				"| Ada | 36 |",
			},
		},
		{
			name: "colgroup and paragraph cells",
			input: "<table><colgroup><col><col></colgroup>" +
				"<thead><tr><th><p>H1</p></th><th><p>H2</p></th></tr></thead>" +
				"<tbody><tr><td><p>a</p></td><td><p>b</p></td></tr></tbody></table>",
			wantLines: []string{
				"| H1 | H2 |",
				"| --- | --- |",
				"| a | b |",
			},
		},
		{
			name: "pipe in cell escaped",
			input: "<table><thead><tr><th>Col</th></tr></thead>" +
				"<tbody><tr><td>a | b</td></tr></tbody></table>",
			wantLines: []string{
				"| Col |",
				"| --- |",
				`| a \| b |`,
			},
		},
		{
			name: "short row padded to header width",
			input: "<table><thead><tr><th>A</th><th>B</th></tr></thead>" +
				"<tbody><tr><td>only</td></tr></tbody></table>",
			wantLines: []string{
				"| A | B |",
				"| --- | --- |",
				"| only |  |",
			},
		},
		{
			name: "inline formatting in cells",
			input: "<table><thead><tr><th><strong>B</strong></th></tr></thead>" +
				"<tbody><tr><td><em>i</em></td></tr></tbody></table>",
			wantLines: []string{
				"| **B** |",
				"| --- |",
				"| *i* |",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := nonBlankLines(ConvertHTMLTablesToMd(tt.input))
			if diff := cmp.Diff(tt.wantLines, got); diff != "" {
				t.Errorf("ConvertHTMLTablesToMd() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertHTMLTablesToMdDegradation(t *testing.T) {
	t.Parallel()

	t.Run("unbalanced table left literal", func(t *testing.T) {
		t.Parallel()
		input := "<p>x</p><table><tr><td>never closed"
		got := ConvertHTMLTablesToMd(input)
		if !strings.Contains(got, "<table>") {
			t.Errorf("unbalanced table not preserved: %q", got)
		}
	})

	t.Run("rowless table left literal", func(t *testing.T) {
		t.Parallel()
		input := "<table></table>"
		got := ConvertHTMLTablesToMd(input)
		if !strings.Contains(got, "<table></table>") {
			t.Errorf("empty table not preserved: %q", got)
		}
	})
}

func TestConvertMdTablesToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:  "basic table",
			input: "| Name | Age |\n| --- | --- |\n| Ada | 36 |",
			wantContains: []string{
				"<table>",
				"<colgroup><col><col></colgroup>",
				"<thead><tr><th>Name</th><th>Age</th></tr></thead>",
				"<tbody><tr><td>Ada</td><td>36</td></tr></tbody>",
				"</table>",
			},
		},
		{
			name:  "alignment markers accepted",
			input: "| L | R |\n| :-- | --: |\n| a | b |",
			wantContains: []string{
				"<th>L</th>",
				"<td>b</td>",
			},
		},
		{
			name:  "escaped pipe restored in cell",
			input: "| Col |\n| --- |\n| a \\| b |",
			wantContains: []string{
				"<td>a | b</td>",
			},
		},
		{
			name:  "header without separator left alone",
			input: "| just | text |\n| more | text |",
			wantContains: []string{
				"| just | text |",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ConvertMdTablesToHTML(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("ConvertMdTablesToHTML(%q) = %q, missing %q", tt.input, got, want)
				}
			}
		})
	}
}

func TestTableRoundTrip(t *testing.T) {
	t.Parallel()

	md := "| Name | Note |\n| --- | --- |\n| Ada | says \\| hi |"
	html := ConvertMdTablesToHTML(md)
	back := strings.Join(nonBlankLines(ConvertHTMLTablesToMd(html)), "\n")
	if back != md {
		t.Errorf("round trip changed table:\n in: %q\nout: %q", md, back)
	}
}

func TestSplitTableRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  string
		want []string
	}{
		{"simple", "| a | b |", []string{"a", "b"}},
		{"escaped pipe", `| a \| b | c |`, []string{"a | b", "c"}},
		{"empty cell", "| a |  | c |", []string{"a", "", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := splitTableRow(tt.row)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitTableRow(%q) mismatch (-want +got):\n%s", tt.row, diff)
			}
		})
	}
}
