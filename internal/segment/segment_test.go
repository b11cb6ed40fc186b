// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/md2docx/pkg/types"
)

func TestBlocks_Classification(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Block
	}{
		{
			name: "level 1 heading",
			line: "# Title",
			want: types.Block{Kind: types.KindHeading, Level: 1, Text: "Title"},
		},
		{
			name: "level 3 heading",
			line: "### Deep",
			want: types.Block{Kind: types.KindHeading, Level: 3, Text: "Deep"},
		},
		{
			name: "level 4 heading clamps to 3",
			line: "#### Deeper",
			want: types.Block{Kind: types.KindHeading, Level: 3, Text: "Deeper"},
		},
		{
			name: "hash without space is a paragraph",
			line: "#NoSpace",
			want: types.Block{Kind: types.KindParagraph, Text: "#NoSpace"},
		},
		{
			name: "bullet item",
			line: "- first",
			want: types.Block{Kind: types.KindListItem, Text: "first"},
		},
		{
			name: "star bullet item",
			line: "* second",
			want: types.Block{Kind: types.KindListItem, Text: "second"},
		},
		{
			name: "plus bullet item",
			line: "+ third",
			want: types.Block{Kind: types.KindListItem, Text: "third"},
		},
		{
			name: "numbered item",
			line: "12. twelfth",
			want: types.Block{Kind: types.KindListItem, Ordered: true, Text: "twelfth"},
		},
		{
			name: "dash without space is a paragraph",
			line: "-dash",
			want: types.Block{Kind: types.KindParagraph, Text: "-dash"},
		},
		{
			name: "table row cells are trimmed",
			line: "| Name  | Age |",
			want: types.Block{Kind: types.KindTableRow, Cells: []string{"Name", "Age"}, Header: true},
		},
		{
			name: "pipe row with leading whitespace",
			line: "   | a | b |",
			want: types.Block{Kind: types.KindTableRow, Cells: []string{"a", "b"}, Header: true},
		},
		{
			name: "plain text paragraph",
			line: "just some text",
			want: types.Block{Kind: types.KindParagraph, Text: "just some text"},
		},
		{
			name: "inline markers pass through verbatim",
			line: "some **bold** text",
			want: types.Block{Kind: types.KindParagraph, Text: "some **bold** text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blocks(tt.line)
			if len(got) != 1 {
				t.Fatalf("Blocks(%q) = %d blocks, want 1", tt.line, len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("Blocks(%q)[0] = %+v, want %+v", tt.line, got[0], tt.want)
			}
		})
	}
}

func TestBlocks_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "  \n\t\n  "} {
		if got := Blocks(input); len(got) != 0 {
			t.Errorf("Blocks(%q) = %+v, want no blocks", input, got)
		}
	}
}

func TestBlocks_SeparatorRowDiscarded(t *testing.T) {
	input := strings.Join([]string{
		"| Name | Age |",
		"|------|-----|",
		"| Alice | 30 |",
	}, "\n")

	got := Blocks(input)
	if len(got) != 2 {
		t.Fatalf("got %d blocks, want 2 (separator must not materialize): %+v", len(got), got)
	}
	if !got[0].Header {
		t.Error("first row should be marked header")
	}
	if got[1].Header {
		t.Error("data row should not be marked header")
	}
}

func TestBlocks_SeparatorVariants(t *testing.T) {
	tests := []struct {
		line string
		sep  bool
	}{
		{"|---|---|", true},
		{"| :--- | ---: |", true},
		{"|:-:|:-:|", true},
		{"| - |", true},
		{"| a | --- |", false},
		{"| | |", false},
	}
	for _, tt := range tests {
		got := Blocks(tt.line)
		discarded := len(got) == 0
		if discarded != tt.sep {
			t.Errorf("Blocks(%q): separator = %v, want %v", tt.line, discarded, tt.sep)
		}
	}
}

func TestBlocks_HeaderlessTableUsesFirstRow(t *testing.T) {
	// No separator row at all: first contiguous row is still the header.
	got := Blocks("| a | b |\n| c | d |")
	if len(got) != 2 {
		t.Fatalf("got %d blocks, want 2", len(got))
	}
	if !got[0].Header || got[1].Header {
		t.Errorf("header flags = %v,%v, want true,false", got[0].Header, got[1].Header)
	}
}

func TestBlocks_BlankAbsorption(t *testing.T) {
	input := strings.Join([]string{
		"| h1 | h2 |",
		"|----|----|",
		"| a | b |",
		"",
		"",
		"| c | d |",
	}, "\n")

	got := Blocks(input)
	if len(got) != 3 {
		t.Fatalf("got %d blocks, want 3 contiguous table rows: %+v", len(got), got)
	}
	headers := 0
	for _, b := range got {
		if b.Kind != types.KindTableRow {
			t.Fatalf("unexpected block kind %v", b.Kind)
		}
		if b.Header {
			headers++
		}
	}
	if headers != 1 {
		t.Errorf("got %d header rows, want exactly 1", headers)
	}
}

func TestBlocks_BlankBeforeNonTableEndsTable(t *testing.T) {
	input := strings.Join([]string{
		"| h1 | h2 |",
		"| a | b |",
		"",
		"closing remark",
		"| x | y |",
		"| z | w |",
	}, "\n")

	got := Blocks(input)
	want := []types.BlockKind{
		types.KindTableRow, types.KindTableRow,
		types.KindParagraph,
		types.KindTableRow, types.KindTableRow,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d blocks, want %d: %+v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("block %d kind = %v, want %v", i, got[i].Kind, k)
		}
	}
	// The rows after the paragraph start a fresh table with its own header.
	if !got[0].Header || !got[3].Header {
		t.Error("each table run must begin with a header row")
	}
	if got[1].Header || got[4].Header {
		t.Error("data rows must not be marked header")
	}
}

func TestBlocks_FencedCode(t *testing.T) {
	input := strings.Join([]string{
		"```go",
		"func main() {",
		"\tprintln(\"# not a heading\")",
		"}",
		"```",
		"after",
	}, "\n")

	got := Blocks(input)
	if len(got) != 4 {
		t.Fatalf("got %d blocks, want 4: %+v", len(got), got)
	}
	for i := 0; i < 3; i++ {
		if got[i].Kind != types.KindCodeLine {
			t.Errorf("block %d kind = %v, want code-line", i, got[i].Kind)
		}
	}
	if got[1].Text != "\tprintln(\"# not a heading\")" {
		t.Errorf("code line not verbatim: %q", got[1].Text)
	}
	if got[3].Kind != types.KindParagraph || got[3].Text != "after" {
		t.Errorf("trailing block = %+v, want paragraph %q", got[3], "after")
	}
}

func TestBlocks_UnclosedFenceRunsToEOF(t *testing.T) {
	input := "```\nline one\n\nline three"
	got := Blocks(input)
	if len(got) != 3 {
		t.Fatalf("got %d blocks, want 3: %+v", len(got), got)
	}
	for i, b := range got {
		if b.Kind != types.KindCodeLine {
			t.Errorf("block %d kind = %v, want code-line", i, b.Kind)
		}
	}
	if got[1].Text != "" {
		t.Errorf("blank inside code should stay verbatim, got %q", got[1].Text)
	}
}

func TestBlocks_TildeFence(t *testing.T) {
	got := Blocks("~~~\ncode\n~~~")
	if len(got) != 1 || got[0].Kind != types.KindCodeLine || got[0].Text != "code" {
		t.Fatalf("got %+v, want one code line", got)
	}
}

func TestBlocks_CRLFInput(t *testing.T) {
	got := Blocks("# Title\r\n\r\ntext\r\n")
	if len(got) != 2 {
		t.Fatalf("got %d blocks, want 2: %+v", len(got), got)
	}
	if got[0].Text != "Title" || got[1].Text != "text" {
		t.Errorf("carriage returns leaked into text: %+v", got)
	}
}

func TestBlocks_Reentrant(t *testing.T) {
	// Unclosed fence in one call must not leak code mode into the next.
	_ = Blocks("```\ndangling")
	got := Blocks("plain text")
	if len(got) != 1 || got[0].Kind != types.KindParagraph {
		t.Fatalf("scanner state leaked across calls: %+v", got)
	}
}
