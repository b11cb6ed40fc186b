// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"reflect"
	"testing"

	"github.com/pdiddy/md2docx/internal/segment"
	"github.com/pdiddy/md2docx/pkg/types"
)

func TestBuild_EmptyInput(t *testing.T) {
	doc := Build(nil)
	if len(doc.Elements) != 0 {
		t.Fatalf("empty input should yield zero elements, got %d", len(doc.Elements))
	}
}

func TestBuild_HeadingAndParagraph(t *testing.T) {
	doc := Build([]types.Block{
		{Kind: types.KindHeading, Level: 2, Text: "Section"},
		{Kind: types.KindParagraph, Text: "Body text."},
		{Kind: types.KindParagraph, Text: "More text."},
	})
	if len(doc.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(doc.Elements))
	}
	if doc.Elements[0].Kind != types.ElemHeading || doc.Elements[0].Level != 2 {
		t.Errorf("element 0 = %+v, want level-2 heading", doc.Elements[0])
	}
	// Adjacent paragraphs stay separate elements.
	if doc.Elements[1].Kind != types.ElemParagraph || doc.Elements[2].Kind != types.ElemParagraph {
		t.Error("paragraphs must map one to one")
	}
}

func TestBuild_ListRunCollapses(t *testing.T) {
	doc := Build([]types.Block{
		{Kind: types.KindListItem, Text: "one"},
		{Kind: types.KindListItem, Ordered: true, Text: "two"},
		{Kind: types.KindListItem, Text: "three"},
		{Kind: types.KindParagraph, Text: "break"},
		{Kind: types.KindListItem, Text: "four"},
	})
	if len(doc.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(doc.Elements))
	}
	first := doc.Elements[0]
	if first.Kind != types.ElemList || len(first.Items) != 3 {
		t.Fatalf("element 0 = %+v, want list of 3", first)
	}
	// Mixed markers stay adjacent but keep their own style.
	if first.Items[0].Ordered || !first.Items[1].Ordered || first.Items[2].Ordered {
		t.Errorf("ordered flags = %+v", first.Items)
	}
	if doc.Elements[2].Kind != types.ElemList || len(doc.Elements[2].Items) != 1 {
		t.Errorf("element 2 = %+v, want single-item list", doc.Elements[2])
	}
}

func TestBuild_CodeRunCollapses(t *testing.T) {
	doc := Build([]types.Block{
		{Kind: types.KindCodeLine, Text: "a := 1"},
		{Kind: types.KindCodeLine, Text: ""},
		{Kind: types.KindCodeLine, Text: "b := 2"},
	})
	if len(doc.Elements) != 1 {
		t.Fatalf("got %d elements, want 1", len(doc.Elements))
	}
	want := []string{"a := 1", "", "b := 2"}
	if !reflect.DeepEqual(doc.Elements[0].Lines, want) {
		t.Errorf("lines = %q, want %q", doc.Elements[0].Lines, want)
	}
}

func TestBuild_TableConformsRaggedRows(t *testing.T) {
	doc := Build([]types.Block{
		{Kind: types.KindTableRow, Cells: []string{"a", "b", "c"}, Header: true},
		{Kind: types.KindTableRow, Cells: []string{"1"}},
		{Kind: types.KindTableRow, Cells: []string{"1", "2", "3", "4", "5"}},
	})
	if len(doc.Elements) != 1 || doc.Elements[0].Kind != types.ElemTable {
		t.Fatalf("got %+v, want one table", doc.Elements)
	}
	tbl := doc.Elements[0].Table
	if len(tbl.Header) != 3 {
		t.Fatalf("header width = %d, want 3", len(tbl.Header))
	}
	for i, row := range tbl.Rows {
		if len(row) != len(tbl.Header) {
			t.Errorf("row %d has %d cells, want %d", i, len(row), len(tbl.Header))
		}
	}
	if !reflect.DeepEqual(tbl.Rows[0], []string{"1", "", ""}) {
		t.Errorf("short row = %q, want padded", tbl.Rows[0])
	}
	if !reflect.DeepEqual(tbl.Rows[1], []string{"1", "2", "3"}) {
		t.Errorf("long row = %q, want truncated", tbl.Rows[1])
	}
}

func TestBuild_NoTablesMeansNoTableElements(t *testing.T) {
	doc := Build(segment.Blocks("# Title\n\nA paragraph.\n\n- item\n"))
	if got := doc.Tables(); len(got) != 0 {
		t.Errorf("got %d table elements, want 0", len(got))
	}
}

func TestBuild_EndToEndDemoDocument(t *testing.T) {
	input := `# Demo Document

Some intro text.

| Name  | Age | Role    |
|-------|-----|---------|
| Alice |  30 | Engineer|
| Bob   |  25 | Analyst |
`
	doc := Build(segment.Blocks(input))
	if len(doc.Elements) != 3 {
		t.Fatalf("got %d elements, want 3: %+v", len(doc.Elements), doc.Elements)
	}

	h := doc.Elements[0]
	if h.Kind != types.ElemHeading || h.Level != 1 || h.Text != "Demo Document" {
		t.Errorf("element 0 = %+v, want level-1 heading %q", h, "Demo Document")
	}
	p := doc.Elements[1]
	if p.Kind != types.ElemParagraph || p.Text != "Some intro text." {
		t.Errorf("element 1 = %+v, want paragraph %q", p, "Some intro text.")
	}
	tbl := doc.Elements[2]
	if tbl.Kind != types.ElemTable {
		t.Fatalf("element 2 = %+v, want table", tbl)
	}
	if !reflect.DeepEqual(tbl.Table.Header, []string{"Name", "Age", "Role"}) {
		t.Errorf("header = %q", tbl.Table.Header)
	}
	wantRows := [][]string{{"Alice", "30", "Engineer"}, {"Bob", "25", "Analyst"}}
	if !reflect.DeepEqual(tbl.Table.Rows, wantRows) {
		t.Errorf("rows = %q, want %q", tbl.Table.Rows, wantRows)
	}
}

func TestBuild_TableSplitByBlanksIsOneElement(t *testing.T) {
	input := "| h1 | h2 |\n|----|----|\n| a | b |\n\n| c | d |\n"
	doc := Build(segment.Blocks(input))
	tables := doc.Tables()
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	if len(tables[0].Rows) != 2 {
		t.Errorf("got %d data rows, want 2", len(tables[0].Rows))
	}
}
