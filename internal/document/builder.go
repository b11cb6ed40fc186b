// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document turns a block sequence into the in-memory output model.
//
// Headings and paragraphs map one to one. Contiguous runs of list items,
// code lines, and table rows collapse into a single list, code block, or
// table element. The builder is pure: it performs no I/O and never fails —
// malformed input degrades (ragged table rows are conformed to the header
// width) rather than erroring.
package document

import (
	"github.com/pdiddy/md2docx/pkg/types"
)

// Build assembles a Document from the segmented blocks. An empty block
// sequence yields a valid document with zero elements.
func Build(blocks []types.Block) *types.Document {
	doc := &types.Document{}
	for i := 0; i < len(blocks); {
		b := blocks[i]
		switch b.Kind {
		case types.KindHeading:
			doc.Elements = append(doc.Elements, types.Element{
				Kind:  types.ElemHeading,
				Level: b.Level,
				Text:  b.Text,
			})
			i++
		case types.KindParagraph:
			doc.Elements = append(doc.Elements, types.Element{
				Kind: types.ElemParagraph,
				Text: b.Text,
			})
			i++
		case types.KindListItem:
			end := runEnd(blocks, i)
			items := make([]types.ListItem, 0, end-i)
			for _, lb := range blocks[i:end] {
				items = append(items, types.ListItem{Ordered: lb.Ordered, Text: lb.Text})
			}
			doc.Elements = append(doc.Elements, types.Element{Kind: types.ElemList, Items: items})
			i = end
		case types.KindCodeLine:
			end := runEnd(blocks, i)
			lines := make([]string, 0, end-i)
			for _, cb := range blocks[i:end] {
				lines = append(lines, cb.Text)
			}
			doc.Elements = append(doc.Elements, types.Element{Kind: types.ElemCodeBlock, Lines: lines})
			i = end
		case types.KindTableRow:
			end := runEnd(blocks, i)
			doc.Elements = append(doc.Elements, types.Element{
				Kind:  types.ElemTable,
				Table: buildTable(blocks[i:end]),
			})
			i = end
		default:
			// Blanks never reach the builder; skip defensively.
			i++
		}
	}
	return doc
}

// runEnd returns the index one past the contiguous run of blocks sharing
// blocks[start].Kind.
func runEnd(blocks []types.Block, start int) int {
	end := start + 1
	for end < len(blocks) && blocks[end].Kind == blocks[start].Kind {
		end++
	}
	return end
}

// buildTable conforms a table-row run into a Table. The first row is the
// header and fixes the column count; every data row is padded with empty
// cells or truncated to that width independently.
func buildTable(rows []types.Block) *types.Table {
	t := &types.Table{Header: rows[0].Cells}
	width := len(t.Header)
	for _, r := range rows[1:] {
		t.Rows = append(t.Rows, conformRow(r.Cells, width))
	}
	return t
}

// conformRow pads cells with empty strings or drops trailing cells so the
// row has exactly width cells.
func conformRow(cells []string, width int) []string {
	row := make([]string, width)
	copy(row, cells)
	return row
}
