// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx serializes a Document into a Word (.docx) file.
//
// A .docx is a ZIP archive of OOXML parts; the main content lives at
// word/document.xml, with styles, numbering, relationships, and metadata in
// sibling parts. The serializer builds every part in memory and streams the
// archive to the given writer, so the caller can buffer the whole file and
// commit it atomically.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/md2docx/pkg/types"
)

// Options configures the document fonts. The table style itself is fixed
// (types.DefaultTableStyle); only typography is adjustable.
type Options struct {
	BodyFont string
	BodySize float64 // points
	CodeFont string
	CodeSize float64 // points
}

// DefaultOptions returns the stock typography: Calibri 11pt body, Consolas
// 10.5pt code.
func DefaultOptions() Options {
	return Options{
		BodyFont: "Calibri",
		BodySize: 11,
		CodeFont: "Consolas",
		CodeSize: 10.5,
	}
}

// now is stubbed in tests so core.xml timestamps are deterministic.
var now = time.Now

// Write serializes doc as a complete .docx archive to w. It either writes the
// whole archive or returns an error; it never leaves w with a valid-looking
// partial document, since the final central directory is only written on
// success.
func Write(w io.Writer, doc *types.Document, opts Options) error {
	body, err := documentXML(doc, opts)
	if err != nil {
		return fmt.Errorf("building document.xml: %w", err)
	}

	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"docProps/core.xml", corePropsXML(doc.Properties.Title, doc.Properties.Author, doc.Properties.Subject, doc.Properties.Keywords, now())},
		{"docProps/app.xml", appPropsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML(opts)},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", body},
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating archive entry %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.data); err != nil {
			return fmt.Errorf("writing archive entry %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// documentXML renders the document body. Elements are encoded one at a time
// in document order between the w:body tags.
func documentXML(doc *types.Document, opts Options) (string, error) {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, `<w:document xmlns:w="%s"><w:body>`, wordNS)

	enc := xml.NewEncoder(&b)
	for _, el := range doc.Elements {
		for _, node := range elementNodes(el, opts) {
			if err := enc.Encode(node); err != nil {
				return "", err
			}
		}
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}

	b.WriteString(`<w:sectPr/></w:body></w:document>`)
	return b.String(), nil
}

// elementNodes maps one document element to its OOXML nodes. Lists expand to
// one paragraph per item; everything else is a single node.
func elementNodes(el types.Element, opts Options) []any {
	switch el.Kind {
	case types.ElemHeading:
		return []any{headingParagraph(el.Level, el.Text)}
	case types.ElemParagraph:
		return []any{textParagraph(el.Text)}
	case types.ElemList:
		nodes := make([]any, len(el.Items))
		for i, item := range el.Items {
			nodes[i] = listParagraph(item)
		}
		return nodes
	case types.ElemCodeBlock:
		return []any{codeParagraph(el.Lines, opts)}
	case types.ElemTable:
		return []any{buildTable(el.Table, opts)}
	default:
		return nil
	}
}

func headingParagraph(level int, content string) paragraph {
	if level < 1 {
		level = 1
	} else if level > 3 {
		level = 3
	}
	return paragraph{
		Props: &paraProps{Style: &val{fmt.Sprintf("Heading%d", level)}},
		Runs:  []run{textRun(content, nil)},
	}
}

func textParagraph(content string) paragraph {
	return paragraph{Runs: []run{textRun(content, nil)}}
}

func listParagraph(item types.ListItem) paragraph {
	style, numID := "ListBullet", bulletNumID
	if item.Ordered {
		style, numID = "ListNumber", decimalNumID
	}
	return paragraph{
		Props: &paraProps{
			Style: &val{style},
			NumPr: &numPr{Ilvl: val{"0"}, NumID: val{fmt.Sprint(numID)}},
		},
		Runs: []run{textRun(item.Text, nil)},
	}
}

// codeParagraph renders a fenced block as one monospace paragraph with a
// line break between source lines.
func codeParagraph(lines []string, opts Options) paragraph {
	props := &runProps{
		Fonts: &runFonts{ASCII: opts.CodeFont, HAnsi: opts.CodeFont},
		Size:  &val{fmt.Sprint(halfPoints(opts.CodeSize))},
	}
	var runs []run
	for i, line := range lines {
		if i > 0 {
			runs = append(runs, run{Props: props, Break: &struct{}{}})
		}
		runs = append(runs, textRun(line, props))
	}
	return paragraph{Runs: runs}
}

// buildTable renders a conformed table per types.DefaultTableStyle: a
// single-line grid, bold centered header, compact vertically-centered cells.
func buildTable(t *types.Table, opts Options) table {
	style := types.DefaultTableStyle
	width := len(t.Header)
	tbl := table{
		Grid: tableGrid{Cols: make([]gridCol, width)},
	}
	if style.GridBorders {
		tbl.Props.Borders = gridBorders()
	}

	tbl.Rows = append(tbl.Rows, tableRowOf(t.Header, true, style))
	for _, cells := range t.Rows {
		tbl.Rows = append(tbl.Rows, tableRowOf(cells, false, style))
	}
	return tbl
}

func tableRowOf(cells []string, header bool, style types.TableStyle) tableRow {
	row := tableRow{Cells: make([]tableCell, len(cells))}
	for i, c := range cells {
		row.Cells[i] = tableCell{
			Props: cellProps{VAlign: val{"center"}},
			Para:  cellParagraph(c, header, style),
		}
	}
	return row
}

func cellParagraph(content string, header bool, style types.TableStyle) paragraph {
	props := &paraProps{}
	if style.CompactRows {
		props.Spacing = &spacing{Before: 0, After: 0}
	}
	var rp *runProps
	if header {
		if style.HeaderCentered {
			props.Justify = &val{"center"}
		}
		if style.HeaderBold {
			rp = &runProps{Bold: &struct{}{}}
		}
	}
	return paragraph{Props: props, Runs: []run{textRun(content, rp)}}
}

// textRun wraps content in a run, preserving significant whitespace.
func textRun(content string, props *runProps) run {
	return run{Props: props, Text: &text{Space: "preserve", Value: content}}
}

// halfPoints converts a point size to OOXML half-point units.
func halfPoints(pt float64) int {
	return int(pt*2 + 0.5)
}
