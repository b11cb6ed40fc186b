// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import "encoding/xml"

// OOXML element structs for word/document.xml. Field order follows the
// schema's required child order, since encoding/xml marshals in declaration
// order. Names carry the "w:" prefix literally; the namespace is declared
// once on the w:document root.

type paragraph struct {
	XMLName xml.Name   `xml:"w:p"`
	Props   *paraProps `xml:"w:pPr,omitempty"`
	Runs    []run
}

type paraProps struct {
	Style   *val     `xml:"w:pStyle,omitempty"`
	NumPr   *numPr   `xml:"w:numPr,omitempty"`
	Spacing *spacing `xml:"w:spacing,omitempty"`
	Justify *val     `xml:"w:jc,omitempty"`
}

// val is the ubiquitous single-attribute OOXML element <x w:val="..."/>.
type val struct {
	Value string `xml:"w:val,attr"`
}

type numPr struct {
	Ilvl  val `xml:"w:ilvl"`
	NumID val `xml:"w:numId"`
}

type spacing struct {
	Before int `xml:"w:before,attr"`
	After  int `xml:"w:after,attr"`
}

type run struct {
	XMLName xml.Name  `xml:"w:r"`
	Props   *runProps `xml:"w:rPr,omitempty"`
	Break   *struct{} `xml:"w:br,omitempty"`
	Text    *text     `xml:"w:t,omitempty"`
}

type runProps struct {
	Fonts *runFonts `xml:"w:rFonts,omitempty"`
	Bold  *struct{} `xml:"w:b,omitempty"`
	Size  *val      `xml:"w:sz,omitempty"`
}

type runFonts struct {
	ASCII string `xml:"w:ascii,attr"`
	HAnsi string `xml:"w:hAnsi,attr"`
}

type text struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

type table struct {
	XMLName xml.Name   `xml:"w:tbl"`
	Props   tableProps `xml:"w:tblPr"`
	Grid    tableGrid  `xml:"w:tblGrid"`
	Rows    []tableRow
}

type tableProps struct {
	Borders tableBorders `xml:"w:tblBorders"`
}

type tableBorders struct {
	Top     borderEdge `xml:"w:top"`
	Left    borderEdge `xml:"w:left"`
	Bottom  borderEdge `xml:"w:bottom"`
	Right   borderEdge `xml:"w:right"`
	InsideH borderEdge `xml:"w:insideH"`
	InsideV borderEdge `xml:"w:insideV"`
}

type borderEdge struct {
	Val   string `xml:"w:val,attr"`
	Size  int    `xml:"w:sz,attr"`
	Color string `xml:"w:color,attr"`
}

type tableGrid struct {
	Cols []gridCol `xml:"w:gridCol"`
}

type gridCol struct{}

type tableRow struct {
	XMLName xml.Name `xml:"w:tr"`
	Cells   []tableCell
}

type tableCell struct {
	XMLName xml.Name  `xml:"w:tc"`
	Props   cellProps `xml:"w:tcPr"`
	Para    paragraph
}

type cellProps struct {
	VAlign val `xml:"w:vAlign"`
}

// singleBorder is the one border style the converter uses: a thin single
// line on every edge.
var singleBorder = borderEdge{Val: "single", Size: 4, Color: "auto"}

func gridBorders() tableBorders {
	return tableBorders{
		Top:     singleBorder,
		Left:    singleBorder,
		Bottom:  singleBorder,
		Right:   singleBorder,
		InsideH: singleBorder,
		InsideV: singleBorder,
	}
}
