// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ElementKind classifies a rendered document element.
type ElementKind int

const (
	ElemHeading ElementKind = iota
	ElemParagraph
	ElemList
	ElemCodeBlock
	ElemTable
)

// ListItem is one entry of a list element. Adjacent ordered and unordered
// items stay in the same element but keep their own marker style.
type ListItem struct {
	Ordered bool
	Text    string
}

// Table is a fully conformed table: every row in Rows has exactly
// len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// Element is one rendered unit of the output document.
//
//	ElemHeading:   Level (1..3), Text
//	ElemParagraph: Text
//	ElemList:      Items
//	ElemCodeBlock: Lines
//	ElemTable:     Table
type Element struct {
	Kind  ElementKind
	Level int
	Text  string
	Items []ListItem
	Lines []string
	Table *Table
}

// Properties carries document metadata from the source frontmatter into the
// DOCX core properties. All fields are optional.
type Properties struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Subject  string `yaml:"subject"`
	Keywords string `yaml:"keywords"`
}

// Document is the in-memory output model. It is built once by the document
// builder and then serialized; nothing mutates it afterwards.
type Document struct {
	Properties Properties
	Elements   []Element
}

// Tables returns the table elements in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, e := range d.Elements {
		if e.Kind == ElemTable {
			tables = append(tables, e.Table)
		}
	}
	return tables
}
