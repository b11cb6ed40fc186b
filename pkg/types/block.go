// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data types shared between the segmenter, the
// document builder, and the DOCX serializer.
package types

// BlockKind classifies a source line after segmentation.
type BlockKind int

const (
	KindBlank BlockKind = iota
	KindHeading
	KindParagraph
	KindListItem
	KindCodeLine
	KindTableRow
)

func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindListItem:
		return "list-item"
	case KindCodeLine:
		return "code-line"
	case KindTableRow:
		return "table-row"
	default:
		return "blank"
	}
}

// Block is one segmented unit of the source document. Which fields are
// meaningful depends on Kind:
//
//	KindHeading:   Level (1..3), Text
//	KindParagraph: Text
//	KindListItem:  Ordered, Text (marker stripped)
//	KindCodeLine:  Text (verbatim, one line of a fenced block)
//	KindTableRow:  Cells, Header
//	KindBlank:     nothing; blanks exist only inside the segmenter and are
//	               never part of its output
//
// Block order is source order and is semantically significant. Consecutive
// blocks of the same kind form a run; runs are positional, there is no
// explicit grouping node.
type Block struct {
	Kind    BlockKind `yaml:"kind"`
	Level   int       `yaml:"level,omitempty"`
	Text    string    `yaml:"text,omitempty"`
	Ordered bool      `yaml:"ordered,omitempty"`
	Cells   []string  `yaml:"cells,omitempty"`
	Header  bool      `yaml:"header,omitempty"`
}

// MarshalYAML flattens Kind to its string form so that inspect output is
// readable.
func (k BlockKind) MarshalYAML() (any, error) {
	return k.String(), nil
}
