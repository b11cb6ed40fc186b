// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TableStyle enumerates the recognized table style options. The tool renders
// exactly one style, so there is no runtime selection; the struct exists to
// keep the style constants in one auditable place.
type TableStyle struct {
	// GridBorders draws a single-line border on every cell edge.
	GridBorders bool
	// HeaderBold renders the header row's text bold.
	HeaderBold bool
	// HeaderCentered centers the header row's text horizontally.
	HeaderCentered bool
	// CompactRows zeroes paragraph spacing inside cells so rows stay tight.
	CompactRows bool
}

// DefaultTableStyle is the one table style the converter emits.
var DefaultTableStyle = TableStyle{
	GridBorders:    true,
	HeaderBold:     true,
	HeaderCentered: true,
	CompactRows:    true,
}
