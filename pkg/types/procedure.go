// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Section is a grouping header found above a run of procedures. Sections are
// deduplicated by Name within one extraction pass; the first occurrence wins.
// AnchorRow and AnchorCol record where the header was found, for traceability
// only.
type Section struct {
	Name      string `json:"name" yaml:"name"`
	AnchorRow int    `json:"anchor_row" yaml:"anchor_row"`
	AnchorCol int    `json:"anchor_col" yaml:"anchor_col"`
}

// Procedure is one maintenance task line item extracted from the source grid.
type Procedure struct {
	// Ordinal is the 1-based output position. It is strictly increasing and
	// contiguous across the whole extraction result, regardless of
	// SourceNumber gaps or resets.
	Ordinal int `json:"ordinal" yaml:"ordinal"`

	// SourceNumber is the number literally printed in the sheet. It may
	// repeat across sections; a reset back to 1 signals a section boundary.
	SourceNumber int `json:"source_number" yaml:"source_number"`

	// Description is the trimmed task text without any numeric prefix.
	Description string `json:"description" yaml:"description"`

	// FullText is the cell text as found, which may still carry an
	// "N. " prefix.
	FullText string `json:"full_text" yaml:"full_text"`

	// Section is the grouping header this procedure falls under, or nil when
	// none was inferred.
	Section *Section `json:"section,omitempty" yaml:"section,omitempty"`

	// Row and Col locate the matched cell in the source grid.
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}
