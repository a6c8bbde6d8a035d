// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LovCategory distinguishes the two value lists a procedure can carry.
type LovCategory string

const (
	LovCondition LovCategory = "condition"
	LovAction    LovCategory = "action"
)

// LovEntry maps a generated LOV code to the value list it was derived from.
// Values preserves the raw comma split in original order; duplicates are not
// removed. A code maps to exactly one value list: re-deriving the same code
// from different text is a collision the generator resolves with a suffix,
// never a silent overwrite.
type LovEntry struct {
	Code     string      `json:"code" yaml:"code"`
	Values   []string    `json:"values" yaml:"values"`
	Category LovCategory `json:"category" yaml:"category"`
}

// LovConfig carries the user-entered condition and action value lists for
// one procedure, keyed by the procedure's ordinal. It is the file-based
// replacement for the original tool's per-row entry widgets.
type LovConfig struct {
	Ordinal   int    `json:"ordinal" yaml:"ordinal"`
	Condition string `json:"condition" yaml:"condition"`
	Action    string `json:"action" yaml:"action"`
}

// LovConfigFile is the YAML document produced by "formgen lov suggest" and
// consumed by "formgen generate".
type LovConfigFile struct {
	Procedures []LovConfig `json:"procedures" yaml:"procedures"`
}
