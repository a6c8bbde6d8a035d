// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FormatType labels the format family of a source sheet. The declaration
// order here is the tie-break order used by classification: when two types
// score equally, the earlier-declared one wins.
type FormatType string

const (
	FormatMaintenance FormatType = "maintenance"
	FormatChecklist   FormatType = "checklist"
	FormatCalibration FormatType = "calibration"
	FormatMonitoring  FormatType = "monitoring"
	FormatUnknown     FormatType = "unknown"
)

// FormatScore is the result of classifying a grid against the known format
// profiles.
type FormatScore struct {
	// Type is the winning format family, or FormatUnknown when the corpus is
	// empty or no profile matched.
	Type FormatType `json:"type" yaml:"type"`

	// Confidence is the winning profile's score in [0, 1]: the fraction of
	// its keywords present in the corpus.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// Scores holds every profile's score, for display.
	Scores map[FormatType]float64 `json:"scores" yaml:"scores"`
}
