// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/formgen/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		grid           types.Grid
		wantType       types.FormatType
		wantConfidence float64
	}{
		{
			name:           "empty grid",
			grid:           types.Grid{},
			wantType:       types.FormatUnknown,
			wantConfidence: 0,
		},
		{
			name:           "blank cells only",
			grid:           types.Grid{{"", ""}, {""}},
			wantType:       types.FormatUnknown,
			wantConfidence: 0,
		},
		{
			name:           "text with no profile keywords",
			grid:           types.Grid{{"lorem ipsum"}, {"dolor sit amet"}},
			wantType:       types.FormatUnknown,
			wantConfidence: 0,
		},
		{
			name: "full maintenance profile",
			grid: types.Grid{
				{"Procedure", "Condition"},
				{"corrective inspect"},
				{"replace and clean"},
			},
			wantType:       types.FormatMaintenance,
			wantConfidence: 1.0,
		},
		{
			name:           "partial calibration profile",
			grid:           types.Grid{{"calibrate against the reference standard", "tolerance 0.5mm"}},
			wantType:       types.FormatCalibration,
			wantConfidence: 0.6,
		},
		{
			name:           "repeated keyword counts once",
			grid:           types.Grid{{"check", "check"}, {"check"}},
			wantType:       types.FormatChecklist,
			wantConfidence: 0.2,
		},
		{
			name:           "tie resolves to earliest declared",
			grid:           types.Grid{{"startup"}, {"tolerance"}},
			wantType:       types.FormatChecklist,
			wantConfidence: 0.2,
		},
		{
			name:           "case insensitive",
			grid:           types.Grid{{"MONITOR the PRESSURE and Temperature"}},
			wantType:       types.FormatMonitoring,
			wantConfidence: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.grid)
			assert.Equal(t, tt.wantType, got.Type)
			assert.InDelta(t, tt.wantConfidence, got.Confidence, 1e-9)
			assert.Len(t, got.Scores, 4, "every profile gets a score entry")
		})
	}
}

func TestClassifyScoresAllProfiles(t *testing.T) {
	got := Classify(types.Grid{{"inspect and check the monitor"}})

	assert.Greater(t, got.Scores[types.FormatMaintenance], 0.0)
	assert.Greater(t, got.Scores[types.FormatChecklist], 0.0)
	assert.Greater(t, got.Scores[types.FormatMonitoring], 0.0)
	assert.Equal(t, 0.0, got.Scores[types.FormatCalibration])
}

func TestFormatBreakdown(t *testing.T) {
	score := Classify(types.Grid{{"procedure condition corrective inspect replace clean"}})

	var b strings.Builder
	FormatBreakdown(score, &b)
	out := b.String()

	assert.Contains(t, out, "Detected format: maintenance (100% confidence)")
	assert.Contains(t, out, "maintenance")
	assert.Contains(t, out, "checklist")
	// Winner prints before the zero-score families.
	assert.Less(t, strings.Index(out, "maintenance"), strings.Index(out, "calibration"))
}
