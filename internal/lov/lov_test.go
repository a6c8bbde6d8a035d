// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lov

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/formgen/internal/registry"
)

func newGenerator(t *testing.T, sheetPrefix string) *Generator {
	t.Helper()
	return &Generator{
		Registry:    registry.Open(&registry.MemoryBackend{}, io.Discard),
		SheetPrefix: sheetPrefix,
	}
}

func TestCodeBlankInput(t *testing.T) {
	tests := []struct {
		name   string
		values string
	}{
		{name: "empty string", values: ""},
		{name: "commas only", values: ",,,"},
		{name: "whitespace between commas", values: "  ,  , "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newGenerator(t, "ABC")

			got := gen.Code(tt.values, "X")
			assert.Equal(t, "DEFAULT-X", got)
			assert.Equal(t, 0, gen.Registry.Count(registry.KindLovCode),
				"blank input must not reserve anything")

			// Idempotent: no counter creep on repeat calls.
			assert.Equal(t, "DEFAULT-X", gen.Code(tt.values, "X"))
		})
	}
}

func TestCodeSignature(t *testing.T) {
	tests := []struct {
		name        string
		sheetPrefix string
		values      string
		want        string
	}{
		{name: "first letters", sheetPrefix: "ABC", values: "Good, Damaged, Missing", want: "ABC-GDM"},
		{name: "no sheet prefix", sheetPrefix: "", values: "Good, Damaged, Missing", want: "GDM"},
		{name: "only first three values", sheetPrefix: "", values: "Alpha,Beta,Gamma,Delta", want: "ABG"},
		{name: "lowercase input uppercased", sheetPrefix: "", values: "good,damaged", want: "GD"},
		{name: "single value", sheetPrefix: "ABC", values: "Pass", want: "ABC-P"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newGenerator(t, tt.sheetPrefix)

			got := gen.Code(tt.values, "00")
			assert.Equal(t, tt.want, got)
			assert.True(t, gen.Registry.Contains(registry.KindLovCode, got))
		})
	}
}

func TestCodeCollisionCounter(t *testing.T) {
	gen := newGenerator(t, "ABC")

	assert.Equal(t, "ABC-GDM", gen.Code("Good, Damaged, Missing", "C01"))
	assert.Equal(t, "ABC-GDM1", gen.Code("Good, Damaged, Missing", "C02"))
	assert.Equal(t, "ABC-GDM2", gen.Code("Good, Damaged, Missing", "C03"))
}

func TestCodeWeakSignatureCollides(t *testing.T) {
	// Different value lists with identical first letters share a signature;
	// only the counter separates them.
	gen := newGenerator(t, "ABC")

	assert.Equal(t, "ABC-GGG", gen.Code("Good,Great,Gone", "C01"))
	assert.Equal(t, "ABC-GGG1", gen.Code("Green,Grey,Glue", "C02"))
}

func TestSplitValues(t *testing.T) {
	tests := []struct {
		name   string
		values string
		want   []string
	}{
		{name: "trims and drops empties", values: " Good , ,Damaged ", want: []string{"Good", "Damaged"}},
		{name: "case preserved", values: "good,DAMAGED", want: []string{"good", "DAMAGED"}},
		{name: "duplicates kept", values: "OK,OK", want: []string{"OK", "OK"}},
		{name: "blank", values: ",,,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitValues(tt.values))
		})
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantConditions string
		wantActions    string
	}{
		{
			name:           "inspect",
			text:           "Inspect the drive belt",
			wantConditions: "Good,Dirty,Damaged,Missing",
			wantActions:    "No Action,Clean,Repair,Replace",
		},
		{
			name:           "first keyword wins",
			text:           "5. Check and clean the filter",
			wantConditions: "OK,Not OK,Needs Attention",
			wantActions:    "No Action,Adjust,Repair",
		},
		{
			name:           "case insensitive",
			text:           "CALIBRATE the sensor",
			wantConditions: "In Tolerance,Out of Tolerance",
			wantActions:    "Calibrated,Adjusted",
		},
		{
			name:           "no keyword falls back to defaults",
			text:           "Tighten all mounting bolts",
			wantConditions: "Good,Damaged",
			wantActions:    "No Action,Repaired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conditions, actions := Suggest(tt.text)
			require.Equal(t, tt.wantConditions, conditions)
			require.Equal(t, tt.wantActions, actions)
		})
	}
}
