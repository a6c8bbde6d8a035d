// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package grid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/formgen/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "sheet.csv",
		"Engine Section\n"+
			"1,Check oil level\n"+
			"2,\"Check filter, replace if dirty\",extra\n")

	g, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, "Engine Section", g.Cell(0, 0))
	assert.Equal(t, "", g.Cell(0, 1), "ragged rows read back as blank cells")
	assert.Equal(t, "Check filter, replace if dirty", g.Cell(2, 1))
	assert.Equal(t, "extra", g.Cell(2, 2))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "sheet.yaml",
		"- [Engine Section]\n"+
			"- [\"1\", Check oil level]\n"+
			"- []\n")

	g, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, "1", g.Cell(1, 0))
	assert.Equal(t, "Check oil level", g.Cell(1, 1))
	assert.Equal(t, "", g.Cell(2, 0))
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("sheet.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported grid format")
}

func TestLoadCorruptYAML(t *testing.T) {
	path := writeFile(t, "sheet.yaml", "not: [a, grid")
	_, err := Load(path)
	require.Error(t, err)
}

func TestFormatRaw(t *testing.T) {
	g := types.Grid{
		{"Engine Section"},
		{"1", "Check oil level"},
		{"2", "Check filter"},
	}

	var b strings.Builder
	FormatRaw(g, &b, 2)
	out := b.String()

	assert.Contains(t, out, "Row  0:")
	assert.Contains(t, out, "[0] Engine Section")
	assert.Contains(t, out, "[1] Check oil level")
	assert.Contains(t, out, "... 1 more rows")
	assert.NotContains(t, out, "Check filter")
}

func TestFormatRawTruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", 60)
	g := types.Grid{{long}}

	var b strings.Builder
	FormatRaw(g, &b, 0)

	assert.Contains(t, b.String(), strings.Repeat("x", 35))
	assert.NotContains(t, b.String(), strings.Repeat("x", 36))
}
