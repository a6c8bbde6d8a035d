// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package grid loads worksheet grids from their boundary formats. Cells
// arrive pre-stringified: numeric and date formatting is the exporting
// side's problem, and an unreadable file is the only error this package
// reports.
// Implements: docs/ARCHITECTURE § Grid Ingest.
package grid

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/formgen/pkg/types"
)

// Load reads a grid file, dispatching on extension: .csv for exported
// worksheet tabs, .yaml/.yml for grid documents.
func Load(path string) (types.Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported grid format %q (want .csv, .yaml, or .yml)", filepath.Ext(path))
	}
}

// LoadCSV reads a CSV export of one worksheet tab. Rows may be ragged;
// quoting follows RFC 4180.
func LoadCSV(path string) (types.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grid %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // worksheet rows are ragged

	var g types.Grid
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading grid %s: %w", path, err)
		}
		g = append(g, record)
	}
	return g, nil
}

// LoadYAML reads a grid document: a YAML sequence of rows, each a sequence
// of cell strings.
func LoadYAML(path string) (types.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading grid %s: %w", path, err)
	}

	var rows [][]string
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing grid %s: %w", path, err)
	}
	return types.Grid(rows), nil
}

// FormatRaw dumps up to maxRows rows of the grid with coordinates, for
// manually identifying procedures on sheets the heuristics miss.
func FormatRaw(g types.Grid, w io.Writer, maxRows int) {
	if maxRows <= 0 || maxRows > g.Rows() {
		maxRows = g.Rows()
	}

	for r := 0; r < maxRows; r++ {
		fmt.Fprintf(w, "Row %2d: ", r)
		for c := range g[r] {
			text := g.Cell(r, c)
			if text == "" {
				continue
			}
			if len(text) > 35 {
				text = text[:35]
			}
			fmt.Fprintf(w, "[%d] %-35s ", c, text)
		}
		fmt.Fprintln(w)
	}

	if maxRows < g.Rows() {
		fmt.Fprintf(w, "... %d more rows\n", g.Rows()-maxRows)
	}
}
