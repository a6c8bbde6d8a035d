// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for formgen: the source grid,
// extracted procedures and sections, format scores, LOV entries, and the
// configuration structs consumed by the CLI.
package types

import "strings"

// Grid is one worksheet tab as a matrix of optional text cells. An empty
// string is a blank cell. Rows may be ragged; addressing is (row, column),
// both zero-based. A Grid is immutable once loaded.
type Grid [][]string

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cell returns the trimmed cell text at (row, col), or "" when the address
// is blank or out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	if col < 0 || col >= len(g[row]) {
		return ""
	}
	return strings.TrimSpace(g[row][col])
}

// IsEmpty reports whether the grid contains no non-blank cell.
func (g Grid) IsEmpty() bool {
	for r := range g {
		for c := range g[r] {
			if strings.TrimSpace(g[r][c]) != "" {
				return false
			}
		}
	}
	return true
}
