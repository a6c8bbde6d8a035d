// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers the ordered {section → numbered procedure}
// hierarchy from an unstructured worksheet grid.
// Implements: docs/ARCHITECTURE § Procedure Extraction.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/formgen/pkg/types"
)

// Detection patterns.
var (
	// bareIntRe matches a cell holding nothing but an integer, the row
	// number column of table-layout sheets.
	bareIntRe = regexp.MustCompile(`^\d+$`)

	// inlineRe matches a single cell carrying both number and task text,
	// like "3. Check the oil filter".
	inlineRe = regexp.MustCompile(`^(\d+)\.\s*(.+)$`)

	// numberedTextRe is the loose detector's numbered form: "N." or "N)"
	// followed by at least ten characters of text.
	numberedTextRe = regexp.MustCompile(`^\d+[.)]\s*.{10,}`)
)

// procedureKeywords marks task-like text in the loose detector and
// disqualifies header candidates during section inference.
var procedureKeywords = []string{
	"inspect", "check", "clean", "replace", "calibrate", "test", "monitor", "verify",
}

// Options tunes section-boundary inference. The lookback windows differ
// between the two detection modes in the source material; both are kept
// adjustable rather than unified.
type Options struct {
	// TableLookback is the header search window above a table-mode match.
	TableLookback int

	// InlineLookback is the header search window above an inline-mode match.
	InlineLookback int
}

// DefaultOptions returns the observed production windows.
func DefaultOptions() Options {
	return Options{TableLookback: 5, InlineLookback: 3}
}

// candidate is one potential procedure found in a row, before dedup.
type candidate struct {
	num      int
	desc     string
	full     string
	col      int
	lookback int
}

// Extract scans the grid top to bottom and returns the sections and
// procedures it finds, in row-then-column encounter order. Ordinals are
// 1-based and strictly sequential across the whole result; SourceNumber
// resets back to 1 are the signal for a new section, not an error. A grid
// with no match returns empty results — absence of results is the only
// failure signal here.
func Extract(grid types.Grid, opts Options) ([]types.Section, []types.Procedure) {
	if opts.TableLookback <= 0 {
		opts.TableLookback = DefaultOptions().TableLookback
	}
	if opts.InlineLookback <= 0 {
		opts.InlineLookback = DefaultOptions().InlineLookback
	}

	var (
		procedures []types.Procedure
		sections   []*types.Section
		byName     = map[string]*types.Section{}
		current    *types.Section
		lastNum    int
	)

	for r := 0; r < grid.Rows(); r++ {
		seenDesc := map[string]bool{}    // (row, description) dedup
		seenNumDesc := map[string]bool{} // cross-mode (number, description) dedup

		for _, c := range rowCandidates(grid, r, opts) {
			if seenDesc[c.desc] {
				continue
			}
			numKey := strconv.Itoa(c.num) + "\x00" + c.desc
			if seenNumDesc[numKey] {
				continue
			}
			seenDesc[c.desc] = true
			seenNumDesc[numKey] = true

			// A reset to 1 after a higher number opens a new section, as
			// does the very first procedure when none is current yet.
			reset := c.num == 1 && lastNum > 1
			first := len(procedures) == 0 && current == nil
			if reset || first {
				if sec := findHeader(grid, r, c.lookback); sec != nil {
					if existing, ok := byName[sec.Name]; ok {
						current = existing
					} else {
						byName[sec.Name] = sec
						sections = append(sections, sec)
						current = sec
					}
				}
			}

			procedures = append(procedures, types.Procedure{
				Ordinal:      len(procedures) + 1,
				SourceNumber: c.num,
				Description:  c.desc,
				FullText:     c.full,
				Section:      current,
				Row:          r,
				Col:          c.col,
			})
			lastNum = c.num
		}
	}

	out := make([]types.Section, len(sections))
	for i, s := range sections {
		out[i] = *s
	}
	return out, procedures
}

// rowCandidates collects the row's table-mode match (if any) followed by its
// inline-mode matches, left to right.
func rowCandidates(grid types.Grid, r int, opts Options) []candidate {
	var cands []candidate

	if c0 := grid.Cell(r, 0); bareIntRe.MatchString(c0) {
		if c1 := grid.Cell(r, 1); len(c1) > 5 {
			num, _ := strconv.Atoi(c0)
			cands = append(cands, candidate{
				num:      num,
				desc:     c1,
				full:     c1,
				col:      1,
				lookback: opts.TableLookback,
			})
		}
	}

	if r < grid.Rows() {
		for col := range grid[r] {
			text := grid.Cell(r, col)
			if text == "" {
				continue
			}
			m := inlineRe.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			num, _ := strconv.Atoi(m[1])
			cands = append(cands, candidate{
				num:      num,
				desc:     strings.TrimSpace(m[2]),
				full:     text,
				col:      col,
				lookback: opts.InlineLookback,
			})
		}
	}

	return cands
}

// findHeader searches the window rows immediately above row for a section
// header cell: top to bottom, left to right, first acceptable cell wins.
func findHeader(grid types.Grid, row, window int) *types.Section {
	start := row - window
	if start < 0 {
		start = 0
	}
	for r := start; r < row && r < grid.Rows(); r++ {
		for col := range grid[r] {
			text := grid.Cell(r, col)
			if isHeaderCandidate(text) {
				return &types.Section{Name: text, AnchorRow: r, AnchorCol: col}
			}
		}
	}
	return nil
}

// isHeaderCandidate accepts free text of plausible header length: strictly
// between 3 and 50 characters, not purely numeric, not itself a numbered
// procedure, and free of procedure keywords.
func isHeaderCandidate(text string) bool {
	if len(text) <= 3 || len(text) >= 50 {
		return false
	}
	if bareIntRe.MatchString(text) || inlineRe.MatchString(text) {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range procedureKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// IsProcedureText is the generic task detector: a numbered line with
// substantial text, or keyword-bearing text longer than 15 characters.
func IsProcedureText(text string) bool {
	text = strings.TrimSpace(text)
	if len(text) < 10 {
		return false
	}
	if numberedTextRe.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range procedureKeywords {
		if strings.Contains(lower, kw) {
			return len(text) > 15
		}
	}
	return false
}

// looseNumRe captures an optional leading number on loosely detected text.
var looseNumRe = regexp.MustCompile(`^(\d+)[.)]\s*(.*)$`)

// ExtractLoose takes the first procedure-like cell of each row, the way the
// first-generation tool scanned sheets. It is the caller's fallback for
// sheets where Extract finds no numbered rows at all. No section inference
// happens in this mode; printed numbers are recovered when present.
func ExtractLoose(grid types.Grid) []types.Procedure {
	var procedures []types.Procedure
	for r := 0; r < grid.Rows(); r++ {
		for col := range grid[r] {
			text := grid.Cell(r, col)
			if !IsProcedureText(text) {
				continue
			}

			num := 0
			desc := text
			if m := looseNumRe.FindStringSubmatch(text); m != nil {
				num, _ = strconv.Atoi(m[1])
				desc = strings.TrimSpace(m[2])
			}

			procedures = append(procedures, types.Procedure{
				Ordinal:      len(procedures) + 1,
				SourceNumber: num,
				Description:  desc,
				FullText:     text,
				Row:          r,
				Col:          col,
			})
			break // one procedure per row in loose mode
		}
	}
	return procedures
}
