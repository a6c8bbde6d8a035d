// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify scores a worksheet grid against the known format-family
// keyword profiles so downstream logic can pick a template strategy.
// Implements: docs/ARCHITECTURE § Format Classification.
package classify

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/formgen/pkg/types"
)

// profile is one format family and its fixed keyword list.
type profile struct {
	format   types.FormatType
	keywords []string
}

// profiles is the fixed keyword table. Slice order is the tie-break order:
// on equal scores the earlier entry wins.
var profiles = []profile{
	{types.FormatMaintenance, []string{"procedure", "condition", "corrective", "inspect", "replace", "clean"}},
	{types.FormatChecklist, []string{"check", "ok", "not ok", "startup", "parameter"}},
	{types.FormatCalibration, []string{"calibrate", "tolerance", "as found", "as left", "standard"}},
	{types.FormatMonitoring, []string{"monitor", "pressure", "temperature", "before service", "after service"}},
}

// Classify builds a lowercased corpus from every non-blank cell and scores
// each profile by the fraction of its keywords present as substrings, each
// keyword counted at most once. The strictly highest score wins; an empty
// corpus or all-zero scores yield FormatUnknown with confidence 0.
func Classify(grid types.Grid) types.FormatScore {
	corpus := buildCorpus(grid)

	scores := make(map[types.FormatType]float64, len(profiles))
	best := types.FormatScore{Type: types.FormatUnknown, Confidence: 0, Scores: scores}

	for _, p := range profiles {
		score := 0.0
		if corpus != "" {
			hits := 0
			for _, kw := range p.keywords {
				if strings.Contains(corpus, kw) {
					hits++
				}
			}
			score = float64(hits) / float64(len(p.keywords))
		}
		scores[p.format] = score

		// Strict comparison keeps the earliest-declared profile on ties.
		if score > best.Confidence {
			best.Type = p.format
			best.Confidence = score
		}
	}

	if best.Confidence == 0 {
		best.Type = types.FormatUnknown
	}
	return best
}

// buildCorpus space-joins the lowercased text of every non-blank cell in
// row-then-column order.
func buildCorpus(grid types.Grid) string {
	var b strings.Builder
	for r := 0; r < grid.Rows(); r++ {
		for c := range grid[r] {
			text := grid.Cell(r, c)
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.ToLower(text))
		}
	}
	return b.String()
}

// FormatBreakdown writes the per-format score table to w, winner first, the
// rest in descending score order.
func FormatBreakdown(score types.FormatScore, w io.Writer) {
	fmt.Fprintf(w, "Detected format: %s (%.0f%% confidence)\n", score.Type, score.Confidence*100)

	ordered := make([]types.FormatType, 0, len(score.Scores))
	for f := range score.Scores {
		ordered = append(ordered, f)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if score.Scores[ordered[i]] != score.Scores[ordered[j]] {
			return score.Scores[ordered[i]] > score.Scores[ordered[j]]
		}
		return ordered[i] < ordered[j]
	})

	for _, f := range ordered {
		fmt.Fprintf(w, "  %-12s %.0f%%\n", f, score.Scores[f]*100)
	}
}
