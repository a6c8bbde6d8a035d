// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/formgen/internal/classify"
	"github.com/pdiddy/formgen/internal/extract"
	"github.com/pdiddy/formgen/internal/grid"
	"github.com/pdiddy/formgen/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [grid-file]",
	Short: "Detect a sheet's format and extract its procedures",
	Long: `Analyze reads a worksheet grid (CSV or YAML), scores it against the
known format families, and extracts the numbered procedures grouped under
their section headers. Sheets without numbered rows fall back to a keyword
scan. Use --raw to dump the grid with coordinates instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// analyzeResult is the JSON output shape of the analyze command.
type analyzeResult struct {
	Format     types.FormatScore `json:"format"`
	Sections   []types.Section   `json:"sections"`
	Procedures []types.Procedure `json:"procedures"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}

	if raw, _ := cmd.Flags().GetBool("raw"); raw {
		maxRows, _ := cmd.Flags().GetInt("rows")
		grid.FormatRaw(g, os.Stdout, maxRows)
		return nil
	}

	score := classify.Classify(g)
	sections, procedures := extractWithFallback(cmd, g)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analyzeResult{Format: score, Sections: sections, Procedures: procedures})
	}

	classify.FormatBreakdown(score, os.Stdout)
	fmt.Println()
	printProcedures(sections, procedures)
	return nil
}

// extractWithFallback runs the structured extraction and, when it finds
// nothing, the loose keyword scan the first-generation tool used.
func extractWithFallback(cmd *cobra.Command, g types.Grid) ([]types.Section, []types.Procedure) {
	sections, procedures := extract.Extract(g, extractOptions(cmd))
	if len(procedures) == 0 {
		if procedures = extract.ExtractLoose(g); len(procedures) > 0 {
			fmt.Fprintln(os.Stderr, "note: no numbered procedures found, using keyword scan")
		}
	}
	return sections, procedures
}

func extractOptions(cmd *cobra.Command) extract.Options {
	opts := extract.DefaultOptions()
	if v, _ := cmd.Flags().GetInt("table-lookback"); v > 0 {
		opts.TableLookback = v
	}
	if v, _ := cmd.Flags().GetInt("inline-lookback"); v > 0 {
		opts.InlineLookback = v
	}
	return opts
}

func printProcedures(sections []types.Section, procedures []types.Procedure) {
	if len(procedures) == 0 {
		fmt.Println("No procedures detected. Try --raw to inspect the grid.")
		return
	}

	fmt.Printf("%-4s  %-4s  %-24s  %s\n", "Ord", "Num", "Section", "Procedure")
	fmt.Println(strings.Repeat("-", 90))

	for _, p := range procedures {
		section := ""
		if p.Section != nil {
			section = p.Section.Name
		}
		if len(section) > 24 {
			section = section[:21] + "..."
		}
		desc := p.Description
		if len(desc) > 54 {
			desc = desc[:51] + "..."
		}
		fmt.Printf("%-4d  %-4d  %-24s  %s\n", p.Ordinal, p.SourceNumber, section, desc)
	}

	fmt.Printf("\n%d procedures", len(procedures))
	if len(sections) > 0 {
		fmt.Printf(" in %d sections", len(sections))
	}
	fmt.Println()
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "output results as JSON")
	analyzeCmd.Flags().Bool("raw", false, "dump the raw grid with coordinates")
	analyzeCmd.Flags().Int("rows", 25, "row limit for --raw output")
	analyzeCmd.Flags().Int("table-lookback", 0, "section header window above table-mode matches (default 5)")
	analyzeCmd.Flags().Int("inline-lookback", 0, "section header window above inline-mode matches (default 3)")

	rootCmd.AddCommand(analyzeCmd)
}
