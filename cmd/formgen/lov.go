// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/formgen/internal/grid"
	"github.com/pdiddy/formgen/internal/lov"
	"github.com/pdiddy/formgen/pkg/types"
)

var lovCmd = &cobra.Command{
	Use:   "lov",
	Short: "Manage condition/action value lists and their codes",
}

var lovSuggestCmd = &cobra.Command{
	Use:   "suggest [grid-file]",
	Short: "Write a starter LOV config for a sheet's procedures",
	Long: `Suggest extracts the sheet's procedures and emits a LOV config file
with condition/action value lists picked from each procedure's keywords.
Edit the file, then pass it to "formgen generate --lov-config".`,
	Args: cobra.ExactArgs(1),
	RunE: runLovSuggest,
}

var lovCodeCmd = &cobra.Command{
	Use:   "code",
	Short: "Mint a single LOV code from a value list",
	Long: `Code derives a LOV code from a comma-separated value list, reserves
it in the identifier registry, and flushes the registry. Blank input yields
the DEFAULT code without a reservation.`,
	RunE: runLovCode,
}

func runLovSuggest(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}

	_, procedures := extractWithFallback(cmd, g)
	if len(procedures) == 0 {
		return fmt.Errorf("no procedures detected in %s", args[0])
	}

	file := types.LovConfigFile{Procedures: make([]types.LovConfig, 0, len(procedures))}
	for _, p := range procedures {
		condition, action := lov.Suggest(p.FullText)
		file.Procedures = append(file.Procedures, types.LovConfig{
			Ordinal:   p.Ordinal,
			Condition: condition,
			Action:    action,
		})
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encoding LOV config: %w", err)
	}

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		os.Stdout.Write(data)
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing LOV config: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%d procedures)\n", outPath, len(file.Procedures))
	return nil
}

func runLovCode(cmd *cobra.Command, args []string) error {
	values, _ := cmd.Flags().GetString("values")
	hint, _ := cmd.Flags().GetString("hint")
	sheetPrefix, _ := cmd.Flags().GetString("sheet-prefix")

	reg, closeReg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer closeReg()

	gen := &lov.Generator{Registry: reg, SheetPrefix: sheetPrefix}
	code := gen.Code(values, hint)

	if err := reg.Flush(); err != nil {
		return err
	}
	fmt.Println(code)
	return nil
}

func init() {
	lovSuggestCmd.Flags().String("out", "", "write the config to a file instead of stdout")
	lovSuggestCmd.Flags().Int("table-lookback", 0, "section header window above table-mode matches (default 5)")
	lovSuggestCmd.Flags().Int("inline-lookback", 0, "section header window above inline-mode matches (default 3)")

	lovCodeCmd.Flags().String("values", "", "comma-separated value list")
	lovCodeCmd.Flags().String("hint", "00", "naming hint used for blank input")
	lovCodeCmd.Flags().String("sheet-prefix", "", "sheet prefix to namespace the code")

	lovCmd.AddCommand(lovSuggestCmd)
	lovCmd.AddCommand(lovCodeCmd)
	rootCmd.AddCommand(lovCmd)
}
