// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/formgen/internal/classify"
	"github.com/pdiddy/formgen/internal/forms"
	"github.com/pdiddy/formgen/internal/grid"
	"github.com/pdiddy/formgen/internal/lov"
	"github.com/pdiddy/formgen/pkg/types"
)

// defaultUser is recorded as the form creator when none is configured.
const defaultUser = "MK.ABDULLAH.DAFA"

var generateCmd = &cobra.Command{
	Use:   "generate [grid-file]",
	Short: "Generate the four form definition tables from a sheet",
	Long: `Generate runs the full pipeline on one worksheet grid: format
detection, procedure extraction, prefix and LOV code generation, and
assembly of the FORMHEAD, FORMTEMPLATE, FORMLOV, and FORMMENU tables.

Condition and action value lists come from a --lov-config file (see
"formgen lov suggest") or, with --auto-lov, from the built-in keyword
mappings. The identifier registry is flushed after the tables are written;
a flush failure keeps the new identifiers in memory for a retry.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gridPath := args[0]
	g, err := grid.Load(gridPath)
	if err != nil {
		return err
	}

	sheetName, _ := cmd.Flags().GetString("sheet")
	if sheetName == "" {
		sheetName = stem(gridPath)
	}

	score := classify.Classify(g)
	classify.FormatBreakdown(score, os.Stderr)

	sections, procedures := extractWithFallback(cmd, g)
	if len(procedures) == 0 {
		return fmt.Errorf("no procedures detected in %s", gridPath)
	}
	fmt.Fprintf(os.Stderr, "extracted %d procedures in %d sections\n", len(procedures), len(sections))

	reg, closeReg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer closeReg()

	gen := &lov.Generator{Registry: reg}
	filePrefix, err := gen.Prefix(stem(gridPath))
	if err != nil {
		return err
	}
	sheetPrefix, err := gen.Prefix(sheetName)
	if err != nil {
		return err
	}
	gen.SheetPrefix = sheetPrefix
	fmt.Fprintf(os.Stderr, "prefixes: file=%s sheet=%s\n", filePrefix, sheetPrefix)

	configs, err := lovConfigs(cmd, procedures)
	if err != nil {
		return err
	}

	assembler := &forms.Assembler{Registry: reg, Generator: gen}
	now := time.Now()
	set := assembler.Build(forms.Input{
		SourceFile:  gridPath,
		SheetName:   sheetName,
		User:        userName(cmd),
		FilePrefix:  filePrefix,
		SheetPrefix: sheetPrefix,
		Procedures:  procedures,
		Configs:     configs,
		Now:         now,
	})

	outputDir := outputDir(cmd)
	created, err := forms.WriteCSV(set, outputDir, sheetPrefix, now)
	if err != nil {
		return err
	}
	if yamlOut, _ := cmd.Flags().GetBool("yaml"); yamlOut {
		path := filepath.Join(outputDir, fmt.Sprintf("FORMSET_%s_%s.yaml", sheetPrefix, now.Format("20060102_150405")))
		if err := forms.WriteYAML(set, path); err != nil {
			return err
		}
		created = append(created, path)
	}

	// Flush last: identifiers become durable only once the tables that use
	// them exist.
	if err := reg.Flush(); err != nil {
		return err
	}

	for _, path := range created {
		fmt.Println(path)
	}
	fmt.Fprintf(os.Stderr, "generated %d files in %s\n", len(created), outputDir)
	return nil
}

// lovConfigs resolves per-procedure condition/action value lists: explicit
// config file first, then the keyword mappings with --auto-lov, else empty
// lists (free-form fields).
func lovConfigs(cmd *cobra.Command, procedures []types.Procedure) ([]types.LovConfig, error) {
	configPath, _ := cmd.Flags().GetString("lov-config")
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("reading LOV config: %w", err)
		}
		var file types.LovConfigFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing LOV config: %w", err)
		}
		return file.Procedures, nil
	}

	if auto, _ := cmd.Flags().GetBool("auto-lov"); auto {
		configs := make([]types.LovConfig, 0, len(procedures))
		for _, p := range procedures {
			condition, action := lov.Suggest(p.FullText)
			configs = append(configs, types.LovConfig{Ordinal: p.Ordinal, Condition: condition, Action: action})
		}
		return configs, nil
	}

	return nil, nil
}

func userName(cmd *cobra.Command) string {
	if user, _ := cmd.Flags().GetString("user"); user != "" {
		return user
	}
	if user := viper.GetString("output.user"); user != "" {
		return user
	}
	return defaultUser
}

func outputDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		return dir
	}
	if dir := viper.GetString("output.output_dir"); dir != "" {
		return dir
	}
	return "."
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func init() {
	generateCmd.Flags().String("sheet", "", "sheet name (default: grid file name)")
	generateCmd.Flags().String("user", "", "form creator recorded in the head table")
	generateCmd.Flags().String("output-dir", "", "directory for the generated tables (default: .)")
	generateCmd.Flags().String("lov-config", "", "YAML file with per-procedure condition/action values")
	generateCmd.Flags().Bool("auto-lov", false, "derive condition/action values from procedure keywords")
	generateCmd.Flags().Bool("yaml", false, "also write the combined form set as YAML")
	generateCmd.Flags().Int("table-lookback", 0, "section header window above table-mode matches (default 5)")
	generateCmd.Flags().Int("inline-lookback", 0, "section header window above inline-mode matches (default 3)")

	rootCmd.AddCommand(generateCmd)
}
