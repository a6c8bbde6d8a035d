// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/formgen/internal/registry"
	"github.com/pdiddy/formgen/pkg/types"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Inspect the durable identifier registry",
	Long: `Registry inspects the durable store of issued identifiers: file and
sheet prefixes, LOV codes, form names, and template ids. An identifier,
once issued under a kind, is never reissued under that kind.`,
}

var registryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List issued identifiers, optionally for a single kind",
	RunE:  runRegistryList,
}

var registryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show identifier counts per kind",
	RunE:  runRegistryStats,
}

func runRegistryList(cmd *cobra.Command, args []string) error {
	reg, closeReg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer closeReg()

	kindFilter, _ := cmd.Flags().GetString("kind")
	for _, kind := range registry.Kinds() {
		if kindFilter != "" && kindFilter != string(kind) {
			continue
		}
		fmt.Printf("%s:\n", kind)
		for _, v := range reg.List(kind) {
			fmt.Printf("  %s\n", v)
		}
	}
	return nil
}

func runRegistryStats(cmd *cobra.Command, args []string) error {
	reg, closeReg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer closeReg()

	total := 0
	for _, kind := range registry.Kinds() {
		fmt.Printf("%-14s %d\n", kind, reg.Count(kind))
		total += reg.Count(kind)
	}
	fmt.Printf("%-14s %d\n", "total", total)
	return nil
}

// registryConfig resolves the registry location: flag, then config file,
// then the traditional default next to the working directory.
func registryConfig(cmd *cobra.Command) types.RegistryConfig {
	path, _ := cmd.Flags().GetString("registry")
	if path == "" {
		path = viper.GetString("registry.path")
	}
	if path == "" {
		path = "unique_identifiers.json"
	}

	driver, _ := cmd.Flags().GetString("registry-driver")
	if driver == "" {
		driver = viper.GetString("registry.driver")
	}
	if driver == "" {
		driver = string(types.DriverFile)
	}

	return types.RegistryConfig{Path: path, Driver: types.RegistryDriver(driver)}
}

// openRegistry opens the configured backend and loads the registry. The
// returned func releases backend resources; callers must invoke it.
func openRegistry(cmd *cobra.Command) (*registry.Registry, func() error, error) {
	cfg := registryConfig(cmd)

	switch cfg.Driver {
	case types.DriverFile:
		reg := registry.Open(registry.FileBackend{Path: cfg.Path}, os.Stderr)
		return reg, func() error { return nil }, nil
	case types.DriverSQLite:
		backend, err := registry.NewSQLiteBackend(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return registry.Open(backend, os.Stderr), backend.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown registry driver %q (want file or sqlite)", cfg.Driver)
	}
}

func init() {
	registryListCmd.Flags().String("kind", "", "identifier kind: prefixes, lov_codes, form_names, template_ids")

	registryCmd.AddCommand(registryListCmd)
	registryCmd.AddCommand(registryStatsCmd)
	rootCmd.AddCommand(registryCmd)
}
