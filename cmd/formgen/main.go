// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the formgen CLI.
// See docs/ARCHITECTURE § Pipeline Interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the formgen CLI.
var rootCmd = &cobra.Command{
	Use:   "formgen",
	Short: "Convert maintenance-procedure sheets into form definition tables",
	Long: `formgen analyzes ad-hoc maintenance-procedure worksheets and converts
them into the four relational form definition tables (head, template,
list-of-values, menu) consumed by the downstream forms engine.

Each stage is a subcommand: analyze detects the sheet format and extracts
procedures, lov manages condition/action value lists and their codes, and
generate writes the four output tables. Every identifier the tool issues is
recorded in a durable registry so codes are never reused across runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./formgen.yaml or ~/.config/formgen/config.yaml)")
	rootCmd.PersistentFlags().String("registry", "", "identifier registry location (default: ./unique_identifiers.json)")
	rootCmd.PersistentFlags().String("registry-driver", "", "registry storage backend: file or sqlite")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("formgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "formgen"))
		}
	}

	viper.SetEnvPrefix("FORMGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
