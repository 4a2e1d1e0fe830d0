// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdbe-overlap CLI.
// See docs/ARCHITECTURE § CLI Surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdbe-overlap/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdbe-overlap CLI.
var rootCmd = &cobra.Command{
	Use:   "pdbe-overlap",
	Short: "Cross-reference predicted binding sites, interface residues and observed ligands",
	Long: `pdbe-overlap queries the PDBe Aggregated API for a UniProt accession and
computes which ligands bind at residues that are both predicted
small-molecule binding sites and interface residues with a chosen
interaction partner.

Each endpoint is also exposed as its own subcommand (annotations,
interface, ligands) for inspecting the raw data. Completed runs can be
archived locally and listed with the history subcommand.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdbe-overlap.yaml or ~/.config/pdbe-overlap/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdbe-overlap")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdbe-overlap"))
		}
	}

	viper.SetEnvPrefix("PDBE_OVERLAP")
	viper.AutomaticEnv()

	viper.SetDefault("pdbe.timeout", 30*time.Second)
	viper.SetDefault("pdbe.user_agent", "pdbe-overlap/0.1")
	viper.SetDefault("pipeline.providers", []string{"p2rank", "3dligandsite"})
	viper.SetDefault("store.data_dir", "data")
	viper.SetDefault("store.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pdbeConfig builds the API client settings from viper.
func pdbeConfig() types.PDBeConfig {
	return types.PDBeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("pdbe.timeout"),
			UserAgent: viper.GetString("pdbe.user_agent"),
		},
	}
}

// storeConfig builds the run archive settings from viper.
func storeConfig() types.StoreConfig {
	return types.StoreConfig{
		DataDir:    viper.GetString("store.data_dir"),
		MaxResults: viper.GetInt("store.max_results"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
