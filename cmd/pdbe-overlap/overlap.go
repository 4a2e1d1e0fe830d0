// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdbe-overlap/internal/overlap"
	"github.com/pdiddy/pdbe-overlap/internal/pdbe"
	"github.com/pdiddy/pdbe-overlap/internal/store"
	"github.com/pdiddy/pdbe-overlap/pkg/types"
)

var overlapCmd = &cobra.Command{
	Use:   "overlap [accession]",
	Short: "Run the full binding-site overlap pipeline for an accession",
	Long: `Overlap fetches predicted ligand binding residues, interface residues
with the chosen interaction partner, and observed ligand binding sites for
a UniProt accession, then reports the ligand records whose sites overlap
residues that are both predicted and at the partner interface.

Partner names are matched exactly and case-sensitively; use the interface
subcommand to list the exact names PDBe reports.

Example:
  pdbe-overlap overlap P00734 --partner "Hirudin variant-1"`,
	Args: cobra.ExactArgs(1),
	RunE: runOverlap,
}

func runOverlap(cmd *cobra.Command, args []string) error {
	accession := args[0]
	cfg := pipelineConfigFromFlags(cmd)

	client := pdbe.New(pdbeConfig())
	report, err := overlap.Run(context.Background(), client, accession, cfg, os.Stderr)
	if err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		archive, err := store.NewStore(storeConfig())
		if err != nil {
			return err
		}
		defer archive.Close()

		runID, err := archive.Save(context.Background(), report)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "archived as run %d\n", runID)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return overlap.FormatReportJSON(report, os.Stdout)
	}
	overlap.FormatReport(report, os.Stdout)
	return nil
}

// pipelineConfigFromFlags merges the config file defaults with flag
// overrides.
func pipelineConfigFromFlags(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Providers: viper.GetStringSlice("pipeline.providers"),
		Partner:   viper.GetString("pipeline.partner"),
	}

	if providers, _ := cmd.Flags().GetString("providers"); providers != "" {
		cfg.Providers = splitList(providers)
	}
	if partner, _ := cmd.Flags().GetString("partner"); partner != "" {
		cfg.Partner = partner
	}
	return cfg
}

// splitList splits a comma-separated flag value, trimming whitespace.
func splitList(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

func init() {
	overlapCmd.Flags().String("partner", "", "interaction partner name (exact, case-sensitive)")
	overlapCmd.Flags().String("providers", "", "annotation provider allowlist (comma-separated)")
	overlapCmd.Flags().Bool("json", false, "output the report as JSON")
	overlapCmd.Flags().Bool("save", false, "archive the run in the local database")

	rootCmd.AddCommand(overlapCmd)
}
