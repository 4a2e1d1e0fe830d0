// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdbe-overlap/internal/overlap"
	"github.com/pdiddy/pdbe-overlap/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived overlap runs",
	Long: `History lists runs previously archived with overlap --save, newest
first. Use --run to print the full report of one archived run.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	archive, err := store.NewStore(storeConfig())
	if err != nil {
		return err
	}
	defer archive.Close()

	// Single-run mode: print one archived report in full.
	if runID, _ := cmd.Flags().GetInt64("run"); runID > 0 {
		report, err := archive.Get(context.Background(), runID)
		if err != nil {
			return err
		}
		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return overlap.FormatReportJSON(report, os.Stdout)
		}
		overlap.FormatReport(report, os.Stdout)
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	summaries, err := archive.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("No archived runs.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-10s  %-28s  %-9s  %-7s  %s\n",
		"Run", "Accession", "Partner", "Interface", "Ligands", "When")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 84))
	for _, summary := range summaries {
		partner := summary.Partner
		if len(partner) > 28 {
			partner = partner[:25] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-10s  %-28s  %-9d  %-7d  %s\n",
			summary.ID, summary.Accession, partner,
			summary.InterfaceCount, summary.LigandCount,
			summary.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(os.Stdout, "\n%d runs\n", len(summaries))
	return nil
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run archive to YAML or JSON",
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	archive, err := store.NewStore(storeConfig())
	if err != nil {
		return err
	}
	defer archive.Close()

	switch format {
	case "yaml", "":
		if err := archive.ExportYAML(context.Background()); err != nil {
			return err
		}
		fmt.Println("Exported to export.yaml")
	case "json":
		if err := archive.ExportJSON(context.Background()); err != nil {
			return err
		}
		fmt.Println("Exported to export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum runs to list (0 = use default)")
	historyCmd.Flags().Int64("run", 0, "print the full report for one archived run ID")
	historyCmd.Flags().Bool("json", false, "output the report as JSON (with --run)")

	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(exportCmd)
}
