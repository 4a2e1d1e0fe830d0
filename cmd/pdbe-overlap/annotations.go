// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdbe-overlap/internal/pdbe"
)

var annotationsCmd = &cobra.Command{
	Use:   "annotations [accession]",
	Short: "List functional annotations by provider for an accession",
	Long: `Annotations fetches the PDBe functional annotations endpoint for a
UniProt accession and lists each annotation provider with its residue
count. Use --json for the full typed records.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotations,
}

func runAnnotations(cmd *cobra.Command, args []string) error {
	accession := args[0]

	client := pdbe.New(pdbeConfig())
	annotations, err := client.Annotations(context.Background(), accession)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(annotations)
	}

	if len(annotations) == 0 {
		fmt.Println("No annotations found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s  %s\n", "Provider", "Residues")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 36))
	for _, annotation := range annotations {
		fmt.Fprintf(os.Stdout, "%-24s  %d\n", annotation.Provider, len(annotation.Residues))
	}
	fmt.Fprintf(os.Stdout, "\n%d providers\n", len(annotations))
	return nil
}

func init() {
	annotationsCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(annotationsCmd)
}
