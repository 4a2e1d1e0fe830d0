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

var ligandsCmd = &cobra.Command{
	Use:   "ligands [accession]",
	Short: "List observed ligand binding site records for an accession",
	Long: `Ligands fetches the PDBe ligand sites endpoint for a UniProt accession
and lists every ligand record with its binding residue count. The same
chemical component appears once per record when it binds in multiple
structures.`,
	Args: cobra.ExactArgs(1),
	RunE: runLigands,
}

func runLigands(cmd *cobra.Command, args []string) error {
	accession := args[0]

	client := pdbe.New(pdbeConfig())
	sites, err := client.LigandSites(context.Background(), accession)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sites)
	}

	if len(sites) == 0 {
		fmt.Println("No ligand sites found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %s\n", "Ligand", "Binding residues")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 32))
	for _, site := range sites {
		fmt.Fprintf(os.Stdout, "%-12s  %d\n", site.Accession, len(site.Residues))
	}
	fmt.Fprintf(os.Stdout, "\n%d ligand records\n", len(sites))
	return nil
}

func init() {
	ligandsCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(ligandsCmd)
}
