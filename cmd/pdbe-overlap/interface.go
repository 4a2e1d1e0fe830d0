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

var interfaceCmd = &cobra.Command{
	Use:   "interface [accession]",
	Short: "List interaction partners and interface residue counts",
	Long: `Interface fetches the PDBe interface residues endpoint for a UniProt
accession and lists every observed interaction partner with its interface
residue count. Partner names are reported exactly as the overlap
subcommand expects them ("Hirudin variant-1" and "Hirudin-2" are distinct
partners).`,
	Args: cobra.ExactArgs(1),
	RunE: runInterface,
}

func runInterface(cmd *cobra.Command, args []string) error {
	accession := args[0]

	client := pdbe.New(pdbeConfig())
	partners, err := client.InterfaceResidues(context.Background(), accession)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(partners)
	}

	if len(partners) == 0 {
		fmt.Println("No interaction partners found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-40s  %s\n", "Partner", "Interface residues")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 60))
	for _, partner := range partners {
		fmt.Fprintf(os.Stdout, "%-40s  %d\n", partner.Name, len(partner.Residues))
	}
	fmt.Fprintf(os.Stdout, "\n%d partners\n", len(partners))
	return nil
}

func init() {
	interfaceCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(interfaceCmd)
}
