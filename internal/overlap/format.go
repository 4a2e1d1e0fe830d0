// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package overlap

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/pdbe-overlap/pkg/types"
)

// FormatReport writes a human-readable summary of a pipeline run to w.
func FormatReport(report *types.Report, w io.Writer) {
	fmt.Fprintf(w, "Accession: %s\n", report.Accession)
	fmt.Fprintf(w, "Partner:   %s\n", report.Partner)
	fmt.Fprintf(w, "Providers: %s\n", strings.Join(report.Providers, ", "))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Predicted binding residues: %d\n", len(report.PredictedResidues))
	fmt.Fprintf(w, "Interface residues also predicted: %s\n", formatResidues(report.InterfaceResidues))
	fmt.Fprintln(w)

	if len(report.Ligands) == 0 {
		fmt.Fprintln(w, "No overlapping ligands found.")
		return
	}

	fmt.Fprintln(w, "Overlapping ligand records:")
	for i, ligand := range report.Ligands {
		fmt.Fprintf(w, "%-6d%s\n", i+1, ligand)
	}
	fmt.Fprintf(w, "\n%d ligand records\n", len(report.Ligands))
}

// FormatReportJSON writes the report as indented JSON to w.
func FormatReportJSON(report *types.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func formatResidues(residues []int) string {
	if len(residues) == 0 {
		return "(none)"
	}
	parts := make([]string, len(residues))
	for i, r := range residues {
		parts[i] = fmt.Sprintf("%d", r)
	}
	return strings.Join(parts, " ")
}
