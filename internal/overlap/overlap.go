// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package overlap computes which ligands bind at residues that are both
// predicted small-molecule binding sites and interface residues with a
// chosen interaction partner.
//
// The pipeline is three order-preserving filter stages over residue index
// lists. Duplicates are retained at every stage: the final output carries
// one entry per qualifying ligand record, not per unique chemical
// component, so collapsing duplicates would change observable counts.
// Residue indices from the three endpoints are compared as plain integers;
// a single consistent numbering scheme per accession is assumed, as none
// of the endpoints carries the data to cross-check it.
// See docs/ARCHITECTURE § Overlap Pipeline.
package overlap

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/pdbe-overlap/pkg/types"
)

// Fetcher retrieves the three PDBe endpoint payloads for one accession.
// *pdbe.Client implements it; tests substitute a stub.
type Fetcher interface {
	Annotations(ctx context.Context, accession string) ([]types.FunctionalAnnotation, error)
	InterfaceResidues(ctx context.Context, accession string) ([]types.InteractionPartner, error)
	LigandSites(ctx context.Context, accession string) ([]types.LigandSite, error)
}

// ResidueSet builds a membership set from a residue index list.
func ResidueSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, idx := range indices {
		set[idx] = true
	}
	return set
}

// PredictedBindingResidues returns every residue start index reported by a
// provider in the allowlist, in encounter order, duplicates preserved.
// An allowlist matching no provider yields an empty result, not an error.
func PredictedBindingResidues(annotations []types.FunctionalAnnotation, providers []string) []int {
	allowed := make(map[string]bool, len(providers))
	for _, p := range providers {
		allowed[p] = true
	}

	var residues []int
	for _, annotation := range annotations {
		if !allowed[annotation.Provider] {
			continue
		}
		for _, r := range annotation.Residues {
			residues = append(residues, r.StartIndex)
		}
	}
	return residues
}

// InterfaceResidues returns the residues of partners whose name exactly
// equals partner, filtered to members of candidates, in encounter order.
// Name matching is case-sensitive: "Hirudin-2" and "Hirudin variant-1"
// are distinct partners. No matching partner yields an empty result.
func InterfaceResidues(partners []types.InteractionPartner, partner string, candidates map[int]bool) []int {
	var residues []int
	for _, p := range partners {
		if p.Name != partner {
			continue
		}
		for _, r := range p.Residues {
			if candidates[r.StartIndex] {
				residues = append(residues, r.StartIndex)
			}
		}
	}
	return residues
}

// OverlappingLigands returns the accession of every ligand record with at
// least one residue in target, in record order. Each record contributes at
// most one entry, so a chemical component repeated across records appears
// once per qualifying record.
func OverlappingLigands(sites []types.LigandSite, target map[int]bool) []string {
	var ligands []string
	for _, site := range sites {
		for _, r := range site.Residues {
			if target[r.StartIndex] {
				ligands = append(ligands, site.Accession)
				break
			}
		}
	}
	return ligands
}

// Run executes the full pipeline for one accession. The three fetches run
// strictly in sequence and any failure aborts the run; there is no retry
// and no partial result. Progress lines go to w.
func Run(ctx context.Context, fetcher Fetcher, accession string, cfg types.PipelineConfig, w io.Writer) (*types.Report, error) {
	if accession == "" {
		return nil, fmt.Errorf("accession is required")
	}
	if cfg.Partner == "" {
		return nil, fmt.Errorf("interaction partner is required")
	}

	annotations, err := fetcher.Annotations(ctx, accession)
	if err != nil {
		return nil, err
	}
	predicted := PredictedBindingResidues(annotations, cfg.Providers)
	fmt.Fprintf(w, "predicted binding residues (%v): %d\n", cfg.Providers, len(predicted))

	partners, err := fetcher.InterfaceResidues(ctx, accession)
	if err != nil {
		return nil, err
	}
	interfaceResidues := InterfaceResidues(partners, cfg.Partner, ResidueSet(predicted))
	fmt.Fprintf(w, "interface residues with %q also predicted: %d\n", cfg.Partner, len(interfaceResidues))

	sites, err := fetcher.LigandSites(ctx, accession)
	if err != nil {
		return nil, err
	}
	ligands := OverlappingLigands(sites, ResidueSet(interfaceResidues))
	fmt.Fprintf(w, "ligand records overlapping those residues: %d\n", len(ligands))

	return &types.Report{
		Accession:         accession,
		Partner:           cfg.Partner,
		Providers:         cfg.Providers,
		PredictedResidues: predicted,
		InterfaceResidues: interfaceResidues,
		Ligands:           ligands,
		FetchedAt:         time.Now().UTC(),
	}, nil
}
