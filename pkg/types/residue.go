// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records shared between the PDBe client, the
// overlap pipeline, and the run archive.
package types

import "time"

// Residue is a single residue range entry as returned by the PDBe
// Aggregated API. Indices are 1-based positions in the UniProt canonical
// sequence. Point annotations have StartIndex == EndIndex.
type Residue struct {
	// StartIndex is the first sequence position of the range.
	StartIndex int `json:"startIndex" yaml:"start_index"`

	// EndIndex is the last sequence position of the range.
	EndIndex int `json:"endIndex" yaml:"end_index"`
}

// FunctionalAnnotation holds the residues one annotation provider reports
// for the query protein (annotations endpoint).
type FunctionalAnnotation struct {
	// Provider is the annotation provider identifier (e.g. "p2rank",
	// "3dligandsite"). The API exposes it under the "accession" key.
	Provider string `json:"accession" yaml:"provider"`

	// Residues lists the annotated residues in source order.
	Residues []Residue `json:"residues" yaml:"residues"`
}

// InteractionPartner holds the contact residues observed between the query
// protein and one interaction partner (interface residues endpoint).
type InteractionPartner struct {
	// Name is the partner molecule name exactly as PDBe reports it
	// (e.g. "Hirudin variant-1"). Matching against it is case-sensitive.
	Name string `json:"name" yaml:"name"`

	// Residues lists the interface residues in source order.
	Residues []Residue `json:"residues" yaml:"residues"`
}

// LigandSite holds the binding residues observed for one ligand record
// (ligand sites endpoint). The same chemical component may appear in
// multiple records when it binds in multiple structures.
type LigandSite struct {
	// Accession is the chemical component identifier (e.g. "GOL", "0G6").
	Accession string `json:"accession" yaml:"accession"`

	// Residues lists the binding site residues in source order.
	Residues []Residue `json:"residues" yaml:"residues"`
}

// Report is the result of one overlap pipeline run.
type Report struct {
	// Accession is the UniProt accession the run was keyed by.
	Accession string `json:"accession" yaml:"accession"`

	// Partner is the interaction partner name used in stage two.
	Partner string `json:"partner" yaml:"partner"`

	// Providers is the annotation provider allowlist used in stage one.
	Providers []string `json:"providers" yaml:"providers"`

	// PredictedResidues are the stage-one residues: every residue reported
	// by an allowlisted provider, duplicates and encounter order preserved.
	PredictedResidues []int `json:"predicted_residues" yaml:"predicted_residues"`

	// InterfaceResidues are the stage-two residues: partner interface
	// residues that are also predicted binding residues.
	InterfaceResidues []int `json:"interface_residues" yaml:"interface_residues"`

	// Ligands are the stage-three output: one entry per ligand record with
	// at least one residue in the interface set, in source order.
	Ligands []string `json:"ligands" yaml:"ligands"`

	// FetchedAt is when the run completed.
	FetchedAt time.Time `json:"fetched_at" yaml:"fetched_at"`
}
