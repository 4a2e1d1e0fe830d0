// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdbe fetches residue-level data from the PDBe Aggregated API.
//
// All three endpoints are keyed by a UniProt accession and return a
// document of the form {<accession>: {"data": [record, ...]}}. The client
// decodes into typed records and fails fast when the requested accession
// is absent from the document, rather than defaulting to an empty result
// (an absent key is an API contract violation, not an empty dataset).
// See docs/ARCHITECTURE § PDBe Client.
package pdbe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pdiddy/pdbe-overlap/internal/httputil"
	"github.com/pdiddy/pdbe-overlap/pkg/types"
)

// Endpoint base URLs. Declared as vars so tests can substitute an
// httptest server.
var (
	annotationsBase = "https://www.ebi.ac.uk/pdbe/graph-api/uniprot/annotations/"
	interfaceBase   = "https://www.ebi.ac.uk/pdbe/graph-api/uniprot/interface_residues/"
	ligandSitesBase = "https://www.ebi.ac.uk/pdbe/graph-api/uniprot/ligand_sites/"
)

const defaultTimeout = 30 * time.Second

// Client queries the PDBe Aggregated API.
type Client struct {
	http      *http.Client
	userAgent string
}

// New builds a Client from cfg. A zero timeout falls back to 30s.
func New(cfg types.PDBeConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: cfg.UserAgent,
	}
}

// Per-endpoint document structures. Each endpoint nests its records under
// the accession key, then "data".
type annotationsEnvelope struct {
	Data []types.FunctionalAnnotation `json:"data"`
}

type interfaceEnvelope struct {
	Data []types.InteractionPartner `json:"data"`
}

type ligandSitesEnvelope struct {
	Data []types.LigandSite `json:"data"`
}

// Annotations fetches the functional annotations for accession: one record
// per annotation provider, each with the residues that provider reports.
func (c *Client) Annotations(ctx context.Context, accession string) ([]types.FunctionalAnnotation, error) {
	var doc map[string]annotationsEnvelope
	if err := httputil.GetJSON(ctx, c.http, annotationsBase+accession, c.userAgent, &doc); err != nil {
		return nil, fmt.Errorf("fetching annotations for %s: %w", accession, err)
	}

	entry, ok := doc[accession]
	if !ok {
		return nil, fmt.Errorf("accession %q not present in annotations response", accession)
	}
	return entry.Data, nil
}

// InterfaceResidues fetches the interaction interface residues for
// accession: one record per interaction partner of the query protein.
func (c *Client) InterfaceResidues(ctx context.Context, accession string) ([]types.InteractionPartner, error) {
	var doc map[string]interfaceEnvelope
	if err := httputil.GetJSON(ctx, c.http, interfaceBase+accession, c.userAgent, &doc); err != nil {
		return nil, fmt.Errorf("fetching interface residues for %s: %w", accession, err)
	}

	entry, ok := doc[accession]
	if !ok {
		return nil, fmt.Errorf("accession %q not present in interface residues response", accession)
	}
	return entry.Data, nil
}

// LigandSites fetches the observed ligand binding sites for accession: one
// record per ligand observation. The same chemical component may repeat
// across records when it binds in multiple structures.
func (c *Client) LigandSites(ctx context.Context, accession string) ([]types.LigandSite, error) {
	var doc map[string]ligandSitesEnvelope
	if err := httputil.GetJSON(ctx, c.http, ligandSitesBase+accession, c.userAgent, &doc); err != nil {
		return nil, fmt.Errorf("fetching ligand sites for %s: %w", accession, err)
	}

	entry, ok := doc[accession]
	if !ok {
		return nil, fmt.Errorf("accession %q not present in ligand sites response", accession)
	}
	return entry.Data, nil
}
