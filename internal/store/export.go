// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdbe-overlap/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes the full archive to dataDir/export.yaml, newest run
// first.
func (s *Store) ExportYAML(ctx context.Context) error {
	reports, err := s.exportReports(ctx)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dataDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the full archive to dataDir/export.json, newest run
// first.
func (s *Store) ExportJSON(ctx context.Context) error {
	reports, err := s.exportReports(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.dataDir, "export.json"), data, 0o644)
}

func (s *Store) exportReports(ctx context.Context) ([]*types.Report, error) {
	summaries, err := s.List(ctx, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	reports := make([]*types.Report, 0, len(summaries))
	for _, summary := range summaries {
		report, err := s.Get(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
