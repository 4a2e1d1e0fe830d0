// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdbe-overlap/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()

	s, err := NewStore(types.StoreConfig{DataDir: tmpDir, MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s, tmpDir
}

func sampleReport() *types.Report {
	return &types.Report{
		Accession:         "P00734",
		Partner:           "Hirudin variant-1",
		Providers:         []string{"p2rank", "3dligandsite"},
		PredictedResidues: []int{388, 406, 434, 434},
		InterfaceResidues: []int{388, 406, 434},
		Ligands:           []string{"GOL", "TYS", "GOL"},
		FetchedAt:         time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGet(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	runID, err := s.Save(ctx, sampleReport())
	require.NoError(t, err)
	assert.Positive(t, runID)

	got, err := s.Get(ctx, runID)
	require.NoError(t, err)

	want := sampleReport()
	assert.Equal(t, want.Accession, got.Accession)
	assert.Equal(t, want.Partner, got.Partner)
	assert.Equal(t, want.Providers, got.Providers)
	assert.Equal(t, want.PredictedResidues, got.PredictedResidues)
	assert.Equal(t, want.InterfaceResidues, got.InterfaceResidues)
	// Ligand order and per-record duplicates survive the round trip.
	assert.Equal(t, want.Ligands, got.Ligands)
	assert.True(t, got.FetchedAt.Equal(want.FetchedAt))
}

func TestGetUnknownRun(t *testing.T) {
	s, _ := testStore(t)

	_, err := s.Get(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListNewestFirst(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	first := sampleReport()
	second := sampleReport()
	second.Accession = "P01308"
	second.Ligands = []string{"ZN"}

	_, err := s.Save(ctx, first)
	require.NoError(t, err)
	_, err = s.Save(ctx, second)
	require.NoError(t, err)

	summaries, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, "P01308", summaries[0].Accession)
	assert.Equal(t, 1, summaries[0].LigandCount)
	assert.Equal(t, "P00734", summaries[1].Accession)
	assert.Equal(t, 3, summaries[1].LigandCount)
	assert.Equal(t, 3, summaries[1].InterfaceCount)
	assert.Equal(t, []string{"p2rank", "3dligandsite"}, summaries[1].Providers)
}

func TestListLimit(t *testing.T) {
	s, _ := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Save(ctx, sampleReport())
		require.NoError(t, err)
	}

	summaries, err := s.List(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, summaries, 3)
}

func TestListEmptyArchive(t *testing.T) {
	s, _ := testStore(t)

	summaries, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestSaveEmptyReport(t *testing.T) {
	// The all-empty pipeline path archives cleanly.
	s, _ := testStore(t)
	ctx := context.Background()

	runID, err := s.Save(ctx, &types.Report{Accession: "P00734", Partner: "Haemadin"})
	require.NoError(t, err)

	got, err := s.Get(ctx, runID)
	require.NoError(t, err)
	assert.Empty(t, got.Ligands)
	assert.Empty(t, got.InterfaceResidues)
}

func TestExportYAML(t *testing.T) {
	s, tmpDir := testStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, sampleReport())
	require.NoError(t, err)

	require.NoError(t, s.ExportYAML(ctx))

	data, err := os.ReadFile(filepath.Join(tmpDir, "export.yaml"))
	require.NoError(t, err)

	var reports []*types.Report
	require.NoError(t, yaml.Unmarshal(data, &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "P00734", reports[0].Accession)
	assert.Equal(t, []string{"GOL", "TYS", "GOL"}, reports[0].Ligands)
}

func TestExportJSON(t *testing.T) {
	s, tmpDir := testStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, sampleReport())
	require.NoError(t, err)

	require.NoError(t, s.ExportJSON(ctx))

	data, err := os.ReadFile(filepath.Join(tmpDir, "export.json"))
	require.NoError(t, err)

	var reports []*types.Report
	require.NoError(t, json.Unmarshal(data, &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "Hirudin variant-1", reports[0].Partner)
}

func TestReopenPersists(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := types.StoreConfig{DataDir: tmpDir}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	_, err = s.Save(context.Background(), sampleReport())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewStore(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	summaries, err := reopened.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}
