// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store archives completed overlap runs in a local SQLite
// database. Saving is opt-in per run; the pipeline itself never reads
// from the archive.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdbe-overlap/pkg/types"
)

const dbFile = "overlap.db"

// Store manages the run archive database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the archive database at cfg.DataDir/overlap.db,
// creating the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dataDir:    dataDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			accession TEXT NOT NULL,
			partner TEXT NOT NULL,
			providers TEXT,
			predicted_residues TEXT,
			interface_residues TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_ligands (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			ligand TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_ligands_run_id ON run_ligands(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_accession ON runs(accession)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save archives a completed report and returns its run ID. Ligand order
// is preserved via an explicit position column.
func (s *Store) Save(ctx context.Context, report *types.Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	providersJSON, _ := json.Marshal(report.Providers)
	predictedJSON, _ := json.Marshal(report.PredictedResidues)
	interfaceJSON, _ := json.Marshal(report.InterfaceResidues)

	createdAt := report.FetchedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO runs (accession, partner, providers, predicted_residues, interface_residues, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		report.Accession, report.Partner, string(providersJSON),
		string(predictedJSON), string(interfaceJSON),
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_ligands (run_id, position, ligand) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing ligand insert: %w", err)
	}
	defer stmt.Close()

	for i, ligand := range report.Ligands {
		if _, err := stmt.ExecContext(ctx, runID, i, ligand); err != nil {
			return 0, fmt.Errorf("inserting ligand %s: %w", ligand, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// RunSummary is one archive entry as shown by the history listing.
type RunSummary struct {
	ID             int64     `json:"id" yaml:"id"`
	Accession      string    `json:"accession" yaml:"accession"`
	Partner        string    `json:"partner" yaml:"partner"`
	Providers      []string  `json:"providers" yaml:"providers"`
	InterfaceCount int       `json:"interface_count" yaml:"interface_count"`
	LigandCount    int       `json:"ligand_count" yaml:"ligand_count"`
	CreatedAt      time.Time `json:"created_at" yaml:"created_at"`
}

// List returns the most recent archived runs, newest first. A zero limit
// uses the store default.
func (s *Store) List(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.accession, r.partner, r.providers, r.interface_residues, r.created_at,
			(SELECT count(*) FROM run_ligands l WHERE l.run_id = r.id)
		 FROM runs r
		 ORDER BY r.id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var (
			summary       RunSummary
			providersJSON sql.NullString
			interfaceJSON sql.NullString
			createdAt     string
		)
		if err := rows.Scan(
			&summary.ID, &summary.Accession, &summary.Partner,
			&providersJSON, &interfaceJSON, &createdAt, &summary.LigandCount,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if providersJSON.Valid {
			json.Unmarshal([]byte(providersJSON.String), &summary.Providers)
		}
		if interfaceJSON.Valid {
			var residues []int
			json.Unmarshal([]byte(interfaceJSON.String), &residues)
			summary.InterfaceCount = len(residues)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			summary.CreatedAt = t
		}

		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// Get reconstructs the full report for one archived run.
func (s *Store) Get(ctx context.Context, runID int64) (*types.Report, error) {
	var (
		report        types.Report
		providersJSON sql.NullString
		predictedJSON sql.NullString
		interfaceJSON sql.NullString
		createdAt     string
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT accession, partner, providers, predicted_residues, interface_residues, created_at
		 FROM runs WHERE id = ?`, runID,
	).Scan(&report.Accession, &report.Partner, &providersJSON, &predictedJSON, &interfaceJSON, &createdAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run %d not found", runID)
		}
		return nil, fmt.Errorf("looking up run: %w", err)
	}

	if providersJSON.Valid {
		json.Unmarshal([]byte(providersJSON.String), &report.Providers)
	}
	if predictedJSON.Valid {
		json.Unmarshal([]byte(predictedJSON.String), &report.PredictedResidues)
	}
	if interfaceJSON.Valid {
		json.Unmarshal([]byte(interfaceJSON.String), &report.InterfaceResidues)
	}
	if t, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		report.FetchedAt = t
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT ligand FROM run_ligands WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying ligands: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ligand string
		if err := rows.Scan(&ligand); err != nil {
			return nil, fmt.Errorf("scanning ligand: %w", err)
		}
		report.Ligands = append(report.Ligands, ligand)
	}

	return &report, rows.Err()
}
