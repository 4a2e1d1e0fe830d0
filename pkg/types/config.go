package types

import "time"

// HTTPConfig holds shared HTTP settings for PDBe API requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pdbe-overlap/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PDBeConfig holds settings for the PDBe Aggregated API client.
type PDBeConfig struct {
	HTTPConfig `yaml:",inline"`
}

// PipelineConfig holds settings for the overlap pipeline.
type PipelineConfig struct {
	// Providers is the annotation provider allowlist for predicted
	// ligand binding sites (default: p2rank, 3dligandsite).
	Providers []string `json:"providers" yaml:"providers"`

	// Partner is the interaction partner name to intersect against.
	// Matched with exact, case-sensitive string equality.
	Partner string `json:"partner" yaml:"partner"`
}

// StoreConfig holds settings for the run archive.
type StoreConfig struct {
	// DataDir is the directory holding the archive database and exports.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of history entries listed
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// Config groups all settings for the tool.
type Config struct {
	PDBe     PDBeConfig     `json:"pdbe" yaml:"pdbe"`
	Pipeline PipelineConfig `json:"pipeline" yaml:"pipeline"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}
