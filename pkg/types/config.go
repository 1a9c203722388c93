// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and record types shared between the
// CLI and the internal packages.
package types

// ConvertConfig holds defaults for single-value conversion.
type ConvertConfig struct {
	// SourceBase is the default source base. Zero means detect from the
	// radix prefix (0x, 0b, 0o, else 10).
	SourceBase int `json:"source_base" yaml:"source_base"`

	// TargetBase is the default target base (default 10).
	TargetBase int `json:"target_base" yaml:"target_base"`
}

// BatchConfig holds settings for batch file conversion.
type BatchConfig struct {
	// SourceBase is the base used for every input line. Ignored when
	// Detect is set.
	SourceBase int `json:"source_base" yaml:"source_base"`

	// TargetBase is the base converted values are rendered in.
	TargetBase int `json:"target_base" yaml:"target_base"`

	// Detect applies the radix-prefix heuristic per line instead of a
	// fixed source base.
	Detect bool `json:"detect" yaml:"detect"`

	// OutputPath is the file converted values are written to. Empty
	// means stdout.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`
}

// HistoryConfig holds settings for the operation history store.
type HistoryConfig struct {
	// HistoryDir is the directory containing history.db and exports.
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxResults is the default maximum number of list results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Disabled turns off history recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}
