// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DatasetConfig holds settings for the dataset loader.
type DatasetConfig struct {
	// Path is the dataset location: a .json or .yaml file, or a SQLite
	// database (.db, .sqlite, .sqlite3).
	Path string `json:"path" yaml:"path"`
}

// RankingConfig holds tuning parameters for the authority computation.
type RankingConfig struct {
	// Iterations is the fixed number of authority update rounds (default 30).
	Iterations int `json:"iterations" yaml:"iterations"`

	// Damping is the damping factor for the authority computation (default 0.85).
	Damping float64 `json:"damping" yaml:"damping"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`

	// StaticDir is the directory served as the frontend. Empty disables
	// static serving.
	StaticDir string `json:"static_dir" yaml:"static_dir"`
}

// Config groups all scholar-search configuration.
type Config struct {
	Dataset DatasetConfig `json:"dataset" yaml:"dataset"`
	Ranking RankingConfig `json:"ranking" yaml:"ranking"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}
