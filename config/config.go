// Package config loads the clausal configuration: where the reference corpus
// lives, the forest hyperparameters, evaluation defaults, and the prediction
// history database. Configuration is TOML (clausal.toml) with CLAUSAL_*
// environment overrides.
package config

// Config represents the clausal configuration
type Config struct {
	Corpus     CorpusConfig     `mapstructure:"corpus"`
	Forest     ForestConfig     `mapstructure:"forest"`
	Evaluation EvaluationConfig `mapstructure:"evaluation"`
	History    HistoryConfig    `mapstructure:"history"`
	Offer      OfferConfig      `mapstructure:"offer"`
}

// CorpusConfig locates and gates the reference corpus
type CorpusConfig struct {
	Path    string `mapstructure:"path"`     // TSV file with a header row
	MinRows int    `mapstructure:"min_rows"` // training floor after cleaning (default: 50)
}

// ForestConfig holds the ensemble hyperparameters. Capacity is deliberately
// small: the reference corpus is on the order of hundreds of rows.
type ForestConfig struct {
	Trees    int   `mapstructure:"trees"`     // trees per target model (default: 100)
	MaxDepth int   `mapstructure:"max_depth"` // per-tree depth bound (default: 5)
	MinLeaf  int   `mapstructure:"min_leaf"`  // minimum samples per leaf (default: 10)
	Seed     int64 `mapstructure:"seed"`      // randomization seed (default: 42)
}

// EvaluationConfig configures cross-validation diagnostics
type EvaluationConfig struct {
	Folds int `mapstructure:"folds"` // k for k-fold CV (default: 5)
}

// HistoryConfig configures the prediction run log
type HistoryConfig struct {
	Path string `mapstructure:"path"` // SQLite database path (default: clausal.db)
}

// OfferConfig seeds the equity-offer solver
type OfferConfig struct {
	Equity float64 `mapstructure:"equity"` // default proposed equity share (default: 0.3)
}
