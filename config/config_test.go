package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading project config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Corpus.Path != "data/training/cuad.tsv" {
		t.Errorf("expected default corpus path 'data/training/cuad.tsv', got %q", cfg.Corpus.Path)
	}
	if cfg.Corpus.MinRows != 50 {
		t.Errorf("expected default min_rows 50, got %d", cfg.Corpus.MinRows)
	}
	if cfg.Forest.Trees != 100 {
		t.Errorf("expected default trees 100, got %d", cfg.Forest.Trees)
	}
	if cfg.Forest.MaxDepth != 5 {
		t.Errorf("expected default max_depth 5, got %d", cfg.Forest.MaxDepth)
	}
	if cfg.Forest.MinLeaf != 10 {
		t.Errorf("expected default min_leaf 10, got %d", cfg.Forest.MinLeaf)
	}
	if cfg.Forest.Seed != 42 {
		t.Errorf("expected default seed 42, got %d", cfg.Forest.Seed)
	}
	if cfg.Evaluation.Folds != 5 {
		t.Errorf("expected default folds 5, got %d", cfg.Evaluation.Folds)
	}
	if cfg.History.Path != "clausal.db" {
		t.Errorf("expected default history path 'clausal.db', got %q", cfg.History.Path)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clausal.toml")

	content := `
[corpus]
path = "corpora/cuad.tsv"
min_rows = 80

[forest]
trees = 25
seed = 7

[evaluation]
folds = 3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Corpus.Path != "corpora/cuad.tsv" {
		t.Errorf("corpus path not read: %q", cfg.Corpus.Path)
	}
	if cfg.Corpus.MinRows != 80 {
		t.Errorf("min_rows not read: %d", cfg.Corpus.MinRows)
	}
	if cfg.Forest.Trees != 25 || cfg.Forest.Seed != 7 {
		t.Errorf("forest overrides not read: trees=%d seed=%d", cfg.Forest.Trees, cfg.Forest.Seed)
	}
	if cfg.Evaluation.Folds != 3 {
		t.Errorf("folds not read: %d", cfg.Evaluation.Folds)
	}
	// Keys absent from the file keep their defaults
	if cfg.Forest.MaxDepth != 5 {
		t.Errorf("max_depth default lost: %d", cfg.Forest.MaxDepth)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		v := viper.New()
		SetDefaults(v)
		cfg, err := LoadWithViper(v)
		if err != nil {
			t.Fatalf("LoadWithViper() failed: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "zero min_rows is invalid",
			mutate:  func(c *Config) { c.Corpus.MinRows = 0 },
			wantErr: true,
		},
		{
			name:    "negative trees is invalid",
			mutate:  func(c *Config) { c.Forest.Trees = -1 },
			wantErr: true,
		},
		{
			name:    "one fold is invalid",
			mutate:  func(c *Config) { c.Evaluation.Folds = 1 },
			wantErr: true,
		},
		{
			name:    "more folds than the floor is invalid",
			mutate:  func(c *Config) { c.Evaluation.Folds = 51 },
			wantErr: true,
		},
		{
			name:    "equity of 1 is invalid",
			mutate:  func(c *Config) { c.Offer.Equity = 1 },
			wantErr: true,
		},
		{
			name:    "empty corpus path is invalid",
			mutate:  func(c *Config) { c.Corpus.Path = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReset(t *testing.T) {
	Reset()
	if globalConfig != nil || viperInstance != nil {
		t.Error("Reset() did not clear cached state")
	}
}
