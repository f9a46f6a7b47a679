package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Corpus defaults
	v.SetDefault("corpus.path", "data/training/cuad.tsv")
	v.SetDefault("corpus.min_rows", 50) // below this, refuse to train rather than overfit

	// Forest defaults mirror the reference training setup
	v.SetDefault("forest.trees", 100)
	v.SetDefault("forest.max_depth", 5)
	v.SetDefault("forest.min_leaf", 10)
	v.SetDefault("forest.seed", 42)

	// Evaluation defaults
	v.SetDefault("evaluation.folds", 5)

	// History defaults
	v.SetDefault("history.path", "clausal.db")

	// Offer defaults
	v.SetDefault("offer.equity", 0.3)
}
