package config

import "github.com/parchmint/clausal/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Corpus.Path == "" {
		return errors.New("corpus.path cannot be empty")
	}

	// Training floor: 0 and negatives would permit silent overfitting
	if c.Corpus.MinRows <= 0 {
		return errors.Newf("corpus.min_rows must be > 0, got %d", c.Corpus.MinRows)
	}

	if c.Forest.Trees <= 0 {
		return errors.Newf("forest.trees must be > 0, got %d", c.Forest.Trees)
	}
	if c.Forest.MaxDepth <= 0 {
		return errors.Newf("forest.max_depth must be > 0, got %d", c.Forest.MaxDepth)
	}
	if c.Forest.MinLeaf <= 0 {
		return errors.Newf("forest.min_leaf must be > 0, got %d", c.Forest.MinLeaf)
	}

	// At least 2 folds, and no more folds than the training floor allows
	if c.Evaluation.Folds < 2 {
		return errors.Newf("evaluation.folds must be >= 2, got %d", c.Evaluation.Folds)
	}
	if c.Evaluation.Folds > c.Corpus.MinRows {
		return errors.Newf("evaluation.folds (%d) cannot exceed corpus.min_rows (%d)",
			c.Evaluation.Folds, c.Corpus.MinRows)
	}

	if c.Offer.Equity <= 0 || c.Offer.Equity >= 1 {
		return errors.Newf("offer.equity must be in (0, 1), got %f", c.Offer.Equity)
	}

	return nil
}
