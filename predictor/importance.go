package predictor

import (
	"sort"

	"github.com/parchmint/clausal/errors"
	"github.com/parchmint/clausal/taxonomy"
)

// topFeatures is how many features the importance report keeps per target.
const topFeatures = 5

// FeatureWeight is one feature's contribution to a target model's decisions.
type FeatureWeight struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// FeatureImportance returns, for each predictable term, the top features of
// its trained model sorted by descending importance. Importances are
// non-negative; ties keep the classifier's own feature order.
func (p *Predictor) FeatureImportance() (map[string][]FeatureWeight, error) {
	if !p.fitted {
		return nil, errors.Wrap(errors.ErrNotFitted, "feature importance")
	}

	results := make(map[string][]FeatureWeight)
	for _, target := range taxonomy.PredictableNames() {
		m := p.models[target]
		importances := m.forest.Importances()

		weights := make([]FeatureWeight, len(m.features))
		for i, name := range m.features {
			weights[i] = FeatureWeight{Feature: name, Importance: round3(importances[i])}
		}

		sort.SliceStable(weights, func(i, j int) bool {
			return weights[i].Importance > weights[j].Importance
		})

		if len(weights) > topFeatures {
			weights = weights[:topFeatures]
		}
		results[target] = weights
	}

	return results, nil
}
