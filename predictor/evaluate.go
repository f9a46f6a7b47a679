package predictor

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/parchmint/clausal/errors"
	"github.com/parchmint/clausal/forest"
	"github.com/parchmint/clausal/logger"
	"github.com/parchmint/clausal/taxonomy"
)

// Score reports the cross-validated quality of one target model against the
// majority-class baseline.
type Score struct {
	Accuracy float64 `json:"accuracy"` // mean fold accuracy
	Std      float64 `json:"std"`      // fold accuracy spread
	Baseline float64 `json:"baseline"` // majority-class relative frequency
	Lift     float64 `json:"lift"`     // accuracy - baseline
}

// Evaluate runs k-fold cross-validation for every predictable term using
// freshly-initialized models with the training hyperparameters. It is a
// diagnostic: the fitted target models are not touched. Identical seed and
// corpus always produce identical numbers.
func (p *Predictor) Evaluate(folds int) (map[string]Score, error) {
	if !p.fitted {
		return nil, errors.Wrap(errors.ErrNotFitted, "evaluate")
	}
	if folds < 2 {
		return nil, errors.Newf("cv folds must be >= 2, got %d", folds)
	}
	n := p.table.NumRows()
	if folds > n {
		return nil, errors.Newf("cv folds (%d) cannot exceed corpus rows (%d)", folds, n)
	}

	// One deterministic shuffle shared by every target, so targets are
	// scored on identical splits.
	rng := rand.New(rand.NewSource(p.opts.Seed))
	perm := rng.Perm(n)

	results := make(map[string]Score)
	for _, target := range taxonomy.PredictableNames() {
		features := featuresFor(target)

		X, err := p.table.Matrix(features)
		if err != nil {
			return nil, err
		}
		y, err := p.table.Classes(target)
		if err != nil {
			return nil, err
		}

		accuracies := make([]float64, 0, folds)
		for _, fold := range splitFolds(perm, folds) {
			acc, err := p.scoreFold(X, y, fold)
			if err != nil {
				return nil, errors.Wrapf(err, "evaluating %q", target)
			}
			accuracies = append(accuracies, acc)
		}

		_, baseline, err := p.table.MajorityClass(target)
		if err != nil {
			return nil, err
		}

		mean := stat.Mean(accuracies, nil)
		results[target] = Score{
			Accuracy: round3(mean),
			Std:      round3(stat.PopStdDev(accuracies, nil)),
			Baseline: round3(baseline),
			Lift:     round3(mean - baseline),
		}

		logger.Debugw("Target evaluated",
			logger.FieldTarget, target,
			logger.FieldFolds, folds,
			logger.FieldAccuracy, mean,
			logger.FieldBaseline, baseline,
		)
	}

	return results, nil
}

// scoreFold trains a disposable model on everything outside the fold and
// returns its accuracy on the fold.
func (p *Predictor) scoreFold(X [][]float64, y []int, fold []int) (float64, error) {
	inFold := make(map[int]bool, len(fold))
	for _, i := range fold {
		inFold[i] = true
	}

	trainX := make([][]float64, 0, len(X)-len(fold))
	trainY := make([]int, 0, len(y)-len(fold))
	for i := range X {
		if !inFold[i] {
			trainX = append(trainX, X[i])
			trainY = append(trainY, y[i])
		}
	}

	model, err := forest.Train(trainX, trainY, p.opts.forestConfig())
	if err != nil {
		return 0, err
	}

	correct := 0
	for _, i := range fold {
		if model.Predict(X[i]) == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(fold)), nil
}

// splitFolds partitions the permuted indices into k folds of near-equal
// size, the first n%k folds one element larger.
func splitFolds(perm []int, k int) [][]int {
	n := len(perm)
	base, extra := n/k, n%k

	folds := make([][]int, k)
	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		folds[i] = perm[start : start+size]
		start += size
	}
	return folds
}
