// Package forest implements a seeded bagged ensemble of decision trees for
// small tabular corpora. Capacity is bounded on purpose (fixed tree count,
// depth and leaf-size limits): the reference corpora are hundreds of rows,
// so resisting overfit matters more than raw fit.
package forest

import (
	"math"
	"math/rand"
	"sort"

	"github.com/parchmint/clausal/errors"
)

// Config holds the ensemble hyperparameters.
type Config struct {
	Trees    int   // number of bagged trees
	MaxDepth int   // depth bound per tree
	MinLeaf  int   // minimum samples per leaf
	Seed     int64 // randomization seed; same seed + same data = same model
}

// Forest is a trained classifier. It exposes a point prediction, a
// class-probability vector, and a feature-importance vector aligned with the
// training feature order.
type Forest struct {
	trees       []*node
	classes     []int // sorted distinct class codes seen in training
	classIndex  map[int]int
	numFeatures int
	importances []float64
}

// Train fits a forest on X (rows of feature vectors) and y (class codes).
func Train(X [][]float64, y []int, cfg Config) (*Forest, error) {
	if len(X) == 0 || len(X) != len(y) {
		return nil, errors.Newf("training set shape invalid: %d rows, %d labels", len(X), len(y))
	}
	if cfg.Trees <= 0 || cfg.MaxDepth <= 0 || cfg.MinLeaf <= 0 {
		return nil, errors.Newf("invalid forest config: trees=%d max_depth=%d min_leaf=%d",
			cfg.Trees, cfg.MaxDepth, cfg.MinLeaf)
	}

	f := &Forest{
		numFeatures: len(X[0]),
		classes:     distinctClasses(y),
	}
	f.classIndex = make(map[int]int, len(f.classes))
	for i, c := range f.classes {
		f.classIndex[c] = i
	}

	labels := make([]int, len(y))
	for i, c := range y {
		labels[i] = f.classIndex[c]
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	mtry := max(1, int(math.Sqrt(float64(f.numFeatures))))

	b := &builder{
		X:          X,
		y:          labels,
		numClasses: len(f.classes),
		maxDepth:   cfg.MaxDepth,
		minLeaf:    cfg.MinLeaf,
		mtry:       mtry,
		rng:        rng,
	}

	totalImportance := make([]float64, f.numFeatures)
	f.trees = make([]*node, cfg.Trees)
	for t := 0; t < cfg.Trees; t++ {
		sample := bootstrap(len(X), rng)
		imp := make([]float64, f.numFeatures)
		f.trees[t] = b.build(sample, 0, imp)
		for i, v := range imp {
			totalImportance[i] += v
		}
	}

	f.importances = normalize(totalImportance)
	return f, nil
}

// Classes returns the sorted class codes the forest can predict.
func (f *Forest) Classes() []int {
	out := make([]int, len(f.classes))
	copy(out, f.classes)
	return out
}

// Proba returns the probability vector for x, aligned with Classes().
func (f *Forest) Proba(x []float64) []float64 {
	sum := make([]float64, len(f.classes))
	for _, t := range f.trees {
		dist := t.classify(x)
		for i, p := range dist {
			sum[i] += p
		}
	}
	for i := range sum {
		sum[i] /= float64(len(f.trees))
	}
	return sum
}

// Predict returns the class code with the highest probability mass.
// Ties break toward the lower class code.
func (f *Forest) Predict(x []float64) int {
	proba := f.Proba(x)
	best := 0
	for i := 1; i < len(proba); i++ {
		if proba[i] > proba[best] {
			best = i
		}
	}
	return f.classes[best]
}

// Importances returns the normalized mean-decrease-impurity importance of
// each training feature. Entries are non-negative and sum to 1 when any
// split happened at all.
func (f *Forest) Importances() []float64 {
	out := make([]float64, len(f.importances))
	copy(out, f.importances)
	return out
}

// NumFeatures returns the width of the feature vectors the forest expects.
func (f *Forest) NumFeatures() int {
	return f.numFeatures
}

func distinctClasses(y []int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, c := range y {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Ints(out)
	return out
}

func bootstrap(n int, rng *rand.Rand) []int {
	sample := make([]int, n)
	for i := range sample {
		sample[i] = rng.Intn(n)
	}
	return sample
}

func normalize(v []float64) []float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	if sum <= 0 {
		return v
	}
	for i := range v {
		v[i] /= sum
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
