package forest

import (
	"math/rand"
	"sort"
)

// node is a decision-tree node. Leaves have left == nil and carry the class
// distribution of their training samples.
type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	dist      []float64
}

func (n *node) classify(x []float64) []float64 {
	for n.left != nil {
		if x[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.dist
}

// builder holds the training set and hyperparameters shared by all trees of
// one forest.
type builder struct {
	X          [][]float64
	y          []int // class indices, 0..numClasses-1
	numClasses int
	maxDepth   int
	minLeaf    int
	mtry       int
	rng        *rand.Rand
}

// build grows a tree over the given sample indices, accumulating impurity
// decreases into imp (indexed by feature).
func (b *builder) build(sample []int, depth int, imp []float64) *node {
	counts := b.classCounts(sample)

	if depth >= b.maxDepth || len(sample) < 2*b.minLeaf || isPure(counts) {
		return b.leaf(counts, len(sample))
	}

	feature, threshold, gain, ok := b.bestSplit(sample, counts)
	if !ok {
		return b.leaf(counts, len(sample))
	}

	var left, right []int
	for _, i := range sample {
		if b.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	// Weight the decrease by the node's share of the bootstrap sample
	imp[feature] += gain * float64(len(sample))

	return &node{
		feature:   feature,
		threshold: threshold,
		left:      b.build(left, depth+1, imp),
		right:     b.build(right, depth+1, imp),
	}
}

func (b *builder) leaf(counts []int, total int) *node {
	dist := make([]float64, b.numClasses)
	if total > 0 {
		for i, c := range counts {
			dist[i] = float64(c) / float64(total)
		}
	}
	return &node{dist: dist}
}

func (b *builder) classCounts(sample []int) []int {
	counts := make([]int, b.numClasses)
	for _, i := range sample {
		counts[b.y[i]]++
	}
	return counts
}

// bestSplit searches a random mtry-sized feature subset for the split with
// the largest Gini decrease that leaves at least minLeaf samples per side.
func (b *builder) bestSplit(sample []int, counts []int) (feature int, threshold float64, gain float64, ok bool) {
	total := len(sample)
	parent := gini(counts, total)

	numFeatures := len(b.X[0])
	perm := b.rng.Perm(numFeatures)

	sorted := make([]int, total)
	leftCounts := make([]int, b.numClasses)

	bestGain := 0.0
	for _, f := range perm[:b.mtry] {
		copy(sorted, sample)
		sort.Slice(sorted, func(i, j int) bool {
			return b.X[sorted[i]][f] < b.X[sorted[j]][f]
		})

		for i := range leftCounts {
			leftCounts[i] = 0
		}

		// Sweep split points between distinct values, tracking left-side counts
		for i := 0; i < total-1; i++ {
			leftCounts[b.y[sorted[i]]]++

			v, next := b.X[sorted[i]][f], b.X[sorted[i+1]][f]
			if v == next {
				continue
			}

			nLeft := i + 1
			nRight := total - nLeft
			if nLeft < b.minLeaf || nRight < b.minLeaf {
				continue
			}

			rightCounts := make([]int, b.numClasses)
			for c := range rightCounts {
				rightCounts[c] = counts[c] - leftCounts[c]
			}

			weighted := (float64(nLeft)*gini(leftCounts, nLeft) +
				float64(nRight)*gini(rightCounts, nRight)) / float64(total)

			if g := parent - weighted; g > bestGain {
				bestGain = g
				feature = f
				threshold = (v + next) / 2
				ok = true
			}
		}
	}

	return feature, threshold, bestGain, ok
}

func gini(counts []int, total int) float64 {
	if total == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(total)
		impurity -= p * p
	}
	return impurity
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}
