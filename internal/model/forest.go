package model

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// ForestConfig holds the hyperparameters of the bagged regression forest
// used by the fallback synthesizer. The defaults favor wide leaves so that
// leaf averages stay inside the training-target range with low variance.
type ForestConfig struct {
	Trees       int
	MaxDepth    int
	MinLeaf     int
	MaxFeatures int
}

// DefaultForestConfig keeps the forest small (10 estimators) with
// conservative leaf sizing.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{Trees: 10, MaxDepth: 6, MinLeaf: 10, MaxFeatures: 6}
}

// forestModel is a multi-output bagged regression forest. Predictions are
// averages of training targets, so outputs never leave the training range
// even for inputs far outside it.
type forestModel struct {
	trees   []*treeNode
	inputs  int
	outputs int
}

type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     []float64 // leaf mean, nil for internal nodes
}

func (m *forestModel) NumOutputs() int { return m.outputs }

func (m *forestModel) Predict(features []float64) ([]float64, error) {
	if len(features) != m.inputs {
		return nil, fmt.Errorf("feature vector has %d elements, model expects %d", len(features), m.inputs)
	}
	out := make([]float64, m.outputs)
	for _, root := range m.trees {
		leaf := root
		for leaf.value == nil {
			if features[leaf.feature] <= leaf.threshold {
				leaf = leaf.left
			} else {
				leaf = leaf.right
			}
		}
		for k, v := range leaf.value {
			out[k] += v
		}
	}
	for k := range out {
		out[k] /= float64(len(m.trees))
	}
	return out, nil
}

// FitForest fits a bagged regression forest on X (n x p) against Y (n x k).
// Splits minimize the summed squared error across all outputs. The rng
// drives bootstrap sampling and feature subsetting; a fixed seed makes the
// fit fully deterministic.
func FitForest(X, Y *mat.Dense, cfg ForestConfig, rng *rand.Rand) (Estimator, error) {
	n, p := X.Dims()
	yn, k := Y.Dims()
	if n == 0 || yn != n {
		return nil, fmt.Errorf("fit: X has %d rows, Y has %d", n, yn)
	}
	if cfg.MaxFeatures <= 0 || cfg.MaxFeatures > p {
		cfg.MaxFeatures = p
	}

	f := &forestModel{inputs: p, outputs: k}
	for t := 0; t < cfg.Trees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		f.trees = append(f.trees, growTree(X, Y, sample, cfg, rng, 0))
	}
	return f, nil
}

func growTree(X, Y *mat.Dense, rows []int, cfg ForestConfig, rng *rand.Rand, depth int) *treeNode {
	if depth >= cfg.MaxDepth || len(rows) < 2*cfg.MinLeaf {
		return leafNode(Y, rows)
	}

	feature, threshold, ok := bestSplit(X, Y, rows, cfg, rng)
	if !ok {
		return leafNode(Y, rows)
	}

	var left, right []int
	for _, i := range rows {
		if X.At(i, feature) <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < cfg.MinLeaf || len(right) < cfg.MinLeaf {
		return leafNode(Y, rows)
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      growTree(X, Y, left, cfg, rng, depth+1),
		right:     growTree(X, Y, right, cfg, rng, depth+1),
	}
}

func leafNode(Y *mat.Dense, rows []int) *treeNode {
	_, k := Y.Dims()
	value := make([]float64, k)
	for _, i := range rows {
		for out := 0; out < k; out++ {
			value[out] += Y.At(i, out)
		}
	}
	for out := range value {
		value[out] /= float64(len(rows))
	}
	return &treeNode{value: value}
}

// bestSplit scans a random feature subset with sampled thresholds and
// returns the split with the lowest weighted child SSE.
func bestSplit(X, Y *mat.Dense, rows []int, cfg ForestConfig, rng *rand.Rand) (int, float64, bool) {
	_, p := X.Dims()
	features := rng.Perm(p)[:cfg.MaxFeatures]

	const thresholdCandidates = 10
	bestScore := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0

	for _, feature := range features {
		for c := 0; c < thresholdCandidates; c++ {
			threshold := X.At(rows[rng.Intn(len(rows))], feature)
			var left, right []int
			for _, i := range rows {
				if X.At(i, feature) <= threshold {
					left = append(left, i)
				} else {
					right = append(right, i)
				}
			}
			if len(left) < cfg.MinLeaf || len(right) < cfg.MinLeaf {
				continue
			}
			score := sse(Y, left) + sse(Y, right)
			if score < bestScore {
				bestScore = score
				bestFeature, bestThreshold = feature, threshold
			}
		}
	}
	return bestFeature, bestThreshold, bestFeature >= 0
}

// sse is the summed squared error around the per-output mean.
func sse(Y *mat.Dense, rows []int) float64 {
	_, k := Y.Dims()
	total := 0.0
	for out := 0; out < k; out++ {
		mean := 0.0
		for _, i := range rows {
			mean += Y.At(i, out)
		}
		mean /= float64(len(rows))
		for _, i := range rows {
			d := Y.At(i, out) - mean
			total += d * d
		}
	}
	return total
}
