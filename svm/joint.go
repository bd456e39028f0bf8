package svm

import (
	"github.com/YuminosukeSato/svmgo/vector"
)

// JointFeature maps a base feature vector and a candidate class into the
// combined class-by-feature space: stored index i moves to i*numClasses + k,
// where k is the class position. The per-class blocks are interleaved at
// stride numClasses rather than concatenated, so a single weight vector of
// dimension D*numClasses scores any (x, y) pair with one dot product. This
// stride convention is load-bearing: a trained weight vector is only
// meaningful against the exact same mapping.
//
// k must lie in [0, numClasses); anything else is a programming error and
// panics.
func JointFeature(base *vector.Sparse, k, numClasses int) *vector.Sparse {
	if numClasses <= 0 || k < 0 || k >= numClasses {
		panic("svm: JointFeature class position out of range")
	}
	// i -> i*K + k is strictly increasing in i, so the sparse invariants
	// survive the relocation untouched.
	return base.MapIndices(func(i int) int {
		return i*numClasses + k
	})
}

// distinctLabels deduplicates ys preserving first-seen order. The returned
// slice fixes the canonical class positions used at both train and predict
// time; the map is its inverse.
func distinctLabels[L comparable](ys []L) ([]L, map[L]int) {
	order := make([]L, 0)
	index := make(map[L]int)
	for _, y := range ys {
		if _, seen := index[y]; !seen {
			index[y] = len(order)
			order = append(order, y)
		}
	}
	return order, index
}
