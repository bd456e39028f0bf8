package svm

import (
	"github.com/YuminosukeSato/svmgo/vector"
)

// WeightScorer is the opaque trained-weight contract: the only capability
// the encoding and decoding logic needs from a solver's model is a
// dot-product-style score against a sparse vector.
type WeightScorer interface {
	ScoreSparse(v *vector.Sparse) float64
}

// ComponentScorer is optionally implemented by weight vectors that also
// allow random access to single components. Predict uses it to score
// classes without materializing joint vectors; absent it, scoring falls
// back to ScoreSparse. Indices beyond the weight dimension return 0.
type ComponentScorer interface {
	WeightAt(index int) float64
}

// Violation is the result of loss-augmented decoding for one example: the
// class maximizing the slack-adjusted cost, its loss against the true label,
// the joint-feature margin vector, and the cost itself. The external solver
// turns this into a cutting-plane constraint.
type Violation[L comparable] struct {
	Label L
	Loss  float64
	Delta *vector.Sparse // JF(x, yTrue) - JF(x, label)
	Cost  float64
}

// ArgmaxLoss exhaustively scores every candidate label and returns the most
// violated one. For each candidate y:
//
//	cost = loss(yTrue, y) - m * (W . (JF(x, yTrue) - JF(x, y)))
//
// where m is the loss under slack rescaling and 1 under margin rescaling.
// Ties keep the first maximum in label order. The search is O(K) per call
// and can only ever return labels present in labels, so an unseen label is
// unrepresentable by construction.
func ArgmaxLoss[L comparable](w WeightScorer, base *vector.Sparse, yTrue L,
	labels []L, loss LossFunc[L], rescaling Rescaling) Violation[L] {

	k := len(labels)
	kTrue := labelPosition(labels, yTrue)
	jfTrue := JointFeature(base, kTrue, k)

	var best Violation[L]
	for pos, y := range labels {
		delta := jfTrue.Sub(JointFeature(base, pos, k))
		l := loss(yTrue, y)

		m := 1.0
		if rescaling == SlackRescaling {
			m = l
		}
		cost := l - m*w.ScoreSparse(delta)

		// Strict improvement only, so equal costs keep the earliest label.
		if pos == 0 || cost > best.Cost {
			best = Violation[L]{Label: y, Loss: l, Delta: delta, Cost: cost}
		}
	}
	return best
}

func labelPosition[L comparable](labels []L, y L) int {
	for pos, l := range labels {
		if l == y {
			return pos
		}
	}
	panic("svm: label not present in the training label set")
}
