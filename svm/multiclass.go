// Package svm implements linear multi-class classification as a structured
// SVM: a joint class-by-feature encoding turns multi-class learning into a
// single weight vector problem, and loss-augmented decoding feeds the
// one-slack cutting-plane optimizer the most violated constraint per
// example.
package svm

import (
	"log/slog"
	"time"

	"github.com/YuminosukeSato/svmgo/oneslack"
	"github.com/YuminosukeSato/svmgo/pkg/errors"
	"github.com/YuminosukeSato/svmgo/pkg/log"
	"github.com/YuminosukeSato/svmgo/vector"
)

// FeatureFunc maps an instance to its base feature vector.
type FeatureFunc[T any] func(x T) *vector.Sparse

// MultiClass is a trained multi-class model: the base feature function, the
// weight vector owned by the solver, and the label set in first-seen
// training order. It is immutable after Learn and safe for concurrent use.
type MultiClass[T any, L comparable] struct {
	feature FeatureFunc[T]
	weights WeightScorer
	labels  []L
}

// Learn trains a multi-class model on examples xs with labels ys. feature
// maps an instance to its base feature vector; loss scores label confusions
// (nil means 0/1 loss).
//
// The distinct labels of ys, in first-seen order, fix the class positions of
// the joint encoding. Training delegates to the one-slack cutting-plane
// optimizer, handing it loss-augmented decoding as the constraint oracle.
func Learn[T any, L comparable](xs []T, ys []L, feature FeatureFunc[T],
	loss LossFunc[L], opts ...Option) (*MultiClass[T, L], error) {

	if len(xs) == 0 {
		return nil, errors.NewModelError("svm.Learn", "empty training set", errors.ErrEmptyData)
	}
	if len(xs) != len(ys) {
		return nil, errors.NewDimensionError("svm.Learn", len(xs), len(ys))
	}
	if feature == nil {
		return nil, errors.NewValueError("svm.Learn", "feature function is required")
	}
	if loss == nil {
		loss = ZeroOneLoss[L]
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	labels, _ := distinctLabels(ys)
	k := len(labels)

	// Base features are fixed per example; compute them once up front.
	bases := make([]*vector.Sparse, len(xs))
	maxDim := 0
	for i, x := range xs {
		bases[i] = feature(x)
		if d := bases[i].Dimensions(); d > maxDim {
			maxDim = d
		}
	}
	if maxDim == 0 {
		return nil, errors.NewModelError("svm.Learn", "all feature vectors are empty", errors.ErrEmptyData)
	}

	logger := slog.Default().With(
		log.ComponentKey, "svm",
		log.ModelNameKey, "MultiClass",
		log.OperationKey, "learn",
	)
	logger.Info("training started",
		log.SamplesKey, len(xs),
		log.FeaturesKey, maxDim,
		log.ClassesKey, k,
	)
	start := time.Now()

	prob := oneslack.Problem{
		Size: len(xs),
		Dim:  maxDim * k,
		MostViolated: func(w *oneslack.Model, i int) oneslack.Constraint {
			v := ArgmaxLoss(w, bases[i], ys[i], labels, loss, cfg.rescaling)
			return oneslack.Constraint{Delta: v.Delta, Loss: v.Loss}
		},
	}
	model, err := oneslack.Optimize(prob, oneslack.Params{
		C:             cfg.c,
		Epsilon:       cfg.epsilon,
		MaxIterations: cfg.maxIterations,
		Progress:      cfg.progress,
	})
	if err != nil {
		return nil, errors.Wrap(err, "svm.Learn: optimization failed")
	}

	logger.Info("training finished",
		log.ClassesKey, k,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return &MultiClass[T, L]{feature: feature, weights: model, labels: labels}, nil
}

// Labels returns the known labels in their canonical (first-seen) order.
func (m *MultiClass[T, L]) Labels() []L {
	out := make([]L, len(m.labels))
	copy(out, m.labels)
	return out
}

// Weights exposes the trained weight vector's scoring capability.
func (m *MultiClass[T, L]) Weights() WeightScorer {
	return m.weights
}

// Predict returns the highest-scoring known label for x. The base features
// are computed once; each class is scored by summing W[i*K + k] * value over
// the stored feature entries, without materializing joint vectors. Ties keep
// the first maximum in label order, matching loss-augmented decoding. Only
// labels seen during training can be returned.
func (m *MultiClass[T, L]) Predict(x T) (L, error) {
	var zero L
	if m == nil || m.weights == nil {
		return zero, errors.NewNotFittedError("MultiClass", "Predict")
	}

	base := m.feature(x)
	k := len(m.labels)

	cw, direct := m.weights.(ComponentScorer)

	bestPos := 0
	var bestScore float64
	for pos := range m.labels {
		score := m.scoreClass(cw, direct, base, pos, k)
		if pos == 0 || score > bestScore {
			bestPos, bestScore = pos, score
		}
	}
	return m.labels[bestPos], nil
}

func (m *MultiClass[T, L]) scoreClass(cw ComponentScorer, direct bool, base *vector.Sparse, pos, k int) float64 {
	if direct {
		return base.SumBy(func(i int, v float64) float64 {
			return cw.WeightAt(i*k+pos) * v
		})
	}
	return m.weights.ScoreSparse(JointFeature(base, pos, k))
}
