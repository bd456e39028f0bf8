// Package metrics provides evaluation metrics for multi-class predictions.
package metrics

import (
	"github.com/YuminosukeSato/svmgo/pkg/errors"
)

// Accuracy returns the fraction of predictions matching the true labels.
func Accuracy[L comparable](yTrue, yPred []L) (float64, error) {
	if len(yTrue) == 0 {
		return 0, errors.NewValueError("Accuracy", "empty label slice")
	}
	if len(yTrue) != len(yPred) {
		return 0, errors.NewDimensionError("Accuracy", len(yTrue), len(yPred))
	}

	correct := 0
	for i, y := range yTrue {
		if yPred[i] == y {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}

// ErrorRate returns 1 - Accuracy.
func ErrorRate[L comparable](yTrue, yPred []L) (float64, error) {
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1 - acc, nil
}

// ConfusionCounts tallies predictions per (true, predicted) label pair.
// Missing pairs were never observed.
func ConfusionCounts[L comparable](yTrue, yPred []L) (map[L]map[L]int, error) {
	if len(yTrue) == 0 {
		return nil, errors.NewValueError("ConfusionCounts", "empty label slice")
	}
	if len(yTrue) != len(yPred) {
		return nil, errors.NewDimensionError("ConfusionCounts", len(yTrue), len(yPred))
	}

	counts := make(map[L]map[L]int)
	for i, y := range yTrue {
		row := counts[y]
		if row == nil {
			row = make(map[L]int)
			counts[y] = row
		}
		row[yPred[i]]++
	}
	return counts, nil
}
