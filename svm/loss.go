package svm

// LossFunc scores how bad it is to predict yHat when the truth is y. It must
// be non-negative and zero when the labels agree.
type LossFunc[L comparable] func(y, yHat L) float64

// ZeroOneLoss is the standard 0/1 classification loss.
func ZeroOneLoss[L comparable](y, yHat L) float64 {
	if y == yHat {
		return 0
	}
	return 1
}

// Rescaling selects how the loss scales the margin requirement in
// loss-augmented decoding.
type Rescaling int

const (
	// MarginRescaling uses cost = loss - W.dF.
	MarginRescaling Rescaling = iota
	// SlackRescaling uses cost = loss - loss*(W.dF).
	SlackRescaling
)

func (r Rescaling) String() string {
	switch r {
	case MarginRescaling:
		return "margin"
	case SlackRescaling:
		return "slack"
	default:
		return "unknown"
	}
}
