package svm

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/svmgo/vector"
)

// sliceWeights backs a weight vector with a raw slice, scoring exactly like
// the solver's model.
type sliceWeights []float64

func (w sliceWeights) ScoreSparse(v *vector.Sparse) float64 {
	return v.DotSlice(w)
}

func TestArgmaxLossZeroWeights(t *testing.T) {
	labels := []string{"a", "b", "c"}
	base := sparse(t, []int{0, 1}, []float64{1, 2})
	w := sliceWeights(make([]float64, 6))

	got := ArgmaxLoss(w, base, "a", labels, ZeroOneLoss[string], MarginRescaling)

	// With zero weights every cost equals the loss: 0 for the true label, 1
	// for the others. The first of the maximal labels wins.
	if got.Label != "b" {
		t.Errorf("Label = %q, want first non-true label %q", got.Label, "b")
	}
	if got.Loss != 1 || got.Cost != 1 {
		t.Errorf("Loss = %v, Cost = %v, want 1, 1", got.Loss, got.Cost)
	}
}

func TestArgmaxLossTiesKeepFirstLabel(t *testing.T) {
	labels := []string{"a", "b", "c"}
	base := sparse(t, []int{0}, []float64{1})
	w := sliceWeights(make([]float64, 3))

	// A loss that is zero everywhere makes every candidate cost 0.
	flat := func(y, yHat string) float64 { return 0 }
	got := ArgmaxLoss(w, base, "b", labels, flat, MarginRescaling)
	if got.Label != "a" {
		t.Errorf("Label = %q, want first label %q on an all-way tie", got.Label, "a")
	}
	if got.Cost != 0 {
		t.Errorf("Cost = %v, want 0", got.Cost)
	}
}

func TestArgmaxLossDelta(t *testing.T) {
	labels := []string{"a", "b"}
	base := sparse(t, []int{0}, []float64{1})
	w := sliceWeights(make([]float64, 2))

	got := ArgmaxLoss(w, base, "a", labels, ZeroOneLoss[string], MarginRescaling)

	// Delta = JF(x, a) - JF(x, b) = {0:1} - {1:1}.
	want := sparse(t, []int{0, 1}, []float64{1, -1})
	if !got.Delta.Equal(want) {
		t.Errorf("Delta = %v/%v, want %v/%v",
			got.Delta.Indices(), got.Delta.Values(), want.Indices(), want.Values())
	}
}

func TestArgmaxLossRescaling(t *testing.T) {
	labels := []string{"a", "b"}
	base := sparse(t, []int{0}, []float64{1})
	// W.Delta for candidate b is 0.5 - (-0.25) = 0.75.
	w := sliceWeights([]float64{0.5, -0.25})
	loss2 := func(y, yHat string) float64 {
		if y == yHat {
			return 0
		}
		return 2
	}

	tests := []struct {
		name      string
		rescaling Rescaling
		wantCost  float64
	}{
		{name: "margin rescaling", rescaling: MarginRescaling, wantCost: 2 - 0.75},
		{name: "slack rescaling", rescaling: SlackRescaling, wantCost: 2 - 2*0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ArgmaxLoss(w, base, "a", labels, loss2, tt.rescaling)
			if got.Label != "b" {
				t.Fatalf("Label = %q, want %q", got.Label, "b")
			}
			if math.Abs(got.Cost-tt.wantCost) > 1e-12 {
				t.Errorf("Cost = %v, want %v", got.Cost, tt.wantCost)
			}
		})
	}
}

// A well-separating weight vector leaves the true label as the least violated
// candidate and its own delta empty.
func TestArgmaxLossTrueLabelCostIsZero(t *testing.T) {
	labels := []string{"a", "b"}
	base := sparse(t, []int{0}, []float64{1})
	// Strongly favors class a at stride 2: w[0] = 5, w[1] = -5.
	w := sliceWeights([]float64{5, -5})

	got := ArgmaxLoss(w, base, "a", labels, ZeroOneLoss[string], MarginRescaling)
	if got.Label != "a" {
		t.Fatalf("Label = %q, want %q", got.Label, "a")
	}
	if got.Cost != 0 || got.Loss != 0 || got.Delta.NumStored() != 0 {
		t.Errorf("true-label violation = %+v, want zero cost, loss and empty delta", got)
	}
}
