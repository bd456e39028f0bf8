// Package oneslack implements a one-slack cutting-plane optimizer for
// structured SVM training.
//
// The solver never sees labels or feature maps. A Problem hands it, for any
// current weight vector and example index, the most violated constraint of
// that example (a joint-feature margin vector and its loss). Each outer
// iteration averages the per-example constraints into a single cutting
// plane, and the quadratic program restricted to the working set of cutting
// planes is re-solved in the dual by coordinate ascent.
//
// Kernels, kernel caching and shrinking are deliberately out of scope; the
// weight vector is kept explicitly.
package oneslack

import (
	"log/slog"
	"time"

	"github.com/YuminosukeSato/svmgo/core/parallel"
	"github.com/YuminosukeSato/svmgo/pkg/errors"
	"github.com/YuminosukeSato/svmgo/pkg/log"
	"github.com/YuminosukeSato/svmgo/vector"
	"gonum.org/v1/gonum/mat"
)

// Constraint is one most-violated constraint: the joint-feature margin
// vector JF(x, y_true) - JF(x, y_hat) and the loss of y_hat against y_true.
type Constraint struct {
	Delta *vector.Sparse
	Loss  float64
}

// Problem describes a training problem to the solver.
type Problem struct {
	// Size is the number of training examples.
	Size int

	// Dim is the dimension of the joint weight space.
	Dim int

	// MostViolated returns the most violated constraint of example i under
	// the given weights. It must be safe to call concurrently for distinct
	// i; the solver invokes it from multiple goroutines. The Model passed in
	// reflects the weights of the current iteration and must not be
	// retained.
	MostViolated func(w *Model, i int) Constraint
}

// Params are the solver's tuning knobs.
type Params struct {
	// C is the regularization trade-off. Larger values penalize training
	// error more heavily.
	C float64

	// Epsilon is the convergence tolerance: optimization stops once the
	// aggregated constraint is violated by at most Epsilon beyond the
	// current slack.
	Epsilon float64

	// MaxIterations caps the number of outer (cutting plane) iterations. A
	// ConvergenceWarning is emitted through pkg/errors when the cap is hit.
	MaxIterations int

	// QPSweeps is the number of dual coordinate-ascent sweeps per working
	// set re-solve.
	QPSweeps int

	// Progress, when non-nil, is called after every outer iteration.
	Progress func(p Progress)
}

// Progress reports the state of one outer iteration.
type Progress struct {
	Iteration   int
	Objective   float64 // primal objective 0.5*||w||^2 + C*slack
	Violation   float64 // violation of the newest aggregated constraint
	Constraints int     // working set size
}

// DefaultParams returns the solver defaults.
func DefaultParams() Params {
	return Params{
		C:             1.0,
		Epsilon:       1e-3,
		MaxIterations: 200,
		QPSweeps:      100,
	}
}

// Sequential threshold for the per-example constraint search.
const parallelThreshold = 64

// Model is the trained weight vector. It is opaque to callers apart from
// dot-product scoring and read-only component access.
type Model struct {
	w []float64
}

// ScoreSparse returns the dot product of the weights with a sparse vector.
// Stored indices beyond the weight dimension are skipped.
func (m *Model) ScoreSparse(v *vector.Sparse) float64 {
	return v.DotSlice(m.w)
}

// WeightAt returns the weight component at index i, or 0 beyond the weight
// dimension.
func (m *Model) WeightAt(i int) float64 {
	if i < 0 || i >= len(m.w) {
		return 0
	}
	return m.w[i]
}

// Dimensions returns the dimension of the weight space.
func (m *Model) Dimensions() int {
	return len(m.w)
}

// Weights returns a dense copy of the weight vector.
func (m *Model) Weights() *vector.Dense {
	return vector.NewDense(m.w)
}

// Optimize runs the one-slack cutting-plane algorithm and returns the
// trained weights.
func Optimize(prob Problem, params Params) (*Model, error) {
	if prob.Size <= 0 {
		return nil, errors.NewModelError("oneslack.Optimize", "empty problem", errors.ErrEmptyData)
	}
	if prob.Dim <= 0 {
		return nil, errors.NewValueError("oneslack.Optimize", "weight dimension must be positive")
	}
	if prob.MostViolated == nil {
		return nil, errors.NewValueError("oneslack.Optimize", "MostViolated callback is required")
	}
	if params.C <= 0 {
		return nil, errors.NewValueError("oneslack.Optimize", "C must be positive")
	}
	if params.MaxIterations <= 0 {
		params.MaxIterations = DefaultParams().MaxIterations
	}
	if params.QPSweeps <= 0 {
		params.QPSweeps = DefaultParams().QPSweeps
	}

	logger := slog.Default().With(
		log.ComponentKey, "oneslack",
		log.OperationKey, "optimize",
		log.SamplesKey, prob.Size,
		log.FeaturesKey, prob.Dim,
	)
	start := time.Now()

	model := &Model{w: make([]float64, prob.Dim)}
	var (
		planes []Constraint // aggregated cutting planes
		alpha  []float64    // dual multipliers, one per plane
		gram   *mat.SymDense
	)

	converged := false
	for iter := 1; iter <= params.MaxIterations; iter++ {
		agg := collectAggregate(prob, model)

		slack := currentSlack(model, planes)
		violation := agg.Loss - model.ScoreSparse(agg.Delta)

		if violation <= slack+params.Epsilon {
			logger.Info("converged",
				log.IterationKey, iter,
				log.ViolationKey, violation,
				log.ConstraintsKey, len(planes),
			)
			converged = true
			reportProgress(params, iter, model, slack, violation, len(planes))
			break
		}

		planes = append(planes, agg)
		alpha = append(alpha, 0)
		gram = growGram(gram, planes)

		solveDual(alpha, gram, planes, params.C, params.QPSweeps)
		accumulateWeights(model.w, planes, alpha)

		slack = currentSlack(model, planes)
		logger.Debug("cutting plane added",
			log.IterationKey, iter,
			log.ViolationKey, violation,
			log.ObjectiveKey, primalObjective(model.w, slack, params.C),
			log.ConstraintsKey, len(planes),
		)
		reportProgress(params, iter, model, slack, violation, len(planes))
	}

	if !converged {
		errors.Warn(errors.NewConvergenceWarning("oneslack", params.MaxIterations, ""))
	}
	logger.Info("optimization finished",
		log.ConstraintsKey, len(planes),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return model, nil
}

// collectAggregate gathers every example's most violated constraint, in
// parallel, and averages them into one cutting plane.
func collectAggregate(prob Problem, model *Model) Constraint {
	found := make([]Constraint, prob.Size)
	parallel.ParallelizeWithThreshold(prob.Size, parallelThreshold, func(s, e int) {
		for i := s; i < e; i++ {
			found[i] = prob.MostViolated(model, i)
		}
	})

	sum := vector.EmptySparse()
	var loss float64
	for _, c := range found {
		sum = sum.Add(c.Delta)
		loss += c.Loss
	}
	n := float64(prob.Size)
	return Constraint{Delta: sum.Div(n), Loss: loss / n}
}

// currentSlack is the largest violation over the working set, floored at 0.
func currentSlack(model *Model, planes []Constraint) float64 {
	var slack float64
	for _, c := range planes {
		if v := c.Loss - model.ScoreSparse(c.Delta); v > slack {
			slack = v
		}
	}
	return slack
}

// growGram extends the Gram matrix with the dot products of the newest
// cutting plane against every plane in the working set.
func growGram(gram *mat.SymDense, planes []Constraint) *mat.SymDense {
	n := len(planes)
	next := mat.NewSymDense(n, nil)
	if gram != nil {
		for i := 0; i < n-1; i++ {
			for j := i; j < n-1; j++ {
				next.SetSym(i, j, gram.At(i, j))
			}
		}
	}
	newest := planes[n-1].Delta
	for i := 0; i < n; i++ {
		next.SetSym(i, n-1, planes[i].Delta.Dot(newest))
	}
	return next
}

// solveDual maximizes sum(alpha_j * loss_j) - 0.5*alpha'*H*alpha subject to
// alpha >= 0 and sum(alpha) <= C, by coordinate ascent with a scaling
// projection onto the sum constraint.
func solveDual(alpha []float64, gram *mat.SymDense, planes []Constraint, c float64, sweeps int) {
	n := len(alpha)
	for sweep := 0; sweep < sweeps; sweep++ {
		for j := 0; j < n; j++ {
			h := gram.At(j, j)
			if h <= 0 {
				continue
			}
			grad := planes[j].Loss
			for k := 0; k < n; k++ {
				grad -= gram.At(j, k) * alpha[k]
			}
			next := alpha[j] + grad/h
			if next < 0 {
				next = 0
			} else if next > c {
				next = c
			}
			alpha[j] = next
		}
		var total float64
		for _, a := range alpha {
			total += a
		}
		if total > c {
			scale := c / total
			for j := range alpha {
				alpha[j] *= scale
			}
		}
	}
}

// accumulateWeights rebuilds w = sum(alpha_j * delta_j) in place.
func accumulateWeights(w []float64, planes []Constraint, alpha []float64) {
	for i := range w {
		w[i] = 0
	}
	for j, c := range planes {
		if alpha[j] != 0 {
			c.Delta.AddScaledTo(w, alpha[j])
		}
	}
}

func primalObjective(w []float64, slack, c float64) float64 {
	var norm float64
	for _, v := range w {
		norm += v * v
	}
	return 0.5*norm + c*slack
}

func reportProgress(params Params, iter int, model *Model, slack, violation float64, constraints int) {
	if params.Progress == nil {
		return
	}
	params.Progress(Progress{
		Iteration:   iter,
		Objective:   primalObjective(model.w, slack, params.C),
		Violation:   violation,
		Constraints: constraints,
	})
}
