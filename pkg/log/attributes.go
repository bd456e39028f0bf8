// Package log defines standard attribute keys for training and inference
// operations.
//
// Using these keys keeps log output consistent across the vector, svm and
// oneslack packages so that structured logs can be filtered per model,
// operation and iteration.
package log

// Model and operation context.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "MultiClass", "oneslack.Model"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "learn", "predict", "optimize"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "svm", "oneslack", "vector"
	ComponentKey = "ml.component"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of training examples.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the dimension of the base feature space.
	FeaturesKey = "data.features"

	// ClassesKey indicates the number of distinct labels seen in training.
	ClassesKey = "svm.classes"

	// NonZerosKey indicates the number of stored components of a sparse vector.
	NonZerosKey = "data.nonzeros"
)

// Solver progress.
const (
	// IterationKey indicates the current outer iteration of the solver.
	IterationKey = "solver.iteration"

	// ObjectiveKey carries the current primal objective value.
	ObjectiveKey = "solver.objective"

	// ViolationKey carries the violation of the most recent cutting plane.
	ViolationKey = "solver.violation"

	// ConstraintsKey indicates the size of the solver's working set.
	ConstraintsKey = "solver.constraints"

	// DurationMsKey carries elapsed wall-clock time in milliseconds.
	DurationMsKey = "duration.ms"
)
