// Package vector implements the dense/sparse dual vector representation used
// throughout svmgo.
//
// Both representations are immutable value objects: every operator returns a
// freshly allocated vector and nothing is mutated after construction, so
// vectors may be shared freely across goroutines.
//
// Dense stores every component, including zeros, in a fixed-length array.
// Sparse stores only non-zero components as parallel arrays of strictly
// increasing indices and their values. All sparse-sparse binary operators are
// built from two merge-join primitives, Map2 and Fold2, which walk the sorted
// index arrays of both operands in a single linear pass.
package vector

// Vector is the capability shared by the two representations. It is a closed
// contract: Dense and Sparse are the only implementations.
type Vector interface {
	// Dimensions returns one past the highest index with a stored component,
	// which for Dense includes explicitly stored zeros.
	Dimensions() int

	// SumBy accumulates f(index, value) over the stored components in
	// ascending index order. Sparse vectors visit only their non-zero
	// components.
	SumBy(f func(index int, value float64) float64) float64

	// AsDense returns the dense form of the vector.
	AsDense() *Dense

	// AsSparse returns the sparse form of the vector, dropping every
	// component that is exactly zero.
	AsSparse() *Sparse
}
