package vector

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"

	"github.com/YuminosukeSato/svmgo/pkg/errors"
)

// Sparse stores only non-zero components as parallel arrays of strictly
// increasing indices and their values.
//
// Invariants: len(indices) == len(values); indices are non-negative and
// strictly increasing; no stored value is exactly zero. NewSparse enforces
// all three; every operator in this package preserves them.
type Sparse struct {
	indices []int
	values  []float64
}

// NewSparse creates a sparse vector from copies of indices and values,
// validating the representation invariants. Violations return a
// ValidationError instead of corrupting later merge-join traversals.
func NewSparse(indices []int, values []float64) (*Sparse, error) {
	if len(indices) != len(values) {
		return nil, errors.NewValidationError("indices",
			"index and value arrays must have equal length", len(indices))
	}
	for p, idx := range indices {
		if idx < 0 {
			return nil, errors.NewValidationError("indices",
				"indices must be non-negative", idx)
		}
		if p > 0 && idx <= indices[p-1] {
			return nil, errors.NewValidationError("indices",
				"indices must be strictly increasing", idx)
		}
		if values[p] == 0 {
			return nil, errors.NewValidationError("values",
				"stored values must be non-zero", p)
		}
	}
	i := make([]int, len(indices))
	v := make([]float64, len(values))
	copy(i, indices)
	copy(v, values)
	return &Sparse{indices: i, values: v}, nil
}

// newSparse wraps arrays whose invariants the caller guarantees. The arrays
// must not be retained by the caller.
func newSparse(indices []int, values []float64) *Sparse {
	return &Sparse{indices: indices, values: values}
}

// EmptySparse returns the zero-dimensional sparse vector.
func EmptySparse() *Sparse {
	return &Sparse{}
}

// Dimensions returns one past the highest stored index, or 0 when empty.
func (s *Sparse) Dimensions() int {
	if len(s.indices) == 0 {
		return 0
	}
	return s.indices[len(s.indices)-1] + 1
}

// NumStored returns the number of stored (non-zero) components.
func (s *Sparse) NumStored() int {
	return len(s.indices)
}

// Indices returns a copy of the stored index array.
func (s *Sparse) Indices() []int {
	out := make([]int, len(s.indices))
	copy(out, s.indices)
	return out
}

// Values returns a copy of the stored value array.
func (s *Sparse) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// At returns the component at index i, or 0 when i is not stored. The lookup
// is a binary search over the sorted index array.
func (s *Sparse) At(i int) float64 {
	pos := sort.SearchInts(s.indices, i)
	if pos < len(s.indices) && s.indices[pos] == i {
		return s.values[pos]
	}
	return 0
}

// SumBy accumulates f(index, value) over the stored components in ascending
// index order. Components not stored are zero and are not visited.
func (s *Sparse) SumBy(f func(index int, value float64) float64) float64 {
	var sum float64
	for p, idx := range s.indices {
		sum += f(idx, s.values[p])
	}
	return sum
}

// AsSparse returns the receiver; Sparse is immutable so no copy is needed.
func (s *Sparse) AsSparse() *Sparse {
	return s
}

// AsDense converts to the dense representation, filling non-stored positions
// with zero. The result has length Dimensions().
func (s *Sparse) AsDense() *Dense {
	out := make([]float64, s.Dimensions())
	for p, idx := range s.indices {
		out[idx] = s.values[p]
	}
	return &Dense{values: out}
}

// Slice returns the components whose index lies in the inclusive range
// [lo, hi], re-based so the component at index lo (if stored) moves to
// index 0. Endpoints are translated to array positions by binary search, so
// bounds that are not themselves stored indices are fine.
func (s *Sparse) Slice(lo, hi int) *Sparse {
	return s.slice(lo, sort.SearchInts(s.indices, lo), sort.SearchInts(s.indices, hi+1))
}

// SliceFrom returns the components with index >= lo, re-based by lo.
func (s *Sparse) SliceFrom(lo int) *Sparse {
	return s.slice(lo, sort.SearchInts(s.indices, lo), len(s.indices))
}

// SliceTo returns the components with index <= hi, keeping their indices.
func (s *Sparse) SliceTo(hi int) *Sparse {
	return s.slice(0, 0, sort.SearchInts(s.indices, hi+1))
}

func (s *Sparse) slice(base, from, to int) *Sparse {
	if from >= to {
		return EmptySparse()
	}
	indices := make([]int, to-from)
	values := make([]float64, to-from)
	for p := from; p < to; p++ {
		indices[p-from] = s.indices[p] - base
	}
	copy(values, s.values[from:to])
	return newSparse(indices, values)
}

// Add returns the elementwise sum via the merge-join combinator.
func (s *Sparse) Add(other *Sparse) *Sparse {
	return Map2(func(a, b float64) float64 { return a + b }, s, other)
}

// Sub returns the elementwise difference via the merge-join combinator.
func (s *Sparse) Sub(other *Sparse) *Sparse {
	return Map2(func(a, b float64) float64 { return a - b }, s, other)
}

// Mul returns the elementwise product via the merge-join combinator.
func (s *Sparse) Mul(other *Sparse) *Sparse {
	return Map2(func(a, b float64) float64 { return a * b }, s, other)
}

// Neg returns the elementwise negation. Negating a non-zero value never
// yields zero, so no filtering is needed.
func (s *Sparse) Neg() *Sparse {
	values := make([]float64, len(s.values))
	for p, v := range s.values {
		values[p] = -v
	}
	indices := make([]int, len(s.indices))
	copy(indices, s.indices)
	return newSparse(indices, values)
}

// Scale returns the vector multiplied by scalar a, mapping over stored
// values only. Scaling by zero collapses to the empty vector to preserve
// the non-zero invariant.
func (s *Sparse) Scale(a float64) *Sparse {
	if a == 0 {
		return EmptySparse()
	}
	values := make([]float64, len(s.values))
	for p, v := range s.values {
		values[p] = v * a
	}
	indices := make([]int, len(s.indices))
	copy(indices, s.indices)
	return newSparse(indices, values)
}

// Div returns the vector divided by scalar a, mapping over stored values
// only.
func (s *Sparse) Div(a float64) *Sparse {
	values := make([]float64, len(s.values))
	for p, v := range s.values {
		values[p] = v / a
	}
	indices := make([]int, len(s.indices))
	copy(indices, s.indices)
	return newSparse(indices, values)
}

// Dot returns the sparse-sparse scalar product. Unlike Map2, mismatched
// indices contribute zero and are skipped without emitting anything; only
// matching indices accumulate. When both operands are the identical
// instance, every index trivially matches itself, so the merge collapses to
// a single pass of squared values.
func (s *Sparse) Dot(other *Sparse) float64 {
	if s == other {
		var sum float64
		for _, v := range s.values {
			sum += v * v
		}
		return sum
	}
	var sum float64
	i, j := 0, 0
	for i < len(s.indices) && j < len(other.indices) {
		switch {
		case s.indices[i] < other.indices[j]:
			i++
		case s.indices[i] > other.indices[j]:
			j++
		default:
			sum += s.values[i] * other.values[j]
			i++
			j++
		}
	}
	return sum
}

// DotDense returns the scalar product against a dense vector, iterating only
// the sparse side's stored components.
func (s *Sparse) DotDense(d *Dense) float64 {
	return d.DotSparse(s)
}

// DotSlice returns the scalar product against a raw weight array. Stored
// indices beyond len(w) are skipped. This is the allocation-free form of
// DotDense used by solvers that keep their weights as a plain slice.
func (s *Sparse) DotSlice(w []float64) float64 {
	var sum float64
	for p, idx := range s.indices {
		if idx >= len(w) {
			break
		}
		sum += w[idx] * s.values[p]
	}
	return sum
}

// AddScaledTo accumulates w[idx] += a*value for every stored component into
// a raw weight array, skipping stored indices beyond len(w). The receiver is
// not modified.
func (s *Sparse) AddScaledTo(w []float64, a float64) {
	for p, idx := range s.indices {
		if idx >= len(w) {
			break
		}
		w[idx] += a * s.values[p]
	}
}

// MapIndices returns a vector with the same stored values relocated to
// f(index). f must be strictly increasing over the stored indices and must
// not produce negative indices; violating that is a programming error and
// panics, since it would corrupt every later merge-join traversal.
func (s *Sparse) MapIndices(f func(index int) int) *Sparse {
	indices := make([]int, len(s.indices))
	for p, idx := range s.indices {
		mapped := f(idx)
		if mapped < 0 || (p > 0 && mapped <= indices[p-1]) {
			panic("vector: MapIndices requires a strictly increasing, non-negative index mapping")
		}
		indices[p] = mapped
	}
	values := make([]float64, len(s.values))
	copy(values, s.values)
	return newSparse(indices, values)
}

// Equal reports structural equality over both parallel arrays.
func (s *Sparse) Equal(other *Sparse) bool {
	if len(s.indices) != len(other.indices) {
		return false
	}
	for p, idx := range s.indices {
		if idx != other.indices[p] || s.values[p] != other.values[p] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash over both parallel arrays. Equal vectors
// hash equally.
func (s *Sparse) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for p, idx := range s.indices {
		binary.LittleEndian.PutUint64(buf[:], uint64(idx))
		h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(s.values[p]))
		h.Write(buf[:])
	}
	return h.Sum64()
}
