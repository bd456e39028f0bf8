package vector

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/YuminosukeSato/svmgo/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dense is a fixed-length vector storing every component explicitly,
// including zeros. The length is immutable after construction.
type Dense struct {
	values []float64
}

// NewDense creates a dense vector from a copy of values.
func NewDense(values []float64) *Dense {
	v := make([]float64, len(values))
	copy(v, values)
	return &Dense{values: v}
}

// Zeros creates a dense vector of n explicitly stored zero components.
func Zeros(n int) *Dense {
	return &Dense{values: make([]float64, n)}
}

// NewDenseFromVec creates a dense vector from a gonum vector.
func NewDenseFromVec(v mat.Vector) *Dense {
	values := make([]float64, v.Len())
	for i := range values {
		values[i] = v.AtVec(i)
	}
	return &Dense{values: values}
}

// VecDense returns a gonum copy of the vector for interop with gonum/mat.
func (d *Dense) VecDense() *mat.VecDense {
	v := make([]float64, len(d.values))
	copy(v, d.values)
	return mat.NewVecDense(len(v), v)
}

// Dimensions returns the length of the vector.
func (d *Dense) Dimensions() int {
	return len(d.values)
}

// At returns the component at index i. Out-of-range access panics, matching
// Go slice indexing.
func (d *Dense) At(i int) float64 {
	return d.values[i]
}

// Values returns a copy of the component array.
func (d *Dense) Values() []float64 {
	v := make([]float64, len(d.values))
	copy(v, d.values)
	return v
}

// SumBy accumulates f(index, value) over all components in ascending order.
func (d *Dense) SumBy(f func(index int, value float64) float64) float64 {
	var sum float64
	for i, v := range d.values {
		sum += f(i, v)
	}
	return sum
}

// AsDense returns the receiver; Dense is immutable so no copy is needed.
func (d *Dense) AsDense() *Dense {
	return d
}

// AsSparse converts to the sparse representation, dropping every component
// that is exactly zero. The round trip AsSparse().AsDense() shrinks the
// length to one past the last non-zero component.
func (d *Dense) AsSparse() *Sparse {
	nnz := 0
	for _, v := range d.values {
		if v != 0 {
			nnz++
		}
	}
	indices := make([]int, 0, nnz)
	values := make([]float64, 0, nnz)
	for i, v := range d.values {
		if v != 0 {
			indices = append(indices, i)
			values = append(values, v)
		}
	}
	return &Sparse{indices: indices, values: values}
}

// Slice returns a new dense vector over the inclusive index range [lo, hi].
func (d *Dense) Slice(lo, hi int) (*Dense, error) {
	if lo < 0 || hi >= len(d.values) || lo > hi {
		return nil, errors.NewValueError("Dense.Slice",
			"bounds must satisfy 0 <= lo <= hi < Dimensions()")
	}
	return NewDense(d.values[lo : hi+1]), nil
}

// SliceFrom returns the suffix starting at index lo, inclusive.
func (d *Dense) SliceFrom(lo int) (*Dense, error) {
	return d.Slice(lo, len(d.values)-1)
}

// SliceTo returns the prefix ending at index hi, inclusive.
func (d *Dense) SliceTo(hi int) (*Dense, error) {
	return d.Slice(0, hi)
}

// Add returns the elementwise sum. Operands of unequal length are rejected
// rather than silently truncated or padded.
func (d *Dense) Add(other *Dense) (*Dense, error) {
	return d.combine("Dense.Add", other, func(a, b float64) float64 { return a + b })
}

// Sub returns the elementwise difference.
func (d *Dense) Sub(other *Dense) (*Dense, error) {
	return d.combine("Dense.Sub", other, func(a, b float64) float64 { return a - b })
}

// Mul returns the elementwise (Hadamard) product.
func (d *Dense) Mul(other *Dense) (*Dense, error) {
	return d.combine("Dense.Mul", other, func(a, b float64) float64 { return a * b })
}

func (d *Dense) combine(op string, other *Dense, f func(a, b float64) float64) (*Dense, error) {
	if len(d.values) != len(other.values) {
		return nil, errors.NewDimensionError(op, len(d.values), len(other.values))
	}
	out := make([]float64, len(d.values))
	for i, v := range d.values {
		out[i] = f(v, other.values[i])
	}
	return &Dense{values: out}, nil
}

// AddSparse returns the elementwise sum with a sparse vector, iterating only
// the sparse side's stored components. The sparse operand must fit inside
// the dense length.
func (d *Dense) AddSparse(s *Sparse) (*Dense, error) {
	return d.combineSparse("Dense.AddSparse", s, 1)
}

// SubSparse returns the elementwise difference with a sparse vector.
func (d *Dense) SubSparse(s *Sparse) (*Dense, error) {
	return d.combineSparse("Dense.SubSparse", s, -1)
}

func (d *Dense) combineSparse(op string, s *Sparse, sign float64) (*Dense, error) {
	if s.Dimensions() > len(d.values) {
		return nil, errors.NewDimensionError(op, len(d.values), s.Dimensions())
	}
	out := make([]float64, len(d.values))
	copy(out, d.values)
	s.AddScaledTo(out, sign)
	return &Dense{values: out}, nil
}

// Neg returns the elementwise negation.
func (d *Dense) Neg() *Dense {
	out := make([]float64, len(d.values))
	for i, v := range d.values {
		out[i] = -v
	}
	return &Dense{values: out}
}

// Scale returns the vector multiplied by scalar a.
func (d *Dense) Scale(a float64) *Dense {
	out := make([]float64, len(d.values))
	for i, v := range d.values {
		out[i] = v * a
	}
	return &Dense{values: out}
}

// Div returns the vector divided by scalar a. Division by zero follows IEEE
// float semantics.
func (d *Dense) Div(a float64) *Dense {
	out := make([]float64, len(d.values))
	for i, v := range d.values {
		out[i] = v / a
	}
	return &Dense{values: out}
}

// Dot returns the scalar product of two dense vectors of equal length.
// When both operands are the identical instance the merge degenerates to a
// single pass of squared values.
func (d *Dense) Dot(other *Dense) (float64, error) {
	if d == other {
		var sum float64
		for _, v := range d.values {
			sum += v * v
		}
		return sum, nil
	}
	if len(d.values) != len(other.values) {
		return 0, errors.NewDimensionError("Dense.Dot", len(d.values), len(other.values))
	}
	var sum float64
	for i, v := range d.values {
		sum += v * other.values[i]
	}
	return sum, nil
}

// DotSparse returns the scalar product against a sparse vector. Only the
// sparse side's stored components are visited; stored indices beyond the
// dense length are skipped, not an error.
func (d *Dense) DotSparse(s *Sparse) float64 {
	var sum float64
	for p, idx := range s.indices {
		if idx >= len(d.values) {
			break
		}
		sum += d.values[idx] * s.values[p]
	}
	return sum
}

// Equal reports structural equality over the component array. Vectors of
// different length are never equal, even when the longer one differs only in
// trailing zeros; the sparse forms of those same two vectors would compare
// equal. This asymmetry is deliberate and preserved from the original
// semantics.
func (d *Dense) Equal(other *Dense) bool {
	if len(d.values) != len(other.values) {
		return false
	}
	for i, v := range d.values {
		if v != other.values[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash over the component array. Equal vectors
// hash equally.
func (d *Dense) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range d.values {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return h.Sum64()
}
