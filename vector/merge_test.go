package vector

import (
	"math"
	"testing"
)

// Sparse elementwise ops must agree with the dense definition at every
// position up to max(dim(a), dim(b)).
func TestMap2AgreesWithDenseDefinition(t *testing.T) {
	a := mustSparse(t, []int{1, 3, 7}, []float64{2, 4, -1})
	b := mustSparse(t, []int{1, 2, 5}, []float64{1, 5, 3})

	fns := []struct {
		name string
		f    func(x, y float64) float64
	}{
		{name: "add", f: func(x, y float64) float64 { return x + y }},
		{name: "sub", f: func(x, y float64) float64 { return x - y }},
		{name: "mul", f: func(x, y float64) float64 { return x * y }},
		{name: "cancelling", f: func(x, y float64) float64 { return x + y - x - y }},
	}

	for _, tt := range fns {
		t.Run(tt.name, func(t *testing.T) {
			got := Map2(tt.f, a, b)

			dim := a.Dimensions()
			if b.Dimensions() > dim {
				dim = b.Dimensions()
			}
			for i := 0; i < dim; i++ {
				want := tt.f(a.At(i), b.At(i))
				if got.At(i) != want {
					t.Errorf("index %d: got %v, want %v", i, got.At(i), want)
				}
			}
		})
	}
}

func TestMap2PreservesInvariants(t *testing.T) {
	a := mustSparse(t, []int{0, 2, 4}, []float64{1, -5, 5})
	b := mustSparse(t, []int{2, 4, 9}, []float64{5, -5, 2})

	// a+b cancels at index 2 and 4; those positions must be filtered out.
	sum := a.Add(b)

	indices := sum.Indices()
	for p := 1; p < len(indices); p++ {
		if indices[p] <= indices[p-1] {
			t.Fatalf("indices not strictly increasing: %v", indices)
		}
	}
	for _, v := range sum.Values() {
		if v == 0 {
			t.Fatalf("stored zero leaked into result: %v", sum.Values())
		}
	}
	if !sum.Equal(mustSparse(t, []int{0, 9}, []float64{1, 2})) {
		t.Errorf("a+b = %v/%v", sum.Indices(), sum.Values())
	}
}

// End-to-end example: a = {1:2, 3:4}, b = {1:1, 2:5}.
func TestSparseOpsExample(t *testing.T) {
	a := mustSparse(t, []int{1, 3}, []float64{2, 4})
	b := mustSparse(t, []int{1, 2}, []float64{1, 5})

	sum := a.Add(b)
	if !sum.Equal(mustSparse(t, []int{1, 2, 3}, []float64{3, 5, 4})) {
		t.Errorf("a+b = %v/%v", sum.Indices(), sum.Values())
	}

	if got := a.Dot(b); got != 2 {
		t.Errorf("a .* b = %v, want 2", got)
	}
}

func TestFold2(t *testing.T) {
	a := mustSparse(t, []int{1, 3}, []float64{2, 4})
	b := mustSparse(t, []int{1, 2}, []float64{1, 5})

	// A dot product expressed as a fold: positions stored on one side only
	// contribute zero products.
	dot := Fold2(func(acc, x, y float64) float64 { return acc + x*y }, 0, a, b)
	if dot != a.Dot(b) {
		t.Errorf("Fold2 dot = %v, Dot = %v", dot, a.Dot(b))
	}

	// Count of positions stored on either side: union of {1,3} and {1,2}.
	count := Fold2(func(acc, x, y float64) float64 { return acc + 1 }, 0, a, b)
	if count != 3 {
		t.Errorf("union count = %v, want 3", count)
	}
}

// For dense vectors of equal length, the dense dot and the sparse merge dot
// must agree within floating-point tolerance.
func TestDotProductEquivalence(t *testing.T) {
	x := NewDense([]float64{1, 0, -2, 3.5, 0})
	y := NewDense([]float64{4, 2, 0.5, -1, 7})

	want, err := x.Dot(y)
	if err != nil {
		t.Fatalf("Dot: %v", err)
	}
	got := x.AsSparse().Dot(y.AsSparse())
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("sparse dot = %v, dense dot = %v", got, want)
	}

	mixed := y.DotSparse(x.AsSparse())
	if math.Abs(mixed-want) > 1e-12 {
		t.Errorf("dense-sparse dot = %v, dense dot = %v", mixed, want)
	}
}

func TestSparseSelfDot(t *testing.T) {
	s := mustSparse(t, []int{1, 4, 6}, []float64{2, -3, 0.5})
	fresh := mustSparse(t, []int{1, 4, 6}, []float64{2, -3, 0.5})

	if got, want := s.Dot(s), s.Dot(fresh); math.Abs(got-want) > 1e-12 {
		t.Errorf("self-dot fast path = %v, general = %v", got, want)
	}
	if got := s.Dot(s); got != 13.25 {
		t.Errorf("self dot = %v, want 13.25", got)
	}
}

// The dense-sparse product skips sparse indices beyond the dense length
// rather than failing.
func TestDotSparseSkipsOutOfRange(t *testing.T) {
	d := NewDense([]float64{1, 2})
	s := mustSparse(t, []int{0, 5}, []float64{3, 100})

	if got := d.DotSparse(s); got != 3 {
		t.Errorf("DotSparse = %v, want 3 (index 5 skipped)", got)
	}
}

func TestDenseSparseElementwise(t *testing.T) {
	d := NewDense([]float64{1, 2, 3, 4})
	s := mustSparse(t, []int{1, 3}, []float64{10, -4})

	sum, err := d.AddSparse(s)
	if err != nil {
		t.Fatalf("AddSparse: %v", err)
	}
	if !sum.Equal(NewDense([]float64{1, 12, 3, 0})) {
		t.Errorf("AddSparse = %v", sum.Values())
	}

	diff, err := d.SubSparse(s)
	if err != nil {
		t.Fatalf("SubSparse: %v", err)
	}
	if !diff.Equal(NewDense([]float64{1, -8, 3, 8})) {
		t.Errorf("SubSparse = %v", diff.Values())
	}

	wide := mustSparse(t, []int{9}, []float64{1})
	if _, err := d.AddSparse(wide); err == nil {
		t.Error("sparse operand wider than the dense length must fail")
	}
}

func TestDotDisjointIsZero(t *testing.T) {
	a := mustSparse(t, []int{0, 2}, []float64{1, 1})
	b := mustSparse(t, []int{1, 3}, []float64{1, 1})
	if got := a.Dot(b); got != 0 {
		t.Errorf("disjoint dot = %v, want 0", got)
	}
	if got := a.Dot(EmptySparse()); got != 0 {
		t.Errorf("dot with empty = %v, want 0", got)
	}
}
