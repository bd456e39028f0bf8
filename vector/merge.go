package vector

// Map2 combines two sparse vectors elementwise with f, treating non-stored
// components as zero. It is the single primitive behind Add, Sub and Mul.
//
// Both index arrays are walked in ascending order with two cursors. When one
// cursor is behind the other, f is applied against an implicit zero on the
// other side; when the indices match, both stored values are combined and
// both cursors advance. After either side is exhausted the remainder of the
// other side drains the same way. A computed value is appended to the output
// only when it is non-zero, so the result's indices are the sorted union of
// the input indices restricted to non-zero results and the representation
// invariants hold for any f.
func Map2(f func(a, b float64) float64, x, y *Sparse) *Sparse {
	// Output can never exceed the union of stored positions.
	indices := make([]int, 0, len(x.indices)+len(y.indices))
	values := make([]float64, 0, len(x.indices)+len(y.indices))

	emit := func(idx int, v float64) {
		if v != 0 {
			indices = append(indices, idx)
			values = append(values, v)
		}
	}

	i, j := 0, 0
	for i < len(x.indices) && j < len(y.indices) {
		switch {
		case x.indices[i] < y.indices[j]:
			emit(x.indices[i], f(x.values[i], 0))
			i++
		case x.indices[i] > y.indices[j]:
			emit(y.indices[j], f(0, y.values[j]))
			j++
		default:
			emit(x.indices[i], f(x.values[i], y.values[j]))
			i++
			j++
		}
	}
	for ; i < len(x.indices); i++ {
		emit(x.indices[i], f(x.values[i], 0))
	}
	for ; j < len(y.indices); j++ {
		emit(y.indices[j], f(0, y.values[j]))
	}

	return newSparse(indices, values)
}

// Fold2 reduces two sparse vectors to a scalar with the same traversal as
// Map2, accumulating f(acc, a, b) at every position stored on either side
// instead of materializing an intermediate vector.
func Fold2(f func(acc, a, b float64) float64, init float64, x, y *Sparse) float64 {
	acc := init
	i, j := 0, 0
	for i < len(x.indices) && j < len(y.indices) {
		switch {
		case x.indices[i] < y.indices[j]:
			acc = f(acc, x.values[i], 0)
			i++
		case x.indices[i] > y.indices[j]:
			acc = f(acc, 0, y.values[j])
			j++
		default:
			acc = f(acc, x.values[i], y.values[j])
			i++
			j++
		}
	}
	for ; i < len(x.indices); i++ {
		acc = f(acc, x.values[i], 0)
	}
	for ; j < len(y.indices); j++ {
		acc = f(acc, 0, y.values[j])
	}
	return acc
}
