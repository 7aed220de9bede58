// SPDX-License-Identifier: MIT

package majorization

import (
	"golang.org/x/exp/constraints"
)

// Number is the element type set accepted by the generic comparator.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is a probability vector with method forms of the binary relations,
// so that p ≺ q reads as p.Precedes(q).
type Vector []float64

// Precedes reports whether q majorizes v (v ≺ q).
func (v Vector) Precedes(q Vector, opts ...Option) bool {
	return Precedes([]float64(v), []float64(q), opts...)
}

// Majorizes reports whether v majorizes q (q ≺ v).
func (v Vector) Majorizes(q Vector, opts ...Option) bool {
	return Precedes([]float64(q), []float64(v), opts...)
}

// TV returns the total variation distance between v and q.
func (v Vector) TV(q Vector) (float64, error) {
	return TotalVariation(v, q)
}

// isExact reports whether T is an integer type. Integer division truncates
// one half to zero, which distinguishes every ~int from every ~float.
func isExact[T Number]() bool {
	one := T(1)

	return one/2 == 0
}
