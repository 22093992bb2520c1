// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

import "golang.org/x/exp/constraints"

// Derived aggregates over the index family [0, n).
// All are specializations of the pure right fold: total, synchronous, no
// suspension and no failure. For n <= 0 each returns its fold identity —
// Sum 0, Product 1, Count 0, Find None.

// Number constrains the element types Sum and Product reduce over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns Σ x(i) for i in [0, n).
func Sum[V Number](n int, x func(Idx) V) V {
	var zero V
	return Foldr(n, func(i Idx, acc V) V {
		return x(i) + acc
	}, zero)
}

// Product returns Π x(i) for i in [0, n).
func Product[V Number](n int, x func(Idx) V) V {
	return Foldr(n, func(i Idx, acc V) V {
		return x(i) * acc
	}, V(1))
}

// Count returns the number of indices in [0, n) satisfying p, in [0, n].
func Count(n int, p func(Idx) bool) int {
	return Sum(n, func(i Idx) int {
		if p(i) {
			return 1
		}
		return 0
	})
}

// Find returns the smallest index in [0, n) satisfying p, or None.
//
// The scan runs right to left, each satisfying index overwriting the
// candidate carried so far; the last overwrite comes from the smallest
// satisfying index, which is therefore the one that survives. The
// smallest-index tie-break is contractual.
func Find(n int, p func(Idx) bool) Option[Idx] {
	return Foldr(n, func(i Idx, v Option[Idx]) Option[Idx] {
		if p(i) {
			return Some(i)
		}
		return v
	}, None[Idx]())
}
