// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

import "iter"

// All returns an iterator over every index in the family [0, n), in strictly
// increasing order 0, 1, …, n-1. The sequence is lazy but transparent: no
// hidden effects, the same n indices on every restart, and early break is
// honored. n <= 0 yields nothing.
func All(n int) iter.Seq[Idx] {
	return func(yield func(Idx) bool) {
		for i := 0; i < n; i++ {
			if !yield(unsafeIdx(i, n)) {
				return
			}
		}
	}
}

// List returns the family [0, n) materialized as a slice of length n,
// in strictly increasing order. n <= 0 returns nil.
func List(n int) []Idx {
	if n <= 0 {
		return nil
	}
	out := make([]Idx, n)
	for i := range out {
		out[i] = unsafeIdx(i, n)
	}
	return out
}
