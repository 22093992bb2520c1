// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Structural recursors over a bounded index.
//
// An index in the family [0, n+1) is either zero or the successor of some
// index in [0, n). The recursors make that case split explicit: a single
// runtime branch on the value, with the predecessor handed to the successor
// branch one bound lower.

// CasesZeroSucc case-splits the index x without recursion.
// When x is zero the zero branch decides the result; otherwise the succ
// branch receives the predecessor, an index in the family one bound smaller.
func CasesZeroSucc[T any](x Idx, zero func() T, succ func(pred Idx) T) T {
	if x.value == 0 {
		return zero()
	}
	return succ(unsafeIdx(x.value-1, x.bound-1))
}

// RecZeroSucc computes a result for x by strong induction downward on its
// value. The zero branch is the base case; the succ branch receives the
// predecessor and the result already computed for the predecessor's lifted
// embedding (same bound, value one less). The value strictly decreases on
// every recursive call and bottoms out at zero.
func RecZeroSucc[T any](x Idx, zero func() T, succ func(pred Idx, below T) T) T {
	if x.value == 0 {
		return zero()
	}
	pred := unsafeIdx(x.value-1, x.bound-1)
	below := RecZeroSucc(unsafeIdx(pred.value, x.bound), zero, succ)
	return succ(pred, below)
}
