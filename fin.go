// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange is returned by [New] when the requested index does not lie
// in [0, n). Errors wrapping it carry the offending index and bound.
var ErrOutOfRange = errors.New("index out of range")

// Idx is a bounded index: an integer value known to lie in [0, bound).
// The invariant value < bound is established at construction and cannot be
// broken afterwards — Idx is immutable and copied freely. Indices sharing a
// bound form one family; the fold combinators hand their step functions
// indices of the family [0, n) for the fold's own n.
//
// The zero Idx is not a valid index (its bound is 0); the constructors never
// produce it.
type Idx struct {
	value int
	bound int
}

// New constructs the index i in the family [0, n).
// Returns an error wrapping [ErrOutOfRange] when i < 0, n <= 0, or i >= n.
func New(i, n int) (Idx, error) {
	if i < 0 || i >= n {
		return Idx{}, fmt.Errorf("fin: %w: index %d, bound %d", ErrOutOfRange, i, n)
	}
	return Idx{value: i, bound: n}, nil
}

// Must constructs the index i in the family [0, n), panicking when i is out
// of range. Use it for indices known in range by construction.
func Must(i, n int) Idx {
	x, err := New(i, n)
	if err != nil {
		panic(err)
	}
	return x
}

// Clamp saturates i into the family [0, m+1): the result value is min(i, m),
// floored at 0, so the bound m+1 holds by the arithmetic itself. Total for
// every i; panics only when m < 0, where no family exists to clamp into.
func Clamp(i, m int) Idx {
	if m < 0 {
		panic("fin: clamp with negative bound " + strconv.Itoa(m))
	}
	v := min(i, m)
	v = max(v, 0)
	return Idx{value: v, bound: m + 1}
}

// Value returns the underlying index value, in [0, Bound()).
func (x Idx) Value() int { return x.value }

// Bound returns the exclusive upper bound of the index's family.
func (x Idx) Bound() int { return x.bound }

// IsZero reports whether the index value is 0.
func (x Idx) IsZero() bool { return x.value == 0 }

// Weaken embeds the index into the next larger family: the value is
// unchanged and the bound grows by one. value < bound implies
// value < bound+1, so the invariant is preserved.
func (x Idx) Weaken() Idx {
	return Idx{value: x.value, bound: x.bound + 1}
}

// String formats the index as value/bound for diagnostics.
func (x Idx) String() string {
	return strconv.Itoa(x.value) + "/" + strconv.Itoa(x.bound)
}

// unsafeIdx constructs an index without a range check.
// Callers must establish 0 <= i < n; the enumeration and fold loops do so
// via their own cursor and fuel bounds.
func unsafeIdx(i, n int) Idx {
	return Idx{value: i, bound: n}
}
