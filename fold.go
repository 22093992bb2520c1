// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// Bounded folds over the index family [0, n).
//
// The effectful folds visit every index exactly once, threading an
// accumulator through the steps inside the Eff context. The context decides
// what a step may do: Pure steps run synchronously, a throwing step
// short-circuits the remaining iterations, and any performed operation is a
// suspension point under Step. The fold itself only fixes the order —
// ascending for FoldlM, descending for FoldrM — and originates no effects
// of its own.
//
// Each loop carries an explicit decreasing measure: n - cursor for the left
// fold, the fuel counter for the right fold. The measure reaches zero exactly
// when the loop stops, so the recursion is bounded for every n.

// FoldlM reduces the family [0, n) left to right inside the effect context.
// The step f is applied at indices 0, 1, …, n-1, each step's output
// accumulator feeding the next step's input; the final accumulator is the
// result. n <= 0 returns init unchanged. Equivalent to a strict left-to-right
// reduction over [All](n).
func FoldlM[A any](n int, f func(A, Idx) Eff[A], init A) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		var loop func(acc A, cursor int) Resumed
		loop = func(acc A, cursor int) Resumed {
			if cursor >= n {
				return k(acc)
			}
			// cursor < n keeps the index in range; n - cursor strictly
			// decreases toward the base case.
			return f(acc, unsafeIdx(cursor, n))(func(next A) Resumed {
				return loop(next, cursor+1)
			})
		}
		return loop(init, 0)
	}
}

// FoldrM reduces the family [0, n) right to left inside the effect context.
// The step f is applied at indices n-1, n-2, …, 0, each step's output
// accumulator feeding the next (lower-index) step's input; the step at
// index 0 produces the result. The initial accumulator conceptually attaches
// to the virtual index n. n <= 0 returns init unchanged.
func FoldrM[A any](n int, f func(Idx, A) Eff[A], init A) Eff[A] {
	return func(k func(A) Resumed) Resumed {
		var descend func(acc A, fuel int) Resumed
		descend = func(acc A, fuel int) Resumed {
			if fuel <= 0 {
				return k(acc)
			}
			// fuel <= n gives fuel-1 < n, so the index is in range;
			// fuel strictly decreases toward the base case.
			i := fuel - 1
			return f(unsafeIdx(i, n), acc)(func(next A) Resumed {
				return descend(next, i)
			})
		}
		return descend(init, n)
	}
}

// Foldl is the pure specialization of [FoldlM]: a strict left-to-right
// reduction with no effect context. Same order contract, plain loop.
func Foldl[A any](n int, f func(A, Idx) A, init A) A {
	acc := init
	for cursor := 0; cursor < n; cursor++ {
		acc = f(acc, unsafeIdx(cursor, n))
	}
	return acc
}

// Foldr is the pure specialization of [FoldrM]: a strict right-to-left
// reduction with no effect context. The derived aggregates are built on it.
func Foldr[A any](n int, f func(Idx, A) A, init A) A {
	acc := init
	for fuel := n; fuel > 0; fuel-- {
		acc = f(unsafeIdx(fuel-1, n), acc)
	}
	return acc
}
