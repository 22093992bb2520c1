// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fin provides bounded-index operations: combinators over indices
// known to lie in a half-open range [0, n), together with the effect-context
// machinery their folds are generic over.
//
// The core value type [Idx] pairs an index with its bound and maintains the
// invariant value < bound from construction onward. On top of it the package
// builds enumeration, effect-generic bounded folds, derived aggregates, and
// structural recursors.
//
// # Design Philosophy
//
// fin provides:
//   - A checked bounded-index value type with no invalid states after construction
//   - Folds generic over an effect context, so one combinator serves pure,
//     failing, and suspending step functions alike
//   - Explicit decreasing measures for every loop and recursion (cursor up to n,
//     fuel down to zero, index value down to zero) — termination is visible in
//     the control flow, never assumed
//
// # Bounded Indices
//
//   - [Idx]: index value with bound, invariant value < bound
//   - [New]: checked construction, returns [ErrOutOfRange] on violation
//   - [Must]: construction for indices known in range (panics on violation)
//   - [Clamp]: saturating construction — Clamp(i, m) is min(i, m) in [0, m+1)
//   - [Idx.Weaken]: embed [0, n) into [0, n+1) without changing the value
//
// # Enumeration
//
//   - [All]: lazy iterator over 0, 1, …, n-1, in order, restartable
//   - [List]: the same sequence materialized as a slice
//
// # Bounded Folds
//
// The effectful folds run step functions in the [Eff] context and impose a
// strict visiting order regardless of which handler interprets the effects:
//
//   - [FoldlM]: ascending 0..n-1, accumulator threaded left to right
//   - [FoldrM]: descending n-1..0, fuel-counted, accumulator threaded right to left
//
// Pure specializations for step functions with no effects:
//
//   - [Foldl], [Foldr]: plain loops with the same order contracts
//
// A step that throws (Error effect) short-circuits the fold: remaining
// indices are never visited and the failure becomes the fold's own result.
// A step that performs any effect is a suspension point under [Step]; steps
// still complete strictly in order, one at a time.
//
// # Derived Aggregates
//
// Specializations of the pure right fold, total for every n including n = 0:
//
//   - [Sum]: Σ x(i), identity 0
//   - [Product]: Π x(i), identity 1
//   - [Count]: number of indices satisfying a predicate
//   - [Find]: smallest index satisfying a predicate, or [None]
//
// [Find] scans right to left; a satisfying index overwrites any candidate
// from a higher index, so the smallest satisfying index always wins. This
// tie-break is contractual.
//
// # Structural Recursors
//
//   - [CasesZeroSucc]: one-step case split, zero branch vs. successor branch
//     with the predecessor as an index one bound lower
//   - [RecZeroSucc]: the recursive form — the successor branch also receives
//     the result computed for the predecessor's lifted embedding, descending
//     until the value reaches zero
//
// # Effect Context
//
// The folds are parameterized over the same continuation-passing context used
// throughout the package. [Cont] represents a computation that accepts a
// continuation and produces a final result; [Eff] is its effect-capable form.
//
// Minimal monad operations:
//
//   - [Return]: Lift a pure value into a continuation
//   - [Bind]: Sequence two continuations
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Return(f(a)))
//   - [Then]: Sequence, discarding first result — equivalent to Bind(m, func(_) n)
//
// Execution:
//
//   - [Suspend]: Create a continuation from a CPS function
//   - [Run]: Execute a continuation to obtain the result
//   - [RunWith]: Execute with a custom final handler
//   - [RunPure]: Execute an [Eff] that performs no effects (panics if one suspends)
//
// # Algebraic Effects
//
// Effects are defined as types implementing the F-bounded [Op] constraint,
// and handlers interpret them via the F-bounded [Handler] interface. Handler
// dispatch returns (resumeValue, true) to continue the computation, or
// (finalResult, false) to short-circuit.
//
//   - [Op]: F-bounded effect operation interface
//   - [Operation]: Runtime type for effect operations
//   - [Resumed]: Runtime type for resumption values
//   - [Handler]: F-bounded effect interpreter interface
//   - [Perform]: Trigger an effect operation
//   - [Handle]: Run a computation with an F-bounded effect handler
//   - [HandleFunc]: Create a handler from a dispatch function
//
// # Stepping Boundary
//
// [Step] provides one-effect-at-a-time evaluation for external runtimes that
// drive computation asynchronously (e.g., event loops). A fold whose steps
// perform effects yields one [Suspension] per effect, in visiting order.
//
// Nil completion convention: effect runners and stepping treat a nil [Resumed]
// value as “completed with the zero value”. Computations whose final result
// type is a pointer or interface cannot use nil as a meaningful result value;
// wrap such results in [Either] or [Option] to distinguish the two.
//
//   - [Step]: Drive an [Eff] computation until it completes or suspends
//   - [Suspension]: Pending operation with one-shot resumption handle
//   - [Suspension.Op]: Returns the effect operation that caused the suspension
//   - [Suspension.Resume]: Advance to the next suspension or completion (panics on reuse)
//   - [Suspension.TryResume]: Non-panicking variant of Resume
//   - [Suspension.Discard]: Drop without invoking
//
// Returns (value, nil) on completion, or (zero, [*Suspension]) when pending.
// Affine semantics: each [Suspension] may be resumed at most once.
//
// # Standard Effects
//
// Error effect for fold short-circuiting:
//
//   - [Throw], [Catch]: Effect operations
//   - [ThrowError], [CatchError]: Convenience constructors
//   - [RunError]: Run with Error effect, returns [Either]
//
// State effect for stateful step functions:
//
//   - [Get], [Put], [Modify]: Effect operations
//   - [GetState], [PutState], [ModifyState]: Fused convenience constructors
//   - [StateHandler]: Creates a State handler (returns *stateHandler and state getter)
//   - [RunState], [EvalState], [ExecState]: Run with State effect
//
// Writer effect for recording step output — the canonical way to observe a
// fold's visiting order:
//
//   - [Tell]: Effect operation
//   - [TellWriter]: Fused convenience constructor
//   - [WriterHandler]: Creates a Writer handler (returns *writerHandler and output getter)
//   - [RunWriter], [ExecWriter]: Run with Writer effect
//
// # Result Types
//
// [Either] represents success (Right) or failure (Left). [Option] represents
// presence ([Some]) or absence ([None]); [Find] signals absence with [None],
// which is distinct from any failure in the effect context.
//
// # Example
//
//	total := fin.Sum(5, func(i fin.Idx) int { return i.Value() })
//	// total == 10
//
//	first := fin.Find(5, func(i fin.Idx) bool { return i.Value() >= 2 })
//	// first == fin.Some(fin.Must(2, 5))
//
//	sum := fin.RunPure(fin.FoldlM(3, func(acc int, i fin.Idx) fin.Eff[int] {
//		return fin.Pure(acc + i.Value())
//	}, 0))
//	// sum == 3
package fin
