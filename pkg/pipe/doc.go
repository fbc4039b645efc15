// Package pipe provides generic combinators for writing a sequence of side
// effects and transformations on a value as one chained expression instead of
// nested imperative statements.
//
// Two families cover most call sites:
//   - Do and friends: run a side effect, hand back the same subject
//   - To and friends: turn the subject into a new value, possibly of a new type
//
// Both families gate on a literal bool (If), a predicate (When), nilness
// (NotNil/IfNil) or the zero value (NotZero/IfZero). Else variants take a
// fallback callable that runs only on a closed gate, Or variants take a
// fallback value; with neither, a closed gate yields the zero value of the
// result type.
//
// Supporting pieces:
//   - IfDo/IfTo: gate on a boolean subject itself
//   - IsZero/IsNil/Zero: generic zero- and nil-value detection
//   - ToUsing: transform through an io.Closer with release guaranteed on
//     every exit path
//   - Apply/Compose: same-type pipelines
//
// The combinators hold no state, add no locks and never recover: a callable
// is invoked at most once per call, and whatever it panics with reaches the
// caller unchanged.
package pipe
