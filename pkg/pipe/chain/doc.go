// Package chain provides a fluent wrapper around a bare subject value
// for building left-to-right pipelines over the pipe primitives.
//
// It composes functions like Do, DoIf, To, and Apply behind a convenient
// Chain[T] type. This enables ergonomic call sites without nesting the
// free functions at each step.
//
// Key operations:
// - From: begin a chain from a value
// - Value: unwrap the chain back to the subject
// - Do/DoIf/DoWhen and friends: side effects that keep the subject
// - To/ToIfOr/ToWhen and friends: package functions that change the
//   subject type, since methods cannot introduce type parameters
// - Apply: fold a series of same-type transformations over the subject
package chain
