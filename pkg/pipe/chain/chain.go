package chain

import (
	"github.com/hocho/pipestyle/pkg/pipe"
)

// Chain wraps a subject value to enable fluent chaining.
type Chain[T any] struct {
	v T
}

// From creates a new chain from a value.
func From[T any](v T) Chain[T] {
	return Chain[T]{v: v}
}

// Value returns the wrapped subject.
func (c Chain[T]) Value() T {
	return c.v
}

// Do runs a side effect and keeps the subject.
func (c Chain[T]) Do(do pipe.Action[T]) Chain[T] {
	return From(pipe.Do(c.v, do))
}

// DoIf runs the side effect only when cond holds.
func (c Chain[T]) DoIf(cond bool, onTrue pipe.Action[T]) Chain[T] {
	return From(pipe.DoIf(c.v, cond, onTrue))
}

// DoIfElse runs onTrue when cond holds, onFalse otherwise.
func (c Chain[T]) DoIfElse(cond bool, onTrue, onFalse pipe.Action[T]) Chain[T] {
	return From(pipe.DoIfElse(c.v, cond, onTrue, onFalse))
}

// DoWhen runs the side effect only when the predicate holds for the subject.
func (c Chain[T]) DoWhen(when pipe.Predicate[T], onTrue pipe.Action[T]) Chain[T] {
	return From(pipe.DoWhen(c.v, when, onTrue))
}

// DoNotNil runs the side effect only when the subject is not nil.
func (c Chain[T]) DoNotNil(onValue pipe.Action[T]) Chain[T] {
	return From(pipe.DoNotNil(c.v, onValue))
}

// DoIfNil runs the side effect only when the subject is nil.
func (c Chain[T]) DoIfNil(onNil func()) Chain[T] {
	return From(pipe.DoIfNil(c.v, onNil))
}

// DoNotZero runs the side effect only when the subject is not its zero value.
func (c Chain[T]) DoNotZero(onValue pipe.Action[T]) Chain[T] {
	return From(pipe.DoNotZero(c.v, onValue))
}

// DoIfZero runs the side effect only when the subject is its zero value.
func (c Chain[T]) DoIfZero(onZero func()) Chain[T] {
	return From(pipe.DoIfZero(c.v, onZero))
}

// ToIfNil replaces a nil subject with a produced value.
func (c Chain[T]) ToIfNil(onNil pipe.Producer[T]) Chain[T] {
	return From(pipe.ToIfNil(c.v, onNil))
}

// ToIfZero replaces a zero-value subject with a produced value.
func (c Chain[T]) ToIfZero(onZero pipe.Producer[T]) Chain[T] {
	return From(pipe.ToIfZero(c.v, onZero))
}

// Apply folds same-type transformations over the subject, left to right.
func (c Chain[T]) Apply(fns ...func(T) T) Chain[T] {
	return From(pipe.Apply(c.v, fns...))
}

// To transforms the subject into a new chain of a different type.
func To[In, Out any](c Chain[In], to pipe.Transform[In, Out]) Chain[Out] {
	return From(pipe.To(c.v, to))
}

// ToIf transforms when cond holds, otherwise carries the zero value.
func ToIf[In, Out any](c Chain[In], cond bool, onTrue pipe.Transform[In, Out]) Chain[Out] {
	return From(pipe.ToIf(c.v, cond, onTrue))
}

// ToIfOr transforms when cond holds, otherwise carries the fallback value.
func ToIfOr[In, Out any](c Chain[In], cond bool, onTrue pipe.Transform[In, Out], or Out) Chain[Out] {
	return From(pipe.ToIfOr(c.v, cond, onTrue, or))
}

// ToWhen transforms when the predicate holds for the subject.
func ToWhen[In, Out any](c Chain[In], when pipe.Predicate[In], onTrue pipe.Transform[In, Out]) Chain[Out] {
	return From(pipe.ToWhen(c.v, when, onTrue))
}

// ToNotNil transforms a non-nil subject, otherwise carries the zero value.
func ToNotNil[In, Out any](c Chain[In], onValue pipe.Transform[In, Out]) Chain[Out] {
	return From(pipe.ToNotNil(c.v, onValue))
}

// ToNotNilOr transforms a non-nil subject, otherwise carries the fallback.
func ToNotNilOr[In, Out any](c Chain[In], onValue pipe.Transform[In, Out], or Out) Chain[Out] {
	return From(pipe.ToNotNilOr(c.v, onValue, or))
}

// ToNotZero transforms a non-zero subject, otherwise carries the zero value.
func ToNotZero[In, Out any](c Chain[In], onValue pipe.Transform[In, Out]) Chain[Out] {
	return From(pipe.ToNotZero(c.v, onValue))
}

// ToNotZeroOr transforms a non-zero subject, otherwise carries the fallback.
func ToNotZeroOr[In, Out any](c Chain[In], onValue pipe.Transform[In, Out], or Out) Chain[Out] {
	return From(pipe.ToNotZeroOr(c.v, onValue, or))
}
