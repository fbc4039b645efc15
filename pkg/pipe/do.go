package pipe

// Do invokes do with v, then returns v.
func Do[T any](v T, do Action[T]) T {
	do(v)
	return v
}

// DoIf invokes onTrue with v when cond is true. Returns v either way.
func DoIf[T any](v T, cond bool, onTrue Action[T]) T {
	if cond {
		onTrue(v)
	}
	return v
}

// DoIfElse invokes onTrue with v when cond is true, otherwise onFalse.
// Returns v either way.
func DoIfElse[T any](v T, cond bool, onTrue, onFalse Action[T]) T {
	if cond {
		onTrue(v)
	} else {
		onFalse(v)
	}
	return v
}

// DoWhen invokes onTrue with v when the predicate holds for v. Returns v.
func DoWhen[T any](v T, when Predicate[T], onTrue Action[T]) T {
	return DoIf(v, when(v), onTrue)
}

// DoWhenElse invokes onTrue when the predicate holds for v, otherwise
// onFalse. Returns v.
func DoWhenElse[T any](v T, when Predicate[T], onTrue, onFalse Action[T]) T {
	return DoIfElse(v, when(v), onTrue, onFalse)
}

// DoNotNil invokes onValue with v when v is not nil. Returns v.
// For non-nilable types the gate is always open.
func DoNotNil[T any](v T, onValue Action[T]) T {
	return DoIf(v, !IsNil(v), onValue)
}

// DoIfNil invokes onNil when v is nil. Returns v.
func DoIfNil[T any](v T, onNil func()) T {
	if IsNil(v) {
		onNil()
	}
	return v
}

// DoNotZero invokes onValue with v when v is not the zero value of T.
// Returns v.
func DoNotZero[T any](v T, onValue Action[T]) T {
	return DoIf(v, !IsZero(v), onValue)
}

// DoIfZero invokes onZero when v is the zero value of T. Returns v.
func DoIfZero[T any](v T, onZero func()) T {
	if IsZero(v) {
		onZero()
	}
	return v
}
