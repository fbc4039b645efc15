package pipe

// To returns to(v).
func To[In, Out any](v In, to Transform[In, Out]) Out {
	return to(v)
}

// ToIf returns onTrue(v) when cond is true, otherwise the zero value of Out.
func ToIf[In, Out any](v In, cond bool, onTrue Transform[In, Out]) Out {
	if cond {
		return onTrue(v)
	}
	return Zero[Out]()
}

// ToIfElse returns onTrue(v) when cond is true, otherwise onFalse(v).
func ToIfElse[In, Out any](v In, cond bool, onTrue, onFalse Transform[In, Out]) Out {
	if cond {
		return onTrue(v)
	}
	return onFalse(v)
}

// ToIfOr returns onTrue(v) when cond is true, otherwise fallback.
func ToIfOr[In, Out any](v In, cond bool, onTrue Transform[In, Out], fallback Out) Out {
	if cond {
		return onTrue(v)
	}
	return fallback
}

// ToWhen returns onTrue(v) when the predicate holds for v, otherwise the
// zero value of Out.
func ToWhen[In, Out any](v In, when Predicate[In], onTrue Transform[In, Out]) Out {
	return ToIf(v, when(v), onTrue)
}

// ToWhenElse returns onTrue(v) when the predicate holds for v, otherwise
// onFalse(v).
func ToWhenElse[In, Out any](v In, when Predicate[In], onTrue, onFalse Transform[In, Out]) Out {
	return ToIfElse(v, when(v), onTrue, onFalse)
}

// ToNotNil returns onValue(v) when v is not nil, otherwise the zero value
// of Out.
func ToNotNil[In, Out any](v In, onValue Transform[In, Out]) Out {
	return ToIf(v, !IsNil(v), onValue)
}

// ToNotNilElse returns onValue(v) when v is not nil, otherwise onNil().
// onNil takes no argument: there is nothing non-nil to pass.
func ToNotNilElse[In, Out any](v In, onValue Transform[In, Out], onNil Producer[Out]) Out {
	if IsNil(v) {
		return onNil()
	}
	return onValue(v)
}

// ToNotNilOr returns onValue(v) when v is not nil, otherwise fallback.
func ToNotNilOr[In, Out any](v In, onValue Transform[In, Out], fallback Out) Out {
	return ToIfOr(v, !IsNil(v), onValue, fallback)
}

// ToIfNil coalesces: it returns v unchanged when v is not nil, otherwise
// onNil().
func ToIfNil[T any](v T, onNil Producer[T]) T {
	if IsNil(v) {
		return onNil()
	}
	return v
}

// ToNotZero returns onValue(v) when v is not the zero value of In, otherwise
// the zero value of Out.
func ToNotZero[In, Out any](v In, onValue Transform[In, Out]) Out {
	return ToIf(v, !IsZero(v), onValue)
}

// ToNotZeroElse returns onValue(v) when v is not the zero value of In,
// otherwise onZero().
func ToNotZeroElse[In, Out any](v In, onValue Transform[In, Out], onZero Producer[Out]) Out {
	if IsZero(v) {
		return onZero()
	}
	return onValue(v)
}

// ToNotZeroOr returns onValue(v) when v is not the zero value of In,
// otherwise fallback.
func ToNotZeroOr[In, Out any](v In, onValue Transform[In, Out], fallback Out) Out {
	return ToIfOr(v, !IsZero(v), onValue, fallback)
}

// ToIfZero coalesces: it returns v unchanged when v is not the zero value of
// T, otherwise onZero().
func ToIfZero[T any](v T, onZero Producer[T]) T {
	if IsZero(v) {
		return onZero()
	}
	return v
}
