package pipe

// IfDo invokes onTrue when b is true. Returns b either way.
func IfDo(b bool, onTrue func()) bool {
	if b {
		onTrue()
	}
	return b
}

// IfDoElse invokes onTrue when b is true, otherwise onElse. Returns b.
func IfDoElse(b bool, onTrue, onElse func()) bool {
	if b {
		onTrue()
	} else {
		onElse()
	}
	return b
}

// IfTo returns onTrue() when b is true, otherwise the zero value of Out.
func IfTo[Out any](b bool, onTrue Producer[Out]) Out {
	if b {
		return onTrue()
	}
	return Zero[Out]()
}

// IfToElse returns onTrue() when b is true, otherwise onElse().
func IfToElse[Out any](b bool, onTrue, onElse Producer[Out]) Out {
	if b {
		return onTrue()
	}
	return onElse()
}

// IfToOr returns onTrue() when b is true, otherwise fallback.
func IfToOr[Out any](b bool, onTrue Producer[Out], fallback Out) Out {
	if b {
		return onTrue()
	}
	return fallback
}
