package pipe

// Apply feeds v through fns left to right and returns the final value.
// Nil entries are skipped.
func Apply[T any](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		if fn != nil {
			v = fn(v)
		}
	}
	return v
}

// Compose returns a single function that applies fns left to right.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		return Apply(v, fns...)
	}
}
