package pipe

import "reflect"

// Zero returns the zero value of T.
func Zero[T any]() T {
	var zero T
	return zero
}

// IsZero reports whether v equals the zero value of its type: numeric zero,
// empty string, nil reference, or an all-zero composite.
func IsZero[T any](v T) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}

// IsNil reports whether v is a nil pointer, map, slice, channel, function or
// interface. An interface subject holding a typed nil pointer counts as nil.
// Values of non-nilable kinds are never nil.
func IsNil[T any](v T) bool {
	return isNilValue(reflect.ValueOf(&v).Elem())
}

func isNilValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return isNilValue(rv.Elem())
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
