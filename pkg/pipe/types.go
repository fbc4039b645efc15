package pipe

// Action performs a side effect on the subject.
type Action[T any] func(T)

// Predicate is a dynamic gate over the subject.
type Predicate[T any] func(T) bool

// Transform turns the subject into a new value.
type Transform[In, Out any] func(In) Out

// Producer supplies a value from nothing.
type Producer[T any] func() T
