package maybe

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Maybe is an optional value of type T: either Just(v) or Nothing.
// The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, just: true}
}

// Nothing returns the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get unwraps m. ok is false for Nothing, and the returned value is
// the zero value of T in that case.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// IsNothing is true iff m carries no value.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to a present value and leaves Nothing untouched.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which itself may come up empty.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to a present value, possibly changing the value's type.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if v, ok := m.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}
