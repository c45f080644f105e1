/*
Package pool wraps sync.Pool with a typed interface.

A Pool hands out values of a single type T, created on demand by a
constructor function, and optionally runs a reset hook on values returned
to the pool.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package pool

import "sync"

// Pool is a typed free-list of values of type T.
type Pool[T any] struct {
	inner sync.Pool
	reset func(T)
}

// New creates a pool. The constructor is invoked whenever Get finds the
// pool empty.
func New[T any](constructor func() T) *Pool[T] {
	p := &Pool[T]{}
	p.inner.New = func() interface{} { return constructor() }
	return p
}

// WithReset installs a hook run on every value handed back via Put, e.g.
// for truncating buffers. It returns p to allow for chaining.
func (p *Pool[T]) WithReset(reset func(T)) *Pool[T] {
	p.reset = reset
	return p
}

// Get takes a value from the pool, constructing one if necessary.
func (p *Pool[T]) Get() T {
	return p.inner.Get().(T)
}

// Put returns a value to the pool after running the reset hook on it.
func (p *Pool[T]) Put(v T) {
	if p.reset != nil {
		p.reset(v)
	}
	p.inner.Put(v)
}
