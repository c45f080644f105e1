package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// deque is a growable ring buffer holding the pending work items of a
// traversal. Front-removal and splicing children at either end are O(1)
// amortized, keeping a full traversal linear in the node count.
type deque[T any] struct {
	items []T
	head  int
	count int
}

func newDeque[T any](capacity int) *deque[T] {
	if capacity < 4 {
		capacity = 4
	}
	return &deque[T]{items: make([]T, capacity)}
}

func (d *deque[T]) length() int {
	return d.count
}

func (d *deque[T]) grow() {
	items := make([]T, len(d.items)*2)
	for i := 0; i < d.count; i++ {
		items[i] = d.items[(d.head+i)%len(d.items)]
	}
	d.items = items
	d.head = 0
}

func (d *deque[T]) pushBack(v T) {
	if d.count == len(d.items) {
		d.grow()
	}
	d.items[(d.head+d.count)%len(d.items)] = v
	d.count++
}

func (d *deque[T]) pushFront(v T) {
	if d.count == len(d.items) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.items)) % len(d.items)
	d.items[d.head] = v
	d.count++
}

func (d *deque[T]) popFront() (T, bool) {
	var v T
	if d.count == 0 {
		return v, false
	}
	v = d.items[d.head]
	d.items[d.head] = *new(T) // release for GC
	d.head = (d.head + 1) % len(d.items)
	d.count--
	return v, true
}

// spliceFront inserts vs before the current front, preserving the relative
// order of vs.
func (d *deque[T]) spliceFront(vs []T) {
	for i := len(vs) - 1; i >= 0; i-- {
		d.pushFront(vs[i])
	}
}

// spliceBack appends vs after the current back, preserving the relative
// order of vs.
func (d *deque[T]) spliceBack(vs []T) {
	for _, v := range vs {
		d.pushBack(v)
	}
}
