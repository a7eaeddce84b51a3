package buffer

import "sync"

// Bounded is a fixed-capacity blocking FIFO buffer.
type Bounded[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond
	notEmpty *sync.Cond

	items []T
	head  int
	tail  int
	size  int
}

// New creates a bounded buffer with the given capacity.
// Capacities below 1 are raised to 1.
func New[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		capacity = 1
	}
	b := &Bounded[T]{
		items: make([]T, capacity),
	}
	b.notFull = sync.NewCond(&b.mu)
	b.notEmpty = sync.NewCond(&b.mu)
	return b
}

// Put appends an element, blocking until free capacity exists.
func (b *Bounded[T]) Put(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.size == len(b.items) {
		b.notFull.Wait()
	}

	b.items[b.tail] = item
	b.tail = (b.tail + 1) % len(b.items)
	b.size++

	b.notEmpty.Signal()
}

// Get removes and returns the oldest element, blocking until one is present.
func (b *Bounded[T]) Get() T {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.size == 0 {
		b.notEmpty.Wait()
	}

	item := b.items[b.head]
	var zero T
	b.items[b.head] = zero // release the slot for GC
	b.head = (b.head + 1) % len(b.items)
	b.size--

	b.notFull.Signal()
	return item
}

// Len returns the number of buffered elements.
func (b *Bounded[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Cap returns the fixed capacity of the buffer.
func (b *Bounded[T]) Cap() int {
	return len(b.items)
}
