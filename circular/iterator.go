package circular

import (
	"fmt"
	"iter"

	cerrors "github.com/SergeyMakeev/CircularBuffer/errors"
)

// Iterator is a random-access cursor over logical positions [0, Len()).
// It stores the logical index and recomputes the physical slot on every
// access, so it never desynchronizes from the container's wraparound state;
// the cost is one wrap computation per dereference.
//
// Iterators are value types and compare with ==. Ordering comparisons
// between iterators of different buffers are a precondition violation.
// Iterators are not tracked against container mutation; with the ringdebug
// build tag every dereference validates the cursor first.
type Iterator[T any] struct {
	buf   *Buffer[T]
	index int
}

// Begin returns an iterator at the oldest element.
func (b *Buffer[T]) Begin() Iterator[T] {
	return Iterator[T]{buf: b}
}

// End returns the past-the-end iterator.
func (b *Buffer[T]) End() Iterator[T] {
	return Iterator[T]{buf: b, index: b.Len()}
}

// Valid reports whether the iterator points at a live element.
func (it Iterator[T]) Valid() bool {
	return it.buf != nil && it.index >= 0 && it.index < it.buf.Len()
}

// Index returns the logical position.
func (it Iterator[T]) Index() int { return it.index }

// Value returns the element under the cursor.
func (it Iterator[T]) Value() T {
	it.check()
	return it.buf.Get(it.index)
}

// Set replaces the element under the cursor.
func (it Iterator[T]) Set(value T) {
	it.check()
	it.buf.Set(it.index, value)
}

// Next returns the iterator advanced one position.
func (it Iterator[T]) Next() Iterator[T] {
	it.index++
	return it
}

// Prev returns the iterator moved back one position.
func (it Iterator[T]) Prev() Iterator[T] {
	it.index--
	return it
}

// Advance returns the iterator moved n positions (n may be negative).
func (it Iterator[T]) Advance(n int) Iterator[T] {
	it.index += n
	return it
}

// Equal reports whether both iterators address the same position of the
// same buffer.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.buf == other.buf && it.index == other.index
}

// Before reports whether it precedes other. Both iterators must belong to
// the same buffer.
func (it Iterator[T]) Before(other Iterator[T]) bool {
	it.requireSameBuffer(other)
	return it.index < other.index
}

// Distance returns the number of positions between other and it. Both
// iterators must belong to the same buffer.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	it.requireSameBuffer(other)
	return it.index - other.index
}

func (it Iterator[T]) requireSameBuffer(other Iterator[T]) {
	if it.buf != other.buf {
		panic(fmt.Errorf("circular: %w", cerrors.ErrContainerMismatch))
	}
}

// All returns a logical-order traversal of (index, element) pairs. The
// traversal walks the physical index directly, so no per-element mapping is
// recomputed.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		slots := b.slots()
		current := b.tail
		for i := 0; i < int(b.size); i++ {
			if !yield(i, slots[current]) {
				return
			}
			current = b.ring.next(current)
		}
	}
}

// Backward returns a newest-to-oldest traversal of (index, element) pairs.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		slots := b.slots()
		current := b.head
		for i := int(b.size) - 1; i >= 0; i-- {
			current = b.ring.prev(current)
			if !yield(i, slots[current]) {
				return
			}
		}
	}
}

// Values returns a logical-order traversal of the elements alone.
func (b *Buffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		slots := b.slots()
		current := b.tail
		for i := index(0); i < b.size; i++ {
			if !yield(slots[current]) {
				return
			}
			current = b.ring.next(current)
		}
	}
}
