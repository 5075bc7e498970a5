package circular

import (
	"fmt"

	cerrors "github.com/SergeyMakeev/CircularBuffer/errors"
)

// verify asserts the container invariants: size within capacity, head
// derivable from tail and size, and head == tail at both boundary states.
// Active only under the ringdebug build tag.
func (b *Buffer[T]) verify() {
	if !debugChecks {
		return
	}
	if b.size > b.ring.capacity {
		panic(fmt.Sprintf("circular: size %d exceeds capacity %d", b.size, b.ring.capacity))
	}
	if b.head >= b.ring.capacity || b.tail >= b.ring.capacity {
		panic(fmt.Sprintf("circular: cursor out of range (head=%d tail=%d capacity=%d)",
			b.head, b.tail, b.ring.capacity))
	}
	if got := b.ring.add(b.tail, index(uint64(b.size)%uint64(b.ring.capacity))); got != b.head {
		panic(fmt.Sprintf("circular: head %d inconsistent with tail %d and size %d",
			b.head, b.tail, b.size))
	}
	if (b.size == 0 || b.size == b.ring.capacity) && b.head != b.tail {
		panic(fmt.Sprintf("circular: head %d != tail %d at boundary size %d",
			b.head, b.tail, b.size))
	}
}

// check validates the cursor before a dereference. Active only under the
// ringdebug build tag; in release builds the underlying slot access still
// panics on out-of-range indices.
func (it Iterator[T]) check() {
	if !debugChecks {
		return
	}
	if it.buf == nil {
		panic(fmt.Errorf("circular: dereferencing iterator: %w", cerrors.ErrNilBuffer))
	}
	if !it.Valid() {
		panic(fmt.Errorf("circular: dereferencing iterator at %d with length %d: %w",
			it.index, it.buf.Len(), cerrors.ErrIteratorExhausted))
	}
}
