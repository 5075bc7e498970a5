package circular

import (
	"encoding/json"
	"fmt"

	cerrors "github.com/SergeyMakeev/CircularBuffer/errors"
)

// Buffer is a fixed-capacity double-ended ring buffer. It stores exactly
// capacity elements (no one-slot sacrifice), supports O(1) insertion and
// removal at both ends, and applies a configurable overflow policy when an
// insert hits a full buffer.
//
// head is the physical slot the next back-insert writes; tail is the
// physical slot of the oldest element. Emptiness and fullness both leave
// head == tail and are disambiguated through size alone.
//
// A Buffer is not safe for concurrent use. Statistics counters are atomic
// so they may be read from another goroutine, but the container state has
// no synchronization.
type Buffer[T any] struct {
	store storage[T]
	ring  ring
	head  index
	tail  index
	size  index

	// holdsRefs is true when retired slots must be zeroed for the GC.
	holdsRefs bool

	stats   *Statistics    // always initialized for observability
	metrics *bufferMetrics // optional Prometheus metrics
	opts    *bufferOptions[T]
}

// slots returns the backing block regardless of storage strategy.
func (b *Buffer[T]) slots() []T {
	return b.store.slots(int(b.ring.capacity))
}

// physicalIndex maps a logical index (0 = oldest element) to its physical
// slot. Callers must guarantee logical < size.
func (b *Buffer[T]) physicalIndex(logical index) index {
	return b.ring.add(b.tail, logical)
}

// retire clears a slot that no longer holds a live element so the GC can
// reclaim whatever the element referenced. Skipped for pure value types.
func (b *Buffer[T]) retire(slots []T, i index) {
	if !b.holdsRefs {
		return
	}
	var zero T
	slots[i] = zero
}

// Capacity returns the fixed number of slots.
func (b *Buffer[T]) Capacity() int { return int(b.ring.capacity) }

// Len returns the current number of elements.
func (b *Buffer[T]) Len() int { return int(b.size) }

// IsEmpty returns true if the buffer contains no elements.
func (b *Buffer[T]) IsEmpty() bool { return b.size == 0 }

// IsFull returns true if the buffer is at capacity.
func (b *Buffer[T]) IsFull() bool { return b.size == b.ring.capacity }

// Policy returns the overflow policy the buffer was created with.
func (b *Buffer[T]) Policy() Policy { return b.opts.policy }

// Storage returns which storage strategy backs the buffer.
func (b *Buffer[T]) Storage() StorageKind { return b.store.kind }

// Stats returns buffer statistics (always available for observability).
func (b *Buffer[T]) Stats() *Statistics { return b.stats }

// insert is the single insertion engine behind the push and emplace
// variants at both ends. When construct is non-nil the element is built
// lazily, so a discarded insert with no eviction callback never constructs
// the value.
func (b *Buffer[T]) insert(atBack bool, value T, construct func() T) Outcome {
	wasFull := b.size == b.ring.capacity

	if wasFull && b.opts.policy == Discard {
		b.stats.Discard()
		if b.metrics != nil {
			b.metrics.recordDiscard()
		}
		if b.opts.evictionCallback != nil {
			if construct != nil {
				value = construct()
			}
			b.opts.evictionCallback(value)
		}
		return Discarded
	}

	if construct != nil {
		value = construct()
	}

	slots := b.slots()
	if wasFull {
		// Overwrite mode: reuse an existing slot. Since head == tail when
		// full, a back-insert lands on the oldest element and a front-insert
		// evicts the newest one. The eviction direction mirror is
		// intentional.
		var victim T
		if atBack {
			victim = slots[b.head]
			slots[b.head] = value
			b.head = b.ring.next(b.head)
			b.tail = b.ring.next(b.tail)
		} else {
			b.head = b.ring.prev(b.head)
			b.tail = b.ring.prev(b.tail)
			victim = slots[b.tail]
			slots[b.tail] = value
		}

		b.stats.Insert()
		b.stats.Overwrite()
		if b.metrics != nil {
			b.metrics.recordInsert(int(b.size), int(b.ring.capacity))
			b.metrics.recordOverwrite()
		}
		if b.opts.evictionCallback != nil {
			b.opts.evictionCallback(victim)
		}
		b.verify()
		return Overwritten
	}

	// Normal insertion into a free slot.
	if atBack {
		slots[b.head] = value
		b.head = b.ring.next(b.head)
	} else {
		b.tail = b.ring.prev(b.tail)
		slots[b.tail] = value
	}
	b.size++

	b.stats.Insert()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordInsert(int(b.size), int(b.ring.capacity))
	}
	b.verify()
	return Inserted
}

// PushBack appends an element as the newest. On a full buffer the overflow
// policy decides between evicting the oldest element and rejecting the new
// one; the returned Outcome reports which happened.
func (b *Buffer[T]) PushBack(value T) Outcome {
	return b.insert(true, value, nil)
}

// PushFront prepends an element as the oldest. On a full buffer under the
// Overwrite policy the newest element is evicted - the mirror of PushBack.
func (b *Buffer[T]) PushFront(value T) Outcome {
	return b.insert(false, value, nil)
}

// EmplaceBack appends the element produced by construct. The constructor
// only runs when the element is actually stored (or must be reported to the
// eviction callback), so a discarded insert stays construction-free.
func (b *Buffer[T]) EmplaceBack(construct func() T) Outcome {
	if construct == nil {
		panic("circular: EmplaceBack with nil constructor")
	}
	var zero T
	return b.insert(true, zero, construct)
}

// EmplaceFront prepends the element produced by construct. See EmplaceBack.
func (b *Buffer[T]) EmplaceFront(construct func() T) Outcome {
	if construct == nil {
		panic("circular: EmplaceFront with nil constructor")
	}
	var zero T
	return b.insert(false, zero, construct)
}

// PushBackAll appends each element in order and aggregates the outcomes.
// There is no atomicity across the range: under the Overwrite policy,
// earlier elements of an oversized range are evicted by later ones.
func (b *Buffer[T]) PushBackAll(items []T) InsertStats {
	var agg InsertStats
	for _, item := range items {
		agg.record(b.PushBack(item))
	}
	return agg
}

// PushFrontAll prepends each element in order and aggregates the outcomes.
// The first item of the slice ends up innermost; the last becomes the
// logical front.
func (b *Buffer[T]) PushFrontAll(items []T) InsertStats {
	var agg InsertStats
	for _, item := range items {
		agg.record(b.PushFront(item))
	}
	return agg
}

func (s *InsertStats) record(o Outcome) {
	switch o {
	case Inserted:
		s.Inserted++
	case Overwritten:
		s.Overwritten++
	case Discarded:
		s.Discarded++
	}
}

// DropBack removes the newest element. The buffer must not be empty.
func (b *Buffer[T]) DropBack() {
	if b.size == 0 {
		panic(fmt.Errorf("circular: DropBack: %w", cerrors.ErrEmptyBuffer))
	}
	slots := b.slots()
	b.head = b.ring.prev(b.head)
	b.retire(slots, b.head)
	b.size--

	b.stats.Remove()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordRemove(int(b.size), int(b.ring.capacity))
	}
	b.verify()
}

// DropFront removes the oldest element. The buffer must not be empty.
func (b *Buffer[T]) DropFront() {
	if b.size == 0 {
		panic(fmt.Errorf("circular: DropFront: %w", cerrors.ErrEmptyBuffer))
	}
	slots := b.slots()
	b.retire(slots, b.tail)
	b.tail = b.ring.next(b.tail)
	b.size--

	b.stats.Remove()
	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.recordRemove(int(b.size), int(b.ring.capacity))
	}
	b.verify()
}

// TakeBack removes and returns the newest element. Returns the zero value
// and false on an empty buffer without mutating state.
func (b *Buffer[T]) TakeBack() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	value := b.slots()[b.ring.prev(b.head)]
	b.DropBack()
	return value, true
}

// TakeFront removes and returns the oldest element. Returns the zero value
// and false on an empty buffer without mutating state.
func (b *Buffer[T]) TakeFront() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}
	value := b.slots()[b.tail]
	b.DropFront()
	return value, true
}

// Get returns the element at logical position i (0 = oldest). The index
// must be in [0, Len()); violations panic. Use At for checked access.
func (b *Buffer[T]) Get(i int) T {
	if i < 0 || i >= int(b.size) {
		panic(fmt.Sprintf("circular: index %d out of range with length %d", i, b.size))
	}
	return b.slots()[b.physicalIndex(index(i))]
}

// Set replaces the element at logical position i (0 = oldest). The index
// must be in [0, Len()); violations panic.
func (b *Buffer[T]) Set(i int, value T) {
	if i < 0 || i >= int(b.size) {
		panic(fmt.Sprintf("circular: index %d out of range with length %d", i, b.size))
	}
	b.slots()[b.physicalIndex(index(i))] = value
}

// At returns the element at logical position i, or a classified error when
// the index is out of range.
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= int(b.size) {
		var zero T
		return zero, cerrors.WrapInvalid(cerrors.ErrOutOfRange, "Buffer", "At",
			fmt.Sprintf("index %d with length %d", i, b.size))
	}
	return b.slots()[b.physicalIndex(index(i))], nil
}

// SetAt replaces the element at logical position i, or returns a classified
// error when the index is out of range.
func (b *Buffer[T]) SetAt(i int, value T) error {
	if i < 0 || i >= int(b.size) {
		return cerrors.WrapInvalid(cerrors.ErrOutOfRange, "Buffer", "SetAt",
			fmt.Sprintf("index %d with length %d", i, b.size))
	}
	b.slots()[b.physicalIndex(index(i))] = value
	return nil
}

// Front returns the oldest element. The buffer must not be empty.
func (b *Buffer[T]) Front() T {
	if b.size == 0 {
		panic(fmt.Errorf("circular: Front: %w", cerrors.ErrEmptyBuffer))
	}
	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}
	return b.slots()[b.tail]
}

// Back returns the newest element. The buffer must not be empty.
func (b *Buffer[T]) Back() T {
	if b.size == 0 {
		panic(fmt.Errorf("circular: Back: %w", cerrors.ErrEmptyBuffer))
	}
	b.stats.Peek()
	if b.metrics != nil {
		b.metrics.recordPeek()
	}
	return b.slots()[b.ring.prev(b.head)]
}

// Clear removes all elements and resets the buffer to the empty state. The
// eviction callback, if set, receives each live element in logical order.
func (b *Buffer[T]) Clear() {
	b.clearInternal(true)
}

func (b *Buffer[T]) clearInternal(notify bool) {
	if notify && b.opts.evictionCallback != nil && b.size > 0 {
		slots := b.slots()
		current := b.tail
		for i := index(0); i < b.size; i++ {
			b.opts.evictionCallback(slots[current])
			current = b.ring.next(current)
		}
	}

	// Zeroing the whole block is skipped for pure value types.
	if b.holdsRefs && b.size > 0 {
		clear(b.slots())
	}

	b.head = 0
	b.tail = 0
	b.size = 0

	b.stats.UpdateSize(0)
	if b.metrics != nil {
		b.metrics.updateSize(0, int(b.ring.capacity))
	}
	b.verify()
}

// Clone returns an independent copy with the same capacity, policy and
// contents in logical order. Metrics registration is not carried over;
// register metrics on the clone explicitly if needed.
func (b *Buffer[T]) Clone() *Buffer[T] {
	opts := *b.opts
	opts.metricsReg = nil
	opts.metricsPrefix = ""

	clone := &Buffer[T]{
		ring:      b.ring,
		holdsRefs: b.holdsRefs,
		stats:     NewStatistics(),
		opts:      &opts,
	}
	clone.store.init(int(b.ring.capacity), opts.inlineThreshold)

	src := b.slots()
	dst := clone.slots()
	current := b.tail
	for i := index(0); i < b.size; i++ {
		dst[clone.head] = src[current]
		clone.head = clone.ring.next(clone.head)
		current = b.ring.next(current)
	}
	clone.size = b.size
	clone.stats.UpdateSize(int64(clone.size))
	clone.verify()
	return clone
}

// CopyFrom replaces the buffer's contents with a copy of other's, preserving
// logical order. Capacities must match. Self-copy is a no-op.
func (b *Buffer[T]) CopyFrom(other *Buffer[T]) error {
	if b == other {
		return nil
	}
	if b.ring.capacity != other.ring.capacity {
		return cerrors.WrapInvalid(
			fmt.Errorf("capacity mismatch: %d != %d", b.ring.capacity, other.ring.capacity),
			"Buffer", "CopyFrom", "copy assignment")
	}

	b.clearInternal(true)

	src := other.slots()
	dst := b.slots()
	current := other.tail
	for i := index(0); i < other.size; i++ {
		dst[b.head] = src[current]
		b.head = b.ring.next(b.head)
		current = other.ring.next(current)
	}
	b.size = other.size

	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.updateSize(int(b.size), int(b.ring.capacity))
	}
	b.verify()
	return nil
}

// MoveFrom transfers other's contents into the buffer and leaves other
// valid and empty. When both buffers are heap-backed the storage blocks are
// exchanged without touching elements; otherwise elements are moved one by
// one. Capacities must match. Self-move is a no-op.
func (b *Buffer[T]) MoveFrom(other *Buffer[T]) error {
	if b == other {
		return nil
	}
	if b.ring.capacity != other.ring.capacity {
		return cerrors.WrapInvalid(
			fmt.Errorf("capacity mismatch: %d != %d", b.ring.capacity, other.ring.capacity),
			"Buffer", "MoveFrom", "move assignment")
	}

	b.clearInternal(true)

	if b.store.kind == StorageHeap && other.store.kind == StorageHeap {
		// Exchange the blocks; other keeps ours, already logically empty.
		b.store.heap, other.store.heap = other.store.heap, b.store.heap
		b.head, b.tail, b.size = other.head, other.tail, other.size
	} else {
		src := other.slots()
		dst := b.slots()
		current := other.tail
		for i := index(0); i < other.size; i++ {
			dst[b.head] = src[current]
			other.retire(src, current)
			b.head = b.ring.next(b.head)
			current = other.ring.next(current)
		}
		b.size = other.size
	}

	other.head, other.tail, other.size = 0, 0, 0
	other.stats.UpdateSize(0)
	if other.metrics != nil {
		other.metrics.updateSize(0, int(other.ring.capacity))
	}

	b.stats.UpdateSize(int64(b.size))
	if b.metrics != nil {
		b.metrics.updateSize(int(b.size), int(b.ring.capacity))
	}
	b.verify()
	other.verify()
	return nil
}

// ToSlice returns the contents as a fresh slice in logical order.
func (b *Buffer[T]) ToSlice() []T {
	out := make([]T, 0, b.size)
	first, second := b.Slices()
	out = append(out, first...)
	out = append(out, second...)
	return out
}

// Slices returns the contents as up to two views into the backing storage,
// in logical order. The views alias the buffer and stay valid only until
// the next mutation.
func (b *Buffer[T]) Slices() (first, second []T) {
	if b.size == 0 {
		return nil, nil
	}
	slots := b.slots()
	end := uint64(b.tail) + uint64(b.size)
	if end <= uint64(b.ring.capacity) {
		return slots[b.tail:end], nil
	}
	return slots[b.tail:], slots[:end-uint64(b.ring.capacity)]
}

// MarshalJSON encodes the contents as an array in logical order.
func (b *Buffer[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.ToSlice())
}
