package circular

// StorageKind identifies which storage strategy backs a buffer.
type StorageKind int

const (
	// StorageEmbedded keeps element slots inside the buffer's own allocation.
	StorageEmbedded StorageKind = iota

	// StorageHeap keeps element slots in a separately allocated block owned
	// by the buffer.
	StorageHeap
)

// String returns a human-readable representation of the storage kind.
func (k StorageKind) String() string {
	switch k {
	case StorageEmbedded:
		return "Embedded"
	case StorageHeap:
		return "Heap"
	default:
		return "Unknown"
	}
}

// DefaultInlineThreshold is the capacity cutoff at or below which element
// storage is embedded in the buffer object instead of separately allocated.
const DefaultInlineThreshold = 64

// embeddedSlots is the compiled size of the embedded block. The inline
// threshold can be configured below this value but not above it, because Go
// array lengths are fixed at compile time.
const embeddedSlots = DefaultInlineThreshold

// storage is a tagged variant over the two backing strategies. The embedded
// block lives inside the enclosing buffer's allocation; the heap block is an
// owned, separately allocated slice. Either way the rest of the container
// sees one uniform capacity-length slice of slots.
type storage[T any] struct {
	kind     StorageKind
	embedded [embeddedSlots]T
	heap     []T
}

func (s *storage[T]) init(capacity, threshold int) {
	if threshold > embeddedSlots {
		threshold = embeddedSlots
	}
	if capacity <= threshold {
		s.kind = StorageEmbedded
		return
	}
	s.kind = StorageHeap
	s.heap = make([]T, capacity)
}

// slots returns the backing block as a capacity-length slice regardless of
// the selected strategy.
func (s *storage[T]) slots(capacity int) []T {
	if s.kind == StorageEmbedded {
		return s.embedded[:capacity]
	}
	return s.heap
}
