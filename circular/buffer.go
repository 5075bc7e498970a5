package circular

import (
	"fmt"
	"math"
	"reflect"

	cerrors "github.com/SergeyMakeev/CircularBuffer/errors"
)

// Policy defines how the buffer behaves when an insert hits a full buffer.
type Policy int

const (
	// Overwrite evicts an element from the opposite end to make room for
	// the new one. Insertion always succeeds. This is the default.
	Overwrite Policy = iota

	// Discard rejects new elements when the buffer is full.
	Discard
)

// String returns a human-readable representation of the overflow policy.
func (p Policy) String() string {
	switch p {
	case Overwrite:
		return "Overwrite"
	case Discard:
		return "Discard"
	default:
		return "Unknown"
	}
}

// Outcome reports what happened during a single insert operation. Callers
// may inspect or ignore it; ignoring the outcome never changes behavior.
type Outcome int

const (
	// Inserted means the element was stored in a free slot.
	Inserted Outcome = iota

	// Overwritten means the element was stored by evicting another element
	// (buffer full, Overwrite policy).
	Overwritten

	// Discarded means the element was rejected (buffer full, Discard policy).
	Discarded
)

// String returns a human-readable representation of the insert outcome.
func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "Inserted"
	case Overwritten:
		return "Overwritten"
	case Discarded:
		return "Discarded"
	default:
		return "Unknown"
	}
}

// InsertStats aggregates the outcomes of a bulk insert. Counts are per
// element; there is no atomicity across the range, so evictions caused by
// earlier elements are visible to later ones.
type InsertStats struct {
	Inserted    int
	Overwritten int
	Discarded   int
}

// EvictionCallback is called with every element the buffer loses without
// handing it to the caller: overwrite victims, discarded inserts, and live
// elements destroyed by Clear.
type EvictionCallback[T any] func(item T)

// New creates an empty fixed-capacity buffer. Capacity is exact: the buffer
// stores capacity elements with no one-slot sacrifice. Returns a classified
// error for invalid configuration or failed metrics registration.
func New[T any](capacity int, options ...Option[T]) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, cerrors.WrapInvalid(cerrors.ErrInvalidCapacity, "Buffer", "New",
			fmt.Sprintf("capacity %d", capacity))
	}
	if uint64(capacity) > math.MaxUint32 {
		return nil, cerrors.WrapInvalid(cerrors.ErrCapacityTooLarge, "Buffer", "New",
			fmt.Sprintf("capacity %d", capacity))
	}

	opts := applyOptions(options...)
	if opts.inlineThreshold < 0 {
		return nil, cerrors.WrapInvalid(cerrors.ErrInvalidThreshold, "Buffer", "New",
			fmt.Sprintf("threshold %d", opts.inlineThreshold))
	}

	// Stats are always initialized; metrics are opt-in.
	var metrics *bufferMetrics
	if opts.metricsReg != nil && opts.metricsPrefix != "" {
		var err error
		metrics, err = newBufferMetrics(opts.metricsReg, opts.metricsPrefix)
		if err != nil {
			return nil, cerrors.WrapTransient(
				fmt.Errorf("%w: %w", cerrors.ErrMetricsRegistration, err),
				"Buffer", "New", "metrics registration")
		}
	}

	b := &Buffer[T]{
		ring:      newRing(index(capacity)),
		holdsRefs: holdsReferences(reflect.TypeFor[T]()),
		stats:     NewStatistics(),
		metrics:   metrics,
		opts:      opts,
	}
	b.store.init(capacity, opts.inlineThreshold)
	return b, nil
}

// NewFromSlice creates a buffer seeded with items through the normal
// push-back path, so the overflow policy governs behavior when the seed
// exceeds capacity.
func NewFromSlice[T any](items []T, capacity int, options ...Option[T]) (*Buffer[T], error) {
	b, err := New(capacity, options...)
	if err != nil {
		return nil, err
	}
	b.PushBackAll(items)
	return b, nil
}

// holdsReferences reports whether values of t can keep other objects alive.
// Retiring a slot only needs to zero it when the element type holds
// references; for pure value types the stale bits are invisible to the GC.
func holdsReferences(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return holdsReferences(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if holdsReferences(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
