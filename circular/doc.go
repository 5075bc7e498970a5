// Package circular provides a fixed-capacity double-ended ring buffer with
// configurable overflow policies, built-in statistics tracking, and optional
// Prometheus metrics integration.
//
// # Overview
//
// Buffer stores exactly capacity elements - there is no one-slot sacrifice
// as in naive circular buffers, because head, tail and size are tracked
// separately. Push and pop are O(1) at both ends. When capacity is a power
// of two, index wraparound uses a bitmask; the generic path produces
// identical results.
//
// # Quick Start
//
// Basic buffer creation:
//
//	buf, err := circular.New[int](1000)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	buf.PushBack(42)
//	value, ok := buf.TakeFront()
//
// With overflow policy and metrics:
//
//	buf, err := circular.New[[]byte](5000,
//		circular.WithPolicy[[]byte](circular.Discard),
//		circular.WithMetrics[[]byte](registry, "network_window"),
//	)
//
// # Overflow Policies
//
// Every insert returns an Outcome (Inserted, Overwritten or Discarded) that
// callers may inspect or ignore. The policy decides what a full buffer does:
//
//   - Overwrite: evict an element from the opposite end; insertion always
//     succeeds (default)
//   - Discard: reject the new element; buffer contents unchanged
//
// Eviction direction mirrors the insertion end: PushBack on a full buffer
// evicts the oldest element, PushFront evicts the newest one.
//
// # Storage Strategy
//
// Buffers at or below the inline threshold (default 64 elements) keep their
// slots embedded in the buffer's own allocation; larger buffers use one
// separately allocated block. The strategy is observable via Storage() and
// tunable via WithInlineThreshold; behavior is identical either way.
//
// # Error Handling
//
// Two tiers by design intent. Programmer errors - unchecked access out of
// range, dropping from an empty buffer, comparing iterators of different
// buffers - panic. Expected conditions use explicit signals: At returns a
// classified out-of-range error, TakeFront/TakeBack return (zero, false) on
// an empty buffer. Overflow outcomes are not errors at all.
//
// # Iteration
//
// Range-over-func sequences cover the common cases:
//
//	for i, v := range buf.All() { ... }
//	for i, v := range buf.Backward() { ... }
//	for v := range buf.Values() { ... }
//
// Iterator is a random-access cursor over logical positions for callers
// that need explicit cursor arithmetic (Begin, End, Advance, Distance). It
// stores a logical index and recomputes the physical slot per access, so it
// cannot drift from the container's wraparound state.
//
// # Observability
//
// Statistics are always collected with atomic counters and available via
// Stats(). Prometheus metrics are optional, enabled with WithMetrics(), and
// track operations independently of the statistics so basic observability
// never depends on Prometheus.
//
// # Concurrency
//
// A Buffer is not safe for concurrent use; callers that share one across
// goroutines must add their own synchronization. Statistics counters are
// atomic, so reading Stats() from a monitoring goroutine is allowed.
//
// # Debug Checks
//
// Building with the ringdebug tag enables invariant verification after
// every mutation and iterator validity checks on dereference:
//
//	go test -tags ringdebug ./circular
package circular
