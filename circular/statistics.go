package circular

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks buffer operation counters. Counters are atomic so a
// monitoring goroutine can read them while the owning goroutine mutates the
// buffer; the buffer itself remains single-threaded.
type Statistics struct {
	// Atomic counters
	inserts    int64
	removals   int64
	peeks      int64
	overwrites int64
	discards   int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Insert records an element being stored.
func (s *Statistics) Insert() {
	atomic.AddInt64(&s.inserts, 1)
}

// Remove records an element being removed.
func (s *Statistics) Remove() {
	atomic.AddInt64(&s.removals, 1)
}

// Peek records an endpoint read.
func (s *Statistics) Peek() {
	atomic.AddInt64(&s.peeks, 1)
}

// Overwrite records an element evicted by an overwriting insert.
func (s *Statistics) Overwrite() {
	atomic.AddInt64(&s.overwrites, 1)
}

// Discard records an element rejected by a full buffer.
func (s *Statistics) Discard() {
	atomic.AddInt64(&s.discards, 1)
}

// UpdateSize updates the current buffer size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Inserts returns the total number of stored elements.
func (s *Statistics) Inserts() int64 {
	return atomic.LoadInt64(&s.inserts)
}

// Removals returns the total number of removed elements.
func (s *Statistics) Removals() int64 {
	return atomic.LoadInt64(&s.removals)
}

// Peeks returns the total number of endpoint reads.
func (s *Statistics) Peeks() int64 {
	return atomic.LoadInt64(&s.peeks)
}

// Overwrites returns the total number of overwrite evictions.
func (s *Statistics) Overwrites() int64 {
	return atomic.LoadInt64(&s.overwrites)
}

// Discards returns the total number of rejected elements.
func (s *Statistics) Discards() int64 {
	return atomic.LoadInt64(&s.discards)
}

// CurrentSize returns the current number of elements in the buffer.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the maximum number of elements the buffer has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// InsertThroughput returns the average number of inserts per second.
func (s *Statistics) InsertThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Inserts()) / elapsed.Seconds()
}

// RemoveThroughput returns the average number of removals per second.
func (s *Statistics) RemoveThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Removals()) / elapsed.Seconds()
}

// OverwriteRate returns the fraction of inserts that evicted an element
// (0.0 to 1.0).
func (s *Statistics) OverwriteRate() float64 {
	inserts := s.Inserts()
	if inserts == 0 {
		return 0.0
	}
	return float64(s.Overwrites()) / float64(inserts)
}

// DiscardRate returns the fraction of attempted inserts that were rejected
// (0.0 to 1.0).
func (s *Statistics) DiscardRate() float64 {
	attempts := s.Inserts() + s.Discards()
	if attempts == 0 {
		return 0.0
	}
	return float64(s.Discards()) / float64(attempts)
}

// Utilization returns the current fill level relative to capacity
// (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}
	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the buffer has existed.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.inserts, 0)
	atomic.StoreInt64(&s.removals, 0)
	atomic.StoreInt64(&s.peeks, 0)
	atomic.StoreInt64(&s.overwrites, 0)
	atomic.StoreInt64(&s.discards, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	Inserts          int64         `json:"inserts"`
	Removals         int64         `json:"removals"`
	Peeks            int64         `json:"peeks"`
	Overwrites       int64         `json:"overwrites"`
	Discards         int64         `json:"discards"`
	CurrentSize      int64         `json:"current_size"`
	MaxSize          int64         `json:"max_size"`
	InsertThroughput float64       `json:"insert_throughput"`
	RemoveThroughput float64       `json:"remove_throughput"`
	OverwriteRate    float64       `json:"overwrite_rate"`
	DiscardRate      float64       `json:"discard_rate"`
	Uptime           time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Inserts:          s.Inserts(),
		Removals:         s.Removals(),
		Peeks:            s.Peeks(),
		Overwrites:       s.Overwrites(),
		Discards:         s.Discards(),
		CurrentSize:      s.CurrentSize(),
		MaxSize:          s.MaxSize(),
		InsertThroughput: s.InsertThroughput(),
		RemoveThroughput: s.RemoveThroughput(),
		OverwriteRate:    s.OverwriteRate(),
		DiscardRate:      s.DiscardRate(),
		Uptime:           s.Uptime(),
	}
}
