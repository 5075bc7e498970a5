package circular

// index is the physical slot index type. Capacity is validated against
// math.MaxUint32 at construction so every physical position fits.
type index = uint32

// ring performs wraparound index arithmetic for a fixed capacity. When the
// capacity is a power of two the wraparound is a single mask; otherwise a
// compare (or modulo, for arbitrary offsets) is used. Both paths produce
// identical results for all valid inputs.
type ring struct {
	capacity index
	mask     index
	pow2     bool
}

func newRing(capacity index) ring {
	r := ring{capacity: capacity}
	if capacity&(capacity-1) == 0 {
		r.mask = capacity - 1
		r.pow2 = true
	}
	return r
}

// next returns the physical index one step forward, wrapping at capacity.
func (r ring) next(i index) index {
	if r.pow2 {
		return (i + 1) & r.mask
	}
	if i+1 < r.capacity {
		return i + 1
	}
	return 0
}

// prev returns the physical index one step backward, wrapping at capacity.
func (r ring) prev(i index) index {
	if r.pow2 {
		return (i - 1) & r.mask
	}
	if i > 0 {
		return i - 1
	}
	return r.capacity - 1
}

// add returns the physical index offset steps forward, wrapping at capacity.
func (r ring) add(i, offset index) index {
	if r.pow2 {
		return (i + offset) & r.mask
	}
	return index((uint64(i) + uint64(offset)) % uint64(r.capacity))
}
