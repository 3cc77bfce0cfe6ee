// Package resultbuffer implements the fixed-capacity, descending-score
// top-K result buffer (component E).
//
// Capacity is bounded by MaxCapacity and never grows past it: the backing
// array is sized once and Offer only ever shifts entries within it, so a
// search never allocates.
package resultbuffer

// MaxCapacity is the hard ceiling on held results (spec.md MAX_RESULTS).
const MaxCapacity = 100

// Result is one ranked match.
type Result struct {
	ID    uint32
	Score uint16
	Start uint32
	End   uint32
}

// Buffer holds up to Capacity results in non-increasing Score order.
type Buffer struct {
	entries  [MaxCapacity]Result
	count    int
	capacity int
}

// SetCapacity changes the buffer's capacity to n (clamped to
// [0, MaxCapacity]). If n is smaller than the number of results currently
// held, the lowest-scoring entries beyond the new capacity are dropped
// (entries are already held in descending-score order, so this is a plain
// truncation); results within the new capacity are preserved.
func (b *Buffer) SetCapacity(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxCapacity {
		n = MaxCapacity
	}
	b.capacity = n
	if b.count > n {
		b.count = n
	}
}

// Clear removes all held results without changing capacity.
func (b *Buffer) Clear() {
	b.count = 0
}

// Len returns the number of results currently held.
func (b *Buffer) Len() int {
	return b.count
}

// At returns the result at index i and true, or the zero Result and false
// if i is out of range. Per spec.md §7, out-of-range indices are not an
// error: callers get a well-defined zero value.
func (b *Buffer) At(i int) (Result, bool) {
	if i < 0 || i >= b.count {
		return Result{}, false
	}
	return b.entries[i], true
}

// Offer inserts r in descending-score order, evicting the lowest-scoring
// entry if the buffer is already at capacity. Returns true if r was kept.
//
// Ties are broken by insertion order among equal scores: r is placed after
// every already-held entry with the same score, so the order in which
// candidates are offered (insertion order over the record table, per
// spec.md §4.G) is preserved for ties.
func (b *Buffer) Offer(r Result) bool {
	if b.capacity == 0 {
		return false
	}

	if b.count == b.capacity {
		lowest := b.entries[b.count-1].Score
		if r.Score <= lowest {
			return false
		}
	}

	idx := b.count
	for i := 0; i < b.count; i++ {
		if b.entries[i].Score < r.Score {
			idx = i
			break
		}
	}

	if b.count == b.capacity {
		// Buffer is full: the lowest entry is dropped to make room, so
		// shift only the window between idx and the last slot.
		copy(b.entries[idx+1:b.count], b.entries[idx:b.count-1])
	} else {
		copy(b.entries[idx+1:b.count+1], b.entries[idx:b.count])
		b.count++
	}
	b.entries[idx] = r
	return true
}
