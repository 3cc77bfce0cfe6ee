// Package arena implements the fixed-capacity record table and string pool
// (component F): append-only storage with tombstone deletion, physically
// reclaimed only by Reset.
package arena

import (
	"errors"

	"github.com/RafaCalRob/FlashFuzzy/internal/bloom"
	"github.com/RafaCalRob/FlashFuzzy/internal/casefold"
)

// MaxTextLen is the largest text length a single record may hold
// (spec.md: text_len <= 65535).
const MaxTextLen = 65535

// Errors returned by Add, mirroring spec.md §7's add_record status codes.
var (
	ErrCapacity   = errors.New("arena: record table at capacity")
	ErrEmptyText  = errors.New("arena: record text is empty")
	ErrPoolFull   = errors.New("arena: string pool exhausted")
	ErrTextTooBig = errors.New("arena: text exceeds max record length")
)

// Record is one immutable-after-insertion record header.
type Record struct {
	ID        uint32
	TextStart uint32
	TextLen   uint32
	Bloom     bloom.Summary
	Active    bool
}

// Arena is a fixed-capacity record table plus append-only string pool.
//
// The backing arrays are allocated once at New and never grow: Add either
// fits within the preallocated capacity or fails with a typed error, so no
// operation here allocates on its hot path.
type Arena struct {
	pool     []byte
	poolUsed int

	records      []Record
	recordCount  int
	maxRecords   int
	poolCapacity int

	// foldScratch holds the case-folded copy of a record's text just long
	// enough to compute its bloom summary (see Add); reused across calls
	// so folding never allocates.
	foldScratch [MaxTextLen]byte
}

// New creates an Arena with the given fixed capacities.
func New(maxRecords, poolCapacity int) *Arena {
	return &Arena{
		pool:         make([]byte, poolCapacity),
		records:      make([]Record, maxRecords),
		maxRecords:   maxRecords,
		poolCapacity: poolCapacity,
	}
}

// RecordCount returns the number of used record-table slots, including
// tombstoned ones.
func (a *Arena) RecordCount() int { return a.recordCount }

// PoolUsed returns the number of bytes used in the string pool.
func (a *Arena) PoolUsed() int { return a.poolUsed }

// PoolCapacity returns the total string pool capacity.
func (a *Arena) PoolCapacity() int { return a.poolCapacity }

// AvailableMemory returns the number of unused string-pool bytes.
func (a *Arena) AvailableMemory() int { return a.poolCapacity - a.poolUsed }

// MaxRecords returns the record table's fixed capacity.
func (a *Arena) MaxRecords() int { return a.maxRecords }

// Add copies text into the pool and appends an active record header for
// id. Checked in the order spec.md §8 requires: capacity before pool
// space, so a full table reports ErrCapacity even if the pool also lacks
// room. The record's bloom summary is built over a single wide-lane
// case-fold pass (casefold.Bulk) rather than folding each byte again
// inside the bloom accumulation loop.
func (a *Arena) Add(id uint32, text []byte) (int, error) {
	if a.recordCount == a.maxRecords {
		return -1, ErrCapacity
	}
	if len(text) == 0 {
		return -1, ErrEmptyText
	}
	if len(text) > MaxTextLen {
		return -1, ErrTextTooBig
	}
	if a.poolUsed+len(text) > a.poolCapacity {
		return -1, ErrPoolFull
	}

	start := a.poolUsed
	copy(a.pool[start:], text)
	a.poolUsed += len(text)

	folded := a.foldScratch[:len(text)]
	casefold.Bulk(folded, text)

	idx := a.recordCount
	a.records[idx] = Record{
		ID:        id,
		TextStart: uint32(start),
		TextLen:   uint32(len(text)),
		Bloom:     bloom.FromFoldedText(folded),
		Active:    true,
	}
	a.recordCount++
	return idx, nil
}

// Remove tombstones the first active record with the given id. Returns
// true if a record was tombstoned.
func (a *Arena) Remove(id uint32) bool {
	for i := 0; i < a.recordCount; i++ {
		if a.records[i].Active && a.records[i].ID == id {
			a.records[i].Active = false
			return true
		}
	}
	return false
}

// Reset physically drops every record and returns the pool to empty.
func (a *Arena) Reset() {
	a.recordCount = 0
	a.poolUsed = 0
}

// Compact is a reserved no-op that returns the current record count.
// Removal is tombstone-only; a future implementation could physically
// compact the table and pool, but spec.md explicitly allows either choice
// (see DESIGN.md Open Question decisions) and this one preserves the
// source's simpler behavior.
func (a *Arena) Compact() int {
	return a.recordCount
}

// At returns the record header at table index i. i must be in
// [0, RecordCount()).
func (a *Arena) At(i int) Record {
	return a.records[i]
}

// Text returns the byte slice for r's text within the pool. The returned
// slice aliases the pool and must not be retained past the next Reset.
func (a *Arena) Text(r Record) []byte {
	return a.pool[r.TextStart : r.TextStart+r.TextLen]
}
