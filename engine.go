// Package flashfuzzy implements an in-memory approximate string-matching
// engine: a bounded collection of short text records keyed by integer IDs,
// searchable for the top-K records whose text contains a query pattern
// with at most E character errors, ranked by a deterministic score.
//
// The engine is built from fixed-capacity components so that, once
// constructed, Search, AddRecord, and RemoveRecord never allocate: a
// bit-parallel Bitap/Shift-Or matcher (internal/bitap) fronted by a cheap
// per-record bloom pre-filter (internal/bloom), a deterministic scorer
// (internal/score), a fixed-capacity top-K result buffer
// (internal/resultbuffer), and a fixed-capacity record/string arena
// (internal/arena).
//
// Engine is not safe for concurrent use: per spec.md §5 the engine is
// single-threaded cooperative, and callers needing concurrent access must
// serialize externally (see package binding for a mutex-wrapped handle).
//
// Example:
//
//	e := flashfuzzy.New(flashfuzzy.DefaultConfig())
//	e.AddText(7, []byte("hello world"))
//	e.PreparePatternText([]byte("wrold"))
//	n := e.Search()
//	for i := 0; i < int(n); i++ {
//	    r, _ := e.Result(i)
//	    fmt.Println(r.ID, r.Score)
//	}
package flashfuzzy

import (
	"github.com/RafaCalRob/FlashFuzzy/internal/arena"
	"github.com/RafaCalRob/FlashFuzzy/internal/bitap"
	"github.com/RafaCalRob/FlashFuzzy/internal/bloom"
	"github.com/RafaCalRob/FlashFuzzy/internal/resultbuffer"
	"github.com/RafaCalRob/FlashFuzzy/internal/simd"
)

// Default fixed-capacity constants, per spec.md §6.
const (
	MaxRecords      = 100_000
	MaxResultsLimit = resultbuffer.MaxCapacity // 100
	PoolCap         = 4 * 1 << 20              // 4 MiB
	ScratchpadSize  = 64 * 1 << 10              // 64 KiB
	MaxPatternLen   = bitap.MaxPatternLen       // 32
	MaxErrorsLimit  = bitap.MaxErrors           // 3
	MaxScore        = 1000
)

// Engine owns every core component (A-F) and implements the facade
// operations of spec.md §6 (component G).
type Engine struct {
	config Config

	arena *arena.Arena

	pattern      bitap.Pattern
	patternBloom bloom.Summary

	results resultbuffer.Buffer

	scratchpad [ScratchpadSize]byte
	scratchLen int

	stats Stats
}

// New creates an Engine with the given configuration (clamped to valid
// ranges) and FlashFuzzy's default fixed capacities.
func New(cfg Config) *Engine {
	e := &Engine{
		arena: arena.New(MaxRecords, PoolCap),
	}
	e.applyConfig(cfg)
	return e
}

// Init resets all state to defaults: max_errors=2, threshold=250,
// max_results=50, per spec.md §6. Init after Init is idempotent.
func (e *Engine) Init() {
	e.arena.Reset()
	e.results.Clear()
	e.pattern = bitap.Pattern{}
	e.patternBloom = 0
	e.scratchLen = 0
	e.applyConfig(DefaultConfig())
}

// Reset clears records, the string pool, results, and pattern state, but
// preserves the current configuration (spec.md §6 reset).
func (e *Engine) Reset() {
	e.arena.Reset()
	e.results.Clear()
	e.pattern = bitap.Pattern{}
	e.patternBloom = 0
	e.scratchLen = 0
}

func (e *Engine) applyConfig(cfg Config) {
	e.config = Config{
		MaxErrors:  clampU32(cfg.MaxErrors, MaxErrorsLimit),
		Threshold:  cfg.Threshold,
		MaxResults: clampU32(cfg.MaxResults, MaxResultsLimit),
	}
	if int(e.config.Threshold) > MaxScore {
		e.config.Threshold = MaxScore
	}
	e.results.SetCapacity(int(e.config.MaxResults))
}

// Reconfigure validates cfg wholesale and, if valid, replaces the current
// configuration (clearing held results, since MaxResults may shrink). This
// is the strict Go-embedder path; the raw ABI setters below always clamp
// instead of rejecting, per spec.md §7.
func (e *Engine) Reconfigure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.applyConfig(cfg)
	e.results.Clear()
	return nil
}

// SetMaxErrors updates the error budget, clamped to [0, MaxErrorsLimit].
func (e *Engine) SetMaxErrors(v uint32) {
	e.config.MaxErrors = clampU32(v, MaxErrorsLimit)
}

// SetThreshold updates the minimum score a match must reach, stored as a
// uint16 in [0, MaxScore].
func (e *Engine) SetThreshold(v uint32) {
	if v > MaxScore {
		v = MaxScore
	}
	e.config.Threshold = uint16(v)
}

// SetMaxResults updates the result buffer capacity, clamped to
// [0, MaxResultsLimit]. Held results beyond the new capacity are dropped.
func (e *Engine) SetMaxResults(v uint32) {
	e.config.MaxResults = clampU32(v, MaxResultsLimit)
	e.results.SetCapacity(int(e.config.MaxResults))
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config {
	return e.config
}

// GetRecordCount returns the total number of used record-table slots,
// including tombstoned records.
func (e *Engine) GetRecordCount() uint32 {
	return uint32(e.arena.RecordCount())
}

// GetStringPoolUsed returns the number of bytes used in the string pool.
func (e *Engine) GetStringPoolUsed() uint32 {
	return uint32(e.arena.PoolUsed())
}

// GetAvailableMemory returns PoolCap minus the bytes currently used.
func (e *Engine) GetAvailableMemory() uint32 {
	return uint32(e.arena.AvailableMemory())
}

// Compact is a reserved no-op that returns the current record count; see
// DESIGN.md's Open Question decision on compaction.
func (e *Engine) Compact() uint32 {
	return uint32(e.arena.Compact())
}

// Capabilities reports the host CPU's AVX2/SSE4.2 feature flags and
// whether the wide-lane case-fold path is available (always true). The
// flags are diagnostic only: the case-fold path does not branch on them.
func (e *Engine) Capabilities() simd.Capabilities {
	return simd.Detect()
}
