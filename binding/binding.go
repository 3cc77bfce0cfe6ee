// Package binding implements FlashFuzzy's higher-level host binding: a
// single mutex-serialized Handle exposing native Go strings, a []Match
// slice, and float32 scores/thresholds in [0.0, 1.0].
//
// This mirrors the original Rust JNI bindings
// (bindings/java/src/lib.rs): a single global engine guarded by a mutex,
// with threshold/score converted to and from the internal [0,1000]
// integer scale by multiplying or dividing by 1000. Go has no JNI crate
// to bind against directly, so Handle is a plain exported type rather
// than a cgo/JNI shim; callers needing an actual JNI bridge wrap Handle
// themselves.
package binding

import (
	"sync"

	flashfuzzy "github.com/RafaCalRob/FlashFuzzy"
)

// Match is one ranked result, with Score rescaled to [0.0, 1.0].
type Match struct {
	ID    uint32
	Score float32
	Start uint32
	End   uint32
}

// Handle serializes every call on a single lock, matching the original's
// `static STATE: Mutex<Option<FlashFuzzyState>>`.
type Handle struct {
	mu     sync.Mutex
	engine *flashfuzzy.Engine
}

// New creates a Handle with threshold (in [0.0, 1.0]), maxErrors, and
// maxResults, mirroring nativeInit.
func New(threshold float32, maxErrors, maxResults uint32) *Handle {
	cfg := flashfuzzy.Config{
		MaxErrors:  maxErrors,
		Threshold:  scoreToInternal(threshold),
		MaxResults: maxResults,
	}
	return &Handle{engine: flashfuzzy.New(cfg)}
}

// Add stages text under id, mirroring nativeAdd. Returns false (with no
// error) for empty text or a rejected record, matching the original's
// boolean return — callers that need the rejection reason should use the
// root package's Engine/AddText directly.
func (h *Handle) Add(id uint32, text string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine.AddText(id, []byte(text)) == nil
}

// Search runs query against every staged record and returns matches
// ranked by descending score, mirroring nativeSearch. An empty query
// returns an empty (non-nil) slice.
func (h *Handle) Search(query string) []Match {
	h.mu.Lock()
	defer h.mu.Unlock()

	matches := make([]Match, 0)
	if query == "" {
		return matches
	}

	h.engine.PreparePatternText([]byte(query))
	n := h.engine.Search()
	for i := uint32(0); i < n; i++ {
		r, ok := h.engine.Result(int(i))
		if !ok {
			break
		}
		matches = append(matches, Match{
			ID:    r.ID,
			Score: internalToScore(r.Score),
			Start: r.Start,
			End:   r.End,
		})
	}
	return matches
}

// Remove tombstones id, mirroring nativeRemove.
func (h *Handle) Remove(id uint32) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine.RemoveText(id)
}

// Reset clears records but preserves configuration, mirroring
// nativeReset.
func (h *Handle) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engine.Reset()
}

// Count returns the number of used record-table slots, mirroring
// nativeGetCount.
func (h *Handle) Count() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine.GetRecordCount()
}

// SetThreshold updates the minimum score, in [0.0, 1.0], mirroring
// nativeSetThreshold.
func (h *Handle) SetThreshold(threshold float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engine.SetThreshold(uint32(scoreToInternal(threshold)))
}

// SetMaxErrors updates the error budget, mirroring nativeSetMaxErrors.
func (h *Handle) SetMaxErrors(maxErrors uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engine.SetMaxErrors(maxErrors)
}

// SetMaxResults updates the result buffer capacity, mirroring
// nativeSetMaxResults.
func (h *Handle) SetMaxResults(maxResults uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.engine.SetMaxResults(maxResults)
}

func scoreToInternal(f float32) uint16 {
	v := int32(f * 1000)
	if v < 0 {
		v = 0
	}
	if v > flashfuzzy.MaxScore {
		v = flashfuzzy.MaxScore
	}
	return uint16(v)
}

func internalToScore(v uint16) float32 {
	return float32(v) / 1000.0
}
