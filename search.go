package flashfuzzy

import (
	"github.com/RafaCalRob/FlashFuzzy/internal/bitap"
	"github.com/RafaCalRob/FlashFuzzy/internal/bloom"
	"github.com/RafaCalRob/FlashFuzzy/internal/resultbuffer"
	"github.com/RafaCalRob/FlashFuzzy/internal/score"
)

// PreparePattern builds Bitap match masks and the pattern bloom summary
// from the bytes most recently staged via GetWriteBuffer/CommitWrite,
// truncating to MaxPatternLen bytes per spec.md §4.C.
func (e *Engine) PreparePattern() {
	text := e.scratchpad[:e.scratchLen]
	e.scratchLen = 0
	e.preparePattern(text)
}

// PreparePatternText is the idiomatic Go equivalent of PreparePattern for
// callers that already hold the pattern as a []byte.
func (e *Engine) PreparePatternText(pattern []byte) {
	e.preparePattern(pattern)
}

func (e *Engine) preparePattern(pattern []byte) {
	e.pattern = bitap.Prepare(pattern)
	if e.pattern.Len == 0 {
		e.patternBloom = 0
		return
	}
	e.patternBloom = bloom.FromText(pattern[:e.pattern.Len])
}

// Result is a ranked match, as returned by spec.md §3's ScoredResult:
// Start/End are byte offsets into the matched record's text, End exclusive.
type Result struct {
	ID    uint32
	Score uint16
	Start uint32
	End   uint32
}

// Search runs the pipeline of spec.md §4.G: scan active records in
// insertion order, reject via the bloom pre-filter, run Bitap on
// survivors, score matches, and keep the top MaxResults by score. Returns
// the number of results held: Result(i) reports true exactly for i in
// [0, returned count).
//
// Search clears any previously held results first, even if the pattern is
// empty (in which case it returns 0 without scanning any record, per
// spec.md §4.C's empty-pattern edge case).
func (e *Engine) Search() uint32 {
	e.results.Clear()
	e.stats.searchesRun.Add(1)

	if e.pattern.Len == 0 {
		return 0
	}

	maxErrors := int(e.config.MaxErrors)
	threshold := e.config.Threshold
	patternLen := e.pattern.Len

	n := e.arena.RecordCount()
	for i := 0; i < n; i++ {
		rec := e.arena.At(i)
		if !rec.Active {
			continue
		}
		e.stats.recordsScanned.Add(1)

		if !bloom.MightContain(e.patternBloom, rec.Bloom) {
			e.stats.bloomRejected.Add(1)
			continue
		}

		text := e.arena.Text(rec)
		e.stats.bitapInvoked.Add(1)
		m, ok := bitap.Search(text, e.pattern, maxErrors)
		if !ok {
			continue
		}
		e.stats.bitapMatched.Add(1)

		sc := score.Compute(m.Errors, patternLen)
		if sc < int(threshold) {
			e.stats.belowThreshold.Add(1)
			continue
		}

		start := m.EndPos - patternLen
		if start < 0 {
			start = 0
		}

		kept := e.results.Offer(resultbuffer.Result{
			ID:    rec.ID,
			Score: uint16(sc),
			Start: uint32(start),
			End:   uint32(m.EndPos),
		})
		if kept {
			e.stats.resultsOffered.Add(1)
		} else {
			e.stats.resultsDropped.Add(1)
		}
	}

	return uint32(e.results.Len())
}

// Result returns the result held at index i, or (Result{}, false) if
// i >= the number of results Search returned.
func (e *Engine) Result(i int) (Result, bool) {
	r, ok := e.results.At(i)
	if !ok {
		return Result{}, false
	}
	return Result{ID: r.ID, Score: r.Score, Start: r.Start, End: r.End}, true
}

// GetResultID, GetResultScore, GetResultStart, and GetResultEnd implement
// the positional raw-ABI result accessors of spec.md §6. All four return 0
// for an out-of-range index rather than an error, per spec.md §7.
func (e *Engine) GetResultID(index uint32) uint32 {
	r, _ := e.results.At(int(index))
	return r.ID
}

func (e *Engine) GetResultScore(index uint32) uint32 {
	r, _ := e.results.At(int(index))
	return uint32(r.Score)
}

func (e *Engine) GetResultStart(index uint32) uint32 {
	r, _ := e.results.At(int(index))
	return r.Start
}

func (e *Engine) GetResultEnd(index uint32) uint32 {
	r, _ := e.results.At(int(index))
	return r.End
}
