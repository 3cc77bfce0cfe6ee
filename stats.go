package flashfuzzy

import "sync/atomic"

// Stats tracks per-engine counters for diagnostics, mirroring
// meta.Engine.stats in the reference regex engine: plain atomic counters
// rather than a logging call, since the ambient stack carries no logging
// library (see SPEC_FULL.md §2).
//
// Stats are cumulative across the Engine's lifetime; Reset does not clear
// them (they describe engine activity, not index contents). Use
// StatsSnapshot for a point-in-time read.
type Stats struct {
	recordsScanned  atomic.Uint64
	bloomRejected   atomic.Uint64
	bitapInvoked    atomic.Uint64
	bitapMatched    atomic.Uint64
	resultsOffered  atomic.Uint64
	belowThreshold  atomic.Uint64
	resultsDropped  atomic.Uint64
	searchesRun     atomic.Uint64
	recordsAdded    atomic.Uint64
	recordsRemoved  atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of Stats, safe to read without
// further synchronization.
type StatsSnapshot struct {
	RecordsScanned uint64
	BloomRejected  uint64
	BitapInvoked   uint64
	BitapMatched   uint64
	ResultsOffered uint64
	BelowThreshold uint64
	ResultsDropped uint64
	SearchesRun    uint64
	RecordsAdded   uint64
	RecordsRemoved uint64
}

// Stats returns a snapshot of the engine's cumulative counters.
func (e *Engine) Stats() StatsSnapshot {
	return StatsSnapshot{
		RecordsScanned: e.stats.recordsScanned.Load(),
		BloomRejected:  e.stats.bloomRejected.Load(),
		BitapInvoked:   e.stats.bitapInvoked.Load(),
		BitapMatched:   e.stats.bitapMatched.Load(),
		ResultsOffered: e.stats.resultsOffered.Load(),
		BelowThreshold: e.stats.belowThreshold.Load(),
		ResultsDropped: e.stats.resultsDropped.Load(),
		SearchesRun:    e.stats.searchesRun.Load(),
		RecordsAdded:   e.stats.recordsAdded.Load(),
		RecordsRemoved: e.stats.recordsRemoved.Load(),
	}
}
