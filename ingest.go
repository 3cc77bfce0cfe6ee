package flashfuzzy

import "github.com/RafaCalRob/FlashFuzzy/internal/arena"

// GetWriteBuffer returns a scratchpad slice of the requested size for the
// host to fill with record or pattern bytes, and true, or (nil, false) if
// size exceeds ScratchpadSize (spec.md's OversizedWriteBuffer condition).
//
// The returned slice aliases Engine's scratchpad; the bytes staged in it
// (with their length set by CommitWrite) are consumed by the next
// AddRecord or PreparePattern. Per spec.md §5 it is a single-writer
// staging buffer with no defined contents between operations.
func (e *Engine) GetWriteBuffer(size uint32) ([]byte, bool) {
	if size > ScratchpadSize {
		return nil, false
	}
	return e.scratchpad[:size], true
}

// CommitWrite records the scratchpad's populated length, clamped to
// ScratchpadSize.
func (e *Engine) CommitWrite(length uint32) {
	if length > ScratchpadSize {
		length = ScratchpadSize
	}
	e.scratchLen = int(length)
}

// AddRecord commits the bytes most recently staged via
// GetWriteBuffer/CommitWrite as a new record under id, per spec.md §6/§7:
//
//	 1 success
//	-1 capacity exceeded
//	-2 empty text
//	-3 string pool exhausted (or text exceeds the per-record length limit)
func (e *Engine) AddRecord(id uint32) int32 {
	text := e.scratchpad[:e.scratchLen]
	e.scratchLen = 0

	_, err := e.arena.Add(id, text)
	switch err {
	case nil:
		e.stats.recordsAdded.Add(1)
		return 1
	case arena.ErrCapacity:
		return -1
	case arena.ErrEmptyText:
		return -2
	default: // ErrPoolFull, ErrTextTooBig
		return -3
	}
}

// RemoveRecord tombstones the first active record with the given id.
// Returns 1 if a record was removed, 0 if none was found.
func (e *Engine) RemoveRecord(id uint32) int32 {
	if e.arena.Remove(id) {
		e.stats.recordsRemoved.Add(1)
		return 1
	}
	return 0
}

// AddText is the idiomatic Go equivalent of GetWriteBuffer + CommitWrite +
// AddRecord for callers that already hold text as a []byte and don't need
// the scratchpad hand-off protocol.
func (e *Engine) AddText(id uint32, text []byte) error {
	_, err := e.arena.Add(id, text)
	switch err {
	case nil:
		e.stats.recordsAdded.Add(1)
		return nil
	case arena.ErrCapacity:
		return ErrCapacity
	case arena.ErrEmptyText:
		return ErrEmptyText
	case arena.ErrTextTooBig:
		return ErrTextTooBig
	case arena.ErrPoolFull:
		return ErrPoolFull
	default:
		return err
	}
}

// RemoveText is the idiomatic Go equivalent of RemoveRecord.
func (e *Engine) RemoveText(id uint32) bool {
	return e.RemoveRecord(id) == 1
}
