package flashfuzzy

import "errors"

// Sentinel errors for the idiomatic Go ingest path (AddText/RemoveText).
// The raw scratchpad protocol (AddRecord/RemoveRecord, see ingest.go) never
// returns these: it reports the equivalent numeric status codes from
// spec.md §7 so the external C-ABI boundary never has to marshal a Go
// error value.
var (
	// ErrCapacity mirrors spec.md's CapacityExceeded (-1 on add).
	ErrCapacity = errors.New("flashfuzzy: record table at capacity")

	// ErrEmptyText mirrors spec.md's EmptyInput (-2 on add).
	ErrEmptyText = errors.New("flashfuzzy: record text is empty")

	// ErrPoolFull mirrors spec.md's PoolExhausted (-3 on add).
	ErrPoolFull = errors.New("flashfuzzy: string pool exhausted")

	// ErrTextTooBig reports a text longer than arena.MaxTextLen.
	ErrTextTooBig = errors.New("flashfuzzy: text exceeds max record length")

	// ErrWriteTooBig mirrors spec.md's OversizedWriteBuffer: the caller
	// asked GetWriteBuffer for more than ScratchpadSize bytes.
	ErrWriteTooBig = errors.New("flashfuzzy: requested write buffer exceeds scratchpad size")
)
