// Package bloom implements the 64-bit presence-summary pre-filter that
// fronts the Bitap matcher.
//
// For a byte string s, the filter is the union over every case-folded byte
// b in s of 1 << (b & 0x3F): a 6-bit folded hash spread over a 64-bit mask.
// False positives are expected and acceptable; false negatives would break
// the bloom-soundness property Bitap search relies on (a pattern whose
// bloom bits aren't a subset of a text's bloom bits cannot match that
// text), so the hash must be a strict union, never sampled or truncated.
package bloom

import "github.com/RafaCalRob/FlashFuzzy/internal/casefold"

// Summary is a 64-bit presence mask over case-folded byte values.
type Summary uint64

// FromText builds the bloom summary for s.
func FromText(s []byte) Summary {
	var bits Summary
	for _, b := range s {
		bits |= 1 << (casefold.Byte(b) & 0x3F)
	}
	return bits
}

// FromFoldedText builds the bloom summary for s, which must already be
// ASCII case-folded (see casefold.Bulk). The ingest hot path folds record
// text once through the wide-lane pass and reuses the folded bytes here
// directly, rather than re-folding byte by byte on top of that pass.
func FromFoldedText(s []byte) Summary {
	var bits Summary
	for _, b := range s {
		bits |= 1 << (b & 0x3F)
	}
	return bits
}

// MightContain reports whether text could contain all of pattern's
// case-folded bytes. A false result guarantees no match is possible; a
// true result is only a candidate that still needs verification by the
// Bitap matcher.
func MightContain(patternBloom, textBloom Summary) bool {
	return patternBloom&textBloom == patternBloom
}
