// Package casefold implements the ASCII-only case-folding primitive used
// throughout FlashFuzzy's matching pipeline.
//
// Folding maps 'A'..'Z' to 'a'..'z' and leaves every other byte unchanged.
// There is no UTF-8 awareness: multi-byte sequences are compared
// byte-for-byte after folding, which is lossless for ASCII text and
// case-sensitive for everything above 0x7F.
package casefold

import "github.com/RafaCalRob/FlashFuzzy/internal/simd"

// Byte folds a single ASCII byte to lowercase.
func Byte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Bulk writes the folded bytes of src into dst, which must be at least
// len(src) long. Inputs long enough for simd.WideLaneEligible go through
// the wide-lane path (simd.FoldASCIIWide); shorter ones are folded byte by
// byte. The choice depends on input length only, not on host CPU features.
func Bulk(dst, src []byte) {
	n := len(src)
	if n == 0 {
		return
	}
	if simd.WideLaneEligible(n) {
		simd.FoldASCIIWide(dst[:n], src)
		return
	}
	for i := 0; i < n; i++ {
		dst[i] = Byte(src[i])
	}
}

// Equal reports whether a and b are equal after ASCII case-folding.
func Equal(a, b byte) bool {
	return Byte(a) == Byte(b)
}
