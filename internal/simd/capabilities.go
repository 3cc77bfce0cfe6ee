// Package simd provides wide-lane (8-byte chunked) byte processing used by
// the case-fold pass on the ingest path, plus CPU-feature reporting.
//
// There is no hand-written assembly here: the teacher's AVX2 kernels live
// in .s files that are not part of a pure Go rewrite, so the wide-lane
// paths below are plain Go loops over 8-byte chunks (IsASCII packs each
// chunk into a uint64, as the teacher's own non-AVX2 fallback
// simd.isASCIIGeneric does). The choice between the wide-lane and scalar
// loops depends on input length only (WideLaneEligible); the AVX2/SSE4.2
// flags are detected and reported by Detect but gate no code path.
package simd

import "golang.org/x/sys/cpu"

// wideLaneThreshold is the minimum input length at which the 8-byte SWAR
// loop amortizes its setup cost over the scalar byte loop.
const wideLaneThreshold = 8

// Capabilities reports which wide-lane acceleration is available on the
// running host. Engines surface this for diagnostics (see
// flashfuzzy.Engine.Capabilities).
type Capabilities struct {
	AVX2   bool
	SSE42  bool
	WideOK bool
}

// hasAVX2 and hasSSE42 mirror the teacher's package-init feature-detection
// variables (simd.hasAVX2 in the reference engine).
var (
	hasAVX2  = cpu.X86.HasAVX2
	hasSSE42 = cpu.X86.HasSSE42
)

// Detect returns the capability set of the current host.
func Detect() Capabilities {
	return Capabilities{
		AVX2:   hasAVX2,
		SSE42:  hasSSE42,
		WideOK: true, // the SWAR fold/scan path needs no AVX2/SSE4.2 support
	}
}

// WideLaneEligible reports whether n bytes are large enough to amortize the
// wide-lane loop's setup cost.
func WideLaneEligible(n int) bool {
	return n >= wideLaneThreshold
}

// FoldASCIIWide case-folds src into dst, len(dst) == len(src), in 8-byte
// chunks (foldChunk8) with a scalar tail. Equivalent to folding byte by
// byte; the chunked loop exists purely for throughput on larger record
// text.
func FoldASCIIWide(dst, src []byte) {
	n := len(src)
	i := 0
	for ; i+8 <= n; i += 8 {
		foldChunk8(dst[i:i+8:i+8], src[i:i+8:i+8])
	}
	for ; i < n; i++ {
		dst[i] = foldByte(src[i])
	}
}

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// foldChunk8 folds exactly 8 bytes. Kept as a tight, inlinable loop rather
// than a bit-twiddled uint64 mask: the fold is conditional per byte
// ('A'-'Z' only), which doesn't reduce to a single AND/OR the way ASCII
// high-bit detection does.
func foldChunk8(dst, src []byte) {
	_ = dst[7]
	_ = src[7]
	for i := 0; i < 8; i++ {
		dst[i] = foldByte(src[i])
	}
}

// IsASCII reports whether every byte in data is < 0x80, using the same
// length-based wide-lane/scalar dispatch (WideLaneEligible) that
// casefold.Bulk applies before calling FoldASCIIWide.
func IsASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}
	if !WideLaneEligible(n) {
		return isASCIIScalar(data)
	}
	const hi8 = uint64(0x8080808080808080)
	i := 0
	for ; i+8 <= n; i += 8 {
		var chunk uint64
		for j := 0; j < 8; j++ {
			chunk |= uint64(data[i+j]) << (8 * j)
		}
		if chunk&hi8 != 0 {
			return false
		}
	}
	return isASCIIScalar(data[i:])
}

func isASCIIScalar(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
