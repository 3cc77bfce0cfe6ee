// Command ffi builds FlashFuzzy's raw C ABI as a cgo shared/static library
// (`go build -buildmode=c-shared` or `c-archive`): one process-wide engine,
// no locking, results read positionally by index. This mirrors the
// original Rust `flash_fuzzy_ffi` crate (rust/ffi/src/lib.rs), which
// exists to be called from Python/Go/Java/anything with a C calling
// convention.
//
// Per spec.md §6, the raw binding performs no synchronization: concurrent
// calls from multiple threads are the caller's responsibility. Use package
// binding instead for a mutex-serialized, string-native Go API.
package main

/*
#include <stdint.h>
*/
import "C"

import (
	"unsafe"

	flashfuzzy "github.com/RafaCalRob/FlashFuzzy"
)

// engine is the single process-wide instance the raw ABI operates on.
// Uninitialized state (before the first ff_init) behaves like a
// freshly-initialized engine with default configuration, per spec.md §9.
var engine = flashfuzzy.New(flashfuzzy.DefaultConfig())

//export ff_init
func ff_init() {
	engine.Init()
}

//export ff_reset
func ff_reset() {
	engine.Reset()
}

//export ff_set_max_errors
func ff_set_max_errors(v C.uint32_t) {
	engine.SetMaxErrors(uint32(v))
}

//export ff_set_threshold
func ff_set_threshold(v C.uint32_t) {
	engine.SetThreshold(uint32(v))
}

//export ff_set_max_results
func ff_set_max_results(v C.uint32_t) {
	engine.SetMaxResults(uint32(v))
}

//export ff_get_record_count
func ff_get_record_count() C.uint32_t {
	return C.uint32_t(engine.GetRecordCount())
}

//export ff_get_string_pool_used
func ff_get_string_pool_used() C.uint32_t {
	return C.uint32_t(engine.GetStringPoolUsed())
}

//export ff_get_available_memory
func ff_get_available_memory() C.uint32_t {
	return C.uint32_t(engine.GetAvailableMemory())
}

// ff_get_write_buffer returns a pointer to size bytes of engine-owned
// scratch memory for the caller to fill, or NULL if size exceeds
// SCRATCHPAD_SIZE. The pointer is valid only until the next
// ff_get_write_buffer, ff_commit_write, or ff_prepare_pattern call: the
// caller must not retain it, and must not call back into Go while holding
// it, per normal cgo pointer-passing rules.
//
//export ff_get_write_buffer
func ff_get_write_buffer(size C.uint32_t) *C.uint8_t {
	buf, ok := engine.GetWriteBuffer(uint32(size))
	if !ok {
		return nil
	}
	// Extend to the slice's capacity so a size of 0 still yields the
	// scratchpad base.
	buf = buf[:cap(buf)]
	return (*C.uint8_t)(unsafe.Pointer(&buf[0]))
}

//export ff_commit_write
func ff_commit_write(length C.uint32_t) {
	engine.CommitWrite(uint32(length))
}

//export ff_add_record
func ff_add_record(id C.uint32_t) C.int32_t {
	return C.int32_t(engine.AddRecord(uint32(id)))
}

//export ff_remove_record
func ff_remove_record(id C.uint32_t) C.int32_t {
	return C.int32_t(engine.RemoveRecord(uint32(id)))
}

//export ff_prepare_pattern
func ff_prepare_pattern() {
	engine.PreparePattern()
}

//export ff_search
func ff_search() C.uint32_t {
	return C.uint32_t(engine.Search())
}

//export ff_get_result_id
func ff_get_result_id(index C.uint32_t) C.uint32_t {
	return C.uint32_t(engine.GetResultID(uint32(index)))
}

//export ff_get_result_score
func ff_get_result_score(index C.uint32_t) C.uint32_t {
	return C.uint32_t(engine.GetResultScore(uint32(index)))
}

//export ff_get_result_start
func ff_get_result_start(index C.uint32_t) C.uint32_t {
	return C.uint32_t(engine.GetResultStart(uint32(index)))
}

//export ff_get_result_end
func ff_get_result_end(index C.uint32_t) C.uint32_t {
	return C.uint32_t(engine.GetResultEnd(uint32(index)))
}

//export ff_compact
func ff_compact() C.uint32_t {
	return C.uint32_t(engine.Compact())
}

func main() {}
