// libfid 以 C 可调用的共享库形式导出 fidkit 核心操作。
//
// 构建:
//
//	go build -buildmode=c-shared -o libfid.so ./cmd/libfid
//
// 调用约定：整数返回码 + 出参。0 表示成功（或非负长度），负数为
// 失败种类，见 internal/capi 的返回码表。生成器以整数句柄表示，
// 用后必须调用 fid_generator_release 释放，否则泄漏其存储。
//
// 本层只做 C 指针到 Go 切片的换形与 NUL 终止处理，
// 全部契约逻辑在 internal/capi 中实现并测试。
package main

/*
#include <stdint.h>
#include <stddef.h>
#include <string.h>
*/
import "C"

import (
	"unsafe"

	"github.com/omeyang/fidkit/internal/capi"
)

//export fid_new
func fid_new(dst *C.uint64_t, timestamp, sequence, generator C.uint64_t) C.int32_t {
	if dst == nil {
		return C.int32_t(capi.InvalidArgument)
	}
	var out uint64
	rc := capi.IDNew(&out, uint64(timestamp), uint64(sequence), uint64(generator))
	if rc == capi.OK {
		*dst = C.uint64_t(out)
	}
	return C.int32_t(rc)
}

//export fid_to_bytes
func fid_to_bytes(id C.uint64_t, buffer *C.uint8_t, bufferSize C.size_t) C.int32_t {
	if buffer == nil {
		return C.int32_t(capi.InvalidArgument)
	}
	buf := unsafe.Slice((*byte)(buffer), int(bufferSize))
	return C.int32_t(capi.IDToBytes(uint64(id), buf))
}

//export fid_from_bytes
func fid_from_bytes(dst *C.uint64_t, buffer *C.uint8_t, bufferSize C.size_t) C.int32_t {
	if dst == nil || buffer == nil {
		return C.int32_t(capi.InvalidArgument)
	}
	buf := unsafe.Slice((*byte)(buffer), int(bufferSize))
	var out uint64
	rc := capi.IDFromBytes(&out, buf)
	if rc == capi.OK {
		*dst = C.uint64_t(out)
	}
	return C.int32_t(rc)
}

//export fid_to_string
func fid_to_string(id C.uint64_t, buffer *C.char, bufferSize C.size_t) C.int32_t {
	if buffer == nil {
		return C.int32_t(capi.InvalidArgument)
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(bufferSize))
	return C.int32_t(capi.IDToString(uint64(id), buf))
}

//export fid_from_string
func fid_from_string(dst *C.uint64_t, buffer *C.char) C.int32_t {
	if dst == nil || buffer == nil {
		return C.int32_t(capi.InvalidArgument)
	}
	n := int(C.strlen(buffer))
	buf := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), n)
	var out uint64
	rc := capi.IDFromString(&out, buf)
	if rc == capi.OK {
		*dst = C.uint64_t(out)
	}
	return C.int32_t(rc)
}

//export fid_get_timestamp
func fid_get_timestamp(id C.uint64_t) C.uint64_t {
	return C.uint64_t(capi.IDTimestamp(uint64(id)))
}

//export fid_get_sequence
func fid_get_sequence(id C.uint64_t) C.uint64_t {
	return C.uint64_t(capi.IDSequence(uint64(id)))
}

//export fid_get_generator
func fid_get_generator(id C.uint64_t) C.uint64_t {
	return C.uint64_t(capi.IDGenerator(uint64(id)))
}

//export fid_generator_new
func fid_generator_new(dst *C.uint64_t, generator C.uint64_t, waitSequence C.uint32_t) C.int32_t {
	if dst == nil {
		return C.int32_t(capi.InvalidArgument)
	}
	var out uint64
	rc := capi.GenNew(&out, uint64(generator), waitSequence != 0)
	if rc == capi.OK {
		*dst = C.uint64_t(out)
	}
	return C.int32_t(rc)
}

//export fid_generator_new_ex
func fid_generator_new_ex(dst *C.uint64_t, generator C.uint64_t, timestampOffset C.int64_t,
	timestampLast, sequence C.uint64_t, waitSequence, timestampInSeconds C.uint32_t) C.int32_t {
	if dst == nil {
		return C.int32_t(capi.InvalidArgument)
	}
	var out uint64
	rc := capi.GenNewEx(&out, uint64(generator), int64(timestampOffset),
		uint64(timestampLast), uint64(sequence), waitSequence != 0, timestampInSeconds != 0)
	if rc == capi.OK {
		*dst = C.uint64_t(out)
	}
	return C.int32_t(rc)
}

//export fid_generator_next
func fid_generator_next(handle C.uint64_t, dst *C.uint64_t) C.int32_t {
	if dst == nil {
		return C.int32_t(capi.InvalidArgument)
	}
	var out uint64
	rc := capi.GenNext(uint64(handle), &out)
	if rc == capi.OK {
		*dst = C.uint64_t(out)
	}
	return C.int32_t(rc)
}

//export fid_generator_release
func fid_generator_release(handle C.uint64_t) C.int32_t {
	return C.int32_t(capi.GenRelease(uint64(handle)))
}

func main() {}
