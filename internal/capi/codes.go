package capi

import (
	"errors"

	"github.com/omeyang/fidkit/pkg/util/xb64"
	"github.com/omeyang/fidkit/pkg/util/xfid"
)

// 稳定返回码。数值一经发布不得改动。
const (
	OK                int32 = 0
	InvalidArgument   int32 = -1
	TimestampOverflow int32 = -2
	SequenceOverflow  int32 = -3
	GeneratorOverflow int32 = -4
	SysTimeIsInPast   int32 = -5
	WrongSliceSize    int32 = -6
	Base64DecodeError int32 = -7
	BufferWrongSize   int32 = -8
)

// errCode 把核心错误映射为返回码。
// 所有 base64 类错误合并为 Base64DecodeError。
func errCode(err error) int32 {
	switch {
	case errors.Is(err, xfid.ErrTimestampOverflow):
		return TimestampOverflow
	case errors.Is(err, xfid.ErrSequenceOverflow):
		return SequenceOverflow
	case errors.Is(err, xfid.ErrGeneratorOverflow):
		return GeneratorOverflow
	case errors.Is(err, xfid.ErrSysTimeIsInPast):
		return SysTimeIsInPast
	case errors.Is(err, xfid.ErrWrongSliceSize):
		return WrongSliceSize
	case errors.Is(err, xb64.ErrPadding),
		errors.Is(err, xb64.ErrWrongSymbol),
		errors.Is(err, xb64.ErrBufferTooSmall):
		return Base64DecodeError
	}
	return InvalidArgument
}
