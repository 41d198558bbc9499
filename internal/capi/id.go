package capi

import "github.com/omeyang/fidkit/pkg/util/xfid"

// IDNew 组装 ID 并写入 dst。
// 字段以 64 bit 宽度进场，先做全宽范围检查再收窄，
// 避免高位被静默截断。
func IDNew(dst *uint64, timestamp, sequence, generator uint64) int32 {
	if dst == nil {
		return InvalidArgument
	}
	if timestamp > xfid.MaxTimestamp {
		return TimestampOverflow
	}
	if sequence > uint64(xfid.MaxSequence) {
		return SequenceOverflow
	}
	if generator > uint64(xfid.MaxGenerator) {
		return GeneratorOverflow
	}
	id, err := xfid.New(timestamp, uint16(sequence), uint16(generator))
	if err != nil {
		return errCode(err)
	}
	*dst = uint64(id)
	return OK
}

// IDToBytes 将 ID 的 8 字节大端序形式写入 buf，返回写入的字节数。
// buf 长度必须恰为 8，否则返回 BufferWrongSize。
func IDToBytes(id uint64, buf []byte) int32 {
	if buf == nil {
		return InvalidArgument
	}
	if len(buf) != xfid.BinaryLen {
		return BufferWrongSize
	}
	b := xfid.ID(id).Bytes()
	copy(buf, b[:])
	return int32(xfid.BinaryLen)
}

// IDFromBytes 从 8 字节大端序形式还原 ID 并写入 dst。
func IDFromBytes(dst *uint64, buf []byte) int32 {
	if dst == nil || buf == nil {
		return InvalidArgument
	}
	if len(buf) != xfid.BinaryLen {
		return BufferWrongSize
	}
	id, err := xfid.FromBytes(buf)
	if err != nil {
		return errCode(err)
	}
	*dst = uint64(id)
	return OK
}

// IDToString 将 ID 的 11 字符文本形式写入 buf，并在下标 11 写入
// 终止零字节，返回写入的可见字符数（11）。
// buf 长度必须恰为 12，否则返回 BufferWrongSize。
func IDToString(id uint64, buf []byte) int32 {
	if buf == nil {
		return InvalidArgument
	}
	if len(buf) != xfid.TextLen+1 {
		return BufferWrongSize
	}
	copy(buf, xfid.ID(id).String())
	buf[xfid.TextLen] = 0
	return int32(xfid.TextLen)
}

// IDFromString 从 11 字符文本形式还原 ID 并写入 dst。
// buf 为去掉终止零字节后的文本，长度必须恰为 11。
func IDFromString(dst *uint64, buf []byte) int32 {
	if dst == nil || buf == nil {
		return InvalidArgument
	}
	if len(buf) != xfid.TextLen {
		return BufferWrongSize
	}
	id, err := xfid.ParseBytes(buf)
	if err != nil {
		return errCode(err)
	}
	*dst = uint64(id)
	return OK
}

// IDTimestamp 返回时间戳字段。对任意输入全定义。
func IDTimestamp(id uint64) uint64 {
	return xfid.ID(id).Timestamp()
}

// IDSequence 返回序列号字段。
func IDSequence(id uint64) uint64 {
	return uint64(xfid.ID(id).Sequence())
}

// IDGenerator 返回生成器标识字段。
func IDGenerator(id uint64) uint64 {
	return uint64(xfid.ID(id).Generator())
}
