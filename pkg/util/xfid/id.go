package xfid

import (
	"encoding/binary"
	"fmt"

	"github.com/omeyang/fidkit/pkg/util/xb64"
)

// ID 64 bit 花形标识符。纯值类型，不持有对生成器的引用。
//
// 比较语义即无符号整数比较：同一生成器先后签发的 ID 严格递增。
type ID uint64

// New 由三个字段组装 ID。
//
// 范围检查按时间戳、序列号、生成器标识的顺序进行，
// 第一个越界字段决定返回的错误种类。
func New(timestamp uint64, sequence, generator uint16) (ID, error) {
	if timestamp > MaxTimestamp {
		return 0, fmt.Errorf("%w: %d", ErrTimestampOverflow, timestamp)
	}
	if sequence > MaxSequence {
		return 0, fmt.Errorf("%w: %d", ErrSequenceOverflow, sequence)
	}
	if generator > MaxGenerator {
		return 0, fmt.Errorf("%w: %d", ErrGeneratorOverflow, generator)
	}
	return ID(timestamp<<timestampShift |
		uint64(sequence)<<sequenceShift |
		uint64(generator)), nil
}

// =============================================================================
// 字段访问
// =============================================================================

// Timestamp 返回时间戳字段。对任意 64 bit 输入全定义，包括第 63 位非零的值。
func (id ID) Timestamp() uint64 {
	return (uint64(id) & TimestampMask) >> timestampShift
}

// Sequence 返回序列号字段。
func (id ID) Sequence() uint16 {
	return uint16((uint64(id) & SequenceMask) >> sequenceShift)
}

// Generator 返回生成器标识字段。
func (id ID) Generator() uint16 {
	return uint16(uint64(id) & GeneratorMask)
}

// =============================================================================
// 二进制形式
// =============================================================================

// Bytes 返回 8 字节大端序二进制形式。这是稳定的线上格式。
func (id ID) Bytes() [BinaryLen]byte {
	var b [BinaryLen]byte
	binary.BigEndian.PutUint64(b[:], uint64(id))
	return b
}

// FromBytes 从 8 字节大端序二进制形式还原 ID。
// 长度不等于 8 时返回 ErrWrongSliceSize。
func FromBytes(b []byte) (ID, error) {
	if len(b) != BinaryLen {
		return 0, fmt.Errorf("%w: %d", ErrWrongSliceSize, len(b))
	}
	return ID(binary.BigEndian.Uint64(b)), nil
}

// MarshalBinary 实现 encoding.BinaryMarshaler。
func (id ID) MarshalBinary() ([]byte, error) {
	b := id.Bytes()
	return b[:], nil
}

// UnmarshalBinary 实现 encoding.BinaryUnmarshaler。
func (id *ID) UnmarshalBinary(b []byte) error {
	v, err := FromBytes(b)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// =============================================================================
// 文本形式
// =============================================================================

// String 返回 11 字符文本形式：8 字节二进制的 URL 安全 base64，无填充。
func (id ID) String() string {
	b := id.Bytes()
	var dst [TextLen]byte
	// 8 字节必然编码为 11 符号，容量精确
	_, _ = xb64.URLSafe.WithoutPadding().EncodeTo(dst[:], b[:])
	return string(dst[:])
}

// Parse 从文本形式还原 ID。
//
// URL 安全与标准字母表可互换，允许省略末尾填充。
// 解码产物不足 8 字节时返回 ErrWrongSliceSize；
// 超出 8 字节时返回 xb64.ErrBufferTooSmall；
// 非法符号返回 xb64.ErrWrongSymbol。
func Parse(s string) (ID, error) {
	return ParseBytes([]byte(s))
}

// ParseBytes 与 Parse 相同，但接受字节切片。
func ParseBytes(b []byte) (ID, error) {
	var raw [BinaryLen]byte
	n, err := xb64.DecodeTo(raw[:], b, xb64.IgnorePadding)
	if err != nil {
		return 0, err
	}
	if n != BinaryLen {
		return 0, fmt.Errorf("%w: %d", ErrWrongSliceSize, n)
	}
	return ID(binary.BigEndian.Uint64(raw[:])), nil
}

// MarshalText 实现 encoding.TextMarshaler，JSON 序列化复用文本形式。
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (id *ID) UnmarshalText(b []byte) error {
	v, err := ParseBytes(b)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// DebugString 返回带字段分解的调试形式，
// 例如 `FID{ id: "Pm9rf79L4cw"; ts: 2145258307066; seq: 760; gen: 460 }`。
func (id ID) DebugString() string {
	return fmt.Sprintf("FID{ id: %q; ts: %d; seq: %d; gen: %d }",
		id.String(), id.Timestamp(), id.Sequence(), id.Generator())
}
