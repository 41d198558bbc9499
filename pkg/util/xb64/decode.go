package xb64

import "fmt"

// =============================================================================
// 忽略模式
// =============================================================================

// Ignore 选择解码器放宽哪一类错误。
// 被放宽的错误视为当前组的输入结束，解码器返回已累积的完整字节。
type Ignore int

const (
	// IgnoreNone 严格模式，任何错误都返回。
	IgnoreNone Ignore = iota
	// IgnorePadding 放宽填充类错误。
	IgnorePadding
	// IgnoreWrongSymbol 放宽非法符号错误。
	IgnoreWrongSymbol
	// IgnorePaddingWrongSymbol 同时放宽两类错误。
	IgnorePaddingWrongSymbol
)

func (ig Ignore) padding() bool {
	return ig == IgnorePadding || ig == IgnorePaddingWrongSymbol
}

func (ig Ignore) wrongSymbol() bool {
	return ig == IgnoreWrongSymbol || ig == IgnorePaddingWrongSymbol
}

// =============================================================================
// 解码
// =============================================================================

// symbolValue 将符号映射为 6 bit 值。两种字母表同时接受：
// `-` 与 `+` 均为 62，`_` 与 `/` 均为 63。
func symbolValue(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A', true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 26, true
	case c >= '0' && c <= '9':
		return c - '0' + 52, true
	case c == '-' || c == '+':
		return 62, true
	case c == '_' || c == '/':
		return 63, true
	}
	return 0, false
}

// Decode 解码 src 并返回新分配的输出。
// 字母表不区分：URL 安全形式与标准形式可互换，填充可省略
// （省略时需 IgnorePadding）。
func Decode(src []byte, ignore Ignore) ([]byte, error) {
	dst := make([]byte, (len(src)+3)/4*3)
	n, err := DecodeTo(dst, src, ignore)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecodeString 解码字符串形式的 src。
func DecodeString(src string, ignore Ignore) ([]byte, error) {
	return Decode([]byte(src), ignore)
}

// DecodeTo 将 src 解码进调用方提供的 dst，返回写入的字节数。
// dst 在写出下一个字节前耗尽时返回 ErrBufferTooSmall，
// 此时已写入的字节内容未定义，调用方应丢弃。
func DecodeTo(dst, src []byte, ignore Ignore) (int, error) {
	di := 0
	for i := 0; i < len(src); i += 4 {
		var group uint32
		length, padding := 0, 0
		for j := 0; j < 4 && i+j < len(src); j++ {
			c := src[i+j]
			if c == '=' {
				padding += 6
				continue
			}
			v, ok := symbolValue(c)
			if !ok {
				if ignore.wrongSymbol() {
					break
				}
				return di, fmt.Errorf("%w: 0x%02x at offset %d", ErrWrongSymbol, c, i+j)
			}
			group |= uint32(v) << (18 - 6*j)
			length += 6
		}
		// 非空组必须恰好凑满 24 bit，填充最多 18 bit
		if (length > 0 && length+padding != 24) || padding > 18 {
			if !ignore.padding() {
				return di, fmt.Errorf("%w: group at offset %d", ErrPadding, i)
			}
		}
		for j := 0; j < 3 && length >= 8; j++ {
			if di >= len(dst) {
				return di, ErrBufferTooSmall
			}
			dst[di] = byte(group >> (16 - 8*j))
			di++
			length -= 8
		}
		// 填充只允许出现在末尾组
		if padding > 0 && i+4 < len(src) {
			if ignore.padding() {
				return di, nil
			}
			return di, fmt.Errorf("%w: pad symbol before final group at offset %d", ErrPadding, i)
		}
	}
	return di, nil
}
