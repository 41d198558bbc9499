package xb64

// =============================================================================
// 字母表
// =============================================================================

// stdAlphabet 标准字母表（RFC 4648 §4），第 62/63 位为 `+`/`/`。
var stdAlphabet = [64]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'a', 'b', 'c', 'd', 'e', 'f',
	'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v',
	'w', 'x', 'y', 'z', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '+', '/',
}

// urlAlphabet URL 安全字母表（RFC 4648 §5），第 62/63 位为 `-`/`_`。
var urlAlphabet = [64]byte{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O', 'P',
	'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', 'a', 'b', 'c', 'd', 'e', 'f',
	'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v',
	'w', 'x', 'y', 'z', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-', '_',
}

// =============================================================================
// Encoding
// =============================================================================

// Encoding 描述一种编码形态：使用的字母表与是否写出填充。
// 零值不可用，请从 Std 或 URLSafe 派生。
type Encoding struct {
	alphabet *[64]byte
	pad      bool
}

// Std 标准字母表、带填充的编码形态。
var Std = Encoding{alphabet: &stdAlphabet, pad: true}

// URLSafe URL 安全字母表、带填充的编码形态。
var URLSafe = Encoding{alphabet: &urlAlphabet, pad: true}

// WithoutPadding 返回去掉填充的派生形态。
// 末尾短组的多余符号被截断而非写为 `=`。
func (e Encoding) WithoutPadding() Encoding {
	e.pad = false
	return e
}

// EncodedLen 返回编码 n 个输入字节产生的输出长度。
func (e Encoding) EncodedLen(n int) int {
	if e.pad {
		return (n + 2) / 3 * 4
	}
	return (n*8 + 5) / 6
}

// Encode 编码 src 并返回新分配的输出。
func (e Encoding) Encode(src []byte) []byte {
	dst := make([]byte, e.EncodedLen(len(src)))
	// 容量按 EncodedLen 精确分配，EncodeTo 不会失败
	n, _ := e.EncodeTo(dst, src)
	return dst[:n]
}

// EncodeString 编码 src 并以字符串返回。
func (e Encoding) EncodeString(src []byte) string {
	return string(e.Encode(src))
}

// EncodeTo 将 src 编码进调用方提供的 dst，返回写入的字节数。
// dst 容量不足时返回 ErrBufferTooSmall：带填充时需要完整的
// 4·⌈n/3⌉ 容量；不带填充时需要精确的无填充长度。
func (e Encoding) EncodeTo(dst, src []byte) (int, error) {
	need := e.EncodedLen(len(src))
	if len(dst) < need {
		return 0, ErrBufferTooSmall
	}
	di := 0
	for i := 0; i < len(src); i += 3 {
		rem := len(src) - i
		// 24 bit 组：b0<<16 | b1<<8 | b2，缺失字节按零处理
		var group uint32
		for j := 0; j < 3 && j < rem; j++ {
			group |= uint32(src[i+j]) << (16 - 8*j)
		}
		// 末尾短组仅 rem+1 个符号有效：1 字节 → 2 符号，2 字节 → 3 符号
		keep := 4
		if rem < 3 {
			keep = rem + 1
		}
		for j := 0; j < 4; j++ {
			switch {
			case j < keep:
				dst[di] = e.alphabet[(group>>(18-6*j))&0x3f]
			case e.pad:
				dst[di] = '='
			default:
				return di, nil
			}
			di++
		}
	}
	return di, nil
}
