package xfid

// =============================================================================
// 位布局常量
// =============================================================================

// ID 的 64 bit 字从高位到低位划分为三个字段：
//
//	42 bits - 时间戳（毫秒或秒，自配置纪元起）
//	11 bits - 序列号（同一时间戳内单调递增）
//	10 bits - 生成器标识
//
// 第 63 位保留为零：保持有符号解释下非负，并为未来的标志位留出空间。
// 写出时必须为零，读入时携带该位的值不被拒绝。
// 掩码与位移均由宽度常量推导，宽度是唯一事实来源。
const (
	// TimestampBits 时间戳字段宽度。
	TimestampBits = 42
	// SequenceBits 序列号字段宽度。
	SequenceBits = 11
	// GeneratorBits 生成器标识字段宽度。
	GeneratorBits = 10

	timestampShift = SequenceBits + GeneratorBits
	sequenceShift  = GeneratorBits

	// MaxTimestamp 时间戳字段的最大合法值（2⁴²−1）。
	MaxTimestamp uint64 = 1<<TimestampBits - 1
	// MaxSequence 序列号字段的最大合法值（2047）。
	MaxSequence uint16 = 1<<SequenceBits - 1
	// MaxGenerator 生成器标识字段的最大合法值（1023）。
	MaxGenerator uint16 = 1<<GeneratorBits - 1

	// TimestampMask 时间戳字段在 64 bit 字中的掩码。
	TimestampMask uint64 = MaxTimestamp << timestampShift
	// SequenceMask 序列号字段在 64 bit 字中的掩码。
	SequenceMask uint64 = uint64(MaxSequence) << sequenceShift
	// GeneratorMask 生成器标识字段在 64 bit 字中的掩码。
	GeneratorMask uint64 = uint64(MaxGenerator)

	// BinaryLen 二进制形式的字节数（大端序）。
	BinaryLen = 8
	// TextLen 文本形式的字符数（URL 安全 base64，无填充）。
	TextLen = 11
)
