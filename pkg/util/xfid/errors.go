package xfid

import "errors"

var (
	// ErrTimestampOverflow 时间戳超出 42 bit 范围。
	ErrTimestampOverflow = errors.New("xfid: timestamp overflow")

	// ErrSequenceOverflow 序列号超出 11 bit 范围，
	// 或生成器在同一时间戳内耗尽序列号且未启用等待策略。
	ErrSequenceOverflow = errors.New("xfid: sequence overflow")

	// ErrGeneratorOverflow 生成器标识超出 10 bit 范围。
	ErrGeneratorOverflow = errors.New("xfid: generator overflow")

	// ErrSysTimeIsInPast 时钟读数早于配置纪元，或回拨到已签发时间戳之前。
	ErrSysTimeIsInPast = errors.New("xfid: system time is in past")

	// ErrWrongSliceSize 二进制形式的字节数不等于 8。
	ErrWrongSliceSize = errors.New("xfid: wrong slice size")

	// ErrNoPrivateAddress 无法找到私有 IPv4 地址。
	// 当 DefaultGeneratorID 的所有获取策略均失败时返回。
	ErrNoPrivateAddress = errors.New("xfid: no private IP address found")
)
