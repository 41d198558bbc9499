package xb64

import "errors"

var (
	// ErrPadding 表示填充错误：非末尾组不足 4 个符号、
	// 非空组的有效位与填充位之和不等于 24、填充超过 18 bit，
	// 或填充符号出现在末尾组之前。
	ErrPadding = errors.New("xb64: padding error")

	// ErrWrongSymbol 表示输入字节不在字母表中且不是 `=`。
	ErrWrongSymbol = errors.New("xb64: wrong symbol")

	// ErrBufferTooSmall 表示定容变体的目标缓冲区容量不足。
	ErrBufferTooSmall = errors.New("xb64: buffer too small")
)
