// Package xb64 提供字母表参数化的 base64 编解码能力。
//
// # 设计理念
//
// xb64 是 xfid 文本编码的底层依赖，同时作为独立工具包对外提供。
// 与标准库 encoding/base64 的差异：
//   - 解码器不区分字母表：`-`/`+` 均映射到 62，`_`/`/` 均映射到 63，
//     因此 URL 安全形式与标准形式可以互换解码
//   - 解码器支持"忽略模式"（Ignore），可以把填充错误或非法符号
//     视为输入结束，返回已累积的完整字节
//   - 提供定容变体（EncodeTo/DecodeTo），端到端零分配
//
// # 编码
//
// 编码器以 Encoding 值为参数（字母表 + 填充策略皆为数据）：
//
//	xb64.Std.Encode([]byte("foo bar"))                      // "Zm9vIGJhcg=="
//	xb64.Std.WithoutPadding().Encode([]byte("foo bar"))     // "Zm9vIGJhcg"
//	xb64.URLSafe.Encode([]byte{0xfb, 0xef, 0xff})           // "--__"
//
// # 解码
//
// 解码按 4 符号一组处理，每个 `=` 贡献 6 bit 填充权重；
// 组完成后仅保留 ⌊有效位数/8⌋ 个输出字节：
//
//	data, err := xb64.Decode([]byte("Zm9vIGJhcg=="), xb64.IgnoreNone)
//
// 忽略模式将对应类别的错误视为当前组的输入结束：
//
//	// 无填充输入在严格模式下报 ErrPadding，忽略填充错误后可正常解出
//	data, _ := xb64.Decode([]byte("Zm9vIGJhcg"), xb64.IgnorePadding)
//
// # 线程安全
//
// Encoding 与 Ignore 均为纯值类型，所有函数无共享状态，可并发调用。
package xb64
