// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xb64: base64 编解码，标准/URL 安全字母表、可选填充、可配置的容错解码
//   - xfid: 64 bit 花形 ID，42/11/10 位布局、单一持有者生成器、多形式转换
//
// 设计原则：
//   - 纯值语义，核心路径零分配
//   - 显式错误返回，哨兵错误可用 errors.Is 判别
//   - 线上格式（二进制、文本）一经发布保持稳定
package util
