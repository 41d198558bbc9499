package xfid

import "time"

// Clock 提供生成器所需的时间能力。
//
// 生产环境使用 SystemClock；测试注入确定性时钟。
// 生成器不直接依赖全局时钟，时钟能力一律经由 WithClock 注入。
type Clock interface {
	Now() time.Time
}

// SystemClock 真实系统时钟。
type SystemClock struct{}

// Now 返回当前墙钟时间。
func (SystemClock) Now() time.Time { return time.Now() }
