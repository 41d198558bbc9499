package xfid

// DefaultTimestampOffset 默认纪元偏移（秒）。
// 负值表示纪元相对 UNIX 纪元前移：-1483228800 即 2017-01-01 00:00:00 UTC。
const DefaultTimestampOffset int64 = -1483228800

// options 内部配置结构
type options struct {
	offset    int64
	last      uint64
	sequence  uint16
	waitSeq   bool
	inSeconds bool
	clock     Clock
}

func defaultOptions() *options {
	return &options{
		offset:  DefaultTimestampOffset,
		waitSeq: true,
		clock:   SystemClock{},
	}
}

// Option 配置选项函数
type Option func(*options)

// WithTimestampOffset 设置纪元偏移（秒）。
// 墙钟减去该偏移得到打包时间戳域；负值把纪元向未来平移。
func WithTimestampOffset(seconds int64) Option {
	return func(c *options) {
		c.offset = seconds
	}
}

// WithTimestampLast 设置已签发时间戳的初值。
// 调用方可借此在重启后延续单调性（核心自身不做持久化）。
func WithTimestampLast(ts uint64) Option {
	return func(c *options) {
		c.last = ts
	}
}

// WithSequence 设置序列号初值。
func WithSequence(seq uint16) Option {
	return func(c *options) {
		c.sequence = seq
	}
}

// WithWaitSequence 设置序列号耗尽策略。
// true（默认）：睡眠至下一刻度后重试；false：返回 ErrSequenceOverflow。
func WithWaitSequence(wait bool) Option {
	return func(c *options) {
		c.waitSeq = wait
	}
}

// WithTimestampInSeconds 切换到秒粒度时间戳。默认毫秒粒度。
func WithTimestampInSeconds(inSeconds bool) Option {
	return func(c *options) {
		c.inSeconds = inSeconds
	}
}

// WithClock 注入时钟能力。传入 nil 时退回 SystemClock。
func WithClock(clock Clock) Option {
	return func(c *options) {
		c.clock = clock
	}
}
