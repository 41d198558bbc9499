package xfid

import (
	"fmt"
	"time"
)

// timeSleep 测试注入点：允许测试替换等待路径的睡眠实现。
var timeSleep = time.Sleep

const (
	// 序列号耗尽等待的轮询间隔，按时间戳粒度取刻度
	waitTickMillis  = 1 * time.Millisecond
	waitTickSeconds = 10 * time.Millisecond
)

// Generator 花形 ID 生成器。
//
// 单一持有者语义：实例仅由当前持有它的调用方串行使用，内部不加锁。
// 跨 goroutine 共享时调用方必须在外部串行化。
type Generator struct {
	generator uint16
	offset    int64
	epoch     time.Time
	last      uint64
	seq       uint16
	waitSeq   bool
	inSeconds bool
	clock     Clock
}

// NewGenerator 创建生成器。
//
// 构造期校验一次完成，不会产生半初始化的实例。
// 校验顺序：生成器标识、序列号初值、时间戳初值。
//
// 使用示例:
//
//	gen, err := xfid.NewGenerator(0x12c)
//	if err != nil {
//	    return err
//	}
//	id, err := gen.Next()
func NewGenerator(generatorID uint16, opts ...Option) (*Generator, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if generatorID > MaxGenerator {
		return nil, fmt.Errorf("%w: %d", ErrGeneratorOverflow, generatorID)
	}
	if cfg.sequence > MaxSequence {
		return nil, fmt.Errorf("%w: %d", ErrSequenceOverflow, cfg.sequence)
	}
	if cfg.last > MaxTimestamp {
		return nil, fmt.Errorf("%w: %d", ErrTimestampOverflow, cfg.last)
	}
	if cfg.clock == nil {
		cfg.clock = SystemClock{}
	}
	return &Generator{
		generator: generatorID,
		offset:    cfg.offset,
		epoch:     time.Unix(-cfg.offset, 0),
		last:      cfg.last,
		seq:       cfg.sequence,
		waitSeq:   cfg.waitSeq,
		inSeconds: cfg.inSeconds,
		clock:     cfg.clock,
	}, nil
}

// GeneratorID 返回构造时固定的生成器标识。
func (g *Generator) GeneratorID() uint16 { return g.generator }

// Next 签发下一个 ID。
//
// 同一实例先后成功签发的 ID 按无符号整数比较严格递增
// （前提是时钟在配置粒度上不回退）。失败时状态不变：
//   - ErrSysTimeIsInPast：时钟早于纪元或回拨到上次时间戳之前
//   - ErrTimestampOverflow：打包时间戳达到 2⁴²
//   - ErrSequenceOverflow：同一时间戳内序列号耗尽且未启用等待策略
//
// 启用等待策略（默认）时，序列号耗尽会按粒度刻度轮询睡眠直至时钟
// 前进，这是核心中唯一的阻塞路径，不提供取消；需要取消的调用方
// 应在外部包一层超时并丢弃实例。
func (g *Generator) Next() (ID, error) {
	for {
		t, err := g.timestamp()
		if err != nil {
			return 0, err
		}
		switch {
		case t < g.last:
			return 0, ErrSysTimeIsInPast
		case t > g.last:
			g.last, g.seq = t, 0
			return New(t, 0, g.generator)
		default:
			if g.seq < MaxSequence {
				g.seq++
				return New(t, g.seq, g.generator)
			}
			if !g.waitSeq {
				return 0, fmt.Errorf("%w: %d", ErrSequenceOverflow, g.seq)
			}
			timeSleep(g.waitTick())
		}
	}
}

// MustNext 签发下一个 ID，失败时 panic。
// 仅适用于明确接受 crash-fast 策略的场景。
func (g *Generator) MustNext() ID {
	id, err := g.Next()
	if err != nil {
		panic(err)
	}
	return id
}

// timestamp 读取时钟并换算到打包时间戳域。
// 溢出阈值统一为打包域内的 2⁴²，与粒度无关。
func (g *Generator) timestamp() (uint64, error) {
	now := g.clock.Now()
	if now.Before(g.epoch) {
		return 0, ErrSysTimeIsInPast
	}
	d := now.Sub(g.epoch)
	t := uint64(d / time.Millisecond)
	if g.inSeconds {
		t = uint64(d / time.Second)
	}
	if t > MaxTimestamp {
		return 0, fmt.Errorf("%w: %d", ErrTimestampOverflow, t)
	}
	return t, nil
}

func (g *Generator) waitTick() time.Duration {
	if g.inSeconds {
		return waitTickSeconds
	}
	return waitTickMillis
}
