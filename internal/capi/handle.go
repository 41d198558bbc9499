package capi

import (
	"sync"

	"github.com/omeyang/fidkit/pkg/util/xfid"
)

// 句柄表：cgo 禁止向 C 侧传递 Go 指针，生成器以单调分配的
// 整数句柄代替。句柄 0 永不分配，对应空指针语义。
var (
	genMu    sync.Mutex
	genTable = make(map[uint64]*xfid.Generator)
	genLast  uint64
)

// GenNew 以默认配置创建生成器并写入句柄。
func GenNew(dst *uint64, generator uint64, waitSequence bool) int32 {
	return GenNewEx(dst, generator, xfid.DefaultTimestampOffset, 0, 0, waitSequence, false)
}

// GenNewEx 以完整配置创建生成器并写入句柄。
// 字段以 64 bit 宽度进场，先做全宽范围检查再收窄。
func GenNewEx(dst *uint64, generator uint64, timestampOffset int64,
	timestampLast, sequence uint64, waitSequence, timestampInSeconds bool) int32 {
	if dst == nil {
		return InvalidArgument
	}
	if generator > uint64(xfid.MaxGenerator) {
		return GeneratorOverflow
	}
	if sequence > uint64(xfid.MaxSequence) {
		return SequenceOverflow
	}
	g, err := xfid.NewGenerator(uint16(generator),
		xfid.WithTimestampOffset(timestampOffset),
		xfid.WithTimestampLast(timestampLast),
		xfid.WithSequence(uint16(sequence)),
		xfid.WithWaitSequence(waitSequence),
		xfid.WithTimestampInSeconds(timestampInSeconds),
	)
	if err != nil {
		return errCode(err)
	}

	genMu.Lock()
	genLast++
	h := genLast
	genTable[h] = g
	genMu.Unlock()

	*dst = h
	return OK
}

// GenNext 签发下一个 ID 并写入 dst。
// 等待策略开启时可能阻塞；生成器是单一持有者对象，
// 句柄表锁只保护表本身，不串行化 Next 调用。
func GenNext(handle uint64, dst *uint64) int32 {
	if dst == nil {
		return InvalidArgument
	}
	genMu.Lock()
	g := genTable[handle]
	genMu.Unlock()
	if g == nil {
		return InvalidArgument
	}
	id, err := g.Next()
	if err != nil {
		return errCode(err)
	}
	*dst = uint64(id)
	return OK
}

// GenRelease 释放生成器句柄。重复释放返回 InvalidArgument。
func GenRelease(handle uint64) int32 {
	genMu.Lock()
	defer genMu.Unlock()
	if _, ok := genTable[handle]; !ok {
		return InvalidArgument
	}
	delete(genTable, handle)
	return OK
}
