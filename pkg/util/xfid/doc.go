// Package xfid 提供紧凑、时序有序的 64 bit 花形标识符（flower ID）。
//
// # 设计理念
//
// xfid 把毫秒/秒粒度时间戳、单调序列号与生成器标识打包进一个
// 64 bit 字，适合作为跨独立生产者集群的主键或事件标记：
//   - 比 UUID 短得多：8 字节二进制 / 11 字符文本（UUID 为 36 字符）
//   - 时序有序：同一生成器签发的 ID 按无符号整数比较严格递增
//   - 无外部依赖：不做跨生产者协调、不做时钟同步、不做状态持久化
//
// # ID 结构
//
// 64 bit 字从高位到低位（第 63 位保留为零）：
//
//	42 bits - 时间戳（毫秒或秒，自配置纪元起，默认纪元 2017-01-01 UTC）
//	11 bits - 序列号（同一时间戳内最多 2048 个 ID）
//	10 bits - 生成器标识（最多 1024 个生产者）
//
// 二进制形式为 8 字节大端序；文本形式为 11 字符 URL 安全
// base64（无填充），两种形式无损互转。
//
// # 快速开始
//
//	gen, err := xfid.NewGenerator(0x12c)
//	if err != nil {
//	    return err
//	}
//	id, err := gen.Next()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id)            // 例如: "QJuLKsbysSw"
//	fmt.Println(id.Timestamp(), id.Sequence(), id.Generator())
//
// 解析与序列化：
//
//	id, err := xfid.Parse("QJuLKsbysSw")
//	b := id.Bytes()            // 8 字节线上格式
//	id2, err := xfid.FromBytes(b[:])
//
// ID 实现了 encoding.TextMarshaler/TextUnmarshaler 与
// BinaryMarshaler/BinaryUnmarshaler，可直接用于 JSON 与二进制存储。
//
// # 生成器配置
//
// 生成器标识是必填参数，其余皆有默认值：
//
//	gen, err := xfid.NewGenerator(7,
//	    xfid.WithTimestampInSeconds(true),   // 秒粒度（默认毫秒）
//	    xfid.WithWaitSequence(false),        // 序列号耗尽立即失败（默认等待）
//	    xfid.WithTimestampOffset(-1483228800), // 纪元偏移（默认 2017-01-01）
//	)
//
// WithTimestampLast/WithSequence 允许在重启后以外部保存的状态续点，
// 核心自身不做持久化。
//
// # 生成器标识获取策略
//
// 跨生产者唯一性由运维分配保证。DefaultGeneratorID 提供与机器
// 绑定的 best-effort 推导（环境变量 → Pod 名称哈希 → 主机名哈希 →
// 私有 IP 低 10 位），仅适合小规模部署；详见该函数文档。
//
// # 时钟与单调性
//
// 生成器通过 Clock 接口读取时间，生产环境为 SystemClock，
// 测试可注入确定性时钟。时钟回拨到已签发时间戳之前时 Next 返回
// ErrSysTimeIsInPast 且状态不变，时钟恢复前进后自动复位。
//
// # 线程安全
//
// Generator 是单一持有者对象，内部不加锁；跨 goroutine 共享必须
// 由调用方串行化。ID 是纯值类型，可自由并发读取。
package xfid
