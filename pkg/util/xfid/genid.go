package xfid

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// 测试注入点：允许测试替换系统调用以覆盖所有错误分支。
var (
	osHostname        = os.Hostname        // generatorIDFromOSHostname
	netInterfaceAddrs = net.InterfaceAddrs // privateIPv4
)

// =============================================================================
// 环境变量
// =============================================================================

const (
	// EnvGeneratorID 直接指定生成器标识的环境变量（0-1023）
	EnvGeneratorID = "FID_GENERATOR_ID"

	// EnvPodName K8s Pod 名称环境变量（通过 Downward API 注入）
	EnvPodName = "POD_NAME"

	// EnvHostname 主机名环境变量（某些环境会设置）
	EnvHostname = "HOSTNAME"
)

// =============================================================================
// 生成器标识获取策略
// =============================================================================

// DefaultGeneratorID 获取生成器标识，按以下优先级尝试：
//
//  1. FID_GENERATOR_ID 环境变量（直接指定数字 0-1023）
//  2. POD_NAME 环境变量的哈希值（K8s Downward API）
//  3. HOSTNAME 环境变量的哈希值
//  4. os.Hostname() 的哈希值
//  5. 私有 IPv4 地址的低 10 位
//
// 生成器标识的分配本质上是运维配置，跨生产者唯一性只能由运维保证。
// 哈希策略（2-4）在 1024 的标识空间内碰撞概率不可忽略，
// 多于个位数节点的部署请通过 FID_GENERATOR_ID 显式分配。
func DefaultGeneratorID() (uint16, error) {
	// 策略 1：直接从环境变量读取
	if s := os.Getenv(EnvGeneratorID); s != "" {
		id, err := strconv.ParseUint(s, 10, 16)
		if err != nil || id > uint64(MaxGenerator) {
			return 0, fmt.Errorf("%w: invalid %s value %q", ErrGeneratorOverflow, EnvGeneratorID, s)
		}
		return uint16(id), nil
	}

	// 策略 2：从 Pod 名称哈希
	if name := os.Getenv(EnvPodName); name != "" {
		return hashToGeneratorID(name), nil
	}

	// 策略 3：从 HOSTNAME 环境变量哈希
	if name := os.Getenv(EnvHostname); name != "" {
		return hashToGeneratorID(name), nil
	}

	// 策略 4：从 os.Hostname() 哈希
	hostname, hostnameErr := osHostname()
	if hostnameErr == nil && hostname != "" {
		return hashToGeneratorID(hostname), nil
	}
	if hostnameErr == nil {
		hostnameErr = errors.New("os.Hostname returned empty string")
	}

	// 策略 5：从私有 IPv4 地址
	ip, err := privateIPv4()
	if err != nil {
		return 0, fmt.Errorf("xfid: all generator ID strategies exhausted (os-hostname: %v): %w", hostnameErr, err)
	}
	b := ip.As4()
	return (uint16(b[2])<<8 | uint16(b[3])) & MaxGenerator, nil
}

// hashToGeneratorID 将字符串哈希为 10 位生成器标识。
// 先把 64 位 xxhash 按 16 位通道 XOR 折叠，再截到 10 位，
// 比直接取低位更充分利用完整哈希值。
func hashToGeneratorID(s string) uint16 {
	h := xxhash.Sum64String(s)
	folded := uint16(h) ^ uint16(h>>16) ^ uint16(h>>32) ^ uint16(h>>48)
	return folded & MaxGenerator
}

// privateIPv4 获取私有 IPv4 地址。
//
// 注意：net.InterfaceAddrs 的枚举顺序依赖于操作系统，多网卡环境下
// 重启后可能选到不同的 IP，导致生成器标识变化。
// 生产环境建议通过 FID_GENERATOR_ID 环境变量显式分配。
func privateIPv4() (netip.Addr, error) {
	addrs, err := netInterfaceAddrs()
	if err != nil {
		return netip.Addr{}, err
	}

	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}

		ip, ok := netip.AddrFromSlice(ipnet.IP)
		if !ok {
			continue
		}
		ip = ip.Unmap()
		if ip.IsLoopback() || !ip.Is4() {
			continue
		}

		if ip.IsPrivate() || ip.IsLinkLocalUnicast() {
			return ip, nil
		}
	}

	return netip.Addr{}, ErrNoPrivateAddress
}
