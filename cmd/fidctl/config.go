package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/fidkit/pkg/util/xfid"
)

// generatorConfig 生成器设置。配置文件与命令行旗标共用此结构，
// 旗标优先于配置文件，配置文件优先于默认值。
type generatorConfig struct {
	// Generator 生成器标识 (0-1023)。-1 表示未指定，
	// 此时回退到 DefaultGeneratorID 的推导策略。
	Generator int64 `koanf:"generator"`

	// TimestampOffset 纪元偏移秒数。
	TimestampOffset int64 `koanf:"timestamp_offset"`

	// TimestampInSeconds 秒粒度时间戳。
	TimestampInSeconds bool `koanf:"timestamp_in_seconds"`

	// WaitSequence 序列号耗尽时等待下一刻度。
	WaitSequence bool `koanf:"wait_sequence"`
}

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{
		Generator:       -1,
		TimestampOffset: xfid.DefaultTimestampOffset,
		WaitSequence:    true,
	}
}

// loadGeneratorConfig 读取配置文件并叠加在默认值之上。
// path 为空时直接返回默认值。格式按扩展名选择解析器。
func loadGeneratorConfig(path string) (generatorConfig, error) {
	cfg := defaultGeneratorConfig()
	if path == "" {
		return cfg, nil
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	case ".json":
		parser = kjson.Parser()
	default:
		return cfg, fmt.Errorf("unsupported config format: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// buildGenerator 按最终配置构造生成器。
// 未指定生成器标识时回退到 DefaultGeneratorID。
func buildGenerator(cfg generatorConfig) (*xfid.Generator, error) {
	gid := cfg.Generator
	if gid < 0 {
		derived, err := xfid.DefaultGeneratorID()
		if err != nil {
			return nil, err
		}
		gid = int64(derived)
	}
	if gid > int64(xfid.MaxGenerator) {
		return nil, fmt.Errorf("%w: %d", xfid.ErrGeneratorOverflow, gid)
	}
	return xfid.NewGenerator(uint16(gid),
		xfid.WithTimestampOffset(cfg.TimestampOffset),
		xfid.WithTimestampInSeconds(cfg.TimestampInSeconds),
		xfid.WithWaitSequence(cfg.WaitSequence),
	)
}
