package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/fidkit/pkg/util/xb64"
	"github.com/omeyang/fidkit/pkg/util/xfid"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

func errExit(code int, format string, args ...any) error {
	fmt.Fprintf(os.Stderr, "fidctl: "+format+"\n", args...)
	return &exitError{code: code}
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createNewCommand(),
		createInspectCommand(),
		createEncodeCommand(),
		createDecodeCommand(),
	}
}

// =============================================================================
// new
// =============================================================================

func createNewCommand() *cli.Command {
	return &cli.Command{
		Name:  "new",
		Usage: "签发 ID",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "签发数量",
				Value:   1,
			},
			&cli.IntFlag{
				Name:    "generator",
				Aliases: []string{"g"},
				Usage:   "生成器标识 (0-1023)，缺省时按环境推导",
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "纪元偏移秒数",
				Value: xfid.DefaultTimestampOffset,
			},
			&cli.BoolFlag{
				Name:  "seconds",
				Usage: "秒粒度时间戳",
			},
			&cli.BoolFlag{
				Name:  "no-wait",
				Usage: "序列号耗尽时立即失败而非等待",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "输出格式: text|int|hex|debug",
				Value:   "text",
			},
		},
		Action: cmdNew,
	}
}

func cmdNew(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadGeneratorConfig(cmd.String("config"))
	if err != nil {
		return errExit(2, "%v", err)
	}
	// 旗标优先于配置文件
	if cmd.IsSet("generator") {
		cfg.Generator = cmd.Int("generator")
	}
	if cmd.IsSet("offset") {
		cfg.TimestampOffset = cmd.Int("offset")
	}
	if cmd.IsSet("seconds") {
		cfg.TimestampInSeconds = cmd.Bool("seconds")
	}
	if cmd.IsSet("no-wait") {
		cfg.WaitSequence = !cmd.Bool("no-wait")
	}

	count := cmd.Int("count")
	if count < 1 {
		return errExit(2, "invalid count: %d", count)
	}
	format := cmd.String("format")
	if _, err := formatID(0, format); err != nil {
		return errExit(2, "%v", err)
	}

	gen, err := buildGenerator(cfg)
	if err != nil {
		return errExit(2, "%v", err)
	}
	for i := int64(0); i < count; i++ {
		id, err := gen.Next()
		if err != nil {
			return errExit(1, "%v", err)
		}
		s, _ := formatID(id, format)
		fmt.Println(s)
	}
	return nil
}

func formatID(id xfid.ID, format string) (string, error) {
	switch format {
	case "text":
		return id.String(), nil
	case "int":
		return strconv.FormatUint(uint64(id), 10), nil
	case "hex":
		return fmt.Sprintf("0x%016x", uint64(id)), nil
	case "debug":
		return id.DebugString(), nil
	}
	return "", fmt.Errorf("unknown format: %q", format)
}

// =============================================================================
// inspect
// =============================================================================

func createInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "分解 ID，打印各字段与还原的墙钟时间",
		ArgsUsage: "<id>...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "offset",
				Usage: "还原墙钟时间用的纪元偏移秒数",
				Value: xfid.DefaultTimestampOffset,
			},
			&cli.BoolFlag{
				Name:  "seconds",
				Usage: "按秒粒度解释时间戳",
			},
		},
		Action: cmdInspect,
	}
}

func cmdInspect(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errExit(2, "inspect requires at least one id")
	}
	cfg, err := loadGeneratorConfig(cmd.String("config"))
	if err != nil {
		return errExit(2, "%v", err)
	}
	if cmd.IsSet("offset") {
		cfg.TimestampOffset = cmd.Int("offset")
	}
	if cmd.IsSet("seconds") {
		cfg.TimestampInSeconds = cmd.Bool("seconds")
	}

	for i, arg := range args {
		id, err := parseAnyID(arg)
		if err != nil {
			return errExit(2, "parse %q: %v", arg, err)
		}
		if i > 0 {
			fmt.Println()
		}
		printID(id, cfg)
	}
	return nil
}

// parseAnyID 接受文本形式、0x 前缀十六进制或十进制整数。
func parseAnyID(s string) (xfid.ID, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0, err
		}
		return xfid.ID(v), nil
	}
	if len(s) == xfid.TextLen {
		return xfid.Parse(s)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return xfid.ID(v), nil
}

func printID(id xfid.ID, cfg generatorConfig) {
	b := id.Bytes()
	fmt.Printf("id:        %s\n", id)
	fmt.Printf("int:       %d\n", uint64(id))
	fmt.Printf("hex:       0x%016x\n", uint64(id))
	fmt.Printf("bytes:     % x\n", b[:])
	fmt.Printf("timestamp: %d\n", id.Timestamp())
	fmt.Printf("sequence:  %d\n", id.Sequence())
	fmt.Printf("generator: %d\n", id.Generator())
	fmt.Printf("time:      %s\n", wallTime(id, cfg).UTC().Format(time.RFC3339Nano))
}

// wallTime 由打包时间戳还原墙钟时间。
func wallTime(id xfid.ID, cfg generatorConfig) time.Time {
	epoch := time.Unix(-cfg.TimestampOffset, 0)
	t := id.Timestamp()
	if cfg.TimestampInSeconds {
		return epoch.Add(time.Duration(t) * time.Second)
	}
	return epoch.Add(time.Duration(t) * time.Millisecond)
}

// =============================================================================
// encode / decode
// =============================================================================

func createEncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "base64 编码（无参数时读取标准输入）",
		ArgsUsage: "[data]...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "url-safe",
				Usage: "使用 URL 安全字母表",
			},
			&cli.BoolFlag{
				Name:  "no-padding",
				Usage: "省略末尾填充",
			},
		},
		Action: cmdEncode,
	}
}

func cmdEncode(_ context.Context, cmd *cli.Command) error {
	enc := xb64.Std
	if cmd.Bool("url-safe") {
		enc = xb64.URLSafe
	}
	if cmd.Bool("no-padding") {
		enc = enc.WithoutPadding()
	}

	inputs, err := collectInputs(cmd)
	if err != nil {
		return errExit(1, "%v", err)
	}
	for _, in := range inputs {
		fmt.Println(enc.EncodeString(in))
	}
	return nil
}

func createDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "base64 解码（无参数时读取标准输入）",
		ArgsUsage: "[data]...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ignore",
				Usage: "忽略模式: none|padding|symbol|both",
				Value: "none",
			},
		},
		Action: cmdDecode,
	}
}

func cmdDecode(_ context.Context, cmd *cli.Command) error {
	ignore, err := parseIgnore(cmd.String("ignore"))
	if err != nil {
		return errExit(2, "%v", err)
	}
	inputs, err := collectInputs(cmd)
	if err != nil {
		return errExit(1, "%v", err)
	}
	for _, in := range inputs {
		data, err := xb64.Decode(in, ignore)
		if err != nil {
			return errExit(1, "%v", err)
		}
		os.Stdout.Write(data)
		fmt.Println()
	}
	return nil
}

func parseIgnore(s string) (xb64.Ignore, error) {
	switch s {
	case "none", "":
		return xb64.IgnoreNone, nil
	case "padding":
		return xb64.IgnorePadding, nil
	case "symbol":
		return xb64.IgnoreWrongSymbol, nil
	case "both":
		return xb64.IgnorePaddingWrongSymbol, nil
	}
	return xb64.IgnoreNone, fmt.Errorf("unknown ignore mode: %q", s)
}

// collectInputs 返回各命令行参数的字节形式；
// 无参数时读取标准输入（去掉末尾换行）。
func collectInputs(cmd *cli.Command) ([][]byte, error) {
	args := cmd.Args().Slice()
	if len(args) > 0 {
		inputs := make([][]byte, 0, len(args))
		for _, a := range args {
			inputs = append(inputs, []byte(a))
		}
		return inputs, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	data = []byte(strings.TrimRight(string(data), "\r\n"))
	return [][]byte{data}, nil
}
