// fidctl 是花形 ID 的命令行工具。
//
// 用法:
//
//	fidctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   生成器配置文件路径 (.yaml/.yml/.json)
//
// 命令:
//
//	new            签发 ID
//	inspect        分解 ID，打印各字段与还原的墙钟时间
//	encode         base64 编码（xb64 工具面）
//	decode         base64 解码
//
// 配置文件键（均可被命令行旗标覆盖）:
//
//	generator            生成器标识 (0-1023)
//	timestamp_offset     纪元偏移秒数（默认 -1483228800，即 2017-01-01 UTC）
//	timestamp_in_seconds 秒粒度时间戳（默认 false）
//	wait_sequence        序列号耗尽时等待下一刻度（默认 true）
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败
//	2: 参数错误（字段越界、未知命令、配置文件非法等）
//
// 示例:
//
//	fidctl new -g 300 -n 5                 # 以生成器标识 300 签发 5 个 ID
//	fidctl new --seconds --no-wait         # 秒粒度、序列号耗尽立即失败
//	fidctl -c fid.yaml new                 # 生成器设置来自配置文件
//	fidctl inspect QJuLKsbysSw             # 分解文本形式的 ID
//	fidctl encode --url-safe "foo bar"     # base64 编码
//	fidctl decode --ignore padding Zm9vIGJhcg
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "fidctl",
		Usage:   "花形 ID 命令行工具",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "生成器配置文件路径 (.yaml/.yml/.json)",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 退出码映射统一在 run() 处理，不让 urfave/cli 直接 os.Exit
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		if coder, ok := err.(cli.ExitCoder); ok {
			return coder.ExitCode()
		}
		fmt.Fprintln(os.Stderr, "fidctl:", err)
		return 1
	}
	return 0
}
