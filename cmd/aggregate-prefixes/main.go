// aggregate-prefixes 把一组 IPv4 或 IPv6 前缀聚合为覆盖相同地址空间的最少前缀。
//
// 用法:
//
//	aggregate-prefixes [选项] [文件 ...]
//
// 未指定文件或文件为 "-" 时从标准输入读取。每行可包含多个以空白分隔的前缀，
// "#" 之后的内容视为注释，空行被忽略。多个文件按参数顺序合并。
//
// 选项:
//
//	-c, --config FILE          YAML/JSON 配置文件，命令行参数优先
//	-m, --max-length LENGTH    聚合前丢弃长于 LENGTH 的前缀 (默认: 128)
//	-t, --truncate MASK        聚合前把长于 MASK 的前缀截断为 MASK (默认: 128，即不截断)
//	-s, --strip-host-mask      文本输出时主机前缀 (/32, /128) 只打印地址
//	-f, --format FORMAT        输出格式: text | json | yaml (默认: text)
//	    --check                校验结果与输入覆盖完全相同的地址且为最少表示
//	    --stats                退出前记录聚合统计
//	-v, --verbose              输出逐步诊断信息
//	    --log-file FILE        诊断日志写入可轮转的文件而非标准错误
//	    --log-format FORMAT    诊断日志格式: text | json (默认: text)
//	-V, --version              打印版本信息
//
// 退出码:
//
//	0: 成功
//	1: 输入无法聚合（解析失败、IP 版本混用、校验失败、读取失败）
//	2: 参数错误（未知参数、无效取值、配置文件错误）
//
// 示例:
//
//	aggregate-prefixes routes.txt
//	cat routes.txt | aggregate-prefixes -m 24 -
//	aggregate-prefixes -t 24 --format yaml v4-a.txt v4-b.txt
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func init() {
	// -v 用于 --verbose，版本号使用 -V
	cli.VersionFlag = &cli.BoolFlag{
		Name:        "version",
		Aliases:     []string{"V"},
		Usage:       "打印版本信息",
		HideDefault: true,
		Local:       true,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// streams 是命令使用的标准输入输出，测试中替换为内存缓冲。
type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}
