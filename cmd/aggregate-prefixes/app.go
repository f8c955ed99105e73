package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/netip"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xprefix/pkg/net/xaggr"
	"github.com/omeyang/xprefix/pkg/observability/xlog"
	"github.com/omeyang/xprefix/pkg/observability/xmetrics"
	"github.com/omeyang/xprefix/pkg/observability/xrotate"
	"github.com/omeyang/xprefix/pkg/util/xjson"
)

// instrumentationName 是 --stats 指标与跨度的 instrumentation scope。
const instrumentationName = "github.com/omeyang/xprefix/cmd/aggregate-prefixes"

// 退出码。
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError 表示参数或配置错误，对应退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// run 执行命令并返回退出码。错误以 "ERROR: <消息>" 写入标准错误，此时标准输出没有任何内容。
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := createApp(streams{stdin: stdin, stdout: stdout, stderr: stderr})
	if err := app.Run(ctx, markStdinArgs(args, app.Flags)); err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		if isUsageError(err) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

func isUsageError(err error) bool {
	var ue *usageError
	return errors.As(err, &ue) || errors.Is(err, xaggr.ErrInvalidOption)
}

// createApp 创建 CLI 应用。
func createApp(s streams) *cli.Command {
	return &cli.Command{
		Name:      "aggregate-prefixes",
		Usage:     "Aggregates IPv4 or IPv6 prefixes from file or STDIN",
		ArgsUsage: "[FILE ...]",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Reader:    s.stdin,
		Writer:    s.stdout,
		ErrWriter: s.stderr,
		Flags:     createFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return aggregate(ctx, cmd, s)
		},
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return &usageError{err: err}
		},
		// run 统一处理错误输出与退出码，禁止框架直接 os.Exit。
		ExitErrHandler:  func(context.Context, *cli.Command, error) {},
		HideHelpCommand: true,
	}
}

func createFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      flagConfig,
			Aliases:   []string{"c"},
			Usage:     "YAML/JSON 配置文件，命令行参数优先",
			TakesFile: true,
		},
		&cli.IntFlag{
			Name:    flagMaxLength,
			Aliases: []string{"m"},
			Usage:   "Discard longer prefixes prior to processing",
			Value:   defaultMaxLength,
		},
		&cli.IntFlag{
			Name:    flagTruncate,
			Aliases: []string{"t"},
			Usage:   "Truncate IP/mask to network/mask",
			Value:   defaultTruncate,
		},
		&cli.BoolFlag{
			Name:    flagStripHostMask,
			Aliases: []string{"s"},
			Usage:   "Do not print netmask if prefix is a host route (/32 IPv4, /128 IPv6)",
		},
		&cli.StringFlag{
			Name:    flagFormat,
			Aliases: []string{"f"},
			Usage:   "输出格式: text | json | yaml",
			Value:   formatText,
		},
		&cli.BoolFlag{
			Name:  flagCheck,
			Usage: "校验结果与输入覆盖完全相同的地址且为最少表示",
		},
		&cli.BoolFlag{
			Name:  flagStats,
			Usage: "退出前记录聚合统计",
		},
		&cli.BoolFlag{
			Name:    flagVerbose,
			Aliases: []string{"v"},
			Usage:   "Display verbose information about the optimisations",
		},
		&cli.StringFlag{
			Name:      flagLogFile,
			Usage:     "诊断日志写入可轮转的文件而非标准错误",
			TakesFile: true,
		},
		&cli.StringFlag{
			Name:  flagLogFormat,
			Usage: "诊断日志格式: text | json",
			Value: "text",
		},
		&cli.IntFlag{
			Name:  flagLogMaxSize,
			Usage: "单个日志文件最大大小（MB）",
			Value: xrotate.DefaultMaxSizeMB,
		},
		&cli.IntFlag{
			Name:  flagLogMaxBackups,
			Usage: "保留的日志备份数量",
			Value: xrotate.DefaultMaxBackups,
		},
		&cli.IntFlag{
			Name:  flagLogMaxAge,
			Usage: "备份保留天数",
			Value: xrotate.DefaultMaxAgeDays,
		},
		&cli.BoolFlag{
			Name:  flagLogCompress,
			Usage: "gzip 压缩日志备份",
			Value: xrotate.DefaultCompress,
		},
		&cli.BoolFlag{
			Name:  flagLogLocalTime,
			Usage: "备份文件名使用本地时间而非 UTC",
		},
		&cli.BoolFlag{
			Name:  flagLogSource,
			Usage: "诊断日志附带源码位置",
		},
	}
}

// aggregate 是命令的主体：读取输入、聚合、可选校验、输出结果。
func aggregate(ctx context.Context, cmd *cli.Command, s streams) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, cleanup, err := newLogger(cfg, s.stderr)
	if err != nil {
		return usageErrorf("log: %w", err)
	}
	defer func() { _ = cleanup() }()
	logger.Debug(ctx, "settings", slog.String("effective", xjson.Pretty(cfg)))

	var rec *xmetrics.Recorder
	if cfg.Stats {
		rec, err = xmetrics.NewRecorder(xmetrics.WithInstrumentationName(instrumentationName))
		if err != nil {
			return err
		}
		defer func() { _ = rec.Shutdown(context.WithoutCancel(ctx)) }()
	}

	raw, err := readInputs(ctx, cmd.Args().Slice(), s.stdin)
	if err != nil {
		return err
	}

	opts := []xaggr.Option{
		xaggr.WithMaxLength(cfg.MaxLength),
		xaggr.WithTruncate(cfg.Truncate),
		xaggr.WithLogger(logger.With(xlog.Component("xaggr"))),
	}
	if rec != nil {
		opts = append(opts, xaggr.WithObserver(rec))
	}

	start := time.Now()
	out, err := xaggr.Aggregate(ctx, raw, opts...)
	if err != nil {
		return err
	}
	logger.Info(ctx, "aggregated",
		slog.Int("input", len(raw)), xlog.Count(len(out)), xlog.Duration(time.Since(start)))

	if cfg.Check {
		if err := check(raw, out, cfg); err != nil {
			logger.Debug(ctx, "check failed", xlog.Err(err))
			return err
		}
		logger.Debug(ctx, "check passed", xlog.Count(len(out)))
	}

	if err := writeResult(s.stdout, out, cfg.Format, cfg.StripHostMask); err != nil {
		return err
	}

	if rec != nil {
		return logStats(ctx, logger, rec)
	}
	return nil
}

// check 重新规范化输入并校验聚合结果。
func check(raw []string, out []netip.Prefix, cfg settings) error {
	input, err := xaggr.Normalize(raw, xaggr.WithMaxLength(cfg.MaxLength), xaggr.WithTruncate(cfg.Truncate))
	if err != nil {
		return err
	}
	return xaggr.Verify(input, out)
}

// logStats 以 INFO 级别逐条输出累计指标。
func logStats(ctx context.Context, logger xlog.Logger, rec *xmetrics.Recorder) error {
	samples, err := rec.Collect(ctx)
	if err != nil {
		return err
	}
	for _, sample := range samples {
		attrs := []slog.Attr{
			slog.String("metric", sample.Name),
			slog.String("attrs", sample.Attrs),
			xlog.Count(int(sample.Count)),
		}
		if sample.Name == xmetrics.MetricOperationDuration {
			attrs = append(attrs, slog.Float64("sum_seconds", sample.Sum))
		}
		logger.Info(ctx, "stats", attrs...)
	}
	return nil
}
