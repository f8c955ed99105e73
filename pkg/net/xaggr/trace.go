package xaggr

import (
	"context"
	"log/slog"

	"github.com/omeyang/xprefix/pkg/observability/xlog"
)

// tracer 输出聚合过程的 DEBUG 诊断记录。
// 零值不输出任何内容。
type tracer struct {
	ctx    context.Context
	logger xlog.Logger
}

func newTracer(ctx context.Context, logger xlog.Logger) tracer {
	if logger == nil {
		return tracer{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	// 级别未开启时整条诊断流不构造属性
	if lv, ok := logger.(xlog.Leveler); ok && !lv.Enabled(ctx, xlog.LevelDebug) {
		return tracer{}
	}
	return tracer{ctx: ctx, logger: logger}
}

func (t tracer) debug(msg string, attrs ...slog.Attr) {
	if t.logger == nil {
		return
	}
	t.logger.Debug(t.ctx, msg, attrs...)
}
