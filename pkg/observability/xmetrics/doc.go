// Package xmetrics 提供统一的可观测性接口（metrics + tracing）。
//
// # 设计理念
//
// xmetrics 仅定义最小化接口：Observer/Span/Attr，
// 业务代码只依赖接口；具体实现可替换。
// 默认实现基于 OpenTelemetry，兼容主流可观测栈。
//
// # 使用示例
//
//	obs, _ := xmetrics.NewOTelObserver()
//	ctx, span := xmetrics.Start(ctx, obs, xmetrics.SpanOptions{
//		Component: "xaggr",
//		Operation: "aggregate",
//	})
//	defer func() { span.End(xmetrics.Result{Err: err, Input: len(raw), Output: len(out)}) }()
//
// # 指标命名
//
//   - xprefix.operation.total：操作次数，属性 component / operation / status
//   - xprefix.operation.duration：操作耗时（秒）
//   - xprefix.prefixes：处理的前缀数量，额外属性 direction=input|output
//
// 命令行工具使用 [Recorder] 在进程内汇总上述指标，退出时通过 [Recorder.Collect] 读取。
package xmetrics
