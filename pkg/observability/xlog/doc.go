// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、轮转）
//   - 动态级别调整（-v 开关在运行时切换到 Debug）
//   - 前缀聚合诊断流的标准字段（[KeyPrefix]、[KeyTentative]、[KeyAggregate] 等）
//   - 延迟求值的前缀列表属性 [Prefixes]，级别禁用时不做字符串拼接
//   - [Discard] 丢弃型 Logger，作为库函数的默认值
//
// # 创建 Logger
//
// 使用 Builder 模式（first-error-wins：遇到第一个配置错误后，Build 返回该错误）：
//
//	logger, cleanup, err := xlog.New().
//		SetOutput(os.Stderr).
//		SetLevelString("debug").
//		SetFormat("text").
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// [Builder.SetRotation] 将输出切换到 xrotate 轮转文件，cleanup 负责关闭文件。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析。Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 支持配置文件直接反序列化。
//
// # 派生 Logger
//
// [Logger.With] 和 [Logger.WithGroup] 返回的派生 logger 共享父级的 LevelVar，
// 动态级别变更会同步生效。
package xlog
