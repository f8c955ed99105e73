// Package xrotate 提供诊断日志文件轮转功能。
//
// Rotator 接口定义了轮转器的核心行为（Write/Close/Rotate），所有实现并发安全。
// 聚合命令行通过 --log-file 把 verbose 诊断流写入轮转文件，避免大批量前缀
// 处理时诊断输出撑满磁盘。
//
// # 当前实现
//
//   - [NewLumberjack]: 基于 lumberjack v2 的按大小轮转
//
// # 默认策略
//
// 单文件 [DefaultMaxSizeMB] MB，保留 [DefaultMaxBackups] 个备份、
// [DefaultMaxAgeDays] 天，备份 gzip 压缩。MaxBackups 与 MaxAgeDays 不能同时为 0。
package xrotate
