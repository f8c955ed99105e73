package xlog

import (
	"log/slog"
	"net/netip"
	"strings"
	"time"
)

// =============================================================================
// 常用属性 Key 常量
//
// 聚合诊断流使用的标准字段名，保持 text/json 两种格式下的一致性。
// =============================================================================

const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyDuration 耗时字段的标准 key
	KeyDuration = "duration"

	// KeyCount 计数字段的标准 key
	KeyCount = "count"

	// KeyPrefix 当前处理的前缀
	KeyPrefix = "prefix"

	// KeyBroadcast 广播地址（前缀覆盖的最后一个地址）
	KeyBroadcast = "broadcast"

	// KeyTentative 试探中的候选聚合前缀
	KeyTentative = "tentative"

	// KeyAggregate 最终输出的聚合前缀
	KeyAggregate = "aggregate"

	// KeyRun 可聚合块（连续前缀组）的成员列表
	KeyRun = "run"

	// KeyBits 前缀长度
	KeyBits = "bits"

	// KeyComponent 组件名称字段的标准 key
	KeyComponent = "component"
)

// Err 创建错误属性
//
// 如果 err 为 nil，返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Count 创建计数属性
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Prefix 创建前缀属性，值为 CIDR 文本
func Prefix(key string, p netip.Prefix) slog.Attr {
	return slog.String(key, p.String())
}

// Addr 创建地址属性
func Addr(key string, a netip.Addr) slog.Attr {
	return slog.String(key, a.String())
}

// Prefixes 创建延迟求值的前缀列表属性
//
// 只有在记录真正被输出时才拼接字符串，级别禁用时不产生拼接开销。
// 输出格式为逗号分隔的 CIDR 列表，例如 "192.0.2.0/25, 192.0.2.128/25"。
func Prefixes(key string, ps []netip.Prefix) slog.Attr {
	return slog.Any(key, prefixList(ps))
}

// prefixList 实现 slog.LogValuer
type prefixList []netip.Prefix

func (l prefixList) LogValue() slog.Value {
	var sb strings.Builder
	for i, p := range l {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	return slog.StringValue(sb.String())
}
