package xnet

import (
	"fmt"
	"net/netip"
)

// WirePrefix 是前缀的序列化格式。
// 使用 JSON/YAML 标签 {"prefix":"...","first":"...","last":"..."}。
// First/Last 为冗余字段，便于下游系统直接读取地址范围。
type WirePrefix struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	First  string `json:"first" yaml:"first"`
	Last   string `json:"last" yaml:"last"`
}

// WirePrefixFrom 从 [netip.Prefix] 创建 WirePrefix。
// p 无效或未掩码（主机位非零）时返回错误。
func WirePrefixFrom(p netip.Prefix) (WirePrefix, error) {
	if !p.IsValid() {
		return WirePrefix{}, fmt.Errorf("%w: invalid prefix", ErrInvalidPrefix)
	}
	if p != p.Masked() {
		return WirePrefix{}, fmt.Errorf("%w: %s has host bits set", ErrInvalidPrefix, p)
	}
	return WirePrefix{
		Prefix: p.String(),
		First:  p.Addr().String(),
		Last:   Broadcast(p).String(),
	}, nil
}
