package xnet

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// 非 IPv4 地址返回 (0, false)。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() {
		return 0, false
	}
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// Broadcast 返回前缀覆盖范围内的最后一个地址（所有主机位置 1）。
// 对于 /32 或 /128 前缀，结果等于网络地址；对于 /0，结果为全 1 地址。
// 无效前缀返回零值。
func Broadcast(p netip.Prefix) netip.Addr {
	if !p.IsValid() {
		return netip.Addr{}
	}
	return netipx.PrefixLastIP(p.Masked())
}

// Adjacent 报告 b 是否紧接在 a 之后开始，即 Broadcast(a)+1 == b 的网络地址。
// a 的广播地址为地址空间末尾时返回 false。
func Adjacent(a, b netip.Prefix) bool {
	next := Broadcast(a).Next()
	return next.IsValid() && next == b.Masked().Addr()
}

// Supernet 返回 p 的网络地址截断到 bits 位后的前缀。
// bits 大于 p 的前缀长度时返回错误，避免把超网误用为子网。
func Supernet(p netip.Prefix, bits int) (netip.Prefix, error) {
	if !p.IsValid() {
		return netip.Prefix{}, fmt.Errorf("%w: invalid prefix", ErrInvalidPrefix)
	}
	if bits < 0 || bits > p.Bits() {
		return netip.Prefix{}, fmt.Errorf("%w: supernet length %d out of range [0, %d]", ErrInvalidPrefix, bits, p.Bits())
	}
	return p.Addr().Prefix(bits)
}

// ComparePrefix 按 (网络地址, 前缀长度) 升序比较两个前缀。
// 网络地址相同时，较短（更宽泛）的前缀排在前面。
// 不同版本的前缀按 IPv4 在前排序，与 [netip.Addr.Compare] 一致。
func ComparePrefix(a, b netip.Prefix) int {
	if c := a.Addr().Compare(b.Addr()); c != 0 {
		return c
	}
	return cmp.Compare(a.Bits(), b.Bits())
}
