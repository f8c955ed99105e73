package xnet

import (
	"fmt"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
)

// ParsePrefix 从字符串解析 IP 前缀，返回掩码后的网络形式。支持 3 种格式：
//   - CIDR: "192.0.2.0/24"、"2001:db8::/32"
//   - 裸地址: "192.0.2.1"（视为 /32），"2001:db8::1"（视为 /128）
//   - 掩码: "192.0.2.0/255.255.255.0" 或反掩码 "192.0.2.0/0.0.0.255"（仅 IPv4）
//
// 输入会自动去除首尾空白字符。地址中的主机位会被清零而不是报错。
func ParsePrefix(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Prefix{}, fmt.Errorf("%w: empty input", ErrInvalidPrefix)
	}

	// 在 IP 地址字符串中 '%' 仅用作 zone 分隔符，前缀运算不携带 zone。
	if strings.Contains(s, "%") {
		return netip.Prefix{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidPrefix, s)
	}

	addrPart, lenPart, hasLen := strings.Cut(s, "/")
	addr, err := netip.ParseAddr(strings.TrimSpace(addrPart))
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	if !hasLen {
		return netip.PrefixFrom(addr, addr.BitLen()), nil
	}

	lenPart = strings.TrimSpace(lenPart)
	var n int
	if strings.Contains(lenPart, ".") {
		n, err = parseMaskBits(addr, lenPart)
	} else {
		n, err = parseBits(lenPart, addr.BitLen())
	}
	if err != nil {
		return netip.Prefix{}, err
	}

	// Addr.Prefix 会清零主机位
	p, err := addr.Prefix(n)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}
	return p, nil
}

// parseBits 解析十进制前缀长度，并校验其位于 [0, width] 区间。
func parseBits(s string, width int) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing prefix length", ErrInvalidPrefix)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: prefix length %q is not a decimal number", ErrInvalidPrefix, s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > width {
		return 0, fmt.Errorf("%w: prefix length %s out of range [0, %d]", ErrInvalidPrefix, s, width)
	}
	return n, nil
}

// parseMaskBits 将 IPv4 点分掩码或反掩码转换为前缀长度。
// 非连续掩码（如 "255.0.255.0"）返回 ErrInvalidPrefix。
func parseMaskBits(addr netip.Addr, maskStr string) (int, error) {
	mask, err := netip.ParseAddr(maskStr)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid mask: %w", ErrInvalidPrefix, err)
	}
	if !addr.Is4() || !mask.Is4() {
		return 0, fmt.Errorf("%w: mask notation only supports IPv4", ErrInvalidPrefix)
	}

	m, _ := AddrToUint32(mask)

	// 合法掩码为前缀全 1 后缀全 0；反掩码则相反。两者都满足时（全 0）按掩码解释。
	if inverted := ^m; inverted&(inverted+1) == 0 {
		return bits.OnesCount32(m), nil
	}
	if m&(m+1) == 0 {
		return 32 - bits.OnesCount32(m), nil
	}
	return 0, fmt.Errorf("%w: non-contiguous mask: %s", ErrInvalidPrefix, maskStr)
}
