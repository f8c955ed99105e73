package xnet

import (
	"fmt"
	"net/netip"
	"slices"

	"go4.org/netipx"
)

// CoverSet 构建 prefixes 覆盖的地址集合。
// 重叠和相邻的前缀会被自动合并。
// 包含无效前缀时返回 ErrInvalidPrefix。
// 空切片返回空的 IPSet（非 nil）。
func CoverSet(prefixes []netip.Prefix) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for i, p := range prefixes {
		if !p.IsValid() {
			return nil, fmt.Errorf("%w: prefix [%d] is invalid", ErrInvalidPrefix, i)
		}
		b.AddPrefix(p.Masked())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrefix, err)
	}
	return set, nil
}

// SameCoverage 报告两组前缀是否覆盖完全相同的地址集合。
// 顺序、重复与嵌套不影响结果。
func SameCoverage(a, b []netip.Prefix) (bool, error) {
	sa, err := CoverSet(a)
	if err != nil {
		return false, err
	}
	sb, err := CoverSet(b)
	if err != nil {
		return false, err
	}
	return sa.Equal(sb), nil
}

// FirstOverlap 返回 prefixes 中第一对地址范围重叠的前缀。
// 不存在重叠时 ok 为 false。输入无需预先排序。
func FirstOverlap(prefixes []netip.Prefix) (a, b netip.Prefix, ok bool) {
	if len(prefixes) < 2 {
		return netip.Prefix{}, netip.Prefix{}, false
	}
	sorted := slices.Clone(prefixes)
	slices.SortFunc(sorted, ComparePrefix)

	// widest 记录目前为止广播地址最大的前缀
	widest := sorted[0]
	end := Broadcast(widest)
	for _, p := range sorted[1:] {
		if p.Addr().Compare(end) <= 0 {
			return widest, p, true
		}
		widest, end = p, Broadcast(p)
	}
	return netip.Prefix{}, netip.Prefix{}, false
}
