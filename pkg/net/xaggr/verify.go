package xaggr

import (
	"fmt"
	"net/netip"
	"slices"

	"github.com/omeyang/xprefix/pkg/util/xnet"
)

// Verify 检查 output 是否为 input 的正确聚合结果。
//
// input 为规范化后的前缀（[Normalize] 的返回值，顺序与重复不影响结果）。
// 依次检查：output 两两不相交，output 与 input 覆盖完全相同的地址集合，
// 且 output 是该地址集合按地址升序的最少前缀表示（每个结果都不能再扩大）。
// 任一检查失败都返回包装 ErrVerify 的错误。
func Verify(input, output []netip.Prefix) error {
	if a, b, ok := xnet.FirstOverlap(output); ok {
		return fmt.Errorf("%w: %s overlaps %s", ErrVerify, a, b)
	}

	same, err := xnet.SameCoverage(input, output)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVerify, err)
	}
	if !same {
		return fmt.Errorf("%w: output does not cover the same addresses as input", ErrVerify)
	}

	want, err := xnet.CoverSet(input)
	if err != nil {
		return fmt.Errorf("%w: input: %w", ErrVerify, err)
	}

	// IPSet.Prefixes 返回每个连续区间的最少前缀分解
	if minimal := want.Prefixes(); !slices.Equal(minimal, output) {
		return fmt.Errorf("%w: output is not the minimal sorted form (%d prefixes, want %d)", ErrVerify, len(output), len(minimal))
	}
	return nil
}
