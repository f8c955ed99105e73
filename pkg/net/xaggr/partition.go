package xaggr

import (
	"iter"
	"net/netip"

	"github.com/omeyang/xprefix/pkg/util/xnet"
)

// Partition 把有序前缀切分为地址连续的块。
//
// sorted 必须已按 [Normalize] 的顺序排列。块内每个成员要么落在此前成员覆盖的
// 范围内（嵌套），要么紧接在覆盖范围之后开始（相邻）；出现空隙时结束当前块。
// 空输入不产出任何块。每次迭代都从头开始遍历，产出的切片由调用方持有。
func Partition(sorted []netip.Prefix) iter.Seq[[]netip.Prefix] {
	return func(yield func([]netip.Prefix) bool) {
		if len(sorted) == 0 {
			return
		}

		start := 0
		running := xnet.Broadcast(sorted[0])
		for i := 1; i < len(sorted); i++ {
			p := sorted[i]
			bcast := xnet.Broadcast(p)
			switch {
			case p.Addr().Compare(running) <= 0:
				// 嵌套：只有越过当前边界时才推进
				if bcast.Compare(running) > 0 {
					running = bcast
				}
			case xnet.Adjacent(netip.PrefixFrom(running, running.BitLen()), p):
				running = bcast
			default:
				if !yield(sorted[start:i:i]) {
					return
				}
				start, running = i, bcast
			}
		}
		yield(sorted[start:len(sorted):len(sorted)])
	}
}
