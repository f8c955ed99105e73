package xaggr

import (
	"context"
	"iter"
	"log/slog"
	"net/netip"
	"slices"

	"github.com/omeyang/xprefix/pkg/observability/xlog"
	"github.com/omeyang/xprefix/pkg/observability/xmetrics"
	"github.com/omeyang/xprefix/pkg/util/xnet"
)

const componentName = "xaggr"

// AggregateRun 把一个块聚合为最少的前缀。
//
// run 应为 [Partition] 产出的块。从每个尚未被覆盖的成员出发，逐位缩短前缀长度，
// 直到网络地址不再对齐或广播地址越过块的末尾；最后一个满足条件的候选即为结果。
// 已被此前结果覆盖的成员会被跳过。
func AggregateRun(run []netip.Prefix) iter.Seq[netip.Prefix] {
	return aggregateRun(tracer{}, run)
}

func aggregateRun(t tracer, run []netip.Prefix) iter.Seq[netip.Prefix] {
	return func(yield func(netip.Prefix) bool) {
		if len(run) == 0 {
			return
		}
		t.debug("aggregatables", xlog.Prefixes(xlog.KeyRun, run))

		// 块末尾取所有成员广播地址的最大值，嵌套成员可能排在最后
		runEnd := xnet.Broadcast(run[0])
		for _, p := range run[1:] {
			if b := xnet.Broadcast(p); b.Compare(runEnd) > 0 {
				runEnd = b
			}
		}

		var covered netip.Addr
		for _, p := range run {
			bcast := xnet.Broadcast(p)
			if covered.IsValid() && covered.Compare(bcast) >= 0 {
				t.debug("skipping", xlog.Prefix(xlog.KeyPrefix, p))
				continue
			}
			t.debug("prefix", xlog.Prefix(xlog.KeyPrefix, p), xlog.Addr(xlog.KeyBroadcast, bcast))

			agg := widen(t, p, runEnd)
			covered = xnet.Broadcast(agg)
			t.debug("aggregate found", xlog.Prefix(xlog.KeyAggregate, agg))
			if !yield(agg) {
				return
			}
		}
	}
}

// widen 返回从 p 出发、网络地址不变且不越过 end 的最短前缀。
// p 自身的广播地址不超过 end，因此结果至少是 p。
func widen(t tracer, p netip.Prefix, end netip.Addr) netip.Prefix {
	agg := p
	for bits := p.Bits(); bits >= 0; bits-- {
		// bits 位于 [0, p.Bits()]，Supernet 不会失败
		tentative, _ := xnet.Supernet(p, bits)
		t.debug("tentative aggregate", xlog.Prefix(xlog.KeyTentative, tentative))
		if tentative.Addr() != p.Addr() || xnet.Broadcast(tentative).Compare(end) > 0 {
			t.debug("boundaries exceeded by netmask", xlog.Prefix(xlog.KeyTentative, tentative))
			break
		}
		agg = tentative
	}
	return agg
}

// All 聚合 raw 并惰性输出结果。
//
// 解析与规范化在返回前完成，所有错误都在此时返回；返回的序列按地址升序产出聚合结果，
// 可重复迭代，每次迭代结果相同。ctx 仅用于诊断日志，已取消的 ctx 直接返回其错误。
func All(ctx context.Context, raw []string, opts ...Option) (iter.Seq[netip.Prefix], error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return all(ctx, raw, o)
}

func all(ctx context.Context, raw []string, o *options) (iter.Seq[netip.Prefix], error) {
	sorted, err := normalize(raw, o)
	if err != nil {
		return nil, err
	}

	t := newTracer(ctx, o.logger)
	t.debug("normalized", xlog.Count(len(sorted)), slog.Int("discarded", len(raw)-len(sorted)))

	return func(yield func(netip.Prefix) bool) {
		for run := range Partition(sorted) {
			for agg := range aggregateRun(t, run) {
				if !yield(agg) {
					return
				}
			}
		}
	}, nil
}

// Aggregate 是 [All] 的立即求值形式，返回完整的聚合结果。
// 设置了 [WithObserver] 时记录一次 "aggregate" 操作及输入输出前缀数量。
// 没有结果时返回空切片。
func Aggregate(ctx context.Context, raw []string, opts ...Option) (_ []netip.Prefix, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	ctx, span := xmetrics.Start(ctx, o.observer, xmetrics.SpanOptions{
		Component: componentName,
		Operation: "aggregate",
		Attrs:     optionAttrs(o),
	})
	var out []netip.Prefix
	defer func() {
		span.End(xmetrics.Result{Err: err, Input: len(raw), Output: len(out), Attrs: resultAttrs(out)})
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	seq, err := all(ctx, raw, o)
	if err != nil {
		return nil, err
	}
	out = slices.AppendSeq(make([]netip.Prefix, 0), seq)
	return out, nil
}

// AggregateStrings 与 [Aggregate] 相同，结果以 CIDR 文本返回。
func AggregateStrings(ctx context.Context, raw []string, opts ...Option) ([]string, error) {
	prefixes, err := Aggregate(ctx, raw, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(prefixes))
	for i, p := range prefixes {
		out[i] = p.String()
	}
	return out, nil
}

// resultAttrs 记录结果的地址版本；同一次聚合的结果版本一致。
func resultAttrs(out []netip.Prefix) []xmetrics.Attr {
	if len(out) == 0 {
		return nil
	}
	return []xmetrics.Attr{xmetrics.String("ip_version", xnet.PrefixVersion(out[0]).String())}
}

func optionAttrs(o *options) []xmetrics.Attr {
	var attrs []xmetrics.Attr
	if o.maxLengthSet {
		attrs = append(attrs, xmetrics.Int("max_length", o.maxLength))
	}
	if o.truncateSet {
		attrs = append(attrs, xmetrics.Int("truncate", o.truncate))
	}
	return attrs
}
