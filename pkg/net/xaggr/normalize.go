package xaggr

import (
	"net/netip"
	"slices"

	"github.com/omeyang/xprefix/pkg/util/xnet"
)

// Normalize 把原始字面量转换为有序、去重的前缀序列。
//
// 每个字面量按 [xnet.ParsePrefix] 解析并清零主机位；全部解析完成后才进行过滤，
// 因此版本冲突即使涉及会被 max_length 丢弃的前缀也会报错。
// 随后依次丢弃长度大于 max_length 的前缀、把长度大于 truncate 的前缀截断、
// 去重并按 (网络地址, 前缀长度) 升序排序。
//
// 过滤后为空时返回空切片和 nil 错误。
func Normalize(raw []string, opts ...Option) ([]netip.Prefix, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return normalize(raw, o)
}

func normalize(raw []string, o *options) ([]netip.Prefix, error) {
	parsed, err := parseAll(raw)
	if err != nil {
		return nil, err
	}

	out := parsed[:0]
	for _, p := range parsed {
		if o.maxLengthSet && p.Bits() > o.maxLength {
			continue
		}
		if o.truncateSet && p.Bits() > o.truncate {
			// truncate 小于当前长度，Prefix 不会失败
			p, _ = p.Addr().Prefix(o.truncate)
		}
		out = append(out, p)
	}

	slices.SortFunc(out, xnet.ComparePrefix)
	return slices.Clip(slices.Compact(out)), nil
}

// parseAll 解析全部字面量，并确认它们属于同一 IP 版本。
func parseAll(raw []string) ([]netip.Prefix, error) {
	parsed := make([]netip.Prefix, 0, len(raw))
	var (
		version xnet.Version
		first   int
	)
	for i, s := range raw {
		p, err := xnet.ParsePrefix(s)
		if err != nil {
			return nil, &ParseError{Literal: s, Err: err}
		}

		v := xnet.PrefixVersion(p)
		switch {
		case version == xnet.V0:
			version, first = v, i
		case v != version:
			return nil, &VersionMismatchError{
				First:        raw[first],
				Second:       s,
				FirstPrefix:  parsed[first],
				SecondPrefix: p,
			}
		}
		parsed = append(parsed, p)
	}
	return parsed, nil
}
