package main

import (
	"bufio"
	"io"
	"net/netip"

	"github.com/omeyang/xprefix/pkg/util/xjson"
	"github.com/omeyang/xprefix/pkg/util/xnet"
)

// writeResult 按格式输出聚合结果。
//
// text 每行一个前缀，stripHostMask 为 true 时主机前缀只打印地址；
// json/yaml 输出 [{prefix, first, last}] 列表，不受 stripHostMask 影响。
func writeResult(w io.Writer, out []netip.Prefix, format string, stripHostMask bool) error {
	switch format {
	case formatJSON, formatYAML:
		wire := make([]xnet.WirePrefix, 0, len(out))
		for _, p := range out {
			wp, err := xnet.WirePrefixFrom(p)
			if err != nil {
				return err
			}
			wire = append(wire, wp)
		}

		var (
			data []byte
			err  error
		)
		if format == formatJSON {
			data, err = xjson.PrettyE(wire)
		} else {
			data, err = xjson.YAML(wire)
		}
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	case formatText:
		bw := bufio.NewWriter(w)
		for _, p := range out {
			_, _ = bw.WriteString(formatPrefix(p, stripHostMask))
			_ = bw.WriteByte('\n')
		}
		return bw.Flush()

	default:
		return usageErrorf("unknown output format %q", format)
	}
}

func formatPrefix(p netip.Prefix, stripHostMask bool) string {
	if stripHostMask && p.IsSingleIP() {
		return p.Addr().String()
	}
	return p.String()
}
