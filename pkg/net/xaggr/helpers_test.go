package xaggr

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/require"
)

func prefixes(ss ...string) []netip.Prefix {
	out := make([]netip.Prefix, 0, len(ss))
	for _, s := range ss {
		out = append(out, netip.MustParsePrefix(s))
	}
	return out
}

func strs(ps []netip.Prefix) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func slashEights(from, to int) []string {
	out := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, netip.AddrFrom4([4]byte{byte(i)}).String()+"/8")
	}
	return out
}

func mustNormalize(t *testing.T, raw []string, opts ...Option) []netip.Prefix {
	t.Helper()
	out, err := Normalize(raw, opts...)
	require.NoError(t, err)
	return out
}
