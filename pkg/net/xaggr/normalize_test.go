package xaggr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xprefix/pkg/util/xnet"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		opts []Option
		want []string
	}{
		{
			name: "host bits masked",
			raw:  []string{"192.0.2.77/24"},
			want: []string{"192.0.2.0/24"},
		},
		{
			name: "bare address is host prefix",
			raw:  []string{"192.0.2.1", "192.0.2.0"},
			want: []string{"192.0.2.0/32", "192.0.2.1/32"},
		},
		{
			name: "equal network sorts shorter first",
			raw:  []string{"10.0.0.0/24", "10.0.0.0/8", "10.0.0.0/16"},
			want: []string{"10.0.0.0/8", "10.0.0.0/16", "10.0.0.0/24"},
		},
		{
			name: "address is primary key",
			raw:  []string{"10.0.1.0/24", "10.0.0.0/16", "9.0.0.0/8"},
			want: []string{"9.0.0.0/8", "10.0.0.0/16", "10.0.1.0/24"},
		},
		{
			name: "duplicates removed",
			raw:  []string{"2001:db8::/32", "2001:db8::/32", "2001:db8:0:0::1/32"},
			want: []string{"2001:db8::/32"},
		},
		{
			name: "max length filters longer",
			raw:  []string{"192.0.2.0/25", "192.0.2.128/26", "192.0.2.192/26"},
			opts: []Option{WithMaxLength(25)},
			want: []string{"192.0.2.0/25"},
		},
		{
			name: "max length above width keeps all",
			raw:  []string{"192.0.2.1/32"},
			opts: []Option{WithMaxLength(128)},
			want: []string{"192.0.2.1/32"},
		},
		{
			name: "truncate shortens longer",
			raw:  []string{"192.0.2.1/32", "192.0.2.2/32", "192.0.2.3/32", "10.0.0.0/8"},
			opts: []Option{WithTruncate(31)},
			want: []string{"10.0.0.0/8", "192.0.2.0/31", "192.0.2.2/31"},
		},
		{
			name: "truncate zero",
			raw:  []string{"192.0.2.1/32", "198.51.100.0/24"},
			opts: []Option{WithTruncate(0)},
			want: []string{"0.0.0.0/0"},
		},
		{
			name: "truncate at width is a no-op",
			raw:  []string{"2001:db8::1/128"},
			opts: []Option{WithTruncate(128)},
			want: []string{"2001:db8::1/128"},
		},
		{
			name: "filter runs before truncate",
			raw:  []string{"192.0.2.0/24", "192.0.2.0/28"},
			opts: []Option{WithMaxLength(26), WithTruncate(16)},
			want: []string{"192.0.0.0/16"},
		},
		{
			name: "netmask notation",
			raw:  []string{"192.0.2.0/255.255.255.128", "192.0.2.128/0.0.0.127"},
			want: []string{"192.0.2.0/25", "192.0.2.128/25"},
		},
		{
			name: "empty input",
			raw:  nil,
			want: []string{},
		},
		{
			name: "everything filtered",
			raw:  []string{"192.0.2.1/32", "192.0.2.2/32"},
			opts: []Option{WithMaxLength(24)},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.raw, tt.opts...)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, strs(got))
		})
	}
}

func TestNormalize_ParseError(t *testing.T) {
	_, err := Normalize([]string{"192.0.2.0/24", "WRONG"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorIs(t, err, xnet.ErrInvalidAddress)
	assert.Contains(t, err.Error(), `"WRONG" does not appear`)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "WRONG", pe.Literal)
}

func TestNormalize_ParseErrors(t *testing.T) {
	for _, lit := range []string{
		"",
		"192.0.2.0/33",
		"2001:db8::/129",
		"192.0.2.0/-1",
		"192.0.2.0/",
		"fe80::1%eth0",
		"192.0.2.0/255.0.255.0",
		"192.0.2.0-192.0.2.255",
	} {
		t.Run(lit, func(t *testing.T) {
			_, err := Normalize([]string{lit})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)
			assert.NotErrorIs(t, err, ErrVersionMismatch)
		})
	}
}

func TestNormalize_VersionMismatch(t *testing.T) {
	_, err := Normalize([]string{"192.0.2.0/24", "198.51.100.0/24", "2001:db8::/32"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVersionMismatch)
	assert.Contains(t, err.Error(), "are not of the same version")

	var vme *VersionMismatchError
	require.True(t, errors.As(err, &vme))
	assert.Equal(t, "192.0.2.0/24", vme.First)
	assert.Equal(t, "2001:db8::/32", vme.Second)
	assert.Equal(t, xnet.V4, xnet.PrefixVersion(vme.FirstPrefix))
	assert.Equal(t, xnet.V6, xnet.PrefixVersion(vme.SecondPrefix))
}

func TestNormalize_VersionMismatchBeforeFiltering(t *testing.T) {
	// IPv6 前缀会被 max_length 丢弃，但版本冲突仍需报告
	_, err := Normalize([]string{"192.0.2.0/24", "2001:db8::1/128"}, WithMaxLength(24))
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestNormalize_InvalidOptions(t *testing.T) {
	_, err := Normalize([]string{"192.0.2.0/24"}, WithMaxLength(-1))
	assert.ErrorIs(t, err, ErrInvalidOption)

	_, err = Normalize([]string{"192.0.2.0/24"}, WithTruncate(-8))
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	raw := []string{"10.0.0.0/8", "9.0.0.0/8"}
	_ = mustNormalize(t, raw)
	assert.Equal(t, []string{"10.0.0.0/8", "9.0.0.0/8"}, raw)
}
