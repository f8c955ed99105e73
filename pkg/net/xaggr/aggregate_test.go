package xaggr

import (
	"bytes"
	"context"
	"net/netip"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/omeyang/xprefix/pkg/observability/xlog"
	"github.com/omeyang/xprefix/pkg/observability/xmetrics"
)

func TestAggregate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		opts []Option
		want []string
	}{
		{
			name: "default absorbs all",
			raw:  []string{"0.0.0.0/0", "192.0.2.0/24"},
			want: []string{"0.0.0.0/0"},
		},
		{
			name: "two halves merge",
			raw:  []string{"192.0.2.0/25", "192.0.2.128/25"},
			want: []string{"192.0.2.0/24"},
		},
		{
			name: "full coverage collapses to default",
			raw:  slashEights(0, 256),
			want: []string{"0.0.0.0/0"},
		},
		{
			name: "gap bounded widening",
			raw:  slashEights(5, 200),
			want: []string{
				"5.0.0.0/8", "6.0.0.0/7", "8.0.0.0/5", "16.0.0.0/4",
				"32.0.0.0/3", "64.0.0.0/2", "128.0.0.0/2", "192.0.0.0/5",
			},
		},
		{
			name: "duplicate collapse ipv6",
			raw:  []string{"2001:db8::/32", "2001:db8::/32"},
			want: []string{"2001:db8::/32"},
		},
		{
			name: "truncate 31",
			raw:  []string{"192.0.2.1/32", "192.0.2.2/32", "192.0.2.3/32"},
			opts: []Option{WithTruncate(31)},
			want: []string{"192.0.2.0/30"},
		},
		{
			name: "truncate 0",
			raw:  []string{"192.0.2.1/32", "192.0.2.2/32", "192.0.2.3/32"},
			opts: []Option{WithTruncate(0)},
			want: []string{"0.0.0.0/0"},
		},
		{
			name: "host prefixes without truncate",
			raw:  []string{"192.0.2.1/32", "192.0.2.2/32", "192.0.2.3/32"},
			want: []string{"192.0.2.1/32", "192.0.2.2/31"},
		},
		{
			name: "max length",
			raw:  []string{"192.0.2.0/25", "192.0.2.128/26", "192.0.2.192/26"},
			opts: []Option{WithMaxLength(25)},
			want: []string{"192.0.2.0/25"},
		},
		{
			name: "nested and adjacent members",
			raw:  []string{"192.0.2.0/29", "192.0.2.0/25", "192.0.2.128/26", "192.0.2.192/26"},
			want: []string{"192.0.2.0/24"},
		},
		{
			name: "max length filters everything",
			raw:  []string{"192.0.2.1/32"},
			opts: []Option{WithMaxLength(16)},
			want: []string{},
		},
		{
			name: "empty",
			raw:  nil,
			want: []string{},
		},
		{
			name: "ipv6 full space",
			raw:  []string{"::/1", "8000::/1"},
			want: []string{"::/0"},
		},
		{
			name: "ipv6 unaligned run",
			raw:  []string{"2001:db8:1::/48", "2001:db8:2::/47", "2001:db8:4::/46"},
			want: []string{"2001:db8:1::/48", "2001:db8:2::/47", "2001:db8:4::/46"},
		},
		{
			name: "nested member widens boundary",
			raw:  []string{"8.0.0.0/8", "9.0.0.0/8", "9.1.0.0/16"},
			want: []string{"8.0.0.0/7"},
		},
		{
			name: "separate runs stay separate",
			raw:  []string{"198.51.100.0/24", "192.0.2.0/24", "192.0.3.0/24"},
			want: []string{"192.0.2.0/23", "198.51.100.0/24"},
		},
		{
			name: "top of address space",
			raw:  []string{"255.255.255.254/32", "255.255.255.255/32", "255.255.255.252/31"},
			want: []string{"255.255.255.252/30"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AggregateStrings(context.Background(), tt.raw, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			seq, err := All(context.Background(), tt.raw, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strs(slices.Collect(seq)), "lazy and eager results differ")
		})
	}
}

func TestAggregate_Errors(t *testing.T) {
	ctx := context.Background()

	out, err := Aggregate(ctx, []string{"192.0.2.0/24", "2001:db8::/32"})
	assert.ErrorIs(t, err, ErrVersionMismatch)
	assert.Nil(t, out)

	seq, err := All(ctx, []string{"WRONG", "192.0.2.0/24"})
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, seq)

	strsOut, err := AggregateStrings(ctx, []string{"192.0.2.0/24"}, WithTruncate(-1))
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Nil(t, strsOut)
}

func TestAggregate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Aggregate(ctx, []string{"192.0.2.0/24"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = All(ctx, []string{"192.0.2.0/24"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAggregate_NilContext(t *testing.T) {
	//nolint:staticcheck // 验证 nil ctx 兜底
	got, err := Aggregate(nil, []string{"192.0.2.0/25", "192.0.2.128/25"})
	require.NoError(t, err)
	assert.Equal(t, prefixes("192.0.2.0/24"), got)
}

func TestAll_Restartable(t *testing.T) {
	seq, err := All(context.Background(), slashEights(5, 200))
	require.NoError(t, err)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
	assert.Len(t, first, 8)
}

func TestAll_EarlyStop(t *testing.T) {
	seq, err := All(context.Background(), slashEights(5, 200))
	require.NoError(t, err)

	var got []netip.Prefix
	for p := range seq {
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"5.0.0.0/8", "6.0.0.0/7", "8.0.0.0/5"}, strs(got))
}

func TestAggregateRun(t *testing.T) {
	tests := []struct {
		name string
		run  []netip.Prefix
		want []string
	}{
		{"empty", nil, nil},
		{"single", prefixes("192.0.2.0/24"), []string{"192.0.2.0/24"}},
		{"skip nested", prefixes("10.0.0.0/8", "10.1.0.0/16", "10.2.0.0/16"), []string{"10.0.0.0/8"}},
		{"unaligned start", prefixes("10.1.0.0/16", "10.2.0.0/15", "10.4.0.0/14"), []string{"10.1.0.0/16", "10.2.0.0/15", "10.4.0.0/14"}},
		{"aligned pair", prefixes("10.0.0.0/16", "10.1.0.0/16"), []string{"10.0.0.0/15"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for p := range AggregateRun(tt.run) {
				got = append(got, p.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_VerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	raw := []string{"10.0.0.0/8", "10.1.0.0/16", "11.0.0.0/8"}
	got, err := AggregateStrings(context.Background(), raw, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/7"}, got)

	out := buf.String()
	for _, want := range []string{
		"normalized",
		"aggregatables",
		"run=\"10.0.0.0/8, 10.1.0.0/16, 11.0.0.0/8\"",
		"skipping",
		"prefix=10.1.0.0/16",
		"tentative aggregate",
		"boundaries exceeded by netmask",
		"aggregate found",
		"aggregate=10.0.0.0/7",
	} {
		assert.Contains(t, out, want)
	}
}

func TestAggregate_QuietLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelWarn).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	got, err := AggregateStrings(context.Background(), []string{"10.0.0.0/8", "11.0.0.0/8"}, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/7"}, got)
	assert.Empty(t, buf.String())
}

func TestAggregate_Observer(t *testing.T) {
	rec, err := xmetrics.NewRecorder()
	require.NoError(t, err)
	t.Cleanup(func() { _ = rec.Shutdown(context.Background()) })

	ctx := context.Background()
	_, err = Aggregate(ctx, []string{"192.0.2.0/25", "192.0.2.128/25", "198.51.100.0/24"}, WithObserver(rec), WithMaxLength(32))
	require.NoError(t, err)
	_, err = Aggregate(ctx, []string{"WRONG"}, WithObserver(rec))
	require.Error(t, err)

	samples, err := rec.Collect(ctx)
	require.NoError(t, err)

	got := map[string]int64{}
	for _, s := range samples {
		if s.Name == xmetrics.MetricOperationDuration {
			continue
		}
		got[s.Name+"|"+s.Attrs] = s.Count
	}
	assert.Equal(t, map[string]int64{
		xmetrics.MetricOperationTotal + "|component=xaggr,operation=aggregate,status=ok":    1,
		xmetrics.MetricOperationTotal + "|component=xaggr,operation=aggregate,status=error": 1,
		xmetrics.MetricPrefixes + "|component=xaggr,direction=input,operation=aggregate":    4,
		xmetrics.MetricPrefixes + "|component=xaggr,direction=output,operation=aggregate":   2,
	}, got)
}

func TestAggregate_SpanAttributes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	rec, err := xmetrics.NewRecorder(xmetrics.WithTracerProvider(tp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rec.Shutdown(context.Background()) })

	_, err = Aggregate(context.Background(), []string{"2001:db8::/33", "2001:db8:8000::/33"}, WithObserver(rec), WithTruncate(64))
	require.NoError(t, err)
	_, err = Aggregate(context.Background(), nil, WithObserver(rec))
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	attrs := attribute.NewSet(spans[0].Attributes...)
	version, ok := attrs.Value("ip_version")
	require.True(t, ok)
	assert.Equal(t, "IPv6", version.AsString())
	truncate, ok := attrs.Value("truncate")
	require.True(t, ok)
	assert.Equal(t, int64(64), truncate.AsInt64())

	emptyAttrs := attribute.NewSet(spans[1].Attributes...)
	_, ok = emptyAttrs.Value("ip_version")
	assert.False(t, ok, "empty result carries no version")
}

func TestAggregate_NilObserver(t *testing.T) {
	got, err := AggregateStrings(context.Background(), []string{"192.0.2.0/25", "192.0.2.128/25"}, WithObserver(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"192.0.2.0/24"}, got)
}
