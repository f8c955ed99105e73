package xmetrics

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Sample 是一条汇总后的指标数据点。
type Sample struct {
	// Name 指标名称。
	Name string
	// Attrs 数据点属性，按 key 排序后以 "k=v" 形式拼接。
	Attrs string
	// Count 计数器为累计值，直方图为观测次数。
	Count int64
	// Sum 直方图观测值之和；计数器为 0。
	Sum float64
}

// Recorder 是带进程内读取器的 Observer，用于在退出时汇总统计。
type Recorder struct {
	Observer

	provider *sdkmetric.MeterProvider
	reader   *sdkmetric.ManualReader
}

// NewRecorder 创建 Recorder。opts 中的 WithMeterProvider 会被内部 Provider 覆盖。
// 跨度默认交给 noop TracerProvider，不影响 otel 全局 Provider；可用 WithTracerProvider 替换。
func NewRecorder(opts ...Option) (*Recorder, error) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	all := make([]Option, 0, len(opts)+2)
	all = append(all, WithTracerProvider(tracenoop.NewTracerProvider()))
	all = append(all, opts...)
	all = append(all, WithMeterProvider(provider))
	obs, err := NewOTelObserver(all...)
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, err
	}
	return &Recorder{
		Observer: obs,
		provider: provider,
		reader:   reader,
	}, nil
}

// Collect 读取当前累计的指标，按名称与属性排序返回。
func (r *Recorder) Collect(ctx context.Context) ([]Sample, error) {
	var rm metricdata.ResourceMetrics
	if err := r.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCollect, err)
	}

	var samples []Sample
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					samples = append(samples, Sample{Name: m.Name, Attrs: formatAttrs(dp.Attributes), Count: dp.Value})
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					samples = append(samples, Sample{
						Name:  m.Name,
						Attrs: formatAttrs(dp.Attributes),
						Count: int64(dp.Count), //nolint:gosec // 观测次数不会超过 int64
						Sum:   dp.Sum,
					})
				}
			}
		}
	}

	slices.SortFunc(samples, func(a, b Sample) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Attrs, b.Attrs))
	})
	return samples, nil
}

// Shutdown 关闭内部 MeterProvider。
func (r *Recorder) Shutdown(ctx context.Context) error {
	return r.provider.Shutdown(ctx)
}

func formatAttrs(set attribute.Set) string {
	kvs := set.ToSlice()
	parts := make([]string, 0, len(kvs))
	for _, kv := range kvs {
		parts = append(parts, string(kv.Key)+"="+kv.Value.Emit())
	}
	return strings.Join(parts, ",")
}
