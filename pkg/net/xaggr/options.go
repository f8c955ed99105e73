package xaggr

import (
	"fmt"

	"github.com/omeyang/xprefix/pkg/observability/xlog"
	"github.com/omeyang/xprefix/pkg/observability/xmetrics"
)

// options 聚合选项。
//
// maxLength 与 truncate 未设置时分别表示“不过滤”和“不截断”。
type options struct {
	maxLength    int
	maxLengthSet bool
	truncate     int
	truncateSet  bool
	logger       xlog.Logger
	observer     xmetrics.Observer
}

// Option 聚合选项函数。
type Option func(*options)

// WithMaxLength 丢弃前缀长度大于 n 的输入。
// 默认不过滤；n 大于等于地址位宽时等同于不过滤。负数在调用时返回 ErrInvalidOption。
func WithMaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
		o.maxLengthSet = true
	}
}

// WithTruncate 把前缀长度大于 n 的输入截断为 n 位后再聚合。
// 默认不截断；n 大于等于地址位宽时等同于不截断。负数在调用时返回 ErrInvalidOption。
func WithTruncate(n int) Option {
	return func(o *options) {
		o.truncate = n
		o.truncateSet = true
	}
}

// WithLogger 设置诊断日志。诊断记录均为 DEBUG 级别。
// nil 表示不输出。
func WithLogger(l xlog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithObserver 设置观测器，[Aggregate] 每次调用记录一个跨度。
// nil 表示不观测。
func WithObserver(obs xmetrics.Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.maxLengthSet && o.maxLength < 0 {
		return nil, fmt.Errorf("%w: max length %d is negative", ErrInvalidOption, o.maxLength)
	}
	if o.truncateSet && o.truncate < 0 {
		return nil, fmt.Errorf("%w: truncate length %d is negative", ErrInvalidOption, o.truncate)
	}
	if o.logger == nil {
		o.logger = xlog.Discard()
	}
	if o.observer == nil {
		o.observer = xmetrics.NoopObserver{}
	}
	return o, nil
}
