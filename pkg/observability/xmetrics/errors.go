package xmetrics

import "errors"

// NewOTelObserver 与 Recorder 返回的错误。
var (
	// ErrCreateInstrument 表示创建 OTel 仪表失败。
	ErrCreateInstrument = errors.New("xmetrics: create instrument failed")
	// ErrCollect 表示读取指标失败。
	ErrCollect = errors.New("xmetrics: collect failed")
)
