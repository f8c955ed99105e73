package xjson

import (
	"encoding/json"
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"
)

// ErrMarshal 表示序列化失败。
var ErrMarshal = errors.New("xjson: marshal failed")

// PrettyE 将任意值序列化为格式化的 JSON，结果以换行结尾。
func PrettyE(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return append(data, '\n'), nil
}

// Pretty 将任意值序列化为格式化的 JSON 字符串（不含结尾换行）。
// 用于日志和调试输出。序列化失败时返回 "<marshal error: ...>"。
func Pretty(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("<marshal error: %v>", err)
	}
	return string(data)
}

// YAML 将任意值按 JSON 标签序列化为 YAML。
func YAML(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarshal, err)
	}
	return data, nil
}
