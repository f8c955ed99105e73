// Package xjson 提供基于 JSON 标签的序列化工具函数。
//
// # 功能概览
//
//   - [PrettyE]: 序列化为缩进两格、以换行结尾的 JSON，失败时返回 [ErrMarshal] 包装的错误
//   - [Pretty]: 便捷版本，用于日志和调试输出，失败时返回 "<marshal error: ...>" 标记字符串
//   - [YAML]: 经由 JSON 标签序列化为 YAML（sigs.k8s.io/yaml），与 JSON 输出字段一致
//
// # 注意事项
//
// 遵循 [encoding/json] 默认行为，HTML 特殊字符（<, >, &）会被转义为
// Unicode 形式（\u003c, \u003e, \u0026）。
package xjson
