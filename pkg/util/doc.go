// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: IP 地址与前缀工具，基于 net/netip + go4.org/netipx（解析、广播地址、覆盖集合、序列化）
//   - xjson: 序列化工具，格式化 JSON 输出与基于 JSON 标签的 YAML 输出
//
// 设计原则：
//   - 只提供标准库之上的增量函数，不重复封装已有能力
//   - 函数无副作用，可并发调用
package util
