// Package xaggr 将一组 IPv4 或 IPv6 CIDR 前缀聚合为覆盖完全相同地址空间的最小前缀集合。
//
// # 处理流程
//
// 聚合分三个阶段，严格按顺序执行：
//
//  1. [Normalize]：解析、清零主机位、按 max_length 过滤、按 truncate 截断、去重、
//     按 (网络地址, 前缀长度) 升序排序
//  2. [Partition]：单次遍历，把有序前缀切分为地址连续的块（run），块内成员嵌套或首尾相接
//  3. [AggregateRun]：在每个块内，从每个尚未覆盖的前缀出发，在保持网络地址对齐、
//     不越过块末尾的前提下尽可能缩短前缀长度
//
// [All] 串联三个阶段并惰性输出，[Aggregate] 与 [AggregateStrings] 是其立即求值形式。
// 输出按 (网络地址, 前缀长度) 升序，两两不相交，且每个结果都无法再扩大一位。
//
// # 错误
//
// 所有错误都在产出第一个结果之前返回，不会返回部分结果：
//   - [*ParseError]：字面量无法解析，errors.Is(err, ErrParse) 为 true
//   - [*VersionMismatchError]：IPv4 与 IPv6 混用，errors.Is(err, ErrVersionMismatch) 为 true
//   - [ErrInvalidOption]：max_length 或 truncate 为负数
//
// # 诊断输出
//
// 通过 [WithLogger] 传入的 Logger 在 DEBUG 级别接收逐步诊断记录
// （块成员、跳过的前缀、试探中的候选前缀、越界的长度、最终结果），不影响返回值。
//
// # 并发
//
// 所有函数均为纯函数，不同输入可并发调用。惰性序列只能在单个 goroutine 中消费。
package xaggr
