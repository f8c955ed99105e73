// Package net 提供 IP 前缀运算相关的子包。
//
// 子包列表：
//   - xaggr: 前缀聚合，将一组 IPv4 或 IPv6 前缀压缩为覆盖相同地址空间的最小前缀集合
//
// 设计原则：
//   - 纯函数，无包级可变状态
//   - 惰性输出基于 iter.Seq，错误在产出第一个结果前全部返回
package net
