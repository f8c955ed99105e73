// Package xnet 提供 IP 前缀工具函数。
//
// xnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 直接使用 [netip.Prefix] 和 [*netipx.IPSet]，为前缀聚合提供解析、
// 地址运算、覆盖集合与序列化等基础能力。
//
// # 核心功能
//
//   - version.go: IP 版本类型 [Version]、[AddrVersion] / [PrefixVersion] 判断函数
//   - parse.go: [ParsePrefix] 解析 CIDR、裸地址和 IPv4 掩码格式，宽松掩码主机位
//   - convert.go: IPv4 地址转 uint32、[Broadcast]、[Adjacent]、[Supernet]
//   - set.go: [CoverSet] 构建覆盖集合，[SameCoverage] / [FirstOverlap] 校验聚合结果
//   - wire.go: [WirePrefix] JSON/YAML 序列化的前缀结构
//
// # 快速示例
//
//	p, _ := xnet.ParsePrefix("192.0.2.77/24")
//	fmt.Println(p)                    // 192.0.2.0/24
//	fmt.Println(xnet.Broadcast(p))    // 192.0.2.255
//
//	next := netip.MustParsePrefix("192.0.3.0/24")
//	fmt.Println(xnet.Adjacent(p, next)) // true
//
// # 输入行为说明
//
// [ParsePrefix] 的宽松规则：
//   - 主机位不为零时自动掩码（"192.0.2.1/24" → 192.0.2.0/24）
//   - 裸地址视为主机前缀（IPv4 /32，IPv6 /128）
//   - IPv4 支持点分掩码（"192.0.2.0/255.255.255.0"）与反掩码（"192.0.2.0/0.0.0.255"）
//   - 前缀长度允许前导零（"10.0.0.0/008"），但必须全为十进制数字
//   - 拒绝 IPv6 zone ID（"fe80::1%eth0"），zone 信息在前缀运算中没有意义
//
// IPv4-mapped IPv6（"::ffff:192.0.2.0/120"）按 IPv6 处理，宽度为 128，
// 不会被归一化为 IPv4。聚合时与纯 IPv4 混用将被视为版本不一致。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xnet.ParsePrefix("invalid")
//	if errors.Is(err, xnet.ErrInvalidPrefix) {
//	    // 处理无效前缀
//	}
package xnet
