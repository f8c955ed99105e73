// Package xconf 提供配置文件加载和解析功能，基于 koanf 实现。
//
// # 设计理念
//
// xconf 定位为最小化的一次性配置加载器：读取文件或字节数据、按格式解析、
// 反序列化到带 koanf 标签的结构体。命令行工具启动时加载一次，不做热重载。
// 默认值注入与“命令行参数覆盖配置文件”由调用方负责，[Config.Exists]
// 用于判断某个键是否在文件中显式出现。
//
// # 支持的格式
//
//   - YAML（默认，推荐）：.yaml, .yml
//   - JSON：.json
//
// # 使用示例
//
//	cfg, err := xconf.New("aggregate.yaml")
//	if err != nil {
//		return err
//	}
//	var opts struct {
//		MaxLength int `koanf:"max_length"`
//	}
//	if err := cfg.Unmarshal("", &opts); err != nil {
//		return err
//	}
package xconf
