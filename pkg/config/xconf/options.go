package xconf

// delim 配置键的分隔符，例如 "log.max_size_mb"。
const delim = "."

// Options 定义配置加载选项。
type Options struct {
	// Tag 结构体标签名，用于 Unmarshal，默认为 "koanf"。
	Tag string
}

// Option 定义配置选项函数类型。
type Option func(*Options)

// defaultOptions 返回默认配置选项。
func defaultOptions() *Options {
	return &Options{
		Tag: "koanf",
	}
}

// WithTag 设置结构体标签名。
// 结构体已带有 json 标签时可传入 "json"，避免重复声明 koanf 标签。
func WithTag(tag string) Option {
	return func(o *Options) {
		if tag != "" {
			o.Tag = tag
		}
	}
}
