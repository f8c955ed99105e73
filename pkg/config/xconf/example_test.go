package xconf_test

import (
	"fmt"

	"github.com/omeyang/xprefix/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	data := []byte(`
max_length: 24
truncate: 16
`)
	cfg, err := xconf.NewFromBytes(data, xconf.FormatYAML)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var opts struct {
		MaxLength int `koanf:"max_length"`
		Truncate  int `koanf:"truncate"`
	}
	if err := cfg.Unmarshal("", &opts); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(opts.MaxLength, opts.Truncate)
	fmt.Println(cfg.Exists("verbose"))
	// Output:
	// 24 16
	// false
}
