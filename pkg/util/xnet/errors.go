package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IP address")

	// ErrInvalidPrefix 表示无效的 IP 前缀格式或前缀长度。
	ErrInvalidPrefix = errors.New("xnet: invalid IP prefix")

	// ErrInvalidVersion 表示无效的 IP 版本。
	ErrInvalidVersion = errors.New("xnet: invalid IP version")

	// ErrMixedVersion 表示同一集合中混用了 IPv4 与 IPv6。
	ErrMixedVersion = errors.New("xnet: mixed IP versions")
)
