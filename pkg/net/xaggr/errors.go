package xaggr

import (
	"errors"
	"fmt"
	"net/netip"
)

// 聚合相关的哨兵错误。
var (
	// ErrParse 表示输入字面量不是合法的 IP 前缀或地址。
	ErrParse = errors.New("xaggr: invalid prefix literal")

	// ErrVersionMismatch 表示同一次调用中混用了 IPv4 与 IPv6。
	ErrVersionMismatch = errors.New("xaggr: mixed IP versions")

	// ErrInvalidOption 表示选项取值无效（如负的 max_length）。
	ErrInvalidOption = errors.New("xaggr: invalid option")

	// ErrVerify 表示聚合结果校验失败。
	ErrVerify = errors.New("xaggr: verification failed")
)

// ParseError 描述无法解析的输入字面量。
type ParseError struct {
	// Literal 原始输入
	Literal string
	// Err 底层解析错误，通常包装 xnet.ErrInvalidAddress 或 xnet.ErrInvalidPrefix
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xaggr: %q does not appear to be an IPv4 or IPv6 network: %v", e.Literal, e.Err)
}

// Unwrap 同时暴露 ErrParse 与底层错误。
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// VersionMismatchError 描述两个版本不同的输入前缀。
type VersionMismatchError struct {
	// First 确定本次调用 IP 版本的第一个字面量
	First string
	// Second 与 First 版本不同的字面量
	Second string
	// FirstPrefix 与 SecondPrefix 为两者的解析结果
	FirstPrefix  netip.Prefix
	SecondPrefix netip.Prefix
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("xaggr: %s and %s are not of the same version", e.First, e.Second)
}

// Unwrap 返回 ErrVersionMismatch。
func (e *VersionMismatchError) Unwrap() error {
	return ErrVersionMismatch
}
