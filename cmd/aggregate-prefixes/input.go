package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const (
	// stdinName 表示从标准输入读取。
	stdinName = "-"

	// stdinArg 在命令行解析前替代作为位置参数的 "-"。
	// urfave/cli 遇到单独的 "-" 会结束解析并丢弃其后的全部参数；NUL 不会出现在文件路径中。
	stdinArg = "\x00stdin"

	// maxParallelReads 同时读取的文件数上限。
	maxParallelReads = 8

	// maxLineBytes 单行最大长度。
	maxLineBytes = 1 << 20
)

// readInputs 并发读取所有输入并按参数顺序合并前缀字面量。
// paths 为空时读取标准输入；标准输入最多出现一次。
func readInputs(ctx context.Context, paths []string, stdin io.Reader) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{stdinName}
	}
	if n := countStdin(paths); n > 1 {
		return nil, usageErrorf("standard input %q given %d times", stdinName, n)
	}

	parts := make([][]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelReads)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tokens, err := readInput(path, stdin)
			if err != nil {
				return err
			}
			parts[i] = tokens
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(parts...), nil
}

func countStdin(paths []string) int {
	n := 0
	for _, p := range paths {
		if isStdin(p) {
			n++
		}
	}
	return n
}

func isStdin(path string) bool {
	return path == stdinName || path == stdinArg
}

// markStdinArgs 把 args[1:] 中作为位置参数的 "-" 替换为 [stdinArg]。
// 紧跟在取值参数之后的 "-" 是该参数的值，"--" 之后的参数原样保留。
func markStdinArgs(args []string, flags []cli.Flag) []string {
	valued := make(map[string]bool)
	for _, f := range flags {
		if _, ok := f.(*cli.BoolFlag); ok {
			continue
		}
		for _, name := range f.Names() {
			valued[name] = true
		}
	}

	out := slices.Clone(args)
	for i := 1; i < len(out); i++ {
		arg := out[i]
		switch {
		case arg == "--":
			return out
		case arg == stdinName:
			out[i] = stdinArg
		case strings.HasPrefix(arg, "-") && !strings.Contains(arg, "="):
			if valued[strings.TrimLeft(arg, "-")] {
				i++
			}
		}
	}
	return out
}

func readInput(path string, stdin io.Reader) ([]string, error) {
	if isStdin(path) {
		tokens, err := scanPrefixes(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return tokens, nil
	}

	f, err := os.Open(path) //nolint:gosec // 路径来自命令行参数
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	tokens, err := scanPrefixes(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return tokens, nil
}

// scanPrefixes 逐行读取前缀字面量。
// "#" 之后为注释；一行可含多个以空白分隔的字面量；空行被忽略。
func scanPrefixes(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
