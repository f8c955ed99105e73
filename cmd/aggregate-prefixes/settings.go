package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xprefix/pkg/config/xconf"
	"github.com/omeyang/xprefix/pkg/observability/xlog"
	"github.com/omeyang/xprefix/pkg/observability/xrotate"
	"github.com/omeyang/xprefix/pkg/util/xjson"
)

// 命令行参数名。
const (
	flagConfig        = "config"
	flagMaxLength     = "max-length"
	flagTruncate      = "truncate"
	flagStripHostMask = "strip-host-mask"
	flagFormat        = "format"
	flagCheck         = "check"
	flagStats         = "stats"
	flagVerbose       = "verbose"
	flagLogFile       = "log-file"
	flagLogFormat     = "log-format"
	flagLogMaxSize    = "log-max-size"
	flagLogMaxBackups = "log-max-backups"
	flagLogMaxAge     = "log-max-age"
	flagLogCompress   = "log-compress"
	flagLogLocalTime  = "log-local-time"
	flagLogSource     = "log-source"
)

// 默认值。max_length 与 truncate 取 IPv6 位宽，对两种版本都等同于不过滤、不截断。
const (
	defaultMaxLength = 128
	defaultTruncate  = 128
)

// 输出格式。
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// settings 是合并配置文件与命令行参数后的最终设置。
// json 标签同时用于读取配置文件与输出调试日志。
type settings struct {
	MaxLength     int         `json:"max_length"`
	Truncate      int         `json:"truncate"`
	Verbose       bool        `json:"verbose"`
	StripHostMask bool        `json:"strip_host_mask"`
	Format        string      `json:"format"`
	Check         bool        `json:"check"`
	Stats         bool        `json:"stats"`
	Log           logSettings `json:"log"`
}

type logSettings struct {
	File       string `json:"file"`
	Format     string `json:"format"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
	Compress   bool   `json:"compress"`
	LocalTime  bool   `json:"local_time"`
	AddSource  bool   `json:"add_source"`
}

func defaultSettings() settings {
	return settings{
		MaxLength: defaultMaxLength,
		Truncate:  defaultTruncate,
		Format:    formatText,
		Log: logSettings{
			Format:     "text",
			MaxSizeMB:  xrotate.DefaultMaxSizeMB,
			MaxBackups: xrotate.DefaultMaxBackups,
			MaxAgeDays: xrotate.DefaultMaxAgeDays,
			Compress:   xrotate.DefaultCompress,
		},
	}
}

// loadSettings 依次应用默认值、配置文件、显式给出的命令行参数。
func loadSettings(cmd *cli.Command) (settings, error) {
	s := defaultSettings()

	if path := cmd.String(flagConfig); path != "" {
		if err := loadConfigFile(path, &s); err != nil {
			return settings{}, &usageError{err: err}
		}
	}

	if cmd.IsSet(flagMaxLength) {
		s.MaxLength = cmd.Int(flagMaxLength)
	}
	if cmd.IsSet(flagTruncate) {
		s.Truncate = cmd.Int(flagTruncate)
	}
	if cmd.IsSet(flagVerbose) {
		s.Verbose = cmd.Bool(flagVerbose)
	}
	if cmd.IsSet(flagStripHostMask) {
		s.StripHostMask = cmd.Bool(flagStripHostMask)
	}
	if cmd.IsSet(flagFormat) {
		s.Format = cmd.String(flagFormat)
	}
	if cmd.IsSet(flagCheck) {
		s.Check = cmd.Bool(flagCheck)
	}
	if cmd.IsSet(flagStats) {
		s.Stats = cmd.Bool(flagStats)
	}
	if cmd.IsSet(flagLogFile) {
		s.Log.File = cmd.String(flagLogFile)
	}
	if cmd.IsSet(flagLogFormat) {
		s.Log.Format = cmd.String(flagLogFormat)
	}
	if cmd.IsSet(flagLogMaxSize) {
		s.Log.MaxSizeMB = cmd.Int(flagLogMaxSize)
	}
	if cmd.IsSet(flagLogMaxBackups) {
		s.Log.MaxBackups = cmd.Int(flagLogMaxBackups)
	}
	if cmd.IsSet(flagLogMaxAge) {
		s.Log.MaxAgeDays = cmd.Int(flagLogMaxAge)
	}
	if cmd.IsSet(flagLogCompress) {
		s.Log.Compress = cmd.Bool(flagLogCompress)
	}
	if cmd.IsSet(flagLogLocalTime) {
		s.Log.LocalTime = cmd.Bool(flagLogLocalTime)
	}
	if cmd.IsSet(flagLogSource) {
		s.Log.AddSource = cmd.Bool(flagLogSource)
	}

	switch s.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return settings{}, usageErrorf("unknown output format %q (want text, json or yaml)", s.Format)
	}
	return s, nil
}

// loadConfigFile 把配置文件合并到 s。文件中出现 settings 未定义的键时返回错误。
func loadConfigFile(path string, s *settings) error {
	cfg, err := xconf.New(path, xconf.WithTag("json"))
	if err != nil {
		return err
	}

	data, err := xjson.PrettyE(defaultSettings())
	if err != nil {
		return err
	}
	known, err := xconf.NewFromBytes(data, xconf.FormatJSON)
	if err != nil {
		return err
	}
	for _, key := range cfg.Client().Keys() {
		if !known.Exists(key) {
			return fmt.Errorf("config %s: unknown key %q", cfg.Path(), key)
		}
	}

	return cfg.Unmarshal("", s)
}

// newLogger 创建诊断日志。--verbose 开启 DEBUG；--stats 至少开启 INFO 以输出统计。
func newLogger(s settings, stderr io.Writer) (xlog.LoggerWithLevel, func() error, error) {
	level := xlog.VerboseLevel(s.Verbose)
	if s.Stats && level > xlog.LevelInfo {
		level = xlog.LevelInfo
	}
	return xlog.New().
		SetOutput(stderr).
		SetLevel(level).
		SetFormat(s.Log.Format).
		SetAddSource(s.Log.AddSource).
		SetRotation(s.Log.File,
			xrotate.WithMaxSize(s.Log.MaxSizeMB),
			xrotate.WithMaxBackups(s.Log.MaxBackups),
			xrotate.WithMaxAge(s.Log.MaxAgeDays),
			xrotate.WithCompress(s.Log.Compress),
			xrotate.WithLocalTime(s.Log.LocalTime),
		).
		Build()
}
