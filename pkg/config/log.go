package config

import (
	"github.com/spf13/pflag"
	"github.com/zeromicro/go-zero/core/logx"
)

type LogConfig struct {
	// Mode is "console", "file" or "off".
	Mode  string
	Path  string
	Level string
	JSON  bool
}

func DefaultLogConfig() LogConfig {
	return LogConfig{Mode: "console", Path: "logs", Level: "info"}
}

func (l *LogConfig) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&l.Mode, "log-mode", l.Mode, `where logs go: "console", "file" or "off"`)
	fs.StringVar(&l.Path, "log-path", l.Path, "directory for file logs")
	fs.StringVar(&l.Level, "log-level", l.Level, `"debug", "info", "error" or "severe"`)
	fs.BoolVar(&l.JSON, "log-json", l.JSON, "write logs as JSON instead of plain text")
}

// SetupLogging configures the process-wide logger for service.
func SetupLogging(service string, l LogConfig) error {
	if l.Mode == "off" {
		logx.Disable()
		return nil
	}

	encoding := "plain"
	if l.JSON {
		encoding = "json"
	}

	logx.DisableStat()
	return logx.SetUp(logx.LogConf{
		ServiceName: service,
		Mode:        l.Mode,
		Encoding:    encoding,
		Path:        l.Path,
		Level:       l.Level,
	})
}
