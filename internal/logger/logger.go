package logger

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/redteamtools/trufflehub/internal/config"
)

// New builds a zerolog.Logger from the log configuration. Console output goes
// to stderr so scan result lines on stdout stay machine-readable; a rolling
// file writer is added when a log file is configured.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}

	writers := []io.Writer{consoleWriter(cfg.LogFormat)}
	if cfg.LogFile != "" {
		writers = append(writers, fileWriter(cfg))
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multiWriter).
		Level(level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(level)
	stdlog.SetOutput(logger)
	stdlog.SetFlags(0)

	return logger, nil
}

func parseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level '%s': %w", levelStr, err)
	}
	return level, nil
}

func consoleWriter(format string) io.Writer {
	if strings.EqualFold(format, "json") {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

func fileWriter(cfg config.LogConfig) io.Writer {
	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}
}
