package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"jokipro/internal/config"

	"gopkg.in/lumberjack.v2"
)

// Init installs the JSON logger built from cfg as the slog default.
func Init(cfg config.LogConfig) {
	slog.SetDefault(New(cfg, os.Stdout))
	Info("logger.ready", "level", cfg.Level, "file", cfg.File)
}

// New builds a JSON logger writing to console (when enabled) and to a
// rotated file (when cfg.File is set). console is used as the fallback
// sink when neither is configured.
func New(cfg config.LogConfig, console io.Writer) *slog.Logger {
	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, console)
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, console)
	}

	h := slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})
	return slog.New(h)
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
