// Package logging configures the process-wide zap logger.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Name is the logger name carried on every console line.
const Name = "xcreview"

// Options controls where log lines go and how much gets through.
type Options struct {
	Level      string // debug, info, warn, error; empty means info
	FilePath   string // when set, JSON lines also go to this rolling file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Setup builds the application logger and installs it as zap's global
// logger. Console lines go to stderr as "time - name - level - message".
// The optional file sink gets structured JSON, rotated by lumberjack.
func Setup(opts Options) (*zap.Logger, error) {
	if opts.Level == "" {
		opts.Level = "info"
	}
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(), zapcore.Lock(os.Stderr), level),
	}

	if opts.FilePath != "" {
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		})
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), fileSink, level))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// consoleEncoder renders "time - name - level - message" lines. The level
// encoder emits the logger name as its own element, which puts the name
// between the timestamp and the level on every line.
func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.ConsoleSeparator = " - "
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(Name)
		enc.AppendString(l.CapitalString())
	}
	return zapcore.NewConsoleEncoder(cfg)
}
