// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the process-wide logger used by gameshelf packages and the CLI.
package logger

import (
	"io"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/stacklok/gameshelf/env"
)

// Debugf logs a message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Info logs a message at info level using the singleton logger.
func Info(msg string) {
	zap.S().Info(msg)
}

// Infof logs a message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = zap.L().Sync()
}

// DebugProvider is an interface for checking if debug mode is enabled.
// This allows the CLI to plug in its --debug flag or the config file setting.
type DebugProvider interface {
	IsDebug() bool
}

// DebugFlag is a DebugProvider backed by a plain bool.
type DebugFlag bool

// IsDebug reports whether debug logging is enabled.
func (d DebugFlag) IsDebug() bool {
	return bool(d)
}

// FileOptions configures the rotating log file sink.
type FileOptions struct {
	// Path of the log file. An empty path disables the file sink.
	Path string
	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int
	// MaxAgeDays is the number of days to keep rotated files.
	MaxAgeDays int
	// Compress gzips rotated files.
	Compress bool
}

type settings struct {
	output io.Writer
	file   FileOptions
}

// Option configures the logger built by InitializeWithOptions.
type Option func(*settings)

// WithOutput replaces the console destination. The default is os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		s.output = w
	}
}

// WithFile tees every log entry into a rotating file in addition to the console.
func WithFile(opts FileOptions) Option {
	return func(s *settings) {
		s.file = opts
	}
}

// Initialize creates and configures the logger from the process environment with debug disabled.
func Initialize() {
	InitializeWithOptions(&env.OSReader{}, DebugFlag(false))
}

// InitializeWithOptions creates and configures the global logger.
// If UNSTRUCTURED_LOGS is unset or true, console lines carry only time, level and message.
// Otherwise entries are encoded as JSON.
func InitializeWithOptions(envReader env.Reader, debugProvider DebugProvider, opts ...Option) {
	s := &settings{output: os.Stderr}
	for _, opt := range opts {
		opt(s)
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if debugProvider.IsDebug() {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	var encoder zapcore.Encoder
	if unstructuredLogsWithEnv(envReader) {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		encCfg.CallerKey = zapcore.OmitKey
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.AddSync(s.output), level)}

	if s.file.Path != "" {
		// The file always gets JSON so it stays machine readable.
		fileSink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   s.file.Path,
			MaxSize:    s.file.MaxSizeMB,
			MaxBackups: s.file.MaxBackups,
			MaxAge:     s.file.MaxAgeDays,
			Compress:   s.file.Compress,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), fileSink, level))
	}

	zap.ReplaceGlobals(zap.New(zapcore.NewTee(cores...)))
}

func unstructuredLogsWithEnv(envReader env.Reader) bool {
	unstructuredLogs, err := strconv.ParseBool(envReader.Getenv("UNSTRUCTURED_LOGS"))
	if err != nil {
		// unset or unparsable, default to unstructured output for a CLI
		return true
	}
	return unstructuredLogs
}
