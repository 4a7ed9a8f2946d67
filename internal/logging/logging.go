// Package logging builds the file-backed logger Breeze uses. The TUI owns
// the terminal, so log output must never reach stdout or stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger writing to the given file path, plus a flush
// function for shutdown. When the path cannot be prepared the logger degrades
// to a nop logger rather than failing startup.
func New(path string) (*zap.SugaredLogger, func()) {
	if path == "" {
		return zap.NewNop().Sugar(), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop().Sugar(), func() {}
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar(), func() {}
	}
	sugar := logger.Sugar()
	return sugar, func() { _ = logger.Sync() }
}

// NewTest returns a development logger for use in tests.
func NewTest() *zap.SugaredLogger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(fmt.Sprintf("build test logger: %v", err))
	}
	return logger.Sugar()
}
