// Package dlogger exposes a simple zap logger, with log levels
package dlogger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LogLevelInfo sets the log level to info
	LogLevelInfo = "info"

	// LogLevelDebug sets the log level to debug
	LogLevelDebug = "debug"

	// LogLevelError sets the log level to error
	LogLevelError = "error"

	// LogLevelNone sets logger to no logging
	LogLevelNone = "none"
)

// Option alters the construction of the logger
type Option func(*zap.Config)

// WithConsole switches to a development-friendly console encoder
func WithConsole() Option {
	return func(c *zap.Config) {
		dev := zap.NewDevelopmentConfig()
		c.Encoding = dev.Encoding
		c.EncoderConfig = dev.EncoderConfig
	}
}

// WithOutputPaths redirects log output (e.g. to a file, or "stderr")
func WithOutputPaths(paths ...string) Option {
	return func(c *zap.Config) {
		c.OutputPaths = paths
	}
}

// New returns a zap logger with the specified level
func New(logLevel string, opts ...Option) (*zap.Logger, error) {
	if logLevel == LogLevelNone {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, err
	}
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	for _, apply := range opts {
		apply(&zapConfig)
	}
	return zapConfig.Build()
}

// MustNew returns a zap logger with the specified level or panics
func MustNew(logLevel string, opts ...Option) *zap.Logger {
	l, err := New(logLevel, opts...)
	if err != nil {
		panic(err)
	}
	return l
}
