// Package logging is the CLI's structured logging layer: a small Logger
// interface with typed fields, backed by zap.
//
// Library packages (primes, spiral, pattern, render, report) never log;
// the command layer logs around them. Only this package imports zap.
//
// Startup order in internal/cli:
//
//  1. Load configuration.
//  2. NewLogger(cfg.Log), then SetDefault.
//  3. Pass the Logger to the components that need one.
package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// String constructs a string field.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Int constructs an int field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Int64 constructs an int64 field.
func Int64(key string, val int64) Field { return Field{Key: key, Value: val} }

// Float64 constructs a float64 field.
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }

// Bool constructs a bool field.
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

// Duration constructs a time.Duration field.
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// Err captures err under the key "error"; nil becomes "<nil>".
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}

	return Field{Key: "error", Value: err.Error()}
}

// Any constructs a field of arbitrary type.
func Any(key string, val interface{}) Field { return Field{Key: key, Value: val} }

// Logger is the structured logging contract used by the command layer.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child that adds fields to every entry.
	With(fields ...Field) Logger
	// Named appends name to the logger name, dot-separated.
	Named(name string) Logger
	// Sync flushes buffered entries.
	Sync() error
}

// Config carries logger construction parameters.
//
// Level       – debug | info | warn | error (default info).
// Format      – console | json (default console).
// OutputPaths – zap sink URLs or file paths (default ["stderr"]).
type Config struct {
	Level       string   `mapstructure:"level" yaml:"level" json:"level"`
	Format      string   `mapstructure:"format" yaml:"format" json:"format"`
	OutputPaths []string `mapstructure:"output_paths" yaml:"output_paths" json:"output_paths"`
}

type zapLogger struct {
	z *zap.Logger
}

// toZapFields maps common concrete types to typed zap fields and falls back to zap.Any.
func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case int64:
			out = append(out, zap.Int64(f.Key, v))
		case float64:
			out = append(out, zap.Float64(f.Key, v))
		case bool:
			out = append(out, zap.Bool(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}

	return out
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, toZapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, toZapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, toZapFields(fields)...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, toZapFields(fields)...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(toZapFields(fields)...)}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{z: l.z.Named(name)}
}

func (l *zapLogger) Sync() error { return l.z.Sync() }

// ParseLevel maps a level name to a zapcore.Level; unknown names yield an error.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
	}
}

// NewLogger builds a zap-backed Logger from cfg.
func NewLogger(cfg Config) (Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stderr"}
	}

	var encCfg zapcore.EncoderConfig
	encoding := "console"
	switch strings.ToLower(cfg.Format) {
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
		encoding = "json"
	case "", "console":
		encCfg = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encCfg,
		OutputPaths:      cfg.OutputPaths,
		ErrorOutputPaths: []string{"stderr"},
	}
	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logging: failed to build zap logger: %w", err)
	}

	return &zapLogger{z: z}, nil
}

// NewLoggerFromCore wraps an existing core; tests pair it with zaptest/observer.
func NewLoggerFromCore(core zapcore.Core) Logger {
	return &zapLogger{z: zap.New(core, zap.AddCallerSkip(1))}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (n nopLogger) With(...Field) Logger { return n }
func (n nopLogger) Named(string) Logger  { return n }
func (nopLogger) Sync() error            { return nil }

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger { return nopLogger{} }

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = nopLogger{}
)

// SetDefault replaces the process-wide Logger; nil is ignored.
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the process-wide Logger (a no-op until SetDefault).
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLogger
}
