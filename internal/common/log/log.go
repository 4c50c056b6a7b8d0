// Package log is a thin context-aware wrapper around zap. All layers log
// through this package so correlation ids travel with the request context
// instead of being threaded through every call site.
package log

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

type options struct {
	level      zapcore.Level
	env        string
	callerSkip int
}

type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(level); err == nil {
			o.level = l
		}
	}
}

func WithEnv(env string) Option {
	return func(o *options) {
		o.env = env
	}
}

func AddCallerSkip(skip int) Option {
	return func(o *options) {
		o.callerSkip = skip
	}
}

// Init builds the process-wide logger. JSON output on stdout, service name
// and env attached to every record.
func Init(serviceName string, opts ...Option) {
	o := &options{level: zapcore.InfoLevel, callerSkip: 1}
	for _, opt := range opts {
		opt(o)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		o.level,
	)

	l := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(o.callerSkip),
		zap.Fields(zap.String("service", serviceName), zap.String("env", o.env)),
	)

	mu.Lock()
	logger = l
	mu.Unlock()
}

// InitForTest swaps in a no-op logger so tests stay quiet.
func InitForTest() {
	mu.Lock()
	logger = zap.NewNop()
	mu.Unlock()
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

func get() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func withCtx(ctx context.Context, fields []Field) []Field {
	if cid := GetCorrelationID(ctx); cid != "" {
		fields = append(fields, zap.String("correlationId", cid))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	get().Debug(msg, withCtx(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	get().Info(msg, withCtx(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	get().Warn(msg, withCtx(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	get().Error(msg, withCtx(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	get().Panic(msg, withCtx(ctx, fields)...)
}

func Fatal(ctx context.Context, msg string, fields ...Field) {
	get().Fatal(msg, withCtx(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	get().Sugar().Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	get().Sugar().Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	get().Sugar().Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	get().Sugar().Errorf(format, args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	get().Sugar().Fatalf(format, args...)
}

// field constructors re-exported so call sites only import this package.

func String(key, value string) Field              { return zap.String(key, value) }
func Int(key string, value int) Field             { return zap.Int(key, value) }
func Int32(key string, value int32) Field         { return zap.Int32(key, value) }
func Int64(key string, value int64) Field         { return zap.Int64(key, value) }
func Float64(key string, value float64) Field     { return zap.Float64(key, value) }
func Bool(key string, value bool) Field           { return zap.Bool(key, value) }
func Time(key string, value time.Time) Field      { return zap.Time(key, value) }
func Duration(key string, d time.Duration) Field  { return zap.Duration(key, d) }
func Any(key string, value interface{}) Field     { return zap.Any(key, value) }
func Strings(key string, value []string) Field    { return zap.Strings(key, value) }
func Err(err error) Field                         { return zap.Error(err) }
