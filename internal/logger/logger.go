package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Type alias for slog.Level for easier usage
type Level = slog.Level

const (
	LevelTrace   = slog.Level(-8)
	LevelDebug   = slog.LevelDebug
	LevelInfo    = slog.LevelInfo
	LevelWarning = slog.LevelWarn
	LevelError   = slog.LevelError
)

// Config is read from the environment by LoadConfig
type Config struct {
	Level       string `env:"LOG_LEVEL" envDefault:"INFO"`
	Format      string `env:"LOG_FORMAT" envDefault:"json"`
	OTELEnabled bool   `env:"OTEL_ENABLED" envDefault:"false"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"tagval"`
}

var (
	logger       atomic.Pointer[slog.Logger]
	programLevel = new(slog.LevelVar)
	shutdownFunc func(context.Context) error
	initOnce     sync.Once
)

// LoadConfig reads Config from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse logger config: %w", err)
	}
	return cfg, nil
}

// Init configures the package logger writing to w.
// When cfg.OTELEnabled is set, records are exported over OTLP instead and w is ignored.
func Init(cfg Config, w io.Writer) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	programLevel.Set(level)

	if cfg.OTELEnabled {
		shutdown, err := setupOTELLogging(context.Background(), cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("failed to setup OTEL logging: %w", err)
		}
		shutdownFunc = shutdown
		return nil
	}

	opts := &slog.HandlerOptions{Level: programLevel}
	switch strings.ToLower(cfg.Format) {
	case "json", "":
		logger.Store(slog.New(slog.NewJSONHandler(w, opts)))
	case "text":
		logger.Store(slog.New(slog.NewTextHandler(w, opts)))
	default:
		return fmt.Errorf("unknown log format: %s (must be json or text)", cfg.Format)
	}
	return nil
}

// L returns the package logger, configuring it from the environment on first use.
// A bad environment falls back to JSON at info level on stderr.
func L() *slog.Logger {
	initOnce.Do(func() {
		if logger.Load() != nil {
			return
		}
		cfg, err := LoadConfig()
		if err == nil {
			err = Init(cfg, os.Stderr)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v, falling back to JSON\n", err)
			programLevel.Set(LevelInfo)
			logger.Store(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: programLevel})))
		}
	})
	return logger.Load()
}

// setupOTELLogging configures OpenTelemetry logging
func setupOTELLogging(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	handler := &levelHandler{
		level:   programLevel,
		handler: otelslog.NewHandler(serviceName, otelslog.WithLoggerProvider(loggerProvider)),
	}
	logger.Store(slog.New(handler))

	return loggerProvider.Shutdown, nil
}

// levelHandler wraps a handler to filter by level
type levelHandler struct {
	level   slog.Leveler
	handler slog.Handler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.handler.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, handler: h.handler.WithGroup(name)}
}

// Shutdown flushes the OTEL exporter; it is a no-op otherwise
func Shutdown(ctx context.Context) error {
	if shutdownFunc != nil {
		return shutdownFunc(ctx)
	}
	return nil
}

// SetLevel sets the minimum log level for the logger
func SetLevel(level slog.Level) {
	programLevel.Set(level)
}

// GetLevel returns the current minimum log level
func GetLevel() slog.Level {
	return programLevel.Level()
}

// ParseLevel converts a string level name to slog.Level
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToUpper(levelStr) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %s", levelStr)
	}
}

// Trace logs a trace-level message
func Trace(msg string, args ...any) {
	L().Log(context.Background(), LevelTrace, msg, args...)
}

// Debug logs a debug-level message
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}
