// Package logger builds the zap logger shared by the servers and carries
// request-scoped loggers through contexts.
package logger

import (
	"context"

	"github.com/gruzdev-dev/game-store/configs"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a JSON logger writing to stdout, tagged with the service name
// and environment.
func New(cfg *configs.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Log.Level)
	zcfg.OutputPaths = []string{"stdout"}
	zcfg.ErrorOutputPaths = []string{"stdout"}

	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.MessageKey = "msg"
	zcfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	zcfg.InitialFields = map[string]any{
		"service": cfg.Service.Name,
		"env":     cfg.Service.Env,
	}

	return zcfg.Build()
}

type ctxKey struct{}

func WithCtx(ctx context.Context, l *zap.Logger) context.Context {
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromCtx returns the request logger, or fallback when none was attached.
func FromCtx(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	if fallback == nil {
		return zap.NewNop()
	}
	return fallback
}
