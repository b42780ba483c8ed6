package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

var _logger = NewTmpLogger()

// NewLogger builds the process logger. Development output is human readable
// and carries stack traces from error level up.
func NewLogger(env string) (*zap.Logger, error) {
	var c zap.Config
	var opts []zap.Option
	if env != "production" {
		c = zap.NewDevelopmentConfig()
		opts = append(opts, zap.AddStacktrace(zap.ErrorLevel))
	} else {
		c = zap.NewProductionConfig()
	}
	return c.Build(opts...)
}

func InitLogger(env string) (err error) {
	l, err := NewLogger(env)
	if err != nil {
		return err
	}
	_logger = l
	return nil
}

func NewTmpLogger() *zap.Logger {
	c := zap.NewProductionConfig()
	c.DisableStacktrace = true
	l, err := c.Build()
	if err != nil {
		panic(err)
	}
	return l
}

// Set replaces the process logger. Tests use it with zap.NewNop or zaptest.
func Set(l *zap.Logger) {
	_logger = l
}

func Sync() {
	_ = _logger.Sync()
}

// WithRequestID stores the request id so Logger can attach it.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

// Logger returns the process logger enriched with the request id found in
// ctx, if any. ctx may be nil.
func Logger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return _logger
	}
	requestID, _ := ctx.Value(ctxKey{}).(string)
	if requestID == "" {
		return _logger
	}
	return _logger.With(zap.String("request_id", requestID))
}
