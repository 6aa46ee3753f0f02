package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide zap logger from the given config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Mode == "debug" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}

	zcfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zcfg.Encoding == "console" {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

func (z *zapLogger) Debug(ctx context.Context, args ...any) { z.sugar.Debug(args...) }
func (z *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	z.sugar.Debugf(template, args...)
}
func (z *zapLogger) Info(ctx context.Context, args ...any) { z.sugar.Info(args...) }
func (z *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	z.sugar.Infof(template, args...)
}
func (z *zapLogger) Warn(ctx context.Context, args ...any) { z.sugar.Warn(args...) }
func (z *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	z.sugar.Warnf(template, args...)
}
func (z *zapLogger) Error(ctx context.Context, args ...any) { z.sugar.Error(args...) }
func (z *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	z.sugar.Errorf(template, args...)
}
func (z *zapLogger) DPanic(ctx context.Context, args ...any) { z.sugar.DPanic(args...) }
func (z *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	z.sugar.DPanicf(template, args...)
}
func (z *zapLogger) Panic(ctx context.Context, args ...any) { z.sugar.Panic(args...) }
func (z *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	z.sugar.Panicf(template, args...)
}
func (z *zapLogger) Fatal(ctx context.Context, args ...any) { z.sugar.Fatal(args...) }
func (z *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	z.sugar.Fatalf(template, args...)
}
