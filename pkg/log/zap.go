package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug | production
	Encoding     string // console | json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the process-wide Logger from config.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Mode == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
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

func (z *zapLogger) Debug(ctx context.Context, arg ...any)  { z.sugar.Debug(arg...) }
func (z *zapLogger) Info(ctx context.Context, arg ...any)   { z.sugar.Info(arg...) }
func (z *zapLogger) Warn(ctx context.Context, arg ...any)   { z.sugar.Warn(arg...) }
func (z *zapLogger) Error(ctx context.Context, arg ...any)  { z.sugar.Error(arg...) }
func (z *zapLogger) Fatal(ctx context.Context, arg ...any)  { z.sugar.Fatal(arg...) }
func (z *zapLogger) DPanic(ctx context.Context, arg ...any) { z.sugar.DPanic(arg...) }
func (z *zapLogger) Panic(ctx context.Context, arg ...any)  { z.sugar.Panic(arg...) }

func (z *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	z.sugar.Debugf(template, arg...)
}

func (z *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	z.sugar.Infof(template, arg...)
}

func (z *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	z.sugar.Warnf(template, arg...)
}

func (z *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	z.sugar.Errorf(template, arg...)
}

func (z *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	z.sugar.Fatalf(template, arg...)
}

func (z *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	z.sugar.DPanicf(template, arg...)
}

func (z *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	z.sugar.Panicf(template, arg...)
}
