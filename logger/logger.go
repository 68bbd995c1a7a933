package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Encoding string

const JSON_ENCODING Encoding = "json"
const CONSOLE_ENCODING Encoding = "console"

var log = zap.NewNop()

func Init(level string, encoding Encoding) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(lvl)
	conf.Encoding = string(encoding)
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == CONSOLE_ENCODING {
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	l, err := conf.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	log = l
	zap.ReplaceGlobals(l)
	return nil
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}

func Sync() error {
	return log.Sync()
}
