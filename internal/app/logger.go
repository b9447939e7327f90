package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the service logger. Logs go to a rotated file under the
// data directory, never to the terminal, so interactive sessions stay
// clean. COACH_DEBUG=1 lowers the level to debug.
func NewLogger(dataDir string) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dataDir, "logs", "coach.log"),
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	})

	level := zap.InfoLevel
	if os.Getenv("COACH_DEBUG") != "" {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel))
}
