package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// log is the process-wide logger. It is a nop until Init is called, so
// packages can call L() unconditionally.
var log = zap.NewNop()

// Init configures the global logger to write JSON lines to a rotated file.
// The TUI owns stdout and stderr, so there is no console sink.
func Init(debug bool) error {
	path, err := defaultLogPath()
	if err != nil {
		return err
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		CallerKey:      "caller",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     30, // days
	})

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level)
	log = zap.New(core, zap.AddCaller())
	return nil
}

// L returns the global logger.
func L() *zap.Logger {
	return log
}

// Sync flushes buffered log entries. Safe to call on the nop logger.
func Sync() {
	_ = log.Sync()
}

// defaultLogPath resolves the log file path: RESILIQ_LOG overrides, else
// a file under the user cache directory.
func defaultLogPath() (string, error) {
	if p := os.Getenv("RESILIQ_LOG"); p != "" {
		return p, os.MkdirAll(filepath.Dir(p), 0o755)
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cache, "resiliq")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "resiliq.log"), nil
}
