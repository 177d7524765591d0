package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls where log output goes. The zero value is not useful; see DefaultOptions.
type Options struct {
	// Dir receives one JSON log file per run, named <env>_<timestamp>.log
	Dir string
	// Console receives human-readable output. Nil disables console logging.
	Console      io.Writer
	ConsoleLevel zapcore.Level
	FileLevel    zapcore.Level
}

// DefaultOptions logs Info and above to stderr and everything to ./logs.
// Stdout is kept free for command output and alert toasts.
func DefaultOptions() Options {
	return Options{
		Dir:          "logs",
		Console:      os.Stderr,
		ConsoleLevel: zapcore.InfoLevel,
		FileLevel:    zapcore.DebugLevel,
	}
}

// InitLogger builds the application logger for env with the default options
func InitLogger(env string) (*zap.Logger, error) {
	return NewLogger(env, DefaultOptions())
}

// NewLogger tees a coloured console core and a JSON file core
func NewLogger(env string, opts Options) (*zap.Logger, error) {
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFileName := filepath.Join(opts.Dir, fmt.Sprintf("%s_%s.log", env, time.Now().Format("2006-01-02_15-04-05")))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.TimeKey = "timestamp"
	fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(logFile), opts.FileLevel),
	}

	if opts.Console != nil {
		consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
		consoleEncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), zapcore.AddSync(opts.Console), opts.ConsoleLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("env", env))

	return logger, nil
}
