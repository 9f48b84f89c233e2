package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base    = zap.NewNop()
	sugar   = base.Sugar()
	logFile *os.File
)

// Init opens a timestamped log file under logDir and routes all logging to it.
// The TUI owns the terminal, so nothing is written to stdout or stderr unless
// the directory cannot be used.
func Init(logDir, name string) {
	if logDir == "" {
		logDir = "tmp"
	}

	var sink zapcore.WriteSyncer
	if err := os.MkdirAll(logDir, 0755); err != nil {
		sink = zapcore.Lock(os.Stderr)
	} else {
		logFileName := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", name, time.Now().Format("20060102-150405")))
		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			sink = zapcore.Lock(os.Stderr)
		} else {
			logFile = f
			sink = zapcore.AddSync(f)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, zapcore.DebugLevel)

	base = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Named(name)
	sugar = base.Sugar()
}

// L returns the underlying structured logger.
func L() *zap.Logger {
	return base.WithOptions(zap.AddCallerSkip(-1))
}

// Log writes a log message
func Log(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

// LogError writes an error log message
func LogError(err error, format string, v ...interface{}) {
	sugar.Errorw(fmt.Sprintf(format, v...), "error", err)
}

// CloseLog flushes and closes the log file
func CloseLog() {
	_ = base.Sync()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
