package logs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger discards everything until Initialize points it at a file.
	Logger  = zap.NewNop()
	logFile *os.File
	mu      sync.Mutex
)

// Initialize redirects the logger to <logDir>/debug.log. The terminal belongs
// to the TUI, so logs never go to stdout or stderr.
func Initialize(logDir string, verbose bool) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.Warn("failed to open log file", zap.String("path", logPath), zap.Error(err))
		return err
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(f), level)

	if logFile != nil {
		_ = Logger.Sync()
		logFile.Close()
	}

	logFile = f
	Logger = zap.New(core, zap.AddCaller()).Named("tabshelf")
	Logger.Debug("logger initialized", zap.String("path", logPath))

	return nil
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	_ = Logger.Sync()
	Logger = zap.NewNop()
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
