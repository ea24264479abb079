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

// FilePrefix is the prefix of the per-day log file name.
const FilePrefix = "scaffold"

// Options configures a Logger.
type Options struct {
	// Verbose lowers the console level to debug.
	Verbose bool

	// JSON switches the console encoder to JSON.
	JSON bool

	// Console receives console log output. Defaults to os.Stderr.
	Console io.Writer

	// Dir is the directory of the per-day log file. Empty disables it.
	Dir string

	// Now is used to name the log file. Defaults to time.Now.
	Now func() time.Time
}

// Logger wraps zap with the key/value call style used across scaffold.
type Logger struct {
	sugar *zap.SugaredLogger
	file  *zap.SugaredLogger

	closer io.Closer
	path   string
}

// FileName returns the log file name for the day containing t.
func FileName(t time.Time) string {
	return fmt.Sprintf("%s_%s.log", FilePrefix, t.Format("20060102"))
}

// New creates a Logger with a console core and, when opts.Dir is set, a
// per-day file core.
func New(opts Options) (*Logger, error) {
	if opts.Console == nil {
		opts.Console = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	consoleCore := zapcore.NewCore(newConsoleEncoder(opts.JSON), zapcore.AddSync(opts.Console), level)

	if opts.Dir == "" {
		return &Logger{
			sugar: zap.New(consoleCore).Sugar(),
			file:  zap.NewNop().Sugar(),
		}, nil
	}

	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(opts.Dir, FileName(opts.Now()))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fileCore := zapcore.NewCore(newFileEncoder(), zapcore.AddSync(f), zapcore.DebugLevel)

	return &Logger{
		sugar:  zap.New(zapcore.NewTee(consoleCore, fileCore)).Sugar(),
		file:   zap.New(fileCore).Sugar(),
		closer: f,
		path:   path,
	}, nil
}

// NewWithCore creates a Logger whose console and file output both go to
// core. Tests use it with zaptest/observer.
func NewWithCore(core zapcore.Core) *Logger {
	l := zap.New(core).Sugar()
	return &Logger{sugar: l, file: l}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return NewWithCore(zapcore.NewNopCore())
}

func newConsoleEncoder(json bool) zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	if json {
		return zapcore.NewJSONEncoder(cfg)
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func newFileEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(cfg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

// Record writes an info entry to the log file only.
func (l *Logger) Record(msg string, args ...any) {
	l.file.Infow(msg, args...)
}

// With returns a logger with additional attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		sugar: l.sugar.With(args...),
		file:  l.file.With(args...),
		path:  l.path,
	}
}

// Path returns the path of the log file, or "" when file logging is off.
func (l *Logger) Path() string {
	return l.path
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
