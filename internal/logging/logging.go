package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultLogFile = "dualpane.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	file         *os.File
	override     io.Writer

	diag  = newLogger(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	trace = newLogger(&logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{logrus.FieldKeyMsg: "event"},
	})
)

func newLogger(formatter logrus.Formatter) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(formatter)
	l.SetLevel(logrus.DebugLevel)
	l.SetOutput(io.Discard)
	return l
}

// Error records err in the shared log file. Nil errors are ignored.
func Error(err error) {
	if err == nil {
		return
	}
	if !attach() {
		return
	}
	diag.Error(err)
}

// Errorf records a formatted error message.
func Errorf(format string, args ...interface{}) {
	if !attach() {
		return
	}
	diag.Errorf(format, args...)
}

// Warnf records a formatted warning.
func Warnf(format string, args ...interface{}) {
	if !attach() {
		return
	}
	diag.Warnf(format, args...)
}

// Infof records a formatted informational message.
func Infof(format string, args ...interface{}) {
	if !attach() {
		return
	}
	diag.Infof(format, args...)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently writes entries.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload map[string]interface{}) {
	if !TraceEnabled() {
		return
	}
	if !attach() {
		return
	}
	trace.WithFields(logrus.Fields(payload)).Info(event)
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the absolute path of the log file.
func Path() string {
	mu.Lock()
	p := logPath
	mu.Unlock()
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// SetOutput redirects both loggers to w instead of the log file. Passing nil
// restores file output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	override = w
}

// Close releases the log file, if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
}

// attach points both loggers at the current destination, opening the log
// file on first use.
func attach() bool {
	mu.Lock()
	defer mu.Unlock()
	if override != nil {
		diag.SetOutput(override)
		trace.SetOutput(override)
		return true
	}
	if file == nil {
		f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
			return false
		}
		file = f
	}
	diag.SetOutput(file)
	trace.SetOutput(file)
	return true
}

func closeLocked() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
	diag.SetOutput(io.Discard)
	trace.SetOutput(io.Discard)
}
