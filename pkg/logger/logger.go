package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Logger represents a simple leveled logger interface
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

type logLevel int

const (
	debugLevel logLevel = iota
	infoLevel
	warnLevel
	errorLevel
)

func parseLevel(level string) logLevel {
	switch strings.ToLower(level) {
	case "debug":
		return debugLevel
	case "info":
		return infoLevel
	case "warn":
		return warnLevel
	case "error":
		return errorLevel
	default:
		return infoLevel
	}
}

type simpleLogger struct {
	out   *log.Logger
	err   *log.Logger
	level logLevel
}

// NewLogger creates a new logger with the specified level
func NewLogger(level string) Logger {
	return NewLoggerWithOutput(level, os.Stdout, os.Stderr)
}

// NewLoggerWithOutput creates a logger writing to the given streams.
// Tests use this to capture output.
func NewLoggerWithOutput(level string, out, errOut io.Writer) Logger {
	return &simpleLogger{
		out:   log.New(out, "", log.Ldate|log.Ltime),
		err:   log.New(errOut, "", log.Ldate|log.Ltime),
		level: parseLevel(level),
	}
}

func (l *simpleLogger) Debug(msg string, keyvals ...interface{}) {
	l.log(debugLevel, l.out, "DEBUG", msg, keyvals...)
}

func (l *simpleLogger) Info(msg string, keyvals ...interface{}) {
	l.log(infoLevel, l.out, "INFO", msg, keyvals...)
}

func (l *simpleLogger) Warn(msg string, keyvals ...interface{}) {
	l.log(warnLevel, l.out, "WARN", msg, keyvals...)
}

func (l *simpleLogger) Error(msg string, keyvals ...interface{}) {
	l.log(errorLevel, l.err, "ERROR", msg, keyvals...)
}

func (l *simpleLogger) log(lv logLevel, dst *log.Logger, tag, msg string, keyvals ...interface{}) {
	if l.level > lv {
		return
	}
	dst.Println(tag + ": " + formatMsg(msg, keyvals...))
}

func formatMsg(msg string, keyvals ...interface{}) string {
	if len(keyvals) == 0 {
		return msg
	}

	var b strings.Builder
	b.WriteString(msg)

	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprintf("%v", keyvals[i])
		value := "missing"
		if i+1 < len(keyvals) {
			value = fmt.Sprintf("%v", keyvals[i+1])
		}
		b.WriteString(" " + key + "=" + value)
	}

	return b.String()
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() Logger {
	return &simpleLogger{
		out:   log.New(io.Discard, "", 0),
		err:   log.New(io.Discard, "", 0),
		level: errorLevel + 1,
	}
}
