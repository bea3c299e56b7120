package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

type Logger struct {
	level       LogLevel
	infoLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	fatalLogger *log.Logger
	closer      io.Closer
}

type LoggerOptions struct {
	Level string
	// File enables a rotated copy of every log line. Empty disables it.
	File string
}

func NewLogger(opts LoggerOptions) *Logger {
	logLevel := parseLogLevel(opts.Level)

	var out, errOut io.Writer = os.Stdout, os.Stderr
	var closer io.Closer

	if opts.File != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, fileLogger)
		errOut = io.MultiWriter(os.Stderr, fileLogger)
		closer = fileLogger
	}

	flags := log.Ldate | log.Ltime | log.Lmsgprefix

	return &Logger{
		level:       logLevel,
		infoLogger:  log.New(out, "INFO: ", flags),
		errorLogger: log.New(errOut, "ERROR: ", flags),
		debugLogger: log.New(out, "DEBUG: ", flags),
		fatalLogger: log.New(errOut, "FATAL: ", flags),
		closer:      closer,
	}
}

func NewDiscardLogger() *Logger {
	return &Logger{
		level:       LevelInfo,
		infoLogger:  log.New(io.Discard, "", 0),
		errorLogger: log.New(io.Discard, "", 0),
		debugLogger: log.New(io.Discard, "", 0),
		fatalLogger: log.New(io.Discard, "", 0),
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Print(withRequestID(reqID, format, v...))
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.errorLogger.Print(withRequestID(reqID, format, v...))
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Print(withRequestID(reqID, format, v...))
}

func (l *Logger) Fatal(v ...any) {
	l.fatalLogger.Fatal(v...)
}

// Close flushes the rotated log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func withRequestID(reqID *string, format string, v ...any) string {
	msg := fmt.Sprintf(format, v...)
	if reqID == nil || *reqID == "" {
		return msg
	}
	return "[" + *reqID + "] " + msg
}
