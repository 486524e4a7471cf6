// Package logging provides the process-wide loggers: a console logger
// mirrored to a rotating file, and a file-only logger for verbose
// output.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

const (
	PanicLevel = "panic"
	FatalLevel = "fatal"
	ErrorLevel = "error"
	WarnLevel  = "warn"
	InfoLevel  = "info"
	DebugLevel = "debug"
	TraceLevel = "trace"
)

const (
	// PANIC log level
	PANIC uint32 = iota
	// FATAL log level
	FATAL
	// ERROR log level
	ERROR
	// WARN log level
	WARN
	// INFO log level
	INFO
	// DEBUG log level
	DEBUG
	// TRACE log level
	TRACE
)

// LogFormat carries the structured fields of one log entry.
type LogFormat = map[string]interface{}

type emptyWriter struct{}

func (ew emptyWriter) Write(p []byte) (int, error) {
	return 0, nil
}

// logger pointers are initialized by Init, or lazily with defaults on
// first print.
var clog *logrus.Logger
var vlog *logrus.Logger

func convertLevel(level string) logrus.Level {
	switch level {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	case DebugLevel:
		return logrus.DebugLevel
	case TraceLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// Init configures the loggers. path and filename locate the rotating
// log file, level filters both loggers, age is the max age of rotated
// files in years (0 keeps them forever). With disableCPrint the
// console logger writes to the file only.
func Init(path, filename, level string, age uint32, disableCPrint bool) {
	fileHooker := NewFileRotateHooker(path, filename, age, nil)

	vlog = logrus.New()
	vlog.Hooks.Add(NewCallerHooker())
	vlog.Hooks.Add(fileHooker)
	vlog.Out = &emptyWriter{}
	vlog.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	vlog.Level = convertLevel(level)

	if !disableCPrint {
		clog = logrus.New()
		clog.Hooks.Add(NewCallerHooker())
		clog.Hooks.Add(fileHooker)
		clog.Out = os.Stdout
		clog.Formatter = &logrus.TextFormatter{FullTimestamp: true}
		clog.Level = convertLevel(level)
	} else {
		clog = vlog
	}

	vlog.WithFields(logrus.Fields{
		"path":  path,
		"level": level,
	}).Info("Logger Configuration.")
}

func mergeLogFormats(formats ...LogFormat) logrus.Fields {
	data := logrus.Fields{}
	for _, format := range formats {
		for k, v := range format {
			data[k] = v
		}
	}
	return data
}

func output(logger *logrus.Logger, level uint32, msg string, formats ...LogFormat) {
	entry := logger.WithFields(mergeLogFormats(formats...))
	switch level {
	case PANIC:
		entry.Panic(msg)
	case FATAL:
		entry.Fatal(msg)
	case ERROR:
		entry.Error(msg)
	case WARN:
		entry.Warn(msg)
	case INFO:
		entry.Info(msg)
	case DEBUG:
		entry.Debug(msg)
	case TRACE:
		entry.Trace(msg)
	default:
		entry.Error(msg)
	}
}

// CPrint logs into stdout + log file.
func CPrint(level uint32, msg string, formats ...LogFormat) {
	if clog == nil {
		Init(os.TempDir(), "tmp-shasum.log", InfoLevel, 0, false)
	}
	output(clog, level, msg, formats...)
}

// VPrint logs into log file only.
func VPrint(level uint32, msg string, formats ...LogFormat) {
	if vlog == nil {
		Init(os.TempDir(), "tmp-shasum.log", InfoLevel, 0, false)
	}
	output(vlog, level, msg, formats...)
}
