package logging

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat/go-file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

// NewFileRotateHooker enables log file output, rotated daily.
func NewFileRotateHooker(path, filename string, age uint32, formatter logrus.Formatter) logrus.Hook {
	if len(path) == 0 {
		panic("Failed to parse logger folder:" + path + ".")
	}
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	if err := os.MkdirAll(path, 0700); err != nil {
		panic("Failed to create logger folder:" + path + ". err:" + err.Error())
	}
	filePath := filepath.Join(path, filename+"-%Y%m%d-%d.log")
	linkPath := filepath.Join(path, filename+".log")
	writer, err := rotatelogs.New(
		filePath,
		rotatelogs.WithLinkName(linkPath),
		rotatelogs.WithRotationTime(time.Duration(24)*time.Hour),
	)
	if err != nil {
		panic("Failed to create rotate logs. err:" + err.Error())
	}
	// age is in years
	if age > 0 {
		rotatelogs.WithMaxAge(time.Duration(age) * 365 * 24 * time.Hour).Configure(writer)
	}

	hook := lfshook.NewHook(lfshook.WriterMap{
		logrus.TraceLevel: writer,
		logrus.DebugLevel: writer,
		logrus.InfoLevel:  writer,
		logrus.WarnLevel:  writer,
		logrus.ErrorLevel: writer,
		logrus.FatalLevel: writer,
	}, formatter)
	return hook
}

type callerHooker struct{}

// skip over logrus and this package to the real call site.
const callerSkip = 7

func (h *callerHooker) Fire(entry *logrus.Entry) error {
	pc, _, _, ok := runtime.Caller(callerSkip)
	if !ok {
		return nil
	}

	f := runtime.FuncForPC(pc)
	fname := f.Name()
	file, line := f.FileLine(pc)
	if index := strings.LastIndex(fname, "/"); index >= 0 {
		fname = fname[index+1:]
	}
	entry.Data["func"] = fname
	entry.Data["line"] = line
	entry.Data["file"] = filepath.Base(file)
	return nil
}

func (h *callerHooker) Levels() []logrus.Level {
	return logrus.AllLevels
}

// NewCallerHooker returns a hook reporting the file, line and function
// of the call site on every entry.
func NewCallerHooker() logrus.Hook {
	return &callerHooker{}
}
