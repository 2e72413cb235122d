// Package log wraps logrus with the application's sink, format and level configuration.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is an alias so callers do not import logrus directly.
type Fields = logrus.Fields

// Setup configures the sink, formatter and level from the current configuration.
// Logs go to stderr unless logs.write is set, in which case they are appended to a dated file in the logs directory.
func Setup() error {
	if viper.GetBool(key.LogsWrite) {
		dir := where.Logs()
		if dir == "" {
			return errors.New("log directory path is empty")
		}

		path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
		f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logrus.SetOutput(f)
	} else {
		logrus.SetOutput(os.Stderr)
	}

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.WarnLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// With returns an entry carrying fields.
func With(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

func Error(args ...interface{})                 { logrus.Error(args...) }
func Errorf(format string, args ...interface{}) { logrus.Errorf(format, args...) }
func Warn(args ...interface{})                  { logrus.Warn(args...) }
func Warnf(format string, args ...interface{})  { logrus.Warnf(format, args...) }
func Info(args ...interface{})                  { logrus.Info(args...) }
func Infof(format string, args ...interface{})  { logrus.Infof(format, args...) }
func Debug(args ...interface{})                 { logrus.Debug(args...) }
func Debugf(format string, args ...interface{}) { logrus.Debugf(format, args...) }
