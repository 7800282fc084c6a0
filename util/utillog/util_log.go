package utillog

import (
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

var (
	logger = newLogger()

	DebugLog func(pat string, args ...any) = func(pat string, args ...any) {
		logger.Debugf(pat, args...)
	}
	InfoLog func(pat string, args ...any) = func(pat string, args ...any) {
		logger.Infof(pat, args...)
	}
	ErrorLog func(pat string, args ...any) = func(pat string, args ...any) {
		logger.Errorf(pat, args...)
	}
)

func newLogger() *logrus.Entry {
	l := logrus.New()
	l.SetFormatter(PreConfiguredFormatter())
	l.SetLevel(logrus.InfoLevel)
	return l.WithField("pkg", "chrono")
}

// Get pre-configured TextFormatter for logrus
func PreConfiguredFormatter() *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp: true,
	}
}

// Get the logger backing the default log hooks.
func Logger() *logrus.Logger {
	return logger.Logger
}

// Change log level of the logger backing the default log hooks, e.g., "debug", "info".
func SetLevel(level string) error {
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.Logger.SetLevel(lv)
	return nil
}

type RollingLogFileParam struct {
	Filename   string // filename
	MaxSize    int    // max file size in mb
	MaxAge     int    // max age in day
	MaxBackups int    // max number of files
}

// Create rolling file based writer.
func BuildRollingLogFileWriter(p RollingLogFileParam) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   p.Filename,
		MaxSize:    p.MaxSize,    // megabytes
		MaxAge:     p.MaxAge,     // days
		MaxBackups: p.MaxBackups, // num of files
		LocalTime:  true,
		Compress:   false,
	}
}

// Redirect the logger backing the default log hooks to a rolling log file.
//
// The returned writer should be closed once logging is done.
func SetLogFile(p RollingLogFileParam) *lumberjack.Logger {
	w := BuildRollingLogFileWriter(p)
	logger.Logger.SetOutput(w)
	return w
}
