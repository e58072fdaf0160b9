package log

import (
	"io"
	"os"

	lg "github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"feedsync/config"
)

type logrus struct {
	*lg.Logger
}

// WithLogrus creates a logger backed by logrus, writing to stderr or to
// a rotated file, depending on the configuration.
func WithLogrus(cfg config.Log) Log {
	logger := logrus{Logger: lg.New()}

	var writer io.Writer
	if cfg.File == "-" || cfg.File == "" {
		writer = os.Stderr
	} else {
		writer = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    20,
			MaxBackups: 5,
			MaxAge:     28,
		}
	}

	logger.Out = writer

	switch cfg.Formatter {
	case "json":
		logger.Formatter = &lg.JSONFormatter{}
	default:
		logger.Formatter = &lg.TextFormatter{}
	}

	switch cfg.Level {
	case "debug":
		logger.Level = lg.DebugLevel
	case "error":
		logger.Level = lg.ErrorLevel
	default:
		logger.Level = lg.InfoLevel
	}

	return logger
}

func (l logrus) Print(args ...interface{}) {
	l.Logger.Error(args...)
}

func (l logrus) Printf(format string, args ...interface{}) {
	l.Logger.Errorf(format, args...)
}

func (l logrus) Println(args ...interface{}) {
	l.Logger.Errorln(args...)
}
