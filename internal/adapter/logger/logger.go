package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type LoggerAdapter struct {
	logger *logrus.Logger
}

// NewLoggerAdapter writes text with full timestamps in development and JSON
// everywhere else.
func NewLoggerAdapter(env string) *LoggerAdapter {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	if env == "development" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		l.SetLevel(logrus.InfoLevel)
		l.SetFormatter(&logrus.JSONFormatter{})
	}
	return &LoggerAdapter{logger: l}
}

func NewLoggerAdapterWith(l *logrus.Logger) *LoggerAdapter {
	return &LoggerAdapter{logger: l}
}

// SetLevel accepts logrus level names; an empty level keeps the current one.
func (a *LoggerAdapter) SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	a.logger.SetLevel(lvl)
	return nil
}

func (a *LoggerAdapter) Logrus() *logrus.Logger {
	return a.logger
}

func (a *LoggerAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.WithFields(fields).Debug(msg)
}

func (a *LoggerAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.WithFields(fields).Info(msg)
}

func (a *LoggerAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.WithFields(fields).Warn(msg)
}

func (a *LoggerAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.WithFields(fields).Error(msg)
}
