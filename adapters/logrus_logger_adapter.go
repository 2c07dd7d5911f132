package adapters

import (
	"github.com/sirupsen/logrus"
)

// LogrusLoggerAdapter implements LoggerAdapter on top of a logrus logger,
// for hosts that already run logrus and want tracker logs in the same
// stream.
type LogrusLoggerAdapter struct {
	logger *logrus.Logger
}

// Ensure LogrusLoggerAdapter implements LoggerAdapter interface
var _ LoggerAdapter = (*LogrusLoggerAdapter)(nil)

// NewLogrusLoggerAdapter creates a new adapter around the given logger.
// A nil logger falls back to the logrus standard logger.
func NewLogrusLoggerAdapter(logger *logrus.Logger) *LogrusLoggerAdapter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusLoggerAdapter{logger: logger}
}

func (l *LogrusLoggerAdapter) Debug(message string, args ...interface{}) {
	l.logger.Debugf(message, args...)
}

func (l *LogrusLoggerAdapter) Info(message string, args ...interface{}) {
	l.logger.Infof(message, args...)
}

func (l *LogrusLoggerAdapter) Warn(message string, args ...interface{}) {
	l.logger.Warnf(message, args...)
}

func (l *LogrusLoggerAdapter) Error(message string, args ...interface{}) {
	l.logger.Errorf(message, args...)
}
