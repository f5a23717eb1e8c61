package logging

import (
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// InitLogger sets the shared logger to the given level. The logger instance
// is created once and then mutated, so references handed out before
// InitLogger runs stay valid.
func InitLogger(level logrus.Level) {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	logger.SetLevel(level)
}

// GetLogger returns the shared logger, initializing it at Info level if
// InitLogger has not been called yet.
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger(logrus.InfoLevel)
	}
	return logger
}
