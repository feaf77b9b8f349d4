package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер приложения; некорректный уровень заменяется на info
func New(logLevel string) *logrus.Logger {
	return NewWithOutput(logLevel, os.Stdout)
}

func NewWithOutput(logLevel string, out io.Writer) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	log.SetOutput(out)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
