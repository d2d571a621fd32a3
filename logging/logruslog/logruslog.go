package logruslog

import (
	"os"

	"github.com/goliatone/go-gym-records/logging"
	"github.com/sirupsen/logrus"
)

// Logger adapts a *logrus.Entry to logging.Logger.
type Logger struct{ E *logrus.Entry }

// New builds a text formatted logrus logger writing to stderr.
func New(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return Logger{}, err
	}

	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return Logger{E: logrus.NewEntry(l)}, nil
}

func (l Logger) Debug(msg string, f logging.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f logging.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f logging.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f logging.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
