package zaplog

import (
	"github.com/goliatone/go-gym-records/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts a *zap.Logger to logging.Logger.
type Logger struct{ L *zap.Logger }

// New builds a production zap logger at the given level ("debug", "info", ...).
func New(level string) (Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return Logger{}, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return Logger{}, err
	}
	return Logger{L: l}, nil
}

func (z Logger) Debug(msg string, f logging.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f logging.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f logging.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f logging.Fields) { z.L.Error(msg, zf(f)...) }

// Sync flushes buffered entries.
func (z Logger) Sync() error { return z.L.Sync() }

func zf(f logging.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
