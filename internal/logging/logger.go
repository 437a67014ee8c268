// Package logging builds the structured logger used by changedfiles.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a config log level onto a zap level.
func ParseLevel(raw string) (zapcore.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("log level %q is not supported", raw)
	}
}

// NewLogger returns a JSON zap logger writing to w at the given level.
func NewLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newLogger(lvl, w), nil
}

// NewInfoLogger returns a logger pinned at info, for messages that must be
// emitted whatever the configured level is.
func NewInfoLogger(w io.Writer) *zap.Logger {
	return newLogger(zapcore.InfoLevel, w)
}

func newLogger(lvl zapcore.Level, w io.Writer) *zap.Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core, zap.AddCaller())
}
