// Package logging builds the diagnostic logger shared by the store and the
// search index. Console output meant for the operator does not go through it.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger on stderr. Verbose lowers the level from
// warn to debug.
func New(verbose bool) *zap.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

func NewWithWriter(w io.Writer, verbose bool) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}
