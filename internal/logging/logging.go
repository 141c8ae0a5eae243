// Package logging builds the zap logger used for diagnostic output. Operator
// output goes through fmt and the style package; the logger only speaks when
// --verbose is set.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w at debug level when verbose is
// true, and a no-op logger otherwise.
func New(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
