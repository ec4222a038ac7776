package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yacobolo/blockcss/internal/report"
)

// newLogger builds the console logger. Logs go to stderr so stdout stays
// clean for CSS and lint output.
func newLogger() (*zap.Logger, error) {
	levelName := getStringWithFallback("log-level", "log-level", "warn")
	if getBoolWithFallback("verbose", "verbose", false) {
		levelName = "debug"
	}
	if getBoolWithFallback("quiet", "quiet", false) {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if report.ShouldUseColors(getBoolWithFallback("color", "color", false)) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core), nil
}
