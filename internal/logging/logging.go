package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// wraps a zap sugared logger for CLI use
type Logger struct {
	*zap.SugaredLogger
}

// creates a console logger; verbose enables debug output
func NewLogger(verbose bool) *Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		// fall back to a no-op logger rather than failing the CLI
		return &Logger{zap.NewNop().Sugar()}
	}

	return &Logger{logger.Sugar()}
}
