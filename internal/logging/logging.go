package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger shared by the CLI and the batch runner.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger. Verbose enables debug output. Quiet
// discards everything, leaving the process exit status as the only signal.
func NewLogger(verbose, quiet bool) *Logger {
	if quiet {
		return &Logger{zap.NewNop().Sugar()}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return &Logger{zap.NewNop().Sugar()}
	}
	return &Logger{logger.Sugar()}
}
