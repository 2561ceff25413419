package logger

import "go.uber.org/zap"

// Log is used by background workers, no-op until Initialize is called
var Log = zap.NewNop()

// New creates logger with log level
func New(level string) (*zap.Logger, error) {
	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

// Initialize sets Log to a logger with log level
func Initialize(level string) (*zap.Logger, error) {
	l, err := New(level)
	if err != nil {
		return nil, err
	}
	Log = l
	return l, nil
}
