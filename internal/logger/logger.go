package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// NewProduction returns a logger configured for normal runs: JSON output,
// info level.
func NewProduction() (*zap.Logger, error) {
	log, err := zap.NewProductionConfig().Build()
	if err != nil {
		return nil, fmt.Errorf("build production logger: %w", err)
	}
	return log, nil
}

// NewDevelopment returns a logger for verbose runs: console output, debug
// level.
func NewDevelopment() (*zap.Logger, error) {
	log, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		return nil, fmt.Errorf("build development logger: %w", err)
	}
	return log, nil
}
