// SPDX-License-Identifier: MIT
//
// File: logging.go
// Role: zap logger construction from configuration.

// Package logging builds the zap logger shared by all engine components.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshchan/config"
)

// New returns a production (JSON) or development (console) logger at the
// configured level.
func New(cfg config.Log) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}

	return logger.Named("meshchan"), nil
}
