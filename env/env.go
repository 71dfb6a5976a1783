//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the comparison
// engine.
package env

import (
	"crypto/rand"
	"io"

	"github.com/rs/zerolog"
)

var nopLogger = zerolog.Nop()

// Config defines the system configuration shared by the garbling,
// OT, and protocol modules. Config must not be modified after being
// passed to any module. It is safe for concurrent use by multiple
// modules as they do not modify it.
type Config struct {
	// Rand is the source of entropy for labels, gate keys, and OT.
	Rand io.Reader

	// Log receives structured debug logging. A nil Log disables
	// logging.
	Log *zerolog.Logger

	// Verbose enables human readable progress output and timing
	// samples.
	Verbose bool
}

// GetRandom returns the source of entropy for garbling, OT, and other
// cryptography operations.
func (config *Config) GetRandom() io.Reader {
	if config != nil && config.Rand != nil {
		return config.Rand
	}
	return rand.Reader
}

// GetLogger returns the configured logger or a disabled logger if
// none is set.
func (config *Config) GetLogger() *zerolog.Logger {
	if config != nil && config.Log != nil {
		return config.Log
	}
	return &nopLogger
}

// IsVerbose tests if verbose output is enabled.
func (config *Config) IsVerbose() bool {
	return config != nil && config.Verbose
}
