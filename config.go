// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package stree

import (
	"fmt"
	"math"
)

// DefaultSentinel terminates texts if no other sentinel is configured.
const DefaultSentinel = "$"

// Config provides the parameters for a suffix tree.
type Config struct {
	// Sentinel must be a single byte. It is appended by Terminate and
	// must not occur anywhere else in the text.
	Sentinel string `json:",omitzero" toml:"sentinel"`

	// MaxLen limits the length of the text including the sentinel.
	MaxLen int `json:",omitzero" toml:"max-len"`

	// CheckInvariants runs Verify after every appended byte. It makes
	// the construction quadratic and is intended for debugging.
	CheckInvariants bool `json:",omitzero" toml:"check-invariants"`
}

func (cfg *Config) setDefaults() {
	if cfg.Sentinel == "" {
		cfg.Sentinel = DefaultSentinel
	}
	if cfg.MaxLen == 0 {
		cfg.MaxLen = math.MaxInt32
	}
}

// Verify checks the configuration for errors.
func (cfg *Config) Verify() error {
	if cfg == nil {
		return fmt.Errorf("stree: config is nil")
	}
	if len(cfg.Sentinel) != 1 {
		return fmt.Errorf(
			"stree: invalid Sentinel %q; must have exactly one byte",
			cfg.Sentinel)
	}
	if !(1 <= cfg.MaxLen && cfg.MaxLen <= math.MaxInt32) {
		return fmt.Errorf("stree: invalid MaxLen=%d; must be 1..%d",
			cfg.MaxLen, math.MaxInt32)
	}
	return nil
}

// ApplyDefaults sets the zero fields of the configuration to their default
// values.
func (cfg *Config) ApplyDefaults() { cfg.setDefaults() }
