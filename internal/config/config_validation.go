// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the package's sentinel errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Host == "" {
		return fmt.Errorf("%w: empty host", ErrInvalidServerConfigs)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout < 0 || cfg.Server.WriteTimeout < 0 ||
		cfg.Server.IdleTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.App.Environment == "" {
		return fmt.Errorf("%w: empty environment", ErrInvalidAppConfigs)
	}

	if cfg.App.Debug && cfg.App.IsProduction() {
		return ErrDebugInProduction
	}

	return nil
}
