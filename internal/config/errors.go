package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, empty host or out-of-range port).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, empty environment name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrDebugInProduction indicates that debug mode was enabled in the
	// production environment.
	ErrDebugInProduction = errors.New("debug mode must not be enabled in production")
	// ErrInvalidProbeConfigs indicates invalid health probe settings.
	ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
)
