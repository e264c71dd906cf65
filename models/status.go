// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Placeholder values of [StatusRecord]. Neither uptime nor request counting
// is implemented; the fields carry these literals instead.
const (
	UptimePlaceholder       = "available"
	RequestCountPlaceholder = "not_tracked"
)

// StatusRecord is the payload of GET /api/status. It reflects the process
// configuration captured at startup.
type StatusRecord struct {
	// Uptime is always [UptimePlaceholder].
	Uptime string `json:"uptime"`

	// Environment is the ENVIRONMENT value the process was started with.
	Environment string `json:"environment"`

	// DebugMode is the DEBUG flag the process was started with.
	DebugMode bool `json:"debug_mode"`

	// RequestCount is always [RequestCountPlaceholder].
	RequestCount string `json:"request_count"`
}
