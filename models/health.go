// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Health status values reported by the health endpoint.
const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"
)

// TimestampLayout is the ISO-8601 layout used for [HealthRecord.Timestamp].
// Timestamps are always rendered in UTC with microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// HealthRecord is the payload of a successful GET /api/health call.
// It is built fresh for every request and never stored.
type HealthRecord struct {
	// Status is always [HealthStatusOK] for a successful check.
	Status string `json:"status"`

	// Timestamp is the UTC time at which the record was built,
	// formatted with [TimestampLayout].
	Timestamp string `json:"timestamp"`

	// Version is the API version.
	Version string `json:"version"`

	// Service is the service identifier.
	Service string `json:"service"`
}

// HealthFailure is the payload returned with 500 when a health record
// cannot be built.
type HealthFailure struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
