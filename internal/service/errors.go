// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrTimeSourceUnavailable is returned by [HealthService.Check] when the
	// clock fails or yields a zero time.
	ErrTimeSourceUnavailable = errors.New("time source unavailable")
)
