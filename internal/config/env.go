// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envDefault` tags
// defined on [StructuredConfig] and its nested types.
//
// Boolean variables follow [parseBool] instead of strconv.ParseBool, so
// DEBUG=yes is simply false rather than a parse error.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(false): func(v string) (any, error) {
				return parseBool(v), nil
			},
		},
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseBool reports whether v is "true", ignoring case.
func parseBool(v string) bool {
	return strings.EqualFold(v, "true")
}
