// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks configuration values produced by the bootstrap
// fetch before the process starts serving.
//
// Validators accept optional field names to restrict a check to part of a
// value; without them every known field is checked.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
