// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the field-level validation rules used by the
// registration forms.
//
// Core concepts:
//   - Func: a pure predicate over one field value that returns the set of
//     violated rule keys ([Errors]) or nil when the value passes.
//   - Run: merges the results of an ordered list of Funcs for one value.
//   - Validator: validates a whole payload, optionally scoped to a subset of
//     named fields, and reports failures as a [FieldErrors] error.
//
// Rules never perform I/O and never look at other fields, so a field's result
// depends on its current value only.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
