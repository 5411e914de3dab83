// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import "errors"

var (
	ErrUnknownField = errors.New("unknown form field")
	ErrFormClosed   = errors.New("form is already submitted or abandoned")
)
