// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"sort"
	"strings"
)

// Errors is the result of validating one field: every violated rule key maps
// to true. A nil or empty Errors means the value is valid.
type Errors map[string]bool

// Has reports whether the rule identified by key was violated.
func (e Errors) Has(key string) bool {
	return e[key]
}

// Valid reports whether no rule was violated.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Keys returns the violated rule keys in lexical order.
func (e Errors) Keys() []string {
	keys := make([]string, 0, len(e))
	for k, v := range e {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Func is a single validation rule. It inspects value and returns the
// violated keys, or nil if value passes.
type Func func(value string) Errors

// Run applies every rule in fns to value and returns the union of their
// results. Rules are independent: all of them run, and the order only
// matters for readability. It returns nil when value passes every rule.
func Run(value string, fns ...Func) Errors {
	var merged Errors
	for _, fn := range fns {
		for k, v := range fn(value) {
			if !v {
				continue
			}
			if merged == nil {
				merged = make(Errors)
			}
			merged[k] = true
		}
	}
	return merged
}

// FieldErrors maps a field name to its violated rules. It implements error so
// that a payload validator can return it directly; use [errors.As] to inspect
// it.
type FieldErrors map[string]Errors

// Error implements error. Fields and keys are listed in lexical order so the
// message is stable.
func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, name := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(f[name].Keys(), ",")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the violated rules of one field, or nil.
func (f FieldErrors) Field(name string) Errors {
	return f[name]
}
