// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"sync"

	"github.com/MKhiriev/go-foodie/internal/validators"
)

// Status is the lifecycle stage of a form.
type Status int

const (
	StatusOpen Status = iota
	StatusSubmitted
	StatusAbandoned
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusSubmitted:
		return "submitted"
	case StatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// State is the part of a form the [Guard] looks at.
type State struct {
	Dirty bool
	Valid bool
}

// Field describes one input of a form.
type Field struct {
	Name  string
	Label string
	// Secret fields are rendered masked.
	Secret bool
	Rules  []validators.Func
}

// Form keeps field values, their validation results and the dirty flag.
// It is safe for concurrent use.
type Form struct {
	mu sync.RWMutex

	fields []Field
	index  map[string]int
	values map[string]string
	errs   map[string]validators.Errors
	dirty  bool
	status Status
}

// New builds a pristine form. Every field is validated against its empty
// value right away, so a form with required fields starts invalid.
func New(fields ...Field) *Form {
	f := &Form{
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range fields {
		f.index[field.Name] = i
	}
	f.reset()
	return f
}

func (f *Form) reset() {
	f.values = make(map[string]string, len(f.fields))
	f.errs = make(map[string]validators.Errors, len(f.fields))
	for _, field := range f.fields {
		f.values[field.Name] = ""
		f.errs[field.Name] = validators.Run("", field.Rules...)
	}
	f.dirty = false
	f.status = StatusOpen
}

// Fields returns the field definitions in display order.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	copy(out, f.fields)
	return out
}

// Set stores value for the named field, marks the form dirty and
// revalidates the field. A value equal to the current one still counts as
// an edit.
func (f *Form) Set(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != StatusOpen {
		return ErrFormClosed
	}
	i, ok := f.index[name]
	if !ok {
		return ErrUnknownField
	}

	f.values[name] = value
	f.errs[name] = validators.Run(value, f.fields[i].Rules...)
	f.dirty = true
	return nil
}

// Value returns the current value of the named field.
func (f *Form) Value(name string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.values[name]
}

// Values returns a copy of all field values.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Errors returns the validation result of the named field.
func (f *Form) Errors(name string) validators.Errors {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.errs[name]
}

// AllErrors returns the failing fields only.
func (f *Form) AllErrors() validators.FieldErrors {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make(validators.FieldErrors)
	for name, errs := range f.errs {
		if !errs.Valid() {
			out[name] = errs
		}
	}
	return out
}

// Valid reports whether every field passes its rules.
func (f *Form) Valid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.valid()
}

func (f *Form) valid() bool {
	for _, errs := range f.errs {
		if !errs.Valid() {
			return false
		}
	}
	return true
}

// Dirty reports whether the form has been edited since it was opened.
func (f *Form) Dirty() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dirty
}

// State returns the dirty and validity flags together.
func (f *Form) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return State{Dirty: f.dirty, Valid: f.valid()}
}

// Status returns the lifecycle stage.
func (f *Form) Status() Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// MarkSubmitted closes the form after a successful submit.
func (f *Form) MarkSubmitted() {
	f.close(StatusSubmitted)
}

// MarkAbandoned closes the form after its screen was left.
func (f *Form) MarkAbandoned() {
	f.close(StatusAbandoned)
}

func (f *Form) close(status Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusOpen {
		f.status = status
	}
}

// Reset drops all values and reopens the form as pristine.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}
