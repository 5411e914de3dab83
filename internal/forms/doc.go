// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package forms holds the state of an editable form and the guard that
// decides whether a screen owning that form may be left.
//
// A [Form] starts pristine and becomes dirty on its first edit; it never
// goes back. Validity is recomputed on every edit from the field rules in
// package validators. A form ends either submitted or abandoned.
//
// [Guard] asks a [Confirmer] before an edited but invalid form is left.
package forms
