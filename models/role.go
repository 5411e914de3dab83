// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the account kind a registration payload or a session carries.
type Role string

const (
	// RoleAdmin owns a restaurant and may delete its food items.
	RoleAdmin Role = "Admin"

	// RoleCustomer browses restaurants and keeps a favorites list.
	RoleCustomer Role = "Customer"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// String implements [fmt.Stringer].
func (r Role) String() string {
	return string(r)
}
