package domain

import (
	"time"
)

// Role is the privilege level of an admin account
type Role string

const (
	// RoleTenantAdmin manages a single salon's data
	RoleTenantAdmin Role = "tenant_admin"
	// RoleSuperAdmin manages the platform across salons
	RoleSuperAdmin Role = "super_admin"
)

// Valid reports whether the role is a known value
func (r Role) Valid() bool {
	return r == RoleTenantAdmin || r == RoleSuperAdmin
}

// AtLeast reports whether the role meets the given minimum requirement.
// super_admin satisfies every requirement; tenant_admin satisfies only its own.
func (r Role) AtLeast(min Role) bool {
	if r == RoleSuperAdmin {
		return true
	}
	return r == min
}

// AdminAccount represents an administrator login.
// TenantID is set for tenant_admin accounts and empty for super_admin.
type AdminAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	TenantID     string    `json:"tenant_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the resolved identity of the caller for one request.
// It is derived only from a verified session token; tenant scope is copied
// from the account the token was issued for and never from request input.
type Principal struct {
	AdminID   string    `json:"admin_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	TenantID  string    `json:"tenant_id,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
