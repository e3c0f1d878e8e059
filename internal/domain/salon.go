package domain

import (
	"time"
)

// Salon represents a tenant business in the multi-tenant platform.
// Its ID is the tenant identifier carried by every salon-owned resource.
type Salon struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Slug      string                 `json:"slug"`
	Phone     string                 `json:"phone,omitempty"`
	Address   string                 `json:"address,omitempty"`
	LogoURL   string                 `json:"logo_url,omitempty"`
	Settings  map[string]interface{} `json:"settings,omitempty"`
	IsActive  bool                   `json:"is_active"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	DeletedAt *time.Time             `json:"deleted_at,omitempty"` // Soft delete support
}
