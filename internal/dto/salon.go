package dto

import (
	"regexp"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// SignupRequest represents a new salon registration together with its
// first administrator account.
type SignupRequest struct {
	SalonName     string                 `json:"salon_name" binding:"required,min=2,max=255"`
	Slug          string                 `json:"slug" binding:"required,min=2,max=100"`
	Phone         string                 `json:"phone" binding:"omitempty,max=32"`
	Address       string                 `json:"address" binding:"omitempty,max=512"`
	Settings      map[string]interface{} `json:"settings" binding:"omitempty"`
	AdminName     string                 `json:"admin_name" binding:"required,min=2,max=255"`
	AdminEmail    string                 `json:"admin_email" binding:"required,email,max=255"`
	AdminPassword string                 `json:"admin_password" binding:"required,min=8,max=128"`
}

// ValidateSlug validates slug format (lowercase alphanumeric and hyphens only)
func (r *SignupRequest) ValidateSlug() (bool, string) {
	if !slugRegex.MatchString(r.Slug) {
		return false, "Slug must contain only lowercase letters, numbers, and hyphens"
	}
	return true, ""
}

// UpdateSalonRequest represents request to update salon information
type UpdateSalonRequest struct {
	Name     *string                 `json:"name" binding:"omitempty,min=2,max=255"`
	Phone    *string                 `json:"phone" binding:"omitempty,max=32"`
	Address  *string                 `json:"address" binding:"omitempty,max=512"`
	LogoURL  *string                 `json:"logo_url" binding:"omitempty,url"`
	Settings *map[string]interface{} `json:"settings" binding:"omitempty"`
	IsActive *bool                   `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateSalonRequest) Validate() (bool, string) {
	if r.Name == nil && r.Phone == nil && r.Address == nil && r.LogoURL == nil && r.Settings == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// SalonResponse represents salon data in responses
type SalonResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Slug      string                 `json:"slug"`
	Phone     string                 `json:"phone,omitempty"`
	Address   string                 `json:"address,omitempty"`
	LogoURL   string                 `json:"logo_url,omitempty"`
	Settings  map[string]interface{} `json:"settings,omitempty"`
	IsActive  bool                   `json:"is_active"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

// SignupResponse bundles the created salon with its first admin session
type SignupResponse struct {
	Salon   SalonResponse   `json:"salon"`
	Session SessionResponse `json:"session"`
}

// ListSalonsQuery represents query parameters for listing salons
type ListSalonsQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	IsActive *bool  `form:"is_active" binding:"omitempty"`
	Search   string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListSalonsQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListSalonsResponse represents a paginated list of salons
type ListSalonsResponse struct {
	Salons     []SalonResponse `json:"salons"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
