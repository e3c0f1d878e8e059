package dto

// ServiceVariantPayload is one bookable variation inside a service payload
type ServiceVariantPayload struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	PriceCents  int64  `json:"price_cents" binding:"required,min=0"`
	DurationMin int    `json:"duration_min" binding:"required,min=5,max=600"`
}

// CreateServiceRequest represents request to create a service
type CreateServiceRequest struct {
	Name        string                  `json:"name" binding:"required,min=2,max=255"`
	Description string                  `json:"description" binding:"omitempty,max=2000"`
	Category    string                  `json:"category" binding:"omitempty,max=100"`
	ImageURL    string                  `json:"image_url" binding:"omitempty,url"`
	Variants    []ServiceVariantPayload `json:"variants" binding:"required,min=1,dive"`
	IsActive    *bool                   `json:"is_active" binding:"omitempty"`
}

// UpdateServiceRequest represents request to update a service
type UpdateServiceRequest struct {
	Name        *string                  `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string                  `json:"description" binding:"omitempty,max=2000"`
	Category    *string                  `json:"category" binding:"omitempty,max=100"`
	ImageURL    *string                  `json:"image_url" binding:"omitempty,url"`
	Variants    *[]ServiceVariantPayload `json:"variants" binding:"omitempty,min=1,dive"`
	IsActive    *bool                    `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateServiceRequest) Validate() (bool, string) {
	if r.Name == nil && r.Description == nil && r.Category == nil && r.ImageURL == nil && r.Variants == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// ServiceResponse represents service data in responses
type ServiceResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Category    string                  `json:"category,omitempty"`
	ImageURL    string                  `json:"image_url,omitempty"`
	Variants    []ServiceVariantPayload `json:"variants"`
	IsActive    bool                    `json:"is_active"`
	CreatedAt   string                  `json:"created_at"`
	UpdatedAt   string                  `json:"updated_at"`
}

// CreateSpecialistRequest represents request to create a specialist
type CreateSpecialistRequest struct {
	Name       string   `json:"name" binding:"required,min=2,max=255"`
	Title      string   `json:"title" binding:"omitempty,max=255"`
	Bio        string   `json:"bio" binding:"omitempty,max=2000"`
	PhotoURL   string   `json:"photo_url" binding:"omitempty,url"`
	ServiceIDs []string `json:"service_ids" binding:"omitempty,dive,uuid"`
	IsActive   *bool    `json:"is_active" binding:"omitempty"`
}

// UpdateSpecialistRequest represents request to update a specialist
type UpdateSpecialistRequest struct {
	Name       *string   `json:"name" binding:"omitempty,min=2,max=255"`
	Title      *string   `json:"title" binding:"omitempty,max=255"`
	Bio        *string   `json:"bio" binding:"omitempty,max=2000"`
	PhotoURL   *string   `json:"photo_url" binding:"omitempty,url"`
	ServiceIDs *[]string `json:"service_ids" binding:"omitempty,dive,uuid"`
	IsActive   *bool     `json:"is_active" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateSpecialistRequest) Validate() (bool, string) {
	if r.Name == nil && r.Title == nil && r.Bio == nil && r.PhotoURL == nil && r.ServiceIDs == nil && r.IsActive == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// SpecialistResponse represents specialist data in responses
type SpecialistResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Title      string   `json:"title,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	PhotoURL   string   `json:"photo_url,omitempty"`
	ServiceIDs []string `json:"service_ids"`
	IsActive   bool     `json:"is_active"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

// UpsertHeroRequest represents request to set the salon's hero section
type UpsertHeroRequest struct {
	Heading    string `json:"heading" binding:"required,min=2,max=255"`
	Subheading string `json:"subheading" binding:"omitempty,max=512"`
	ImageURL   string `json:"image_url" binding:"omitempty,url"`
	CTALabel   string `json:"cta_label" binding:"omitempty,max=100"`
	CTAURL     string `json:"cta_url" binding:"omitempty,url"`
}

// HeroResponse represents hero section data in responses
type HeroResponse struct {
	ID         string `json:"id"`
	Heading    string `json:"heading"`
	Subheading string `json:"subheading,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	CTALabel   string `json:"cta_label,omitempty"`
	CTAURL     string `json:"cta_url,omitempty"`
	UpdatedAt  string `json:"updated_at"`
}
