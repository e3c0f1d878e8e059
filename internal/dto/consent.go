package dto

// ConsentSectionPayload is one ordered block inside a consent template payload
type ConsentSectionPayload struct {
	Type     string   `json:"type" binding:"required,oneof=text checkbox signature choice"`
	Content  string   `json:"content" binding:"required,max=10000"`
	Order    int      `json:"order" binding:"min=0"`
	Required bool     `json:"required"`
	Options  []string `json:"options" binding:"omitempty,max=20,dive,max=255"`
}

// ConsentRequirementPayload declares which services require the form
type ConsentRequirementPayload struct {
	ServiceIDs []string `json:"service_ids" binding:"omitempty,dive,uuid"`
	Frequency  string   `json:"frequency" binding:"omitempty,oneof=once every_visit yearly"`
}

// CreateConsentTemplateRequest represents request to create a consent template.
// New templates always start as version 1 drafts.
type CreateConsentTemplateRequest struct {
	Name        string                     `json:"name" binding:"required,min=2,max=255"`
	Description string                     `json:"description" binding:"omitempty,max=2000"`
	Sections    []ConsentSectionPayload    `json:"sections" binding:"required,min=1,dive"`
	RequiredFor *ConsentRequirementPayload `json:"required_for" binding:"omitempty"`
}

// UpdateConsentTemplateRequest represents request to edit a draft template
type UpdateConsentTemplateRequest struct {
	Name        *string                    `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string                    `json:"description" binding:"omitempty,max=2000"`
	Sections    *[]ConsentSectionPayload   `json:"sections" binding:"omitempty,min=1,dive"`
	RequiredFor *ConsentRequirementPayload `json:"required_for" binding:"omitempty"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateConsentTemplateRequest) Validate() (bool, string) {
	if r.Name == nil && r.Description == nil && r.Sections == nil && r.RequiredFor == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// ConsentTemplateResponse represents consent template data in responses
type ConsentTemplateResponse struct {
	ID          string                    `json:"id"`
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	Version     int                       `json:"version"`
	Status      string                    `json:"status"`
	Sections    []ConsentSectionPayload   `json:"sections"`
	RequiredFor ConsentRequirementPayload `json:"required_for"`
	CreatedAt   string                    `json:"created_at"`
	UpdatedAt   string                    `json:"updated_at"`
}

// ListConsentTemplatesQuery represents query parameters for listing templates
type ListConsentTemplatesQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=draft published archived"`
	Search string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListConsentTemplatesQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListConsentTemplatesResponse represents a paginated list of templates
type ListConsentTemplatesResponse struct {
	Templates  []ConsentTemplateResponse `json:"templates"`
	TotalCount int64                     `json:"total_count"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	TotalPages int                       `json:"total_pages"`
}
