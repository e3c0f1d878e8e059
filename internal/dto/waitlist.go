package dto

// CreateWaitlistEntryRequest represents a client joining a salon's waitlist.
// Submitted from the public site; the owning salon comes from the URL, never
// from the payload.
type CreateWaitlistEntryRequest struct {
	ClientName     string `json:"client_name" binding:"required,min=2,max=255"`
	ClientEmail    string `json:"client_email" binding:"required,email,max=255"`
	ClientPhone    string `json:"client_phone" binding:"omitempty,max=32"`
	ServiceID      string `json:"service_id" binding:"required,uuid"`
	SpecialistID   string `json:"specialist_id" binding:"omitempty,uuid"`
	VariantName    string `json:"variant_name" binding:"omitempty,max=255"`
	DesiredDate    string `json:"desired_date" binding:"omitempty,datetime=2006-01-02"`
	TimePreference string `json:"time_preference" binding:"omitempty,oneof=morning afternoon evening any"`
	Notes          string `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateWaitlistStatusRequest represents a single-entry status change
type UpdateWaitlistStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active converted expired removed"`
}

// BulkUpdateWaitlistStatusRequest represents a bulk status change
type BulkUpdateWaitlistStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,max=100,dive,uuid"`
	Status string   `json:"status" binding:"required,oneof=active converted expired removed"`
}

// BulkUpdateWaitlistStatusResponse reports how many entries were modified
type BulkUpdateWaitlistStatusResponse struct {
	ModifiedCount int64 `json:"modified_count"`
}

// UpdateWaitlistNotesRequest replaces the administrative notes of an entry
type UpdateWaitlistNotesRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

// WaitlistEntryResponse represents waitlist entry data in responses
type WaitlistEntryResponse struct {
	ID             string `json:"id"`
	ClientName     string `json:"client_name"`
	ClientEmail    string `json:"client_email"`
	ClientPhone    string `json:"client_phone,omitempty"`
	ServiceID      string `json:"service_id"`
	SpecialistID   string `json:"specialist_id,omitempty"`
	VariantName    string `json:"variant_name,omitempty"`
	DesiredDate    string `json:"desired_date,omitempty"`
	TimePreference string `json:"time_preference,omitempty"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// ListWaitlistQuery represents query parameters for listing waitlist entries
type ListWaitlistQuery struct {
	Page         int    `form:"page" binding:"omitempty,min=1"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status       string `form:"status" binding:"omitempty,oneof=active converted expired removed"`
	ServiceID    string `form:"service_id" binding:"omitempty,uuid"`
	SpecialistID string `form:"specialist_id" binding:"omitempty,uuid"`
	DesiredDate  string `form:"desired_date" binding:"omitempty,datetime=2006-01-02"`
	Search       string `form:"search" binding:"omitempty,max=255"`
}

// SetDefaults sets default values for query parameters
func (q *ListWaitlistQuery) SetDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 20
	}
}

// ListWaitlistResponse represents a paginated list of waitlist entries
type ListWaitlistResponse struct {
	Entries    []WaitlistEntryResponse `json:"entries"`
	TotalCount int64                   `json:"total_count"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

// WaitlistStatsResponse reports per-status entry counts for a salon
type WaitlistStatsResponse struct {
	Counts map[string]int64 `json:"counts"`
}
