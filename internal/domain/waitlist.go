package domain

import (
	"time"
)

// WaitlistStatus is the administrative state of a waitlist entry
type WaitlistStatus string

const (
	WaitlistStatusActive    WaitlistStatus = "active"
	WaitlistStatusConverted WaitlistStatus = "converted"
	WaitlistStatusExpired   WaitlistStatus = "expired"
	WaitlistStatusRemoved   WaitlistStatus = "removed"
)

// Valid reports whether the status is a known value
func (s WaitlistStatus) Valid() bool {
	switch s {
	case WaitlistStatusActive, WaitlistStatusConverted, WaitlistStatusExpired, WaitlistStatusRemoved:
		return true
	}
	return false
}

// WaitlistStatuses lists all waitlist statuses in display order
var WaitlistStatuses = []WaitlistStatus{
	WaitlistStatusActive,
	WaitlistStatusConverted,
	WaitlistStatusExpired,
	WaitlistStatusRemoved,
}

// WaitlistEntry represents a client waiting for an opening.
// Entries are never deleted; removal is the `removed` status. Any status
// may be set from any other status; the state machine models manual
// administrative override, and a same-status write is a successful no-op.
type WaitlistEntry struct {
	ID             string         `json:"id"`
	TenantID       string         `json:"tenant_id"`
	ClientName     string         `json:"client_name"`
	ClientEmail    string         `json:"client_email"`
	ClientPhone    string         `json:"client_phone,omitempty"`
	ServiceID      string         `json:"service_id"`
	SpecialistID   string         `json:"specialist_id,omitempty"`
	VariantName    string         `json:"variant_name,omitempty"`
	DesiredDate    *time.Time     `json:"desired_date,omitempty"`
	TimePreference string         `json:"time_preference,omitempty"`
	Status         WaitlistStatus `json:"status"`
	Notes          string         `json:"notes,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
