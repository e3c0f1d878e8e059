package domain

import (
	"time"
)

// ConsentStatus is the lifecycle state of a consent template
type ConsentStatus string

const (
	ConsentStatusDraft     ConsentStatus = "draft"
	ConsentStatusPublished ConsentStatus = "published"
	ConsentStatusArchived  ConsentStatus = "archived"
)

// Valid reports whether the status is a known value
func (s ConsentStatus) Valid() bool {
	switch s {
	case ConsentStatusDraft, ConsentStatusPublished, ConsentStatusArchived:
		return true
	}
	return false
}

// ConsentSectionType enumerates the kinds of blocks a template may contain
type ConsentSectionType string

const (
	ConsentSectionText      ConsentSectionType = "text"
	ConsentSectionCheckbox  ConsentSectionType = "checkbox"
	ConsentSectionSignature ConsentSectionType = "signature"
	ConsentSectionChoice    ConsentSectionType = "choice"
)

// ConsentSection is one ordered block of a consent template
type ConsentSection struct {
	Type     ConsentSectionType `json:"type"`
	Content  string             `json:"content"`
	Order    int                `json:"order"`
	Required bool               `json:"required"`
	Options  []string           `json:"options,omitempty"`
}

// ConsentRequirement declares which services require the form and how often
type ConsentRequirement struct {
	ServiceIDs []string `json:"service_ids"`
	Frequency  string   `json:"frequency"` // once, every_visit, yearly
}

// ConsentTemplate is a versioned consent form owned by a salon.
//
// Lifecycle: created as draft at version 1. Publishing freezes the
// sections; a published template can only be archived or forked into a
// new draft record at the next version. Only drafts may be edited or
// deleted. Archived templates are read-only.
type ConsentTemplate struct {
	ID          string             `json:"id"`
	TenantID    string             `json:"tenant_id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Version     int                `json:"version"`
	Status      ConsentStatus      `json:"status"`
	Sections    []ConsentSection   `json:"sections"`
	RequiredFor ConsentRequirement `json:"required_for"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// CanEdit reports whether the template content may still be modified
func (t *ConsentTemplate) CanEdit() bool {
	return t.Status == ConsentStatusDraft
}

// CanPublish reports whether the template may transition to published
func (t *ConsentTemplate) CanPublish() bool {
	return t.Status == ConsentStatusDraft
}

// CanArchive reports whether the template may transition to archived
func (t *ConsentTemplate) CanArchive() bool {
	return t.Status == ConsentStatusPublished
}

// CanDelete reports whether the template may be deleted outright
func (t *ConsentTemplate) CanDelete() bool {
	return t.Status == ConsentStatusDraft
}

// CanFork reports whether a new draft version may be created from the template
func (t *ConsentTemplate) CanFork() bool {
	return t.Status == ConsentStatusPublished
}
