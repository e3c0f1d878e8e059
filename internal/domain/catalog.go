package domain

import (
	"time"
)

// ServiceVariant is one bookable variation of a service (length, tier)
type ServiceVariant struct {
	Name        string `json:"name"`
	PriceCents  int64  `json:"price_cents"`
	DurationMin int    `json:"duration_min"`
}

// Service represents a salon-owned treatment offered to clients
type Service struct {
	ID          string           `json:"id"`
	TenantID    string           `json:"tenant_id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	ImageURL    string           `json:"image_url,omitempty"`
	Variants    []ServiceVariant `json:"variants"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Specialist represents a salon-owned staff member clients can be booked with
type Specialist struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	Name       string    `json:"name"`
	Title      string    `json:"title,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	ServiceIDs []string  `json:"service_ids"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HeroSection is the salon's public landing-page content block. One per salon.
type HeroSection struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	Heading    string    `json:"heading"`
	Subheading string    `json:"subheading,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	CTALabel   string    `json:"cta_label,omitempty"`
	CTAURL     string    `json:"cta_url,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}
