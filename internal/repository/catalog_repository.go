package repository

import (
	"context"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// ServiceRepository defines the interface for salon service data access.
// Every method is scoped by tenantID; rows outside that tenant are invisible.
type ServiceRepository interface {
	// Create creates a new service
	Create(ctx context.Context, service *domain.Service) error
	// GetByID retrieves a service owned by the given tenant
	GetByID(ctx context.Context, tenantID, id string) (*domain.Service, error)
	// List retrieves all services owned by the given tenant
	List(ctx context.Context, tenantID string, includeInactive bool) ([]*domain.Service, error)
	// Update updates a service owned by the given tenant
	Update(ctx context.Context, tenantID string, service *domain.Service) (bool, error)
	// Delete deletes a service owned by the given tenant
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}

// SpecialistRepository defines the interface for specialist data access,
// tenant-scoped the same way as ServiceRepository.
type SpecialistRepository interface {
	Create(ctx context.Context, specialist *domain.Specialist) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Specialist, error)
	List(ctx context.Context, tenantID string, includeInactive bool) ([]*domain.Specialist, error)
	Update(ctx context.Context, tenantID string, specialist *domain.Specialist) (bool, error)
	Delete(ctx context.Context, tenantID, id string) (bool, error)
}

// HeroRepository defines the interface for the per-salon hero section
type HeroRepository interface {
	// GetByTenant retrieves the tenant's hero section, nil when unset
	GetByTenant(ctx context.Context, tenantID string) (*domain.HeroSection, error)
	// Upsert creates or replaces the tenant's hero section
	Upsert(ctx context.Context, hero *domain.HeroSection) error
}
