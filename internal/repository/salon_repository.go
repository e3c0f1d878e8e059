package repository

import (
	"context"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// SalonRepository defines the interface for salon (tenant) data access
type SalonRepository interface {
	// Create creates a new salon
	Create(ctx context.Context, salon *domain.Salon) error
	// GetByID retrieves a salon by ID
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
	// GetBySlug retrieves a salon by slug
	GetBySlug(ctx context.Context, slug string) (*domain.Salon, error)
	// List retrieves salons with pagination and filters
	List(ctx context.Context, page, limit int, isActive *bool, search string) ([]*domain.Salon, int, error)
	// Update updates a salon
	Update(ctx context.Context, salon *domain.Salon) error
	// SoftDelete soft deletes a salon
	SoftDelete(ctx context.Context, id string) error
	// ExistsBySlug checks if a salon exists with the given slug
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}
