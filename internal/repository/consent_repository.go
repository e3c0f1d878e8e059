package repository

import (
	"context"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// ConsentFilter narrows a tenant-scoped consent template listing
type ConsentFilter struct {
	Status   *domain.ConsentStatus
	Search   *string
	Page     int
	PageSize int
}

// ConsentRepository defines the interface for consent template data access.
// Every method is scoped by tenantID. UpdateStatus and Delete are
// conditional writes; a false return means no row matched the precondition.
type ConsentRepository interface {
	Create(ctx context.Context, template *domain.ConsentTemplate) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.ConsentTemplate, error)
	List(ctx context.Context, tenantID string, filter ConsentFilter) ([]*domain.ConsentTemplate, int64, error)
	Update(ctx context.Context, tenantID string, template *domain.ConsentTemplate) (bool, error)
	UpdateStatus(ctx context.Context, tenantID, id string, from, to domain.ConsentStatus) (bool, error)
	Delete(ctx context.Context, tenantID, id string, status domain.ConsentStatus) (bool, error)
	MaxVersion(ctx context.Context, tenantID, name string) (int, error)
}
