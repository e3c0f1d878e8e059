package repository

import (
	"context"
	"time"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// WaitlistFilter narrows a tenant-scoped waitlist listing
type WaitlistFilter struct {
	Status       *domain.WaitlistStatus
	ServiceID    *string
	SpecialistID *string
	DesiredDate  *time.Time
	Search       *string
	Page         int
	PageSize     int
}

// WaitlistRepository defines the interface for waitlist data access.
// Every method is scoped by tenantID; entries are never deleted.
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.WaitlistEntry, error)
	List(ctx context.Context, tenantID string, filter WaitlistFilter) ([]*domain.WaitlistEntry, int64, error)
	UpdateStatus(ctx context.Context, tenantID, id string, status domain.WaitlistStatus) (bool, error)
	BulkUpdateStatus(ctx context.Context, tenantID string, ids []string, status domain.WaitlistStatus) (int64, error)
	UpdateNotes(ctx context.Context, tenantID, id, notes string) (bool, error)
	CountsByStatus(ctx context.Context, tenantID string) (map[domain.WaitlistStatus]int64, error)
}
