package repository

import (
	"context"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	// Create creates a new admin account
	Create(ctx context.Context, account *domain.AdminAccount) error
	// GetByEmail retrieves an account by email, matched case-insensitively
	GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error)
	// GetByID retrieves an account by ID
	GetByID(ctx context.Context, id string) (*domain.AdminAccount, error)
	// ExistsByEmail checks if an account exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
