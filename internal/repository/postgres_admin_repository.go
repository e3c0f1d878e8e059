package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// PostgresAdminRepository implements AdminRepository using PostgreSQL
type PostgresAdminRepository struct {
	db DB
}

// NewPostgresAdminRepository creates a new PostgresAdminRepository
func NewPostgresAdminRepository(db DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

const adminColumns = `id, email, password_hash, COALESCE(name, '') as name, role, COALESCE(tenant_id::text, '') as tenant_id, is_active, created_at, updated_at`

// Create creates a new admin account
func (r *PostgresAdminRepository) Create(ctx context.Context, account *domain.AdminAccount) error {
	query := `
		INSERT INTO admin_accounts (id, email, password_hash, name, role, tenant_id, is_active, created_at, updated_at)
		VALUES ($1, LOWER($2), $3, $4, $5, $6, $7, $8, $9)
	`
	var tenantID interface{}
	if account.TenantID != "" {
		tenantID = account.TenantID
	}

	_, err := r.db.Exec(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.Name,
		account.Role,
		tenantID,
		account.IsActive,
		account.CreatedAt,
		account.UpdatedAt,
	)
	return err
}

// GetByEmail retrieves an account by email, matched case-insensitively
func (r *PostgresAdminRepository) GetByEmail(ctx context.Context, email string) (*domain.AdminAccount, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admin_accounts
		WHERE email = LOWER($1)
	`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

// GetByID retrieves an account by ID
func (r *PostgresAdminRepository) GetByID(ctx context.Context, id string) (*domain.AdminAccount, error) {
	query := `
		SELECT ` + adminColumns + `
		FROM admin_accounts
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// ExistsByEmail checks if an account exists with the given email
func (r *PostgresAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admin_accounts WHERE email = LOWER($1))`
	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *PostgresAdminRepository) scanOne(row pgx.Row) (*domain.AdminAccount, error) {
	account := &domain.AdminAccount{}
	err := row.Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.Name,
		&account.Role,
		&account.TenantID,
		&account.IsActive,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}
