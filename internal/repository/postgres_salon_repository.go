package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// PostgresSalonRepository implements SalonRepository using PostgreSQL
type PostgresSalonRepository struct {
	db DB
}

// NewPostgresSalonRepository creates a new PostgresSalonRepository
func NewPostgresSalonRepository(db DB) *PostgresSalonRepository {
	return &PostgresSalonRepository{db: db}
}

const salonColumns = `id, name, slug, COALESCE(phone, '') as phone, COALESCE(address, '') as address,
       COALESCE(logo_url, '') as logo_url, COALESCE(settings, '{}'::jsonb) as settings,
       is_active, created_at, updated_at, deleted_at`

// Create creates a new salon
func (r *PostgresSalonRepository) Create(ctx context.Context, salon *domain.Salon) error {
	query := `
		INSERT INTO salons (id, name, slug, phone, address, logo_url, settings, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		salon.ID,
		salon.Name,
		salon.Slug,
		nullStringOrValue(salon.Phone),
		nullStringOrValue(salon.Address),
		nullStringOrValue(salon.LogoURL),
		salon.Settings,
		salon.IsActive,
		salon.CreatedAt,
		salon.UpdatedAt,
	)
	return err
}

// GetByID retrieves a salon by ID
func (r *PostgresSalonRepository) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	query := `SELECT ` + salonColumns + ` FROM salons WHERE id = $1 AND deleted_at IS NULL`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetBySlug retrieves a salon by slug
func (r *PostgresSalonRepository) GetBySlug(ctx context.Context, slug string) (*domain.Salon, error) {
	query := `SELECT ` + salonColumns + ` FROM salons WHERE slug = $1 AND deleted_at IS NULL`
	return r.scanOne(r.db.QueryRow(ctx, query, slug))
}

// List retrieves salons with pagination and filters
func (r *PostgresSalonRepository) List(ctx context.Context, page, limit int, isActive *bool, search string) ([]*domain.Salon, int, error) {
	whereClause := "WHERE deleted_at IS NULL"
	args := []interface{}{}
	argIndex := 1

	if isActive != nil {
		whereClause += fmt.Sprintf(" AND is_active = $%d", argIndex)
		args = append(args, *isActive)
		argIndex++
	}

	if search != "" {
		whereClause += fmt.Sprintf(" AND (name ILIKE $%d OR slug ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM salons %s", whereClause)
	var totalCount int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := fmt.Sprintf(`
		SELECT `+salonColumns+`
		FROM salons
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	salons := make([]*domain.Salon, 0)
	for rows.Next() {
		salon := &domain.Salon{}
		err := rows.Scan(
			&salon.ID,
			&salon.Name,
			&salon.Slug,
			&salon.Phone,
			&salon.Address,
			&salon.LogoURL,
			&salon.Settings,
			&salon.IsActive,
			&salon.CreatedAt,
			&salon.UpdatedAt,
			&salon.DeletedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		salons = append(salons, salon)
	}

	return salons, totalCount, nil
}

// Update updates a salon
func (r *PostgresSalonRepository) Update(ctx context.Context, salon *domain.Salon) error {
	query := `
		UPDATE salons
		SET name = $2, phone = $3, address = $4, logo_url = $5, settings = $6, is_active = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`
	salon.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		salon.ID,
		salon.Name,
		nullStringOrValue(salon.Phone),
		nullStringOrValue(salon.Address),
		nullStringOrValue(salon.LogoURL),
		salon.Settings,
		salon.IsActive,
		salon.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("salon not found or already deleted")
	}

	return nil
}

// SoftDelete soft deletes a salon by setting deleted_at
func (r *PostgresSalonRepository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE salons
		SET deleted_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	result, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("salon not found or already deleted")
	}

	return nil
}

// ExistsBySlug checks if a salon exists with the given slug
func (r *PostgresSalonRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM salons WHERE slug = $1 AND deleted_at IS NULL)`
	var exists bool
	err := r.db.QueryRow(ctx, query, slug).Scan(&exists)
	return exists, err
}

func (r *PostgresSalonRepository) scanOne(row pgx.Row) (*domain.Salon, error) {
	salon := &domain.Salon{}
	err := row.Scan(
		&salon.ID,
		&salon.Name,
		&salon.Slug,
		&salon.Phone,
		&salon.Address,
		&salon.LogoURL,
		&salon.Settings,
		&salon.IsActive,
		&salon.CreatedAt,
		&salon.UpdatedAt,
		&salon.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return salon, nil
}

// nullStringOrValue returns nil for empty strings, otherwise returns the value
func nullStringOrValue(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
