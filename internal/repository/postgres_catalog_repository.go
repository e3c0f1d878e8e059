package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// PostgresServiceRepository implements ServiceRepository using PostgreSQL
type PostgresServiceRepository struct {
	db DB
}

// NewPostgresServiceRepository creates a new PostgresServiceRepository
func NewPostgresServiceRepository(db DB) *PostgresServiceRepository {
	return &PostgresServiceRepository{db: db}
}

const serviceColumns = `id, tenant_id, name, COALESCE(description, '') as description, COALESCE(category, '') as category,
       COALESCE(image_url, '') as image_url, COALESCE(variants, '[]'::jsonb) as variants, is_active, created_at, updated_at`

// Create creates a new service
func (r *PostgresServiceRepository) Create(ctx context.Context, service *domain.Service) error {
	variants, err := json.Marshal(service.Variants)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO services (id, tenant_id, name, description, category, image_url, variants, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		service.ID,
		service.TenantID,
		service.Name,
		nullStringOrValue(service.Description),
		nullStringOrValue(service.Category),
		nullStringOrValue(service.ImageURL),
		string(variants),
		service.IsActive,
		service.CreatedAt,
		service.UpdatedAt,
	)
	return err
}

// GetByID retrieves a service owned by the given tenant
func (r *PostgresServiceRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 AND tenant_id = $2`
	return scanService(r.db.QueryRow(ctx, query, id, tenantID))
}

// List retrieves all services owned by the given tenant
func (r *PostgresServiceRepository) List(ctx context.Context, tenantID string, includeInactive bool) ([]*domain.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE tenant_id = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, service)
	}

	return services, nil
}

// Update updates a service owned by the given tenant
func (r *PostgresServiceRepository) Update(ctx context.Context, tenantID string, service *domain.Service) (bool, error) {
	variants, err := json.Marshal(service.Variants)
	if err != nil {
		return false, err
	}

	query := `
		UPDATE services
		SET name = $3, description = $4, category = $5, image_url = $6, variants = $7::jsonb, is_active = $8, updated_at = $9
		WHERE id = $1 AND tenant_id = $2
	`
	service.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		service.ID,
		tenantID,
		service.Name,
		nullStringOrValue(service.Description),
		nullStringOrValue(service.Category),
		nullStringOrValue(service.ImageURL),
		string(variants),
		service.IsActive,
		service.UpdatedAt,
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// Delete deletes a service owned by the given tenant
func (r *PostgresServiceRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func scanService(row pgx.Row) (*domain.Service, error) {
	service := &domain.Service{}
	var variants []byte
	err := row.Scan(
		&service.ID,
		&service.TenantID,
		&service.Name,
		&service.Description,
		&service.Category,
		&service.ImageURL,
		&variants,
		&service.IsActive,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(variants, &service.Variants); err != nil {
		return nil, err
	}
	return service, nil
}

// PostgresSpecialistRepository implements SpecialistRepository using PostgreSQL
type PostgresSpecialistRepository struct {
	db DB
}

// NewPostgresSpecialistRepository creates a new PostgresSpecialistRepository
func NewPostgresSpecialistRepository(db DB) *PostgresSpecialistRepository {
	return &PostgresSpecialistRepository{db: db}
}

const specialistColumns = `id, tenant_id, name, COALESCE(title, '') as title, COALESCE(bio, '') as bio,
       COALESCE(photo_url, '') as photo_url, COALESCE(service_ids, '{}') as service_ids, is_active, created_at, updated_at`

// Create creates a new specialist
func (r *PostgresSpecialistRepository) Create(ctx context.Context, specialist *domain.Specialist) error {
	query := `
		INSERT INTO specialists (id, tenant_id, name, title, bio, photo_url, service_ids, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		specialist.ID,
		specialist.TenantID,
		specialist.Name,
		nullStringOrValue(specialist.Title),
		nullStringOrValue(specialist.Bio),
		nullStringOrValue(specialist.PhotoURL),
		specialist.ServiceIDs,
		specialist.IsActive,
		specialist.CreatedAt,
		specialist.UpdatedAt,
	)
	return err
}

// GetByID retrieves a specialist owned by the given tenant
func (r *PostgresSpecialistRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Specialist, error) {
	query := `SELECT ` + specialistColumns + ` FROM specialists WHERE id = $1 AND tenant_id = $2`
	return scanSpecialist(r.db.QueryRow(ctx, query, id, tenantID))
}

// List retrieves all specialists owned by the given tenant
func (r *PostgresSpecialistRepository) List(ctx context.Context, tenantID string, includeInactive bool) ([]*domain.Specialist, error) {
	query := `SELECT ` + specialistColumns + ` FROM specialists WHERE tenant_id = $1`
	if !includeInactive {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	specialists := make([]*domain.Specialist, 0)
	for rows.Next() {
		specialist, err := scanSpecialist(rows)
		if err != nil {
			return nil, err
		}
		specialists = append(specialists, specialist)
	}

	return specialists, nil
}

// Update updates a specialist owned by the given tenant
func (r *PostgresSpecialistRepository) Update(ctx context.Context, tenantID string, specialist *domain.Specialist) (bool, error) {
	query := `
		UPDATE specialists
		SET name = $3, title = $4, bio = $5, photo_url = $6, service_ids = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND tenant_id = $2
	`
	specialist.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		specialist.ID,
		tenantID,
		specialist.Name,
		nullStringOrValue(specialist.Title),
		nullStringOrValue(specialist.Bio),
		nullStringOrValue(specialist.PhotoURL),
		specialist.ServiceIDs,
		specialist.IsActive,
		specialist.UpdatedAt,
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// Delete deletes a specialist owned by the given tenant
func (r *PostgresSpecialistRepository) Delete(ctx context.Context, tenantID, id string) (bool, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM specialists WHERE id = $1 AND tenant_id = $2`, id, tenantID)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func scanSpecialist(row pgx.Row) (*domain.Specialist, error) {
	specialist := &domain.Specialist{}
	err := row.Scan(
		&specialist.ID,
		&specialist.TenantID,
		&specialist.Name,
		&specialist.Title,
		&specialist.Bio,
		&specialist.PhotoURL,
		&specialist.ServiceIDs,
		&specialist.IsActive,
		&specialist.CreatedAt,
		&specialist.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return specialist, nil
}

// PostgresHeroRepository implements HeroRepository using PostgreSQL
type PostgresHeroRepository struct {
	db DB
}

// NewPostgresHeroRepository creates a new PostgresHeroRepository
func NewPostgresHeroRepository(db DB) *PostgresHeroRepository {
	return &PostgresHeroRepository{db: db}
}

// GetByTenant retrieves the tenant's hero section, nil when unset
func (r *PostgresHeroRepository) GetByTenant(ctx context.Context, tenantID string) (*domain.HeroSection, error) {
	query := `
		SELECT id, tenant_id, heading, COALESCE(subheading, '') as subheading, COALESCE(image_url, '') as image_url,
		       COALESCE(cta_label, '') as cta_label, COALESCE(cta_url, '') as cta_url, updated_at
		FROM hero_sections
		WHERE tenant_id = $1
	`
	hero := &domain.HeroSection{}
	err := r.db.QueryRow(ctx, query, tenantID).Scan(
		&hero.ID,
		&hero.TenantID,
		&hero.Heading,
		&hero.Subheading,
		&hero.ImageURL,
		&hero.CTALabel,
		&hero.CTAURL,
		&hero.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return hero, nil
}

// Upsert creates or replaces the tenant's hero section
func (r *PostgresHeroRepository) Upsert(ctx context.Context, hero *domain.HeroSection) error {
	query := `
		INSERT INTO hero_sections (id, tenant_id, heading, subheading, image_url, cta_label, cta_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tenant_id) DO UPDATE
		SET heading = EXCLUDED.heading, subheading = EXCLUDED.subheading, image_url = EXCLUDED.image_url,
		    cta_label = EXCLUDED.cta_label, cta_url = EXCLUDED.cta_url, updated_at = EXCLUDED.updated_at
	`
	hero.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx, query,
		hero.ID,
		hero.TenantID,
		hero.Heading,
		nullStringOrValue(hero.Subheading),
		nullStringOrValue(hero.ImageURL),
		nullStringOrValue(hero.CTALabel),
		nullStringOrValue(hero.CTAURL),
		hero.UpdatedAt,
	)
	return err
}
