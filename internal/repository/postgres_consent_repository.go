package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// PostgresConsentRepository implements ConsentRepository using PostgreSQL
type PostgresConsentRepository struct {
	db DB
}

// NewPostgresConsentRepository creates a new PostgresConsentRepository
func NewPostgresConsentRepository(db DB) *PostgresConsentRepository {
	return &PostgresConsentRepository{db: db}
}

const consentColumns = `id, tenant_id, name, COALESCE(description, '') as description, version, status,
       COALESCE(sections, '[]'::jsonb) as sections, COALESCE(required_for, '{}'::jsonb) as required_for,
       created_at, updated_at`

// Create creates a new consent template
func (r *PostgresConsentRepository) Create(ctx context.Context, template *domain.ConsentTemplate) error {
	sections, err := json.Marshal(template.Sections)
	if err != nil {
		return err
	}
	requiredFor, err := json.Marshal(template.RequiredFor)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO consent_templates (id, tenant_id, name, description, version, status, sections, required_for, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9, $10)
	`
	_, err = r.db.Exec(ctx, query,
		template.ID,
		template.TenantID,
		template.Name,
		nullStringOrValue(template.Description),
		template.Version,
		string(template.Status),
		string(sections),
		string(requiredFor),
		template.CreatedAt,
		template.UpdatedAt,
	)
	return err
}

// GetByID retrieves a consent template owned by the given tenant
func (r *PostgresConsentRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.ConsentTemplate, error) {
	query := `SELECT ` + consentColumns + ` FROM consent_templates WHERE id = $1 AND tenant_id = $2`
	return scanConsentTemplate(r.db.QueryRow(ctx, query, id, tenantID))
}

// List retrieves consent templates owned by the given tenant with filtering and pagination
func (r *PostgresConsentRepository) List(ctx context.Context, tenantID string, filter ConsentFilter) ([]*domain.ConsentTemplate, int64, error) {
	whereClause := ` WHERE tenant_id = $1`
	args := []interface{}{tenantID}
	argIndex := 2

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, string(*filter.Status))
		argIndex++
	}
	if filter.Search != nil {
		whereClause += fmt.Sprintf(" AND name ILIKE $%d", argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM consent_templates` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + consentColumns + ` FROM consent_templates` + whereClause +
		fmt.Sprintf(" ORDER BY name ASC, version DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	templates := make([]*domain.ConsentTemplate, 0)
	for rows.Next() {
		template, err := scanConsentTemplate(rows)
		if err != nil {
			return nil, 0, err
		}
		templates = append(templates, template)
	}

	return templates, total, nil
}

// Update replaces the content of a draft template owned by the given tenant.
// The draft check runs inside the UPDATE so a concurrent publish cannot race it.
func (r *PostgresConsentRepository) Update(ctx context.Context, tenantID string, template *domain.ConsentTemplate) (bool, error) {
	sections, err := json.Marshal(template.Sections)
	if err != nil {
		return false, err
	}
	requiredFor, err := json.Marshal(template.RequiredFor)
	if err != nil {
		return false, err
	}

	query := `
		UPDATE consent_templates
		SET name = $3, description = $4, sections = $5::jsonb, required_for = $6::jsonb, updated_at = $7
		WHERE id = $1 AND tenant_id = $2 AND status = $8
	`
	template.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		template.ID,
		tenantID,
		template.Name,
		nullStringOrValue(template.Description),
		string(sections),
		string(requiredFor),
		template.UpdatedAt,
		string(domain.ConsentStatusDraft),
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// UpdateStatus moves a template from one status to another in a single
// conditional write. A false return means the template was not in the
// expected source status (or not owned by the tenant).
func (r *PostgresConsentRepository) UpdateStatus(ctx context.Context, tenantID, id string, from, to domain.ConsentStatus) (bool, error) {
	query := `UPDATE consent_templates SET status = $3, updated_at = $4 WHERE id = $1 AND tenant_id = $2 AND status = $5`
	result, err := r.db.Exec(ctx, query, id, tenantID, string(to), time.Now(), string(from))
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// Delete removes a template only while it is still in the given status
func (r *PostgresConsentRepository) Delete(ctx context.Context, tenantID, id string, status domain.ConsentStatus) (bool, error) {
	query := `DELETE FROM consent_templates WHERE id = $1 AND tenant_id = $2 AND status = $3`
	result, err := r.db.Exec(ctx, query, id, tenantID, string(status))
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// MaxVersion returns the highest version recorded for a template name within the tenant
func (r *PostgresConsentRepository) MaxVersion(ctx context.Context, tenantID, name string) (int, error) {
	var version int
	query := `SELECT COALESCE(MAX(version), 0) FROM consent_templates WHERE tenant_id = $1 AND name = $2`
	if err := r.db.QueryRow(ctx, query, tenantID, name).Scan(&version); err != nil {
		return 0, err
	}
	return version, nil
}

func scanConsentTemplate(row pgx.Row) (*domain.ConsentTemplate, error) {
	template := &domain.ConsentTemplate{}
	var status string
	var sections, requiredFor []byte
	err := row.Scan(
		&template.ID,
		&template.TenantID,
		&template.Name,
		&template.Description,
		&template.Version,
		&status,
		&sections,
		&requiredFor,
		&template.CreatedAt,
		&template.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	template.Status = domain.ConsentStatus(status)
	if err := json.Unmarshal(sections, &template.Sections); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(requiredFor, &template.RequiredFor); err != nil {
		return nil, err
	}
	return template, nil
}
