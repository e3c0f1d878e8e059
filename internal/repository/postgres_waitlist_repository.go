package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// PostgresWaitlistRepository implements WaitlistRepository using PostgreSQL
type PostgresWaitlistRepository struct {
	db DB
}

// NewPostgresWaitlistRepository creates a new PostgresWaitlistRepository
func NewPostgresWaitlistRepository(db DB) *PostgresWaitlistRepository {
	return &PostgresWaitlistRepository{db: db}
}

const waitlistColumns = `id, tenant_id, client_name, client_email, COALESCE(client_phone, '') as client_phone,
       service_id, COALESCE(specialist_id, '') as specialist_id, COALESCE(variant_name, '') as variant_name,
       desired_date, COALESCE(time_preference, '') as time_preference, status, COALESCE(notes, '') as notes,
       created_at, updated_at`

// Create creates a new waitlist entry
func (r *PostgresWaitlistRepository) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	query := `
		INSERT INTO waitlist_entries (id, tenant_id, client_name, client_email, client_phone, service_id,
		                              specialist_id, variant_name, desired_date, time_preference, status, notes,
		                              created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.TenantID,
		entry.ClientName,
		entry.ClientEmail,
		nullStringOrValue(entry.ClientPhone),
		entry.ServiceID,
		nullStringOrValue(entry.SpecialistID),
		nullStringOrValue(entry.VariantName),
		entry.DesiredDate,
		nullStringOrValue(entry.TimePreference),
		string(entry.Status),
		nullStringOrValue(entry.Notes),
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	return err
}

// GetByID retrieves a waitlist entry owned by the given tenant
func (r *PostgresWaitlistRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.WaitlistEntry, error) {
	query := `SELECT ` + waitlistColumns + ` FROM waitlist_entries WHERE id = $1 AND tenant_id = $2`
	return scanWaitlistEntry(r.db.QueryRow(ctx, query, id, tenantID))
}

// List retrieves waitlist entries owned by the given tenant with filtering and pagination
func (r *PostgresWaitlistRepository) List(ctx context.Context, tenantID string, filter WaitlistFilter) ([]*domain.WaitlistEntry, int64, error) {
	whereClause := ` WHERE tenant_id = $1`
	args := []interface{}{tenantID}
	argIndex := 2

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, string(*filter.Status))
		argIndex++
	}
	if filter.ServiceID != nil {
		whereClause += fmt.Sprintf(" AND service_id = $%d", argIndex)
		args = append(args, *filter.ServiceID)
		argIndex++
	}
	if filter.SpecialistID != nil {
		whereClause += fmt.Sprintf(" AND specialist_id = $%d", argIndex)
		args = append(args, *filter.SpecialistID)
		argIndex++
	}
	if filter.DesiredDate != nil {
		whereClause += fmt.Sprintf(" AND desired_date = $%d", argIndex)
		args = append(args, *filter.DesiredDate)
		argIndex++
	}
	if filter.Search != nil {
		whereClause += fmt.Sprintf(" AND (client_name ILIKE $%d OR client_email ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM waitlist_entries` + whereClause
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + waitlistColumns + ` FROM waitlist_entries` + whereClause +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := make([]*domain.WaitlistEntry, 0)
	for rows.Next() {
		entry, err := scanWaitlistEntry(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}

	return entries, total, nil
}

// UpdateStatus sets the status of a waitlist entry owned by the given tenant
func (r *PostgresWaitlistRepository) UpdateStatus(ctx context.Context, tenantID, id string, status domain.WaitlistStatus) (bool, error) {
	query := `UPDATE waitlist_entries SET status = $3, updated_at = $4 WHERE id = $1 AND tenant_id = $2`
	result, err := r.db.Exec(ctx, query, id, tenantID, string(status), time.Now())
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// BulkUpdateStatus sets the status of the given entries that belong to the
// tenant, returning how many rows were actually modified. IDs belonging to
// other tenants simply do not match.
func (r *PostgresWaitlistRepository) BulkUpdateStatus(ctx context.Context, tenantID string, ids []string, status domain.WaitlistStatus) (int64, error) {
	query := `UPDATE waitlist_entries SET status = $3, updated_at = $4 WHERE id = ANY($1) AND tenant_id = $2`
	result, err := r.db.Exec(ctx, query, ids, tenantID, string(status), time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

// UpdateNotes replaces the notes of a waitlist entry owned by the given tenant
func (r *PostgresWaitlistRepository) UpdateNotes(ctx context.Context, tenantID, id, notes string) (bool, error) {
	query := `UPDATE waitlist_entries SET notes = $3, updated_at = $4 WHERE id = $1 AND tenant_id = $2`
	result, err := r.db.Exec(ctx, query, id, tenantID, nullStringOrValue(notes), time.Now())
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// CountsByStatus returns the tenant's per-status entry counts
func (r *PostgresWaitlistRepository) CountsByStatus(ctx context.Context, tenantID string) (map[domain.WaitlistStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM waitlist_entries WHERE tenant_id = $1 GROUP BY status`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.WaitlistStatus]int64)
	for _, status := range domain.WaitlistStatuses {
		counts[status] = 0
	}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[domain.WaitlistStatus(status)] = count
	}

	return counts, nil
}

func scanWaitlistEntry(row pgx.Row) (*domain.WaitlistEntry, error) {
	entry := &domain.WaitlistEntry{}
	var status string
	err := row.Scan(
		&entry.ID,
		&entry.TenantID,
		&entry.ClientName,
		&entry.ClientEmail,
		&entry.ClientPhone,
		&entry.ServiceID,
		&entry.SpecialistID,
		&entry.VariantName,
		&entry.DesiredDate,
		&entry.TimePreference,
		&status,
		&entry.Notes,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	entry.Status = domain.WaitlistStatus(status)
	return entry, nil
}
