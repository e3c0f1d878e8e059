package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/elitebooker/elitebooker-backend/internal/domain"
)

// TenantProvisioner persists a new salon together with its first admin
// account. Both rows commit together; a half-provisioned salon never exists.
type TenantProvisioner interface {
	ProvisionTenant(ctx context.Context, salon *domain.Salon, admin *domain.AdminAccount) error
}

// PostgresProvisioner implements TenantProvisioner on a pgx pool transaction
type PostgresProvisioner struct {
	pool *pgxpool.Pool
}

// NewPostgresProvisioner creates a new PostgresProvisioner
func NewPostgresProvisioner(pool *pgxpool.Pool) *PostgresProvisioner {
	return &PostgresProvisioner{pool: pool}
}

func (p *PostgresProvisioner) ProvisionTenant(ctx context.Context, salon *domain.Salon, admin *domain.AdminAccount) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := NewPostgresSalonRepository(tx).Create(ctx, salon); err != nil {
		return err
	}
	if err := NewPostgresAdminRepository(tx).Create(ctx, admin); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
