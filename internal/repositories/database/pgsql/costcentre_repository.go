package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
	"github.com/gstbooks/gstbooks_backend/internal/models"
	"github.com/gstbooks/gstbooks_backend/internal/utils/mapping"
)

type PgxCostCentreRepository struct {
	BaseRepository
}

// newPgxCostCentreRepository creates a new repository for cost centre data.
func newPgxCostCentreRepository(pool *pgxpool.Pool) portsrepo.CostCentreRepositoryFacade {
	return &PgxCostCentreRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CostCentreRepositoryFacade = (*PgxCostCentreRepository)(nil)

const costCentreColumns = `cost_centre_id, tenant_id, name, description, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCostCentre(row pgx.Row) (models.CostCentre, error) {
	var m models.CostCentre
	err := row.Scan(
		&m.CostCentreID,
		&m.TenantID,
		&m.Name,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveCostCentre inserts one cost centre.
func (r *PgxCostCentreRepository) SaveCostCentre(ctx context.Context, cc domain.CostCentre) error {
	m := mapping.ToModelCostCentre(cc)
	query := `
		INSERT INTO cost_centres (` + costCentreColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CostCentreID, m.TenantID, m.Name, m.Description, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cost centre %s: %w", m.CostCentreID, err)
	}
	return nil
}

// FindCostCentreByID returns one cost centre or apperrors.ErrNotFound.
func (r *PgxCostCentreRepository) FindCostCentreByID(ctx context.Context, tenantID, costCentreID string) (*domain.CostCentre, error) {
	query := `SELECT ` + costCentreColumns + ` FROM cost_centres WHERE tenant_id = $1 AND cost_centre_id = $2;`
	m, err := scanCostCentre(r.Pool.QueryRow(ctx, query, tenantID, costCentreID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cost centre %s: %w", costCentreID, err)
	}
	cc := mapping.ToDomainCostCentre(m)
	return &cc, nil
}

// ListCostCentres returns all cost centres for the tenant ordered by name.
func (r *PgxCostCentreRepository) ListCostCentres(ctx context.Context, tenantID string) ([]domain.CostCentre, error) {
	query := `SELECT ` + costCentreColumns + ` FROM cost_centres WHERE tenant_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost centres: %w", err)
	}
	defer rows.Close()

	modelCentres := make([]models.CostCentre, 0)
	for rows.Next() {
		m, err := scanCostCentre(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cost centre row: %w", err)
		}
		modelCentres = append(modelCentres, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading cost centre rows: %w", err)
	}

	return mapping.ToDomainCostCentreSlice(modelCentres), nil
}

// UpdateCostCentre persists name/description/active changes.
func (r *PgxCostCentreRepository) UpdateCostCentre(ctx context.Context, cc domain.CostCentre) error {
	m := mapping.ToModelCostCentre(cc)
	query := `
		UPDATE cost_centres
		SET name = $3, description = $4, is_active = $5, last_updated_at = $6, last_updated_by = $7
		WHERE tenant_id = $1 AND cost_centre_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID, m.CostCentreID, m.Name, m.Description, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update cost centre %s: %w", m.CostCentreID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
