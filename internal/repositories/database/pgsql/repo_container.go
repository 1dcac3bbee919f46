package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VoucherRepo:    newPgxVoucherRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		CostCentreRepo: newPgxCostCentreRepository(dbPool),
		UserRepo:       newPgxUserRepository(dbPool),
	}
}
