package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxManager abstracts transaction lifecycle for repositories that support
// multi-statement atomic writes.
type TxManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
