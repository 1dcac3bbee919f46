package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstbooks/gstbooks_backend/internal/apperrors"
	"github.com/gstbooks/gstbooks_backend/internal/core/domain"
	portsrepo "github.com/gstbooks/gstbooks_backend/internal/core/ports/repositories"
	"github.com/gstbooks/gstbooks_backend/internal/models"
	"github.com/gstbooks/gstbooks_backend/internal/utils/mapping"
	"github.com/gstbooks/gstbooks_backend/internal/utils/pagination"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher and line data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

const voucherColumns = `voucher_id, tenant_id, voucher_date, narration, amount, customer_id, vendor_id, reverses, reversed_by, status, created_at, created_by, last_updated_at, last_updated_by`

const insertVoucherQuery = `
	INSERT INTO vouchers (` + voucherColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

const lineColumns = `line_id, voucher_id, account_code, debit, credit, cost_centre, narration, created_at, created_by, last_updated_at, last_updated_by`

const insertLineQuery = `
	INSERT INTO voucher_lines (` + lineColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.TenantID,
		&m.Date,
		&m.Narration,
		&m.Amount,
		&m.CustomerID,
		&m.VendorID,
		&m.Reverses,
		&m.ReversedBy,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanLine(row pgx.Row) (models.VoucherLine, error) {
	var m models.VoucherLine
	err := row.Scan(
		&m.LineID,
		&m.VoucherID,
		&m.Account,
		&m.Debit,
		&m.Credit,
		&m.CostCentre,
		&m.Narration,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// insertVoucherTx inserts the header and batches all line inserts inside tx.
func (r *PgxVoucherRepository) insertVoucherTx(ctx context.Context, tx pgx.Tx, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	_, err := tx.Exec(ctx, insertVoucherQuery,
		m.VoucherID, m.TenantID, m.Date, m.Narration, m.Amount,
		m.CustomerID, m.VendorID, m.Reverses, m.ReversedBy, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert voucher %s: %w", m.VoucherID, err)
	}

	batch := &pgx.Batch{}
	for _, line := range voucher.Lines {
		ml := mapping.ToModelVoucherLine(line)
		batch.Queue(insertLineQuery,
			ml.LineID, ml.VoucherID, ml.Account, ml.Debit, ml.Credit,
			ml.CostCentre, ml.Narration,
			ml.CreatedAt, ml.CreatedBy, ml.LastUpdatedAt, ml.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range voucher.Lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert voucher lines for %s: %w", m.VoucherID, err)
		}
	}
	return results.Close()
}

// SaveVoucher inserts the voucher with all its lines atomically.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertVoucherTx(ctx, tx, voucher); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveReversal inserts the reversing voucher and flips the original to
// REVERSED with its back-link, in one transaction.
func (r *PgxVoucherRepository) SaveReversal(ctx context.Context, reversal domain.Voucher, originalVoucherID string, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertVoucherTx(ctx, tx, reversal); err != nil {
		return err
	}

	query := `
		UPDATE vouchers
		SET status = $3, reversed_by = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tenant_id = $1 AND voucher_id = $2 AND status = $7;
	`
	tag, err := tx.Exec(ctx, query,
		reversal.TenantID, originalVoucherID,
		models.VoucherStatus(domain.Reversed), reversal.VoucherID,
		updatedAt, updatedBy,
		models.VoucherStatus(domain.Posted),
	)
	if err != nil {
		return fmt.Errorf("failed to mark voucher %s reversed: %w", originalVoucherID, err)
	}
	if tag.RowsAffected() == 0 {
		// Lost a race with a concurrent reversal or the voucher vanished.
		return fmt.Errorf("%w: voucher %s is not in POSTED status", apperrors.ErrConflict, originalVoucherID)
	}

	return r.Commit(ctx, tx)
}

// FindVoucherByID fetches one voucher with its lines.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, tenantID, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE tenant_id = $1 AND voucher_id = $2;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, tenantID, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}

	voucher := mapping.ToDomainVoucher(m)

	lineQuery := `SELECT ` + lineColumns + ` FROM voucher_lines WHERE voucher_id = $1 ORDER BY created_at, line_id;`
	rows, err := r.Pool.Query(ctx, lineQuery, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for voucher %s: %w", voucherID, err)
	}
	defer rows.Close()

	modelLines := make([]models.VoucherLine, 0)
	for rows.Next() {
		ml, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voucher line: %w", err)
		}
		modelLines = append(modelLines, ml)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading voucher line rows: %w", err)
	}

	voucher.Lines = mapping.ToDomainVoucherLineSlice(modelLines)
	return &voucher, nil
}

// ListVouchers returns one keyset page ordered by (voucher_date, created_at)
// descending, lines populated, plus the token for the next page.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, tenantID string, q portsrepo.ListVouchersQuery) ([]domain.Voucher, *string, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	// One extra row decides whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + voucherColumns + ` FROM vouchers`
	filterClause := `WHERE tenant_id = $1`
	if !q.IncludeReversals {
		filterClause += ` AND status != 'REVERSED' AND reverses IS NULL AND reversed_by IS NULL`
	}
	orderByClause := `ORDER BY voucher_date DESC, created_at DESC`

	args := []interface{}{tenantID}
	if q.KindPrefix != "" {
		args = append(args, q.KindPrefix+"%")
		filterClause += ` AND voucher_id LIKE $` + strconv.Itoa(len(args))
	}
	if q.From != nil {
		args = append(args, *q.From)
		filterClause += ` AND voucher_date >= $` + strconv.Itoa(len(args))
	}
	if q.To != nil {
		args = append(args, *q.To)
		filterClause += ` AND voucher_date <= $` + strconv.Itoa(len(args))
	}

	var query string
	if q.NextToken != nil && *q.NextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*q.NextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		cursorClause := `AND (voucher_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
		query = baseQuery + " " + filterClause + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	} else {
		query = baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	}
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query vouchers: %w", err)
	}
	defer rows.Close()

	modelVouchers := make([]models.Voucher, 0, fetchLimit)
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		modelVouchers = append(modelVouchers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed reading voucher rows: %w", err)
	}

	var newNextToken *string
	if len(modelVouchers) > limit {
		modelVouchers = modelVouchers[:limit]
		last := modelVouchers[len(modelVouchers)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		newNextToken = &token
	}

	vouchers := make([]domain.Voucher, len(modelVouchers))
	voucherIdx := make(map[string]int, len(modelVouchers))
	ids := make([]string, len(modelVouchers))
	for i, m := range modelVouchers {
		vouchers[i] = mapping.ToDomainVoucher(m)
		voucherIdx[m.VoucherID] = i
		ids[i] = m.VoucherID
	}

	if err := r.attachLines(ctx, vouchers, voucherIdx, ids); err != nil {
		return nil, nil, err
	}

	return vouchers, newNextToken, nil
}

// ListAllVouchers returns the tenant's full voucher snapshot with lines.
// Reports fold over this; nothing is cached between calls.
func (r *PgxVoucherRepository) ListAllVouchers(ctx context.Context, tenantID string) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE tenant_id = $1 ORDER BY voucher_date, created_at;`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query voucher snapshot: %w", err)
	}
	defer rows.Close()

	vouchers := make([]domain.Voucher, 0)
	voucherIdx := make(map[string]int)
	ids := make([]string, 0)
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		voucherIdx[m.VoucherID] = len(vouchers)
		ids = append(ids, m.VoucherID)
		vouchers = append(vouchers, mapping.ToDomainVoucher(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading voucher rows: %w", err)
	}

	if err := r.attachLines(ctx, vouchers, voucherIdx, ids); err != nil {
		return nil, err
	}
	return vouchers, nil
}

// attachLines fetches lines for the given voucher IDs in one query and
// groups them onto their vouchers.
func (r *PgxVoucherRepository) attachLines(ctx context.Context, vouchers []domain.Voucher, voucherIdx map[string]int, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	query := `SELECT ` + lineColumns + ` FROM voucher_lines WHERE voucher_id = ANY($1) ORDER BY created_at, line_id;`
	rows, err := r.Pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query voucher lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ml, err := scanLine(rows)
		if err != nil {
			return fmt.Errorf("failed to scan voucher line: %w", err)
		}
		if idx, ok := voucherIdx[ml.VoucherID]; ok {
			vouchers[idx].Lines = append(vouchers[idx].Lines, mapping.ToDomainVoucherLine(ml))
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed reading voucher line rows: %w", err)
	}
	return nil
}

// UpdateVoucher persists header changes (narration, date).
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	m := mapping.ToModelVoucher(voucher)
	query := `
		UPDATE vouchers
		SET voucher_date = $3, narration = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tenant_id = $1 AND voucher_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID, m.VoucherID, m.Date, m.Narration, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update voucher %s: %w", m.VoucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
