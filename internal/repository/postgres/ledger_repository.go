package postgres

import (
	"context"
	"errors"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.LedgerRepository = (*LedgerRepositoryImpl)(nil)

// LedgerRepositoryImpl is the PostgreSQL implementation of LedgerRepository
type LedgerRepositoryImpl struct {
	*TransactionManager
}

func NewLedgerRepository(pool *pgxpool.Pool) repository.LedgerRepository {
	return &LedgerRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const ledgerColumns = `id, user_id, delta, kind, reference, balance_after, created_at`

func scanLedgerEntry(row pgx.Row) (*model.LedgerEntry, error) {
	entry := &model.LedgerEntry{}
	err := row.Scan(&entry.ID, &entry.UserID, &entry.Delta, &entry.Kind, &entry.Reference, &entry.BalanceAfter, &entry.CreatedAt)
	return entry, err
}

// InsertEntry appends an entry unless (reference, kind) is already present
func (r *LedgerRepositoryImpl) InsertEntry(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) (bool, error) {
	query := `
        INSERT INTO ledger_entries (user_id, delta, kind, reference, balance_after)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT ON CONSTRAINT ledger_entries_reference_kind_key DO NOTHING
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, entry.UserID, entry.Delta, entry.Kind, entry.Reference, entry.BalanceAfter).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, storageErr("insert ledger entry", err)
	}
	return true, nil
}

// GetEntryByReference retrieves the entry for (reference, kind)
func (r *LedgerRepositoryImpl) GetEntryByReference(ctx context.Context, reference string, kind model.EntryKind, tx ...pgx.Tx) (*model.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE reference = $1 AND kind = $2`

	entry, err := scanLedgerEntry(r.getExecutor(tx...).QueryRow(ctx, query, reference, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrLedgerEntryNotFound
		}
		return nil, storageErr("get ledger entry", err)
	}
	return entry, nil
}

// ListEntriesByUser retrieves paginated entries for a user
func (r *LedgerRepositoryImpl) ListEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]*model.LedgerEntry, error) {
	query := `
        SELECT ` + ledgerColumns + `
        FROM ledger_entries WHERE user_id = $1
        ORDER BY id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, storageErr("query ledger entries", err)
	}
	defer rows.Close()

	entries := []*model.LedgerEntry{}
	for rows.Next() {
		entry, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, storageErr("scan ledger entry", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate ledger entries", err)
	}
	return entries, nil
}

// FindBalanceDrift lists users whose materialized balance differs from their ledger sum
func (r *LedgerRepositoryImpl) FindBalanceDrift(ctx context.Context, limit int) ([]*model.BalanceDrift, error) {
	query := `
        SELECT u.id, u.balance, COALESCE(SUM(l.delta), 0)::BIGINT AS ledger_sum
        FROM users u
        LEFT JOIN ledger_entries l ON l.user_id = u.id
        GROUP BY u.id, u.balance
        HAVING u.balance <> COALESCE(SUM(l.delta), 0)
        ORDER BY u.id
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, storageErr("query balance drift", err)
	}
	defer rows.Close()

	drifts := []*model.BalanceDrift{}
	for rows.Next() {
		d := &model.BalanceDrift{}
		if err := rows.Scan(&d.UserID, &d.Balance, &d.LedgerSum); err != nil {
			return nil, storageErr("scan balance drift", err)
		}
		drifts = append(drifts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate balance drift", err)
	}
	return drifts, nil
}
