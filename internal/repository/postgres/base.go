package postgres

import (
	"context"
	"errors"
	"fmt"
	"parimutuel-engine/internal/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// settlementTxOptions is used for every unit of work. Row locks taken with
// FOR UPDATE give the serialization the ledger needs, so read committed is enough.
var settlementTxOptions = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

// TransactionManager runs units of work against the pool and is embedded by every repository
type TransactionManager struct {
	pool *pgxpool.Pool
}

func NewTransactionManager(pool *pgxpool.Pool) *TransactionManager {
	return &TransactionManager{pool: pool}
}

// WithTransaction commits when fn returns nil and rolls back otherwise.
// Begin and commit failures are reported as ErrStorageFailure.
func (m *TransactionManager) WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := m.pool.BeginTx(ctx, settlementTxOptions)
	if err != nil {
		return storageErr("begin transaction", err)
	}

	if fnErr := fn(tx); fnErr != nil {
		_ = tx.Rollback(ctx)
		return fnErr
	}

	if err := tx.Commit(ctx); err != nil {
		return storageErr("commit transaction", err)
	}
	return nil
}

// executor is satisfied by both pgx.Tx and *pgxpool.Pool
type executor interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// getExecutor prefers the caller's transaction and falls back to the pool
func (m *TransactionManager) getExecutor(tx ...pgx.Tx) executor {
	for _, t := range tx {
		if t != nil {
			return t
		}
	}
	return m.pool
}

func storageErr(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, model.ErrStorageFailure, err)
}

// pgConstraint reports the violated constraint when err carries the given SQLSTATE
func pgConstraint(err error, sqlState string) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != sqlState {
		return "", false
	}
	return pgErr.ConstraintName, true
}

func isUniqueViolation(err error) (string, bool) {
	return pgConstraint(err, pgerrcode.UniqueViolation)
}

func isCheckViolation(err error) (string, bool) {
	return pgConstraint(err, pgerrcode.CheckViolation)
}
