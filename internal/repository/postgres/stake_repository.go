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
var _ repository.StakeRepository = (*StakeRepositoryImpl)(nil)

const openStakeIndex = "stakes_one_open_per_user_market"

// StakeRepositoryImpl is the PostgreSQL implementation of StakeRepository
type StakeRepositoryImpl struct {
	*TransactionManager
}

func NewStakeRepository(pool *pgxpool.Pool) repository.StakeRepository {
	return &StakeRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const stakeColumns = `id, user_id, market_id, side, amount, settled, payout, refunded, placed_at, settled_at`

func scanStake(row pgx.Row) (*model.Stake, error) {
	s := &model.Stake{}
	err := row.Scan(&s.ID, &s.UserID, &s.MarketID, &s.Side, &s.Amount, &s.Settled, &s.Payout, &s.Refunded, &s.PlacedAt, &s.SettledAt)
	return s, err
}

func scanStakes(rows pgx.Rows, op string) ([]*model.Stake, error) {
	defer rows.Close()

	stakes := []*model.Stake{}
	for rows.Next() {
		s, err := scanStake(rows)
		if err != nil {
			return nil, storageErr(op, err)
		}
		stakes = append(stakes, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return stakes, nil
}

// InsertStake creates an unsettled stake
func (r *StakeRepositoryImpl) InsertStake(ctx context.Context, stake *model.Stake, tx pgx.Tx) error {
	query := `
        INSERT INTO stakes (id, user_id, market_id, side, amount)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING placed_at`

	err := tx.QueryRow(ctx, query, stake.ID, stake.UserID, stake.MarketID, stake.Side, stake.Amount).Scan(&stake.PlacedAt)
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok && constraint == openStakeIndex {
			return model.ErrDuplicateStake
		}
		if _, ok := isCheckViolation(err); ok {
			return model.ErrInvalidStake
		}
		return storageErr("insert stake", err)
	}
	stake.Settled = false
	stake.Payout = nil
	return nil
}

// GetStake retrieves a stake by id
func (r *StakeRepositoryImpl) GetStake(ctx context.Context, stakeID string, tx ...pgx.Tx) (*model.Stake, error) {
	query := `SELECT ` + stakeColumns + ` FROM stakes WHERE id = $1`

	s, err := scanStake(r.getExecutor(tx...).QueryRow(ctx, query, stakeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrStakeNotFound
		}
		return nil, storageErr("get stake", err)
	}
	return s, nil
}

// GetStakeForUpdate retrieves a stake with row-level lock
func (r *StakeRepositoryImpl) GetStakeForUpdate(ctx context.Context, stakeID string, tx pgx.Tx) (*model.Stake, error) {
	query := `SELECT ` + stakeColumns + ` FROM stakes WHERE id = $1 FOR UPDATE`

	s, err := scanStake(tx.QueryRow(ctx, query, stakeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrStakeNotFound
		}
		return nil, storageErr("get stake for update", err)
	}
	return s, nil
}

// HasOpenStake reports whether an unsettled stake exists for (user, market)
func (r *StakeRepositoryImpl) HasOpenStake(ctx context.Context, userID, marketID string, tx pgx.Tx) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM stakes WHERE user_id = $1 AND market_id = $2 AND NOT settled)`

	var exists bool
	if err := r.getExecutor(tx).QueryRow(ctx, query, userID, marketID).Scan(&exists); err != nil {
		return false, storageErr("check open stake", err)
	}
	return exists, nil
}

// ListOpenStakes retrieves every unsettled stake of a market in placement order
func (r *StakeRepositoryImpl) ListOpenStakes(ctx context.Context, marketID string) ([]*model.Stake, error) {
	query := `
        SELECT ` + stakeColumns + `
        FROM stakes WHERE market_id = $1 AND NOT settled
        ORDER BY placed_at, id`

	rows, err := r.pool.Query(ctx, query, marketID)
	if err != nil {
		return nil, storageErr("query open stakes", err)
	}
	return scanStakes(rows, "scan open stakes")
}

// ListStakesByUser retrieves paginated stakes for a user
func (r *StakeRepositoryImpl) ListStakesByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Stake, error) {
	query := `
        SELECT ` + stakeColumns + `
        FROM stakes WHERE user_id = $1
        ORDER BY placed_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, storageErr("query user stakes", err)
	}
	return scanStakes(rows, "scan user stakes")
}

// MarkSettled performs the single settled false->true transition
func (r *StakeRepositoryImpl) MarkSettled(ctx context.Context, stakeID string, payout int64, refunded bool, tx pgx.Tx) (bool, error) {
	query := `
        UPDATE stakes
        SET settled = TRUE, payout = $2, refunded = $3, settled_at = NOW()
        WHERE id = $1 AND NOT settled`

	result, err := tx.Exec(ctx, query, stakeID, payout, refunded)
	if err != nil {
		return false, storageErr("mark stake settled", err)
	}
	return result.RowsAffected() == 1, nil
}

// GetSettlementTotals aggregates the stakes of a market
func (r *StakeRepositoryImpl) GetSettlementTotals(ctx context.Context, marketID string, tx ...pgx.Tx) (*model.SettlementTotals, error) {
	query := `
        SELECT COALESCE(SUM(payout) FILTER (WHERE settled AND NOT refunded), 0)::BIGINT,
               COALESCE(SUM(amount) FILTER (WHERE refunded), 0)::BIGINT,
               COUNT(*) FILTER (WHERE settled AND NOT refunded AND payout > 0),
               COUNT(*) FILTER (WHERE settled),
               COUNT(*) FILTER (WHERE NOT settled)
        FROM stakes WHERE market_id = $1`

	totals := &model.SettlementTotals{}
	err := r.getExecutor(tx...).QueryRow(ctx, query, marketID).
		Scan(&totals.Distributed, &totals.Refunded, &totals.Winners, &totals.Settled, &totals.Open)
	if err != nil {
		return nil, storageErr("get settlement totals", err)
	}
	return totals, nil
}
