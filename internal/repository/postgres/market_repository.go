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
var _ repository.MarketRepository = (*MarketRepositoryImpl)(nil)

// MarketRepositoryImpl is the PostgreSQL implementation of MarketRepository
type MarketRepositoryImpl struct {
	*TransactionManager
}

func NewMarketRepository(pool *pgxpool.Pool) repository.MarketRepository {
	return &MarketRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const marketColumns = `id, question, state, yes_pool, no_pool, fee_bps, pending_outcome, outcome, halted, halt_reason, created_at, resolved_at, updated_at`

func scanMarket(row pgx.Row) (*model.Market, error) {
	m := &model.Market{}
	err := row.Scan(&m.ID, &m.Question, &m.State, &m.YesPool, &m.NoPool, &m.FeeBps, &m.PendingOutcome, &m.Outcome,
		&m.Halted, &m.HaltReason, &m.CreatedAt, &m.ResolvedAt, &m.UpdatedAt)
	return m, err
}

func (r *MarketRepositoryImpl) scanOne(row pgx.Row, op string) (*model.Market, error) {
	m, err := scanMarket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMarketNotFound
		}
		return nil, storageErr(op, err)
	}
	return m, nil
}

func (r *MarketRepositoryImpl) scanMany(rows pgx.Rows, op string) ([]*model.Market, error) {
	defer rows.Close()

	markets := []*model.Market{}
	for rows.Next() {
		m, err := scanMarket(rows)
		if err != nil {
			return nil, storageErr(op, err)
		}
		markets = append(markets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return markets, nil
}

// CreateMarket inserts a new ACTIVE market with empty pools
func (r *MarketRepositoryImpl) CreateMarket(ctx context.Context, market *model.Market, tx pgx.Tx) error {
	query := `
        INSERT INTO markets (id, question, fee_bps)
        VALUES ($1, $2, $3)
        RETURNING ` + marketColumns

	created, err := scanMarket(r.getExecutor(tx).QueryRow(ctx, query, market.ID, market.Question, market.FeeBps))
	if err != nil {
		if _, ok := isCheckViolation(err); ok {
			return model.ErrInvalidFee
		}
		return storageErr("create market", err)
	}
	*market = *created
	return nil
}

// GetMarket retrieves a market without locking
func (r *MarketRepositoryImpl) GetMarket(ctx context.Context, marketID string, tx ...pgx.Tx) (*model.Market, error) {
	query := `SELECT ` + marketColumns + ` FROM markets WHERE id = $1`
	return r.scanOne(r.getExecutor(tx...).QueryRow(ctx, query, marketID), "get market")
}

// GetMarketForUpdate retrieves a market with row-level lock
func (r *MarketRepositoryImpl) GetMarketForUpdate(ctx context.Context, marketID string, tx pgx.Tx) (*model.Market, error) {
	query := `SELECT ` + marketColumns + ` FROM markets WHERE id = $1 FOR UPDATE`
	return r.scanOne(tx.QueryRow(ctx, query, marketID), "get market for update")
}

// ListMarkets retrieves paginated markets, newest first
func (r *MarketRepositoryImpl) ListMarkets(ctx context.Context, state *model.MarketState, limit, offset int) ([]*model.Market, error) {
	query := `
        SELECT ` + marketColumns + `
        FROM markets
        WHERE ($1::TEXT IS NULL OR state = $1)
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, state, limit, offset)
	if err != nil {
		return nil, storageErr("query markets", err)
	}
	return r.scanMany(rows, "scan markets")
}

// IncrementPool adds amount to one pool as a single atomic update. The state
// guard is evaluated on the locked row, so an increment never lands after a
// concurrent transition away from ACTIVE has committed.
func (r *MarketRepositoryImpl) IncrementPool(ctx context.Context, marketID string, side model.Side, amount int64, tx pgx.Tx) (*model.Market, error) {
	query := `
        UPDATE markets
        SET yes_pool = yes_pool + CASE WHEN $2 = 'YES' THEN $3::BIGINT ELSE 0 END,
            no_pool = no_pool + CASE WHEN $2 = 'NO' THEN $3::BIGINT ELSE 0 END,
            updated_at = NOW()
        WHERE id = $1 AND state = 'ACTIVE' AND NOT halted
        RETURNING ` + marketColumns

	m, err := scanMarket(tx.QueryRow(ctx, query, marketID, string(side), amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMarketNotActive
		}
		return nil, storageErr("increment pool", err)
	}
	return m, nil
}

// SetState moves a market to LOCKED, RESOLVING or VOIDING
func (r *MarketRepositoryImpl) SetState(ctx context.Context, marketID string, state model.MarketState, pendingOutcome *model.Side, tx pgx.Tx) (*model.Market, error) {
	query := `
        UPDATE markets
        SET state = $2, pending_outcome = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + marketColumns

	return r.scanOne(tx.QueryRow(ctx, query, marketID, state, pendingOutcome), "set market state")
}

// Finalize moves a settling market to RESOLVED or VOIDED
func (r *MarketRepositoryImpl) Finalize(ctx context.Context, marketID string, state model.MarketState, outcome *model.Side, tx pgx.Tx) (*model.Market, error) {
	query := `
        UPDATE markets
        SET state = $2, outcome = $3, pending_outcome = NULL, resolved_at = NOW(), updated_at = NOW()
        WHERE id = $1 AND state IN ('RESOLVING', 'VOIDING')
        RETURNING ` + marketColumns

	m, err := scanMarket(tx.QueryRow(ctx, query, marketID, state, outcome))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrMarketNotActive
		}
		return nil, storageErr("finalize market", err)
	}
	return m, nil
}

// SetHalted sets or clears the halt flag
func (r *MarketRepositoryImpl) SetHalted(ctx context.Context, marketID string, halted bool, reason *string, tx pgx.Tx) (*model.Market, error) {
	query := `
        UPDATE markets
        SET halted = $2, halt_reason = $3, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + marketColumns

	return r.scanOne(r.getExecutor(tx).QueryRow(ctx, query, marketID, halted, reason), "set market halted")
}

// ListSettling retrieves markets whose settlement has to be resumed
func (r *MarketRepositoryImpl) ListSettling(ctx context.Context, limit int) ([]*model.Market, error) {
	query := `
        SELECT ` + marketColumns + `
        FROM markets
        WHERE state IN ('RESOLVING', 'VOIDING') AND NOT halted
        ORDER BY updated_at
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, storageErr("query settling markets", err)
	}
	return r.scanMany(rows, "scan settling markets")
}

// FindPoolDrift lists markets whose pools differ from the sum of their non-refunded stakes
func (r *MarketRepositoryImpl) FindPoolDrift(ctx context.Context, limit int) ([]*model.PoolDrift, error) {
	query := `
        SELECT m.id, m.yes_pool, m.no_pool,
               COALESCE(SUM(s.amount) FILTER (WHERE s.side = 'YES'), 0)::BIGINT,
               COALESCE(SUM(s.amount) FILTER (WHERE s.side = 'NO'), 0)::BIGINT
        FROM markets m
        LEFT JOIN stakes s ON s.market_id = m.id AND NOT s.refunded
        WHERE m.state NOT IN ('VOIDING', 'VOIDED')
        GROUP BY m.id, m.yes_pool, m.no_pool
        HAVING m.yes_pool <> COALESCE(SUM(s.amount) FILTER (WHERE s.side = 'YES'), 0)
            OR m.no_pool <> COALESCE(SUM(s.amount) FILTER (WHERE s.side = 'NO'), 0)
        ORDER BY m.id
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, storageErr("query pool drift", err)
	}
	defer rows.Close()

	drifts := []*model.PoolDrift{}
	for rows.Next() {
		d := &model.PoolDrift{}
		if err := rows.Scan(&d.MarketID, &d.YesPool, &d.NoPool, &d.YesStake, &d.NoStake); err != nil {
			return nil, storageErr("scan pool drift", err)
		}
		drifts = append(drifts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate pool drift", err)
	}
	return drifts, nil
}
