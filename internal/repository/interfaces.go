package repository

import (
	"context"
	"parimutuel-engine/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository holds materialized balances and lifetime stats
type UserRepository interface {
	// EnsureUser creates the user with a zero balance if it does not exist yet
	EnsureUser(ctx context.Context, userID string, tx pgx.Tx) error

	// GetUserForUpdate retrieves a user with row-level lock (must be in transaction)
	GetUserForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.User, error)

	// GetUser retrieves a user (read-only)
	GetUser(ctx context.Context, userID string, tx ...pgx.Tx) (*model.User, error)

	// AdjustBalance adds delta to the balance and returns the new balance
	AdjustBalance(ctx context.Context, userID string, delta int64, tx pgx.Tx) (int64, error)

	// AddStats increments lifetime totals
	AddStats(ctx context.Context, userID string, staked, won int64, tx pgx.Tx) error
}

// LedgerRepository is the append-only balance audit trail
type LedgerRepository interface {
	// InsertEntry appends an entry; it reports false when an entry with the same
	// (reference, kind) already exists and nothing was written
	InsertEntry(ctx context.Context, entry *model.LedgerEntry, tx pgx.Tx) (bool, error)

	// GetEntryByReference retrieves the entry for (reference, kind)
	GetEntryByReference(ctx context.Context, reference string, kind model.EntryKind, tx ...pgx.Tx) (*model.LedgerEntry, error)

	// ListEntriesByUser retrieves paginated entries for a user, newest first
	ListEntriesByUser(ctx context.Context, userID string, limit, offset int) ([]*model.LedgerEntry, error)

	// FindBalanceDrift lists users whose balance differs from the sum of their entries
	FindBalanceDrift(ctx context.Context, limit int) ([]*model.BalanceDrift, error)
}

// MarketRepository is the Market Registry
type MarketRepository interface {
	// CreateMarket inserts a new market
	CreateMarket(ctx context.Context, market *model.Market, tx pgx.Tx) error

	// GetMarket retrieves a market (read-only)
	GetMarket(ctx context.Context, marketID string, tx ...pgx.Tx) (*model.Market, error)

	// GetMarketForUpdate retrieves a market with row-level lock (must be in transaction)
	GetMarketForUpdate(ctx context.Context, marketID string, tx pgx.Tx) (*model.Market, error)

	// ListMarkets retrieves paginated markets, optionally filtered by state
	ListMarkets(ctx context.Context, state *model.MarketState, limit, offset int) ([]*model.Market, error)

	// IncrementPool atomically adds amount to one pool of an ACTIVE, non-halted market
	IncrementPool(ctx context.Context, marketID string, side model.Side, amount int64, tx pgx.Tx) (*model.Market, error)

	// SetState moves a market to a non-final state, recording the pending outcome
	SetState(ctx context.Context, marketID string, state model.MarketState, pendingOutcome *model.Side, tx pgx.Tx) (*model.Market, error)

	// Finalize moves a settling market to its terminal state
	Finalize(ctx context.Context, marketID string, state model.MarketState, outcome *model.Side, tx pgx.Tx) (*model.Market, error)

	// SetHalted sets or clears the operator halt flag
	SetHalted(ctx context.Context, marketID string, halted bool, reason *string, tx pgx.Tx) (*model.Market, error)

	// ListSettling retrieves non-halted markets left in RESOLVING or VOIDING
	ListSettling(ctx context.Context, limit int) ([]*model.Market, error)

	// FindPoolDrift lists markets whose pools differ from their non-refunded stakes
	FindPoolDrift(ctx context.Context, limit int) ([]*model.PoolDrift, error)
}

// StakeRepository holds individual bets
type StakeRepository interface {
	// InsertStake creates a stake; a second open stake for the same (user, market) fails
	InsertStake(ctx context.Context, stake *model.Stake, tx pgx.Tx) error

	// GetStake retrieves a stake by id
	GetStake(ctx context.Context, stakeID string, tx ...pgx.Tx) (*model.Stake, error)

	// GetStakeForUpdate retrieves a stake with row-level lock (must be in transaction)
	GetStakeForUpdate(ctx context.Context, stakeID string, tx pgx.Tx) (*model.Stake, error)

	// HasOpenStake reports whether the user holds an unsettled stake on the market
	HasOpenStake(ctx context.Context, userID, marketID string, tx pgx.Tx) (bool, error)

	// ListOpenStakes retrieves every unsettled stake of a market
	ListOpenStakes(ctx context.Context, marketID string) ([]*model.Stake, error)

	// ListStakesByUser retrieves paginated stakes for a user, newest first
	ListStakesByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Stake, error)

	// MarkSettled sets settled and payout once; it reports false if the stake was already settled
	MarkSettled(ctx context.Context, stakeID string, payout int64, refunded bool, tx pgx.Tx) (bool, error)

	// GetSettlementTotals aggregates settled and open stakes of a market
	GetSettlementTotals(ctx context.Context, marketID string, tx ...pgx.Tx) (*model.SettlementTotals, error)
}

// EventRepository is the append-only Event Log and the external import table
type EventRepository interface {
	// AppendEvent appends an event; duplicate idempotency keys or signatures fail
	AppendEvent(ctx context.Context, event *model.Event, tx pgx.Tx) error

	// GetEventByIdempotencyKey retrieves the event recorded for a client idempotency key
	GetEventByIdempotencyKey(ctx context.Context, key string, tx ...pgx.Tx) (*model.Event, error)

	// GetEventBySignature retrieves the event recorded for an external transaction signature
	GetEventBySignature(ctx context.Context, signature string, tx ...pgx.Tx) (*model.Event, error)

	// ListEventsByMarket retrieves paginated events of a market, newest first
	ListEventsByMarket(ctx context.Context, marketID string, limit, offset int) ([]*model.Event, error)

	// InsertExternalEvent records an imported external event; it reports false if the signature was seen before
	InsertExternalEvent(ctx context.Context, event *model.ExternalEvent, tx pgx.Tx) (bool, error)

	// GetExternalEvent retrieves an imported external event by signature
	GetExternalEvent(ctx context.Context, signature string, tx ...pgx.Tx) (*model.ExternalEvent, error)
}
