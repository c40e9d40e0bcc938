package service

import (
	"context"
	"parimutuel-engine/internal/model"
	"time"
)

// LedgerService is the Ledger Store: balances and their audit trail
type LedgerService interface {
	// Deposit credits a confirmed external deposit, idempotent on the deposit id
	Deposit(ctx context.Context, req *model.DepositRequest, userID string) (*model.LedgerResponse, error)
	// Credit applies a DEPOSIT, PAYOUT_CREDIT or REFUND at most once per (reference, kind)
	Credit(ctx context.Context, userID string, amount int64, reference string, kind model.EntryKind) (*model.LedgerResponse, error)
	// Debit applies a STAKE_DEBIT at most once per reference
	Debit(ctx context.Context, userID string, amount int64, reference string) (*model.LedgerResponse, error)
	GetBalance(ctx context.Context, userID string) (*model.BalanceResponse, error)
	ListEntries(ctx context.Context, userID string, limit, offset int) ([]*model.LedgerEntry, error)
}

// MarketService is the Market Registry plus the read/display interface
type MarketService interface {
	CreateMarket(ctx context.Context, req *model.CreateMarketRequest) (*model.Market, error)
	GetMarket(ctx context.Context, marketID string) (*model.Market, error)
	ListMarkets(ctx context.Context, state *model.MarketState, limit, offset int) ([]*model.Market, error)
	LockMarket(ctx context.Context, marketID string) (*model.Market, error)
	ClearHalt(ctx context.Context, marketID string) (*model.Market, error)
	// QuoteOdds never mutates pools
	QuoteOdds(ctx context.Context, marketID string, side model.Side, amount int64) (*model.QuoteResponse, error)
	ListEvents(ctx context.Context, marketID string, limit, offset int) ([]*model.Event, error)
}

// StakeService is the Stake Engine
type StakeService interface {
	PlaceStake(ctx context.Context, req *model.PlaceStakeRequest, userID string) (*model.StakeResponse, error)
	ListStakesByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Stake, error)
}

// ResolutionService is the Resolution Engine
type ResolutionService interface {
	ResolveMarket(ctx context.Context, marketID string, outcome model.Side) (*model.ResolutionResponse, error)
	VoidMarket(ctx context.Context, marketID string) (*model.ResolutionResponse, error)
	// RecoverPending resumes markets left in RESOLVING or VOIDING
	RecoverPending(ctx context.Context) error
}

// ReconciliationService imports events observed on the external settlement substrate
type ReconciliationService interface {
	ImportExternalEvent(ctx context.Context, req *model.ExternalEventRequest) (*model.ImportResponse, error)
}

// AuditService checks ledger and pool conservation
type AuditService interface {
	RunAudit(ctx context.Context) (*model.AuditReport, error)
}

// MarketObserver is told about every committed market change
type MarketObserver interface {
	MarketChanged(ctx context.Context, market *model.Market, event model.EventType)
}

// OperatorAlerter surfaces faults that need a human
type OperatorAlerter interface {
	Alert(ctx context.Context, alert model.OperatorAlert)
}

// Locker hands out short-lived exclusive locks
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error)
}
