package model

import (
	"encoding/json"
	"time"
)

type User struct {
	ID          string    `json:"id"`
	Balance     int64     `json:"balance"`
	TotalStaked int64     `json:"total_staked"`
	TotalWon    int64     `json:"total_won"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Market struct {
	ID             string      `json:"id"`
	Question       string      `json:"question"`
	State          MarketState `json:"state"`
	YesPool        int64       `json:"yes_pool"`
	NoPool         int64       `json:"no_pool"`
	FeeBps         int         `json:"fee_bps"`
	PendingOutcome *Side       `json:"pending_outcome,omitempty"`
	Outcome        *Side       `json:"outcome,omitempty"`
	Halted         bool        `json:"halted"`
	HaltReason     *string     `json:"halt_reason,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	ResolvedAt     *time.Time  `json:"resolved_at,omitempty"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Pool returns the stake total on the given side.
func (m *Market) Pool(side Side) int64 {
	if side == SideYes {
		return m.YesPool
	}
	return m.NoPool
}

func (m *Market) TotalPot() int64 {
	return m.YesPool + m.NoPool
}

type Stake struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	MarketID  string     `json:"market_id"`
	Side      Side       `json:"side"`
	Amount    int64      `json:"amount"`
	Settled   bool       `json:"settled"`
	Payout    *int64     `json:"payout,omitempty"`
	Refunded  bool       `json:"refunded"`
	PlacedAt  time.Time  `json:"placed_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

type LedgerEntry struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	Delta        int64     `json:"delta"`
	Kind         EntryKind `json:"kind"`
	Reference    string    `json:"reference"`
	BalanceAfter int64     `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}

// Event is an append-only Event Log record.
type Event struct {
	ID                int64           `json:"id"`
	Type              EventType       `json:"type"`
	MarketID          string          `json:"market_id"`
	UserID            *string         `json:"user_id,omitempty"`
	StakeID           *string         `json:"stake_id,omitempty"`
	IdempotencyKey    *string         `json:"idempotency_key,omitempty"`
	ExternalSignature *string         `json:"external_signature,omitempty"`
	Payload           json.RawMessage `json:"payload"`
	CreatedAt         time.Time       `json:"created_at"`
}

type StakePlacedPayload struct {
	Side        Side  `json:"side"`
	Amount      int64 `json:"amount"`
	NewTotalYes int64 `json:"new_total_yes"`
	NewTotalNo  int64 `json:"new_total_no"`
}

// SettlementPayload is recorded on MARKET_RESOLVED and MARKET_VOIDED events.
type SettlementPayload struct {
	Outcome       *Side `json:"outcome,omitempty"`
	YesPool       int64 `json:"yes_pool"`
	NoPool        int64 `json:"no_pool"`
	TotalPot      int64 `json:"total_pot"`
	Fee           int64 `json:"fee"`
	Distributable int64 `json:"distributable"`
	WinningPool   int64 `json:"winning_pool"`
	Distributed   int64 `json:"distributed"`
	Refunded      int64 `json:"refunded"`
	Residue       int64 `json:"residue"`
	Winners       int   `json:"winners"`
	Settled       int   `json:"settled"`
}

type HaltPayload struct {
	Reason string `json:"reason"`
}

// ExternalEvent is an event observed on the external settlement substrate.
type ExternalEvent struct {
	Signature  string         `json:"signature"`
	Slot       int64          `json:"slot"`
	Type       EventType      `json:"type"`
	MarketID   string         `json:"market_id"`
	UserID     *string        `json:"user_id,omitempty"`
	Side       *Side          `json:"side,omitempty"`
	Amount     *int64         `json:"amount,omitempty"`
	Outcome    *Side          `json:"outcome,omitempty"`
	Status     ExternalStatus `json:"status"`
	Detail     *string        `json:"detail,omitempty"`
	ImportedAt time.Time      `json:"imported_at"`
}

// SettlementTotals aggregates the settled stakes of a market.
type SettlementTotals struct {
	Distributed int64 `json:"distributed"`
	Refunded    int64 `json:"refunded"`
	Winners     int   `json:"winners"`
	Settled     int   `json:"settled"`
	Open        int   `json:"open"`
}

type BalanceDrift struct {
	UserID    string `json:"user_id"`
	Balance   int64  `json:"balance"`
	LedgerSum int64  `json:"ledger_sum"`
}

type PoolDrift struct {
	MarketID string `json:"market_id"`
	YesPool  int64  `json:"yes_pool"`
	NoPool   int64  `json:"no_pool"`
	YesStake int64  `json:"yes_stake"`
	NoStake  int64  `json:"no_stake"`
}

type OperatorAlert struct {
	Severity AlertSeverity `json:"severity"`
	Kind     string        `json:"kind"`
	MarketID string        `json:"market_id,omitempty"`
	UserID   string        `json:"user_id,omitempty"`
	Message  string        `json:"message"`
}
