package model

type CreateMarketRequest struct {
	Question string `json:"question" binding:"required,min=3,max=500" example:"Will it rain in Nairobi tomorrow?"`
	FeeBps   *int   `json:"fee_bps" example:"200"`
}

type PlaceStakeRequest struct {
	MarketID          string `json:"market_id" binding:"required" example:"2b1f0f0e-6f3c-4d43-9a53-2b0d7c1e8c11"`
	Side              string `json:"side" example:"YES" enums:"YES,NO"`
	Amount            int64  `json:"amount" example:"100"`
	IdempotencyKey    string `json:"idempotency_key,omitempty" binding:"omitempty,max=128" example:"550e8400-e29b-41d4-a716-446655440000"`
	ExternalSignature string `json:"external_signature,omitempty" binding:"omitempty,max=128"`
}

type StakeResponse struct {
	Status  string  `json:"status" example:"success"`
	Stake   *Stake  `json:"stake"`
	Market  *Market `json:"market,omitempty"`
	Balance int64   `json:"balance" example:"900"`
	Message string  `json:"message,omitempty" example:"Stake placed successfully"`
}

type ResolveMarketRequest struct {
	Outcome string `json:"outcome" binding:"required" example:"YES" enums:"YES,NO"`
}

type ResolutionResponse struct {
	Status     string             `json:"status" example:"resolved"`
	Market     *Market            `json:"market"`
	Settlement *SettlementPayload `json:"settlement,omitempty"`
}

type DepositRequest struct {
	DepositID string `json:"deposit_id" binding:"required,max=128" example:"mpesa-QJK81HX2"`
	Amount    int64  `json:"amount" example:"1000"`
}

type LedgerResponse struct {
	Status  string       `json:"status" example:"success"`
	Entry   *LedgerEntry `json:"entry"`
	Balance int64        `json:"balance" example:"1000"`
}

type BalanceResponse struct {
	UserID      string `json:"user_id" example:"user-1"`
	Balance     int64  `json:"balance" example:"1000"`
	TotalStaked int64  `json:"total_staked" example:"300"`
	TotalWon    int64  `json:"total_won" example:"380"`
}

type QuoteResponse struct {
	MarketID              string `json:"market_id"`
	Side                  Side   `json:"side" example:"YES"`
	Amount                int64  `json:"amount" example:"100"`
	YesPool               int64  `json:"yes_pool" example:"100"`
	NoPool                int64  `json:"no_pool" example:"300"`
	FeeBps                int    `json:"fee_bps" example:"500"`
	YesProbability        string `json:"yes_probability" example:"0.2500"`
	NoProbability         string `json:"no_probability" example:"0.7500"`
	CurrentMultiplier     string `json:"current_multiplier" example:"3.8000"`
	PotentialPayout       int64  `json:"potential_payout" example:"237"`
	PotentialMultiplier   string `json:"potential_multiplier" example:"2.3700"`
	ProbabilityAfterStake string `json:"probability_after_stake" example:"0.4000"`
}

type ExternalEventRequest struct {
	Signature string `json:"signature" binding:"required,max=128" example:"5h3kY...sig"`
	Slot      int64  `json:"slot" example:"281736112"`
	Type      string `json:"type" binding:"required" example:"STAKE_PLACED" enums:"STAKE_PLACED,MARKET_RESOLVED"`
	MarketID  string `json:"market_id" binding:"required"`
	UserID    string `json:"user_id,omitempty"`
	Side      string `json:"side,omitempty" enums:"YES,NO"`
	Amount    *int64 `json:"amount,omitempty"`
	Outcome   string `json:"outcome,omitempty" enums:"YES,NO"`
}

type ImportResponse struct {
	Status string         `json:"status" example:"matched"`
	Event  *ExternalEvent `json:"event"`
}

type AuditReport struct {
	BalanceDrifts []*BalanceDrift `json:"balance_drifts"`
	PoolDrifts    []*PoolDrift    `json:"pool_drifts"`
}

// Clean reports whether the audit found no drift.
func (r *AuditReport) Clean() bool {
	return len(r.BalanceDrifts) == 0 && len(r.PoolDrifts) == 0
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}

type MarketListResponse struct {
	Markets []*Market `json:"markets"`
	Total   int       `json:"total"`
	Limit   int       `json:"limit"`
	Offset  int       `json:"offset"`
}

type StakeListResponse struct {
	Stakes []*Stake `json:"stakes"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}

type LedgerListResponse struct {
	Entries []*LedgerEntry `json:"entries"`
	Total   int            `json:"total"`
	Limit   int            `json:"limit"`
	Offset  int            `json:"offset"`
}

type EventListResponse struct {
	Events []*Event `json:"events"`
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
}
