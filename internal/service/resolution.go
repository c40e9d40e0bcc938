package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"parimutuel-engine/internal/metrics"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/odds"
	"parimutuel-engine/internal/repository"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	statusResolved = "resolved"
	statusVoided   = "voided"
	statusResumed  = "resumed"
)

var errFinalizedElsewhere = errors.New("market finalized by another settlement")

// ResolutionSettings tunes locking and crash recovery
type ResolutionSettings struct {
	LockTTL           time.Duration
	RecoveryBatchSize int
}

type ResolutionServiceImpl struct {
	marketRepo repository.MarketRepository
	stakeRepo  repository.StakeRepository
	eventRepo  repository.EventRepository
	ledger     ledgerWriter
	dbManager  repository.DBManager
	observer   MarketObserver
	alerter    OperatorAlerter
	locker     Locker
	settings   ResolutionSettings
	logger     zerolog.Logger
}

// NewResolutionService builds the resolution engine. locker may be nil, in
// which case the row lock on the market is the only serialization.
func NewResolutionService(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	marketRepo repository.MarketRepository,
	stakeRepo repository.StakeRepository,
	eventRepo repository.EventRepository,
	dbManager repository.DBManager,
	observer MarketObserver,
	alerter OperatorAlerter,
	locker Locker,
	settings ResolutionSettings,
	logger zerolog.Logger,
) ResolutionService {
	return &ResolutionServiceImpl{
		marketRepo: marketRepo,
		stakeRepo:  stakeRepo,
		eventRepo:  eventRepo,
		ledger:     ledgerWriter{userRepo: userRepo, ledgerRepo: ledgerRepo},
		dbManager:  dbManager,
		observer:   observer,
		alerter:    alerter,
		locker:     locker,
		settings:   settings,
		logger:     logger,
	}
}

// ResolveMarket declares the outcome of a market and pays every winning stake
// exactly once. Losing stakes settle with payout zero.
func (s *ResolutionServiceImpl) ResolveMarket(ctx context.Context, marketID string, outcome model.Side) (*model.ResolutionResponse, error) {
	if outcome != model.SideYes && outcome != model.SideNo {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidOutcome, outcome)
	}
	return s.run(ctx, marketID, model.MarketResolving, &outcome)
}

// VoidMarket cancels a market and refunds every open stake
func (s *ResolutionServiceImpl) VoidMarket(ctx context.Context, marketID string) (*model.ResolutionResponse, error) {
	return s.run(ctx, marketID, model.MarketVoiding, nil)
}

// RecoverPending resumes markets a crash left in RESOLVING or VOIDING.
// Stakes already settled are skipped and credits are deduplicated by
// reference, so resuming never pays twice.
func (s *ResolutionServiceImpl) RecoverPending(ctx context.Context) error {
	markets, err := s.marketRepo.ListSettling(ctx, s.settings.RecoveryBatchSize)
	if err != nil {
		return fmt.Errorf("list settling markets: %w", err)
	}

	if len(markets) == 0 {
		s.logger.Debug().Msg("no markets pending settlement")
		return nil
	}

	var recovered int
	for _, m := range markets {
		// Stop quickly on shutdown
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, err := s.run(ctx, m.ID, m.State, m.PendingOutcome)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("market_id", m.ID).
				Str("state", m.State.String()).
				Msg("failed to resume settlement")
			continue
		}
		recovered++
	}

	s.logger.Info().
		Int("requested", len(markets)).
		Int("recovered", recovered).
		Msg("pending settlement recovery completed")

	return nil
}

func (s *ResolutionServiceImpl) run(ctx context.Context, marketID string, settling model.MarketState, outcome *model.Side) (*model.ResolutionResponse, error) {
	release, err := s.acquire(ctx, marketID)
	if err != nil {
		return nil, err
	}
	defer release()

	start := time.Now()
	market, status, err := s.begin(ctx, marketID, settling, outcome)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("market_id", marketID).
			Str("target", settling.String()).
			Str("outcome", sideString(outcome)).
			Msg("settlement rejected")
		return nil, err
	}
	if market.State.Final() {
		s.logger.Info().Str("market_id", marketID).Str("status", status).Msg("market already settled")
		return &model.ResolutionResponse{Status: status, Market: market}, nil
	}
	if status == statusResumed {
		s.logger.Info().Str("market_id", marketID).Str("state", market.State.String()).Msg("resuming settlement")
	}

	resp, err := s.settle(ctx, market)
	if err != nil {
		// The market stays in its settling state for RecoverPending
		s.logger.Error().Err(err).Str("market_id", marketID).Msg("settlement interrupted")
		return nil, err
	}
	metrics.SettlementLatency.Observe(time.Since(start).Seconds())
	return resp, nil
}

// acquire takes the per-market lock. A lock held elsewhere rejects the call;
// any other lock failure is logged and the call proceeds on row locks alone.
func (s *ResolutionServiceImpl) acquire(ctx context.Context, marketID string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}
	release, err := s.locker.Acquire(ctx, "resolve:"+marketID, s.settings.LockTTL)
	if err != nil {
		if errors.Is(err, model.ErrResolutionInProgress) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("market_id", marketID).Msg("settlement lock unavailable, continuing without it")
		return func() {}, nil
	}
	return release, nil
}

// begin moves the market into its settling state, or reports that it is
// already there or already final. A request conflicting with the recorded
// outcome is rejected and alerted; if the market is mid-settlement it is also
// halted.
func (s *ResolutionServiceImpl) begin(ctx context.Context, marketID string, settling model.MarketState, outcome *model.Side) (*model.Market, string, error) {
	final := finalState(settling)

	var (
		market      *model.Market
		status      string
		conflictErr error
		halted      bool
	)
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.marketRepo.GetMarketForUpdate(ctx, marketID, tx)
		if err != nil {
			return fmt.Errorf("get market for update: %w", err)
		}
		market = current

		switch {
		case current.State == final:
			if sameOutcome(current.Outcome, outcome) {
				status = "already_" + strings.ToLower(final.String())
				return nil
			}
			conflictErr = fmt.Errorf("%w: market %s is %s with outcome %s, requested %s",
				model.ErrResolutionConflict, marketID, current.State, sideString(current.Outcome), sideString(outcome))
			return nil

		case current.State == settling:
			if current.Halted {
				return fmt.Errorf("%w: market %s: %s", model.ErrMarketHalted, marketID, haltReason(current))
			}
			if sameOutcome(current.PendingOutcome, outcome) {
				status = statusResumed
				return nil
			}
			conflictErr = fmt.Errorf("%w: market %s is %s with outcome %s, requested %s",
				model.ErrResolutionConflict, marketID, current.State, sideString(current.PendingOutcome), sideString(outcome))
			reason := conflictErr.Error()
			market, err = s.marketRepo.SetHalted(ctx, marketID, true, &reason, tx)
			if err != nil {
				return fmt.Errorf("halt market: %w", err)
			}
			halted = true
			return appendMarketEvent(ctx, s.eventRepo, tx, marketID, model.EventMarketHalted, model.HaltPayload{Reason: reason})

		case current.State.Settling() || current.State.Final():
			conflictErr = fmt.Errorf("%w: market %s is %s, requested %s",
				model.ErrResolutionConflict, marketID, current.State, settling)
			return nil
		}

		if current.Halted {
			return fmt.Errorf("%w: market %s: %s", model.ErrMarketHalted, marketID, haltReason(current))
		}

		// Once committed, IncrementPool can no longer succeed on this market
		market, err = s.marketRepo.SetState(ctx, marketID, settling, outcome, tx)
		if err != nil {
			return fmt.Errorf("set market %s: %w", settling, err)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	if conflictErr != nil {
		s.alerter.Alert(ctx, model.OperatorAlert{
			Severity: model.AlertCritical,
			Kind:     "resolution_conflict",
			MarketID: marketID,
			Message:  conflictErr.Error(),
		})
		if halted {
			s.observer.MarketChanged(ctx, market, model.EventMarketHalted)
		}
		return nil, "", conflictErr
	}
	return market, status, nil
}

// settle pays out or refunds every open stake, then finalizes the market.
// The pools on market are frozen because it is no longer ACTIVE.
func (s *ResolutionServiceImpl) settle(ctx context.Context, market *model.Market) (*model.ResolutionResponse, error) {
	stakes, err := s.stakeRepo.ListOpenStakes(ctx, market.ID)
	if err != nil {
		return nil, fmt.Errorf("list open stakes: %w", err)
	}

	var settlement *odds.Settlement
	if market.State == model.MarketResolving {
		if market.PendingOutcome == nil {
			return nil, fmt.Errorf("%w: market %s is resolving without an outcome", model.ErrInvalidMarketState, market.ID)
		}
		st := odds.Settle(odds.PoolsOf(market), market.FeeBps, *market.PendingOutcome)
		settlement = &st
	}

	for _, stake := range stakes {
		// Stop quickly on shutdown, recovery picks up the rest
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := s.settleStake(ctx, stake.ID, settlement); err != nil {
			return nil, fmt.Errorf("settle stake %s: %w", stake.ID, err)
		}
	}

	return s.finalize(ctx, market, settlement)
}

// settleStake credits and marks one stake in its own transaction. A stake
// already settled is skipped; the credit is keyed on the stake id so a
// credit that committed without its settled flag is not applied twice.
func (s *ResolutionServiceImpl) settleStake(ctx context.Context, stakeID string, settlement *odds.Settlement) error {
	return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		stake, err := s.stakeRepo.GetStakeForUpdate(ctx, stakeID, tx)
		if err != nil {
			return fmt.Errorf("get stake for update: %w", err)
		}
		if stake.Settled {
			s.logger.Debug().Str("stake_id", stakeID).Msg("stake already settled")
			return nil
		}

		var (
			payout   int64
			credit   int64
			kind     model.EntryKind
			refunded = settlement == nil
		)
		if refunded {
			credit, kind = stake.Amount, model.EntryRefund
		} else {
			payout = settlement.PayoutFor(stake.Side, stake.Amount)
			credit, kind = payout, model.EntryPayoutCredit
		}

		if credit > 0 {
			if _, err := s.ledger.credit(ctx, tx, stake.UserID, credit, stake.ID, kind); err != nil {
				return fmt.Errorf("credit %s: %w", kind, err)
			}
		}

		marked, err := s.stakeRepo.MarkSettled(ctx, stake.ID, payout, refunded, tx)
		if err != nil {
			return fmt.Errorf("mark stake settled: %w", err)
		}
		if !marked {
			s.logger.Warn().Str("stake_id", stakeID).Msg("stake settled concurrently")
			return nil
		}

		s.logger.Debug().
			Str("stake_id", stake.ID).
			Str("user_id", stake.UserID).
			Str("side", stake.Side.String()).
			Int64("amount", stake.Amount).
			Int64("credit", credit).
			Bool("refunded", refunded).
			Msg("stake settled")
		return nil
	})
}

func (s *ResolutionServiceImpl) finalize(ctx context.Context, market *model.Market, settlement *odds.Settlement) (*model.ResolutionResponse, error) {
	final := finalState(market.State)
	eventType := model.EventMarketVoided
	if final == model.MarketResolved {
		eventType = model.EventMarketResolved
	}

	var (
		result  *model.Market
		payload model.SettlementPayload
	)
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		totals, err := s.stakeRepo.GetSettlementTotals(ctx, market.ID, tx)
		if err != nil {
			return fmt.Errorf("get settlement totals: %w", err)
		}
		if totals.Open > 0 {
			return fmt.Errorf("%w: market %s still has %d open stakes", model.ErrInvalidMarketState, market.ID, totals.Open)
		}

		payload = settlementPayload(market, settlement, totals)
		result, err = s.marketRepo.Finalize(ctx, market.ID, final, market.PendingOutcome, tx)
		if errors.Is(err, model.ErrMarketNotActive) {
			return errFinalizedElsewhere
		}
		if err != nil {
			return fmt.Errorf("finalize market: %w", err)
		}

		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode settlement payload: %w", err)
		}
		return s.eventRepo.AppendEvent(ctx, &model.Event{
			Type:     eventType,
			MarketID: market.ID,
			Payload:  data,
		}, tx)
	})
	if errors.Is(err, errFinalizedElsewhere) {
		// A concurrent settler finished first; every stake is already paid.
		current, err := s.marketRepo.GetMarket(ctx, market.ID)
		if err != nil {
			return nil, fmt.Errorf("get market: %w", err)
		}
		s.logger.Info().Str("market_id", market.ID).Msg("market finalized by a concurrent settlement")
		return &model.ResolutionResponse{Status: "already_" + strings.ToLower(final.String()), Market: current}, nil
	}
	if err != nil {
		return nil, err
	}

	metrics.Resolutions.WithLabelValues(final.String()).Inc()
	metrics.PayoutsDistributed.Add(float64(payload.Distributed))
	metrics.ResidueForfeited.Add(float64(payload.Residue))
	metrics.FeesCollected.Add(float64(payload.Fee))

	// Residue is forfeited to the platform and must stay auditable
	s.logger.Info().
		Str("market_id", market.ID).
		Str("state", final.String()).
		Str("outcome", sideString(market.PendingOutcome)).
		Int64("total_pot", payload.TotalPot).
		Int64("fee", payload.Fee).
		Int64("distributable", payload.Distributable).
		Int64("distributed", payload.Distributed).
		Int64("refunded", payload.Refunded).
		Int64("residue", payload.Residue).
		Int("winners", payload.Winners).
		Int("settled", payload.Settled).
		Msg("market settled")

	s.observer.MarketChanged(ctx, result, eventType)

	status := statusVoided
	if final == model.MarketResolved {
		status = statusResolved
	}
	return &model.ResolutionResponse{Status: status, Market: result, Settlement: &payload}, nil
}

func settlementPayload(market *model.Market, settlement *odds.Settlement, totals *model.SettlementTotals) model.SettlementPayload {
	payload := model.SettlementPayload{
		Outcome:     market.PendingOutcome,
		YesPool:     market.YesPool,
		NoPool:      market.NoPool,
		TotalPot:    market.TotalPot(),
		Distributed: totals.Distributed,
		Refunded:    totals.Refunded,
		Winners:     totals.Winners,
		Settled:     totals.Settled,
	}
	if settlement != nil {
		payload.Fee = settlement.Fee
		payload.Distributable = settlement.Distributable
		payload.WinningPool = settlement.WinningPool
		payload.Residue = settlement.Residue(totals.Distributed)
	}
	return payload
}

func finalState(settling model.MarketState) model.MarketState {
	if settling == model.MarketVoiding {
		return model.MarketVoided
	}
	return model.MarketResolved
}

func sameOutcome(a, b *model.Side) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sideString(side *model.Side) string {
	if side == nil {
		return "none"
	}
	return side.String()
}

func haltReason(m *model.Market) string {
	if m.HaltReason == nil {
		return "halted"
	}
	return *m.HaltReason
}
