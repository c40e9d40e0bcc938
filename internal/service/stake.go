package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"parimutuel-engine/internal/metrics"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// rollback and check for duplicate idempotency key outside tx
var errDuplicateKeyRace = errors.New("duplicate idempotency key insert race")

type StakeServiceImpl struct {
	userRepo   repository.UserRepository
	marketRepo repository.MarketRepository
	stakeRepo  repository.StakeRepository
	eventRepo  repository.EventRepository
	ledger     ledgerWriter
	dbManager  repository.DBManager
	observer   MarketObserver
	logger     zerolog.Logger
}

func NewStakeService(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	marketRepo repository.MarketRepository,
	stakeRepo repository.StakeRepository,
	eventRepo repository.EventRepository,
	dbManager repository.DBManager,
	observer MarketObserver,
	logger zerolog.Logger,
) StakeService {
	return &StakeServiceImpl{
		userRepo:   userRepo,
		marketRepo: marketRepo,
		stakeRepo:  stakeRepo,
		eventRepo:  eventRepo,
		ledger:     ledgerWriter{userRepo: userRepo, ledgerRepo: ledgerRepo},
		dbManager:  dbManager,
		observer:   observer,
		logger:     logger,
	}
}

// PlaceStake admits a stake: debit, stake row, pool increment and event log
// entry commit together or not at all.
func (s *StakeServiceImpl) PlaceStake(ctx context.Context, req *model.PlaceStakeRequest, userID string) (*model.StakeResponse, error) {
	resp, err := s.placeStake(ctx, req, userID)
	if err != nil {
		metrics.StakesRejected.WithLabelValues(rejectReason(err)).Inc()
		s.logger.Warn().Err(err).
			Str("user_id", userID).
			Str("market_id", req.MarketID).
			Str("side", req.Side).
			Int64("amount", req.Amount).
			Msg("stake rejected")
		return nil, err
	}
	return resp, nil
}

func (s *StakeServiceImpl) placeStake(ctx context.Context, req *model.PlaceStakeRequest, userID string) (*model.StakeResponse, error) {
	// Validate inputs early, before transaction and locks
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", model.ErrInvalidStake)
	}
	if req.MarketID == "" {
		return nil, fmt.Errorf("%w: market id is required", model.ErrInvalidStake)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidStake)
	}
	side, err := model.ParseSide(req.Side)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidStake, err)
	}

	var (
		result *model.StakeResponse
		market *model.Market
	)
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if req.IdempotencyKey != "" {
			existing, err := s.replayByKey(ctx, req, userID, tx)
			if err != nil {
				return err
			}
			if existing != nil {
				result = existing
				return nil
			}
		}

		open, err := s.stakeRepo.HasOpenStake(ctx, userID, req.MarketID, tx)
		if err != nil {
			return fmt.Errorf("check open stake: %w", err)
		}
		if open {
			return fmt.Errorf("%w: user %s already holds an open stake on market %s", model.ErrDuplicateStake, userID, req.MarketID)
		}

		current, err := s.marketRepo.GetMarket(ctx, req.MarketID, tx)
		if err != nil {
			return fmt.Errorf("get market: %w", err)
		}
		if current.Halted {
			return fmt.Errorf("%w: market %s", model.ErrMarketHalted, req.MarketID)
		}
		if current.State != model.MarketActive {
			return fmt.Errorf("%w: market %s is %s", model.ErrMarketClosed, req.MarketID, current.State)
		}

		stake := &model.Stake{
			ID:       uuid.New().String(),
			UserID:   userID,
			MarketID: req.MarketID,
			Side:     side,
			Amount:   req.Amount,
		}

		debit, err := s.ledger.debit(ctx, tx, userID, req.Amount, stake.ID)
		if err != nil {
			return fmt.Errorf("debit: %w", err)
		}

		if err := s.stakeRepo.InsertStake(ctx, stake, tx); err != nil {
			return fmt.Errorf("insert stake: %w", err)
		}

		// The ACTIVE guard inside the update is the barrier against a concurrent resolution
		market, err = s.marketRepo.IncrementPool(ctx, req.MarketID, side, req.Amount, tx)
		if err != nil {
			return fmt.Errorf("increment pool: %w", err)
		}

		if err := s.appendStakePlaced(ctx, req, stake, market, tx); err != nil {
			return err
		}

		result = &model.StakeResponse{
			Status:  statusSuccess,
			Stake:   stake,
			Market:  market,
			Balance: debit.balance,
			Message: "Stake placed successfully",
		}
		return nil
	})

	// Another request with the same idempotency key committed first. It may
	// surface as the key collision or as the open stake it created.
	if req.IdempotencyKey != "" && (errors.Is(err, errDuplicateKeyRace) || errors.Is(err, model.ErrDuplicateStake)) {
		existing, getErr := s.replayByKey(ctx, req, userID)
		if getErr != nil {
			return nil, getErr
		}
		if existing == nil {
			if errors.Is(err, model.ErrDuplicateStake) {
				return nil, err
			}
			return nil, fmt.Errorf("get stake after duplicate: %w", model.ErrEventNotFound)
		}
		s.logger.Info().
			Str("idempotency_key", req.IdempotencyKey).
			Str("user_id", userID).
			Msg("stake already placed (detected after rollback)")
		return existing, nil
	}
	if err != nil {
		return nil, err
	}

	if result.Status == statusAlreadyProcessed {
		s.logger.Info().Str("idempotency_key", req.IdempotencyKey).Str("user_id", userID).Msg("stake already placed")
		return result, nil
	}

	metrics.StakesPlaced.WithLabelValues(side.String()).Inc()
	metrics.StakeVolume.WithLabelValues(side.String()).Add(float64(req.Amount))
	metrics.LedgerEntries.WithLabelValues(model.EntryStakeDebit.String()).Inc()
	s.logger.Info().
		Str("stake_id", result.Stake.ID).
		Str("user_id", userID).
		Str("market_id", req.MarketID).
		Str("side", side.String()).
		Int64("amount", req.Amount).
		Int64("yes_pool", market.YesPool).
		Int64("no_pool", market.NoPool).
		Int64("new_balance", result.Balance).
		Msg("stake placed")
	s.observer.MarketChanged(ctx, market, model.EventStakePlaced)

	return result, nil
}

func (s *StakeServiceImpl) appendStakePlaced(ctx context.Context, req *model.PlaceStakeRequest, stake *model.Stake, market *model.Market, tx pgx.Tx) error {
	payload, err := json.Marshal(model.StakePlacedPayload{
		Side:        stake.Side,
		Amount:      stake.Amount,
		NewTotalYes: market.YesPool,
		NewTotalNo:  market.NoPool,
	})
	if err != nil {
		return fmt.Errorf("encode stake payload: %w", err)
	}

	event := &model.Event{
		Type:     model.EventStakePlaced,
		MarketID: stake.MarketID,
		UserID:   &stake.UserID,
		StakeID:  &stake.ID,
		Payload:  payload,
	}
	if req.IdempotencyKey != "" {
		event.IdempotencyKey = &req.IdempotencyKey
	}
	if req.ExternalSignature != "" {
		event.ExternalSignature = &req.ExternalSignature
	}

	err = s.eventRepo.AppendEvent(ctx, event, tx)
	if err != nil {
		if errors.Is(err, model.ErrDuplicateEvent) && req.IdempotencyKey != "" {
			return errDuplicateKeyRace
		}
		return fmt.Errorf("append stake event: %w", err)
	}
	return nil
}

// replayByKey returns the result of an earlier request carrying the same
// idempotency key, or nil if the key is unused.
func (s *StakeServiceImpl) replayByKey(ctx context.Context, req *model.PlaceStakeRequest, userID string, tx ...pgx.Tx) (*model.StakeResponse, error) {
	event, err := s.eventRepo.GetEventByIdempotencyKey(ctx, req.IdempotencyKey, tx...)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by idempotency key: %w", err)
	}

	if event.Type != model.EventStakePlaced || event.StakeID == nil || event.UserID == nil || *event.UserID != userID {
		return nil, fmt.Errorf("%w: key %s was used by another request", model.ErrIdempotencyKeyReused, req.IdempotencyKey)
	}

	stake, err := s.stakeRepo.GetStake(ctx, *event.StakeID, tx...)
	if err != nil {
		return nil, fmt.Errorf("get stake: %w", err)
	}
	if stake.MarketID != req.MarketID || stake.Amount != req.Amount || !sameSide(stake.Side, req.Side) {
		return nil, fmt.Errorf("%w: key %s was used for a different stake", model.ErrIdempotencyKeyReused, req.IdempotencyKey)
	}

	user, err := s.userRepo.GetUser(ctx, userID, tx...)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &model.StakeResponse{
		Status:  statusAlreadyProcessed,
		Stake:   stake,
		Balance: user.Balance,
		Message: "Stake already placed",
	}, nil
}

func sameSide(side model.Side, raw string) bool {
	parsed, err := model.ParseSide(raw)
	return err == nil && parsed == side
}

func (s *StakeServiceImpl) ListStakesByUser(ctx context.Context, userID string, limit, offset int) ([]*model.Stake, error) {
	stakes, err := s.stakeRepo.ListStakesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user stakes: %w", err)
	}
	return stakes, nil
}

// rejectReason labels a rejection for metrics
func rejectReason(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidStake):
		return "invalid_stake"
	case errors.Is(err, model.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, model.ErrDuplicateStake):
		return "duplicate_stake"
	case errors.Is(err, model.ErrMarketClosed), errors.Is(err, model.ErrMarketNotActive):
		return "market_closed"
	case errors.Is(err, model.ErrMarketHalted):
		return "market_halted"
	case errors.Is(err, model.ErrIdempotencyKeyReused):
		return "idempotency_key_reused"
	case errors.Is(err, model.ErrDuplicateSignature):
		return "duplicate_signature"
	case errors.Is(err, model.ErrDuplicateEvent):
		return "duplicate_event"
	case errors.Is(err, model.ErrUserNotFound), errors.Is(err, model.ErrMarketNotFound):
		return "not_found"
	case errors.Is(err, model.ErrStorageFailure):
		return "storage_failure"
	default:
		return "other"
	}
}
