package service

import (
	"context"
	"encoding/json"
	"fmt"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/odds"
	"parimutuel-engine/internal/repository"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// MarketSettings bounds operator input for new markets
type MarketSettings struct {
	DefaultFeeBps int
	MaxFeeBps     int
}

type MarketServiceImpl struct {
	marketRepo repository.MarketRepository
	eventRepo  repository.EventRepository
	dbManager  repository.DBManager
	observer   MarketObserver
	settings   MarketSettings
	logger     zerolog.Logger
}

func NewMarketService(
	marketRepo repository.MarketRepository,
	eventRepo repository.EventRepository,
	dbManager repository.DBManager,
	observer MarketObserver,
	settings MarketSettings,
	logger zerolog.Logger,
) MarketService {
	return &MarketServiceImpl{
		marketRepo: marketRepo,
		eventRepo:  eventRepo,
		dbManager:  dbManager,
		observer:   observer,
		settings:   settings,
		logger:     logger,
	}
}

func (s *MarketServiceImpl) CreateMarket(ctx context.Context, req *model.CreateMarketRequest) (*model.Market, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", model.ErrInvalidQuestion)
	}

	feeBps := s.settings.DefaultFeeBps
	if req.FeeBps != nil {
		feeBps = *req.FeeBps
	}
	if err := odds.ValidateFee(feeBps); err != nil {
		return nil, err
	}
	if feeBps > s.settings.MaxFeeBps {
		return nil, fmt.Errorf("%w: fee %d bps exceeds maximum %d bps", model.ErrInvalidFee, feeBps, s.settings.MaxFeeBps)
	}

	market := &model.Market{
		ID:       uuid.New().String(),
		Question: question,
		FeeBps:   feeBps,
	}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.marketRepo.CreateMarket(ctx, market, tx); err != nil {
			return fmt.Errorf("create market: %w", err)
		}
		return appendMarketEvent(ctx, s.eventRepo, tx, market.ID, model.EventMarketCreated, map[string]any{
			"question": market.Question,
			"fee_bps":  market.FeeBps,
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("market_id", market.ID).Int("fee_bps", market.FeeBps).Msg("market created")
	s.observer.MarketChanged(ctx, market, model.EventMarketCreated)
	return market, nil
}

func (s *MarketServiceImpl) GetMarket(ctx context.Context, marketID string) (*model.Market, error) {
	market, err := s.marketRepo.GetMarket(ctx, marketID)
	if err != nil {
		return nil, fmt.Errorf("get market: %w", err)
	}
	return market, nil
}

func (s *MarketServiceImpl) ListMarkets(ctx context.Context, state *model.MarketState, limit, offset int) ([]*model.Market, error) {
	markets, err := s.marketRepo.ListMarkets(ctx, state, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list markets: %w", err)
	}
	return markets, nil
}

// LockMarket stops a market from accepting stakes ahead of resolution
func (s *MarketServiceImpl) LockMarket(ctx context.Context, marketID string) (*model.Market, error) {
	var market *model.Market
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.marketRepo.GetMarketForUpdate(ctx, marketID, tx)
		if err != nil {
			return fmt.Errorf("get market for update: %w", err)
		}
		if current.State == model.MarketLocked {
			market = current
			return nil
		}
		if current.State != model.MarketActive {
			return fmt.Errorf("%w: market %s is %s", model.ErrMarketNotActive, marketID, current.State)
		}

		market, err = s.marketRepo.SetState(ctx, marketID, model.MarketLocked, nil, tx)
		if err != nil {
			return fmt.Errorf("lock market: %w", err)
		}
		return appendMarketEvent(ctx, s.eventRepo, tx, marketID, model.EventMarketLocked, map[string]any{
			"yes_pool": market.YesPool,
			"no_pool":  market.NoPool,
		})
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("market_id", marketID).Msg("lock market rejected")
		return nil, err
	}

	s.logger.Info().Str("market_id", marketID).Msg("market locked")
	s.observer.MarketChanged(ctx, market, model.EventMarketLocked)
	return market, nil
}

// ClearHalt lets automated processing of a market continue after an operator has reviewed it.
// Clearing a market that is not halted is a no-op.
func (s *MarketServiceImpl) ClearHalt(ctx context.Context, marketID string) (*model.Market, error) {
	var (
		market  *model.Market
		cleared bool
	)
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		current, err := s.marketRepo.GetMarketForUpdate(ctx, marketID, tx)
		if err != nil {
			return fmt.Errorf("get market for update: %w", err)
		}
		if !current.Halted {
			market = current
			return nil
		}
		market, err = s.marketRepo.SetHalted(ctx, marketID, false, nil, tx)
		if err != nil {
			return fmt.Errorf("clear halt: %w", err)
		}
		cleared = true
		return appendMarketEvent(ctx, s.eventRepo, tx, marketID, model.EventMarketHaltCleared, map[string]any{
			"previous_reason": current.HaltReason,
		})
	})
	if err != nil {
		return nil, err
	}
	if !cleared {
		return market, nil
	}

	s.logger.Info().Str("market_id", marketID).Msg("market halt cleared")
	s.observer.MarketChanged(ctx, market, model.EventMarketHaltCleared)
	return market, nil
}

// QuoteOdds prices a hypothetical stake from the current pools
func (s *MarketServiceImpl) QuoteOdds(ctx context.Context, marketID string, side model.Side, amount int64) (*model.QuoteResponse, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", model.ErrInvalidAmount)
	}

	market, err := s.marketRepo.GetMarket(ctx, marketID)
	if err != nil {
		return nil, fmt.Errorf("get market: %w", err)
	}

	q, err := odds.NewQuote(odds.PoolsOf(market), market.FeeBps, side, amount)
	if err != nil {
		return nil, err
	}
	return &model.QuoteResponse{
		MarketID:              market.ID,
		Side:                  side,
		Amount:                amount,
		YesPool:               market.YesPool,
		NoPool:                market.NoPool,
		FeeBps:                market.FeeBps,
		YesProbability:        q.YesProbability.StringFixed(4),
		NoProbability:         q.NoProbability.StringFixed(4),
		CurrentMultiplier:     q.CurrentMultiplier.StringFixed(4),
		PotentialPayout:       q.PotentialPayout,
		PotentialMultiplier:   q.PotentialMultiplier.StringFixed(4),
		ProbabilityAfterStake: q.ProbabilityAfterStake.StringFixed(4),
	}, nil
}

func (s *MarketServiceImpl) ListEvents(ctx context.Context, marketID string, limit, offset int) ([]*model.Event, error) {
	events, err := s.eventRepo.ListEventsByMarket(ctx, marketID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// appendMarketEvent writes a market-level event without idempotency key
func appendMarketEvent(ctx context.Context, eventRepo repository.EventRepository, tx pgx.Tx, marketID string, eventType model.EventType, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	event := &model.Event{
		Type:     eventType,
		MarketID: marketID,
		Payload:  data,
	}
	if err := eventRepo.AppendEvent(ctx, event, tx); err != nil {
		return fmt.Errorf("append %s event: %w", eventType, err)
	}
	return nil
}
