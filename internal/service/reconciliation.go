package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"parimutuel-engine/internal/metrics"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/repository"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const statusDuplicate = "duplicate"

type ReconciliationServiceImpl struct {
	marketRepo repository.MarketRepository
	eventRepo  repository.EventRepository
	dbManager  repository.DBManager
	observer   MarketObserver
	alerter    OperatorAlerter
	logger     zerolog.Logger
}

func NewReconciliationService(
	marketRepo repository.MarketRepository,
	eventRepo repository.EventRepository,
	dbManager repository.DBManager,
	observer MarketObserver,
	alerter OperatorAlerter,
	logger zerolog.Logger,
) ReconciliationService {
	return &ReconciliationServiceImpl{
		marketRepo: marketRepo,
		eventRepo:  eventRepo,
		dbManager:  dbManager,
		observer:   observer,
		alerter:    alerter,
		logger:     logger,
	}
}

// ImportExternalEvent records an event seen on the external substrate and
// checks it against local state. Stakes are matched by signature against the
// Event Log, resolutions against the market outcome. A mismatch halts the
// market until an operator clears it.
func (s *ReconciliationServiceImpl) ImportExternalEvent(ctx context.Context, req *model.ExternalEventRequest) (*model.ImportResponse, error) {
	ext, err := parseExternalEvent(req)
	if err != nil {
		return nil, err
	}

	var (
		status string
		result *model.ExternalEvent
		halted *model.Market
	)
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		existing, err := s.eventRepo.GetExternalEvent(ctx, ext.Signature, tx)
		if err == nil {
			status, result = statusDuplicate, existing
			return nil
		}
		if !errors.Is(err, model.ErrExternalEventNotFound) {
			return fmt.Errorf("get external event: %w", err)
		}

		market, err := s.marketRepo.GetMarket(ctx, ext.MarketID, tx)
		if err != nil && !errors.Is(err, model.ErrMarketNotFound) {
			return fmt.Errorf("get market: %w", err)
		}

		detail, err := s.compare(ctx, ext, market, tx)
		if err != nil {
			return err
		}
		ext.Status = model.ExternalMatched
		if detail != "" {
			ext.Status = model.ExternalMismatch
			ext.Detail = &detail
		}

		inserted, err := s.eventRepo.InsertExternalEvent(ctx, ext, tx)
		if err != nil {
			return fmt.Errorf("insert external event: %w", err)
		}
		if !inserted {
			// Concurrent import of the same signature won
			existing, err := s.eventRepo.GetExternalEvent(ctx, ext.Signature, tx)
			if err != nil {
				return fmt.Errorf("get external event after conflict: %w", err)
			}
			status, result = statusDuplicate, existing
			return nil
		}
		status, result = strings.ToLower(ext.Status.String()), ext

		if ext.Status == model.ExternalMismatch && market != nil {
			reason := fmt.Sprintf("external mismatch on %s: %s", ext.Signature, detail)
			halted, err = s.marketRepo.SetHalted(ctx, market.ID, true, &reason, tx)
			if err != nil {
				return fmt.Errorf("halt market: %w", err)
			}
			return appendMarketEvent(ctx, s.eventRepo, tx, market.ID, model.EventMarketHalted, model.HaltPayload{Reason: reason})
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("signature", ext.Signature).Str("market_id", ext.MarketID).Msg("external event import failed")
		return nil, err
	}

	if status == statusDuplicate {
		s.logger.Debug().Str("signature", ext.Signature).Msg("external event already imported")
		return &model.ImportResponse{Status: statusDuplicate, Event: result}, nil
	}

	metrics.ExternalEvents.WithLabelValues(result.Status.String()).Inc()

	if result.Status == model.ExternalMismatch {
		s.alerter.Alert(ctx, model.OperatorAlert{
			Severity: model.AlertCritical,
			Kind:     "external_mismatch",
			MarketID: result.MarketID,
			UserID:   derefString(result.UserID),
			Message:  *result.Detail,
		})
		if halted != nil {
			s.observer.MarketChanged(ctx, halted, model.EventMarketHalted)
		}
		return &model.ImportResponse{Status: status, Event: result},
			fmt.Errorf("%w: %s: %s", model.ErrExternalMismatch, result.Signature, *result.Detail)
	}

	s.logger.Info().
		Str("signature", result.Signature).
		Str("type", result.Type.String()).
		Str("market_id", result.MarketID).
		Msg("external event matched")
	return &model.ImportResponse{Status: status, Event: result}, nil
}

// compare returns a description of the first difference between the external
// event and local state, or "" when they agree.
func (s *ReconciliationServiceImpl) compare(ctx context.Context, ext *model.ExternalEvent, market *model.Market, tx pgx.Tx) (string, error) {
	if market == nil {
		return fmt.Sprintf("market %s is unknown", ext.MarketID), nil
	}

	if ext.Type == model.EventMarketResolved {
		if market.State != model.MarketResolved || market.Outcome == nil {
			return fmt.Sprintf("market is %s, external outcome %s", market.State, sideString(ext.Outcome)), nil
		}
		if !sameOutcome(market.Outcome, ext.Outcome) {
			return fmt.Sprintf("outcome %s, external outcome %s", sideString(market.Outcome), sideString(ext.Outcome)), nil
		}
		return "", nil
	}

	local, err := s.eventRepo.GetEventBySignature(ctx, ext.Signature, tx)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			return "no local stake carries this signature", nil
		}
		return "", fmt.Errorf("get event by signature: %w", err)
	}
	if local.Type != ext.Type || local.MarketID != ext.MarketID {
		return fmt.Sprintf("local %s on market %s, external %s on market %s",
			local.Type, local.MarketID, ext.Type, ext.MarketID), nil
	}
	if ext.UserID != nil && derefString(local.UserID) != *ext.UserID {
		return fmt.Sprintf("user %s, external user %s", derefString(local.UserID), *ext.UserID), nil
	}

	var payload model.StakePlacedPayload
	if err := json.Unmarshal(local.Payload, &payload); err != nil {
		return "", fmt.Errorf("decode stake payload: %w", err)
	}
	if ext.Side != nil && *ext.Side != payload.Side {
		return fmt.Sprintf("side %s, external side %s", payload.Side, *ext.Side), nil
	}
	if ext.Amount != nil && *ext.Amount != payload.Amount {
		return fmt.Sprintf("amount %d, external amount %d", payload.Amount, *ext.Amount), nil
	}
	return "", nil
}

func parseExternalEvent(req *model.ExternalEventRequest) (*model.ExternalEvent, error) {
	if req.Signature == "" || req.MarketID == "" {
		return nil, fmt.Errorf("%w: signature and market id are required", model.ErrInvalidEventType)
	}
	eventType, err := model.ParseEventType(req.Type)
	if err != nil {
		return nil, err
	}

	ext := &model.ExternalEvent{
		Signature: req.Signature,
		Slot:      req.Slot,
		Type:      eventType,
		MarketID:  req.MarketID,
		Amount:    req.Amount,
	}
	if req.UserID != "" {
		ext.UserID = &req.UserID
	}

	switch eventType {
	case model.EventStakePlaced:
		if req.Side != "" {
			side, err := model.ParseSide(req.Side)
			if err != nil {
				return nil, err
			}
			ext.Side = &side
		}
	case model.EventMarketResolved:
		outcome, err := model.ParseSide(req.Outcome)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrInvalidOutcome, err)
		}
		ext.Outcome = &outcome
	default:
		return nil, fmt.Errorf("%w: %s cannot be reconciled", model.ErrInvalidEventType, eventType)
	}
	return ext, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
