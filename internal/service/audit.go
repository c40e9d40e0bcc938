package service

import (
	"context"
	"fmt"
	"parimutuel-engine/internal/metrics"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/repository"

	"github.com/rs/zerolog"
)

type AuditServiceImpl struct {
	ledgerRepo repository.LedgerRepository
	marketRepo repository.MarketRepository
	alerter    OperatorAlerter
	limit      int
	logger     zerolog.Logger
}

func NewAuditService(
	ledgerRepo repository.LedgerRepository,
	marketRepo repository.MarketRepository,
	alerter OperatorAlerter,
	limit int,
	logger zerolog.Logger,
) AuditService {
	return &AuditServiceImpl{
		ledgerRepo: ledgerRepo,
		marketRepo: marketRepo,
		alerter:    alerter,
		limit:      limit,
		logger:     logger,
	}
}

// RunAudit checks that every balance equals the sum of its ledger entries and
// every pool equals the sum of its stakes. Drift is alerted, never repaired.
func (s *AuditServiceImpl) RunAudit(ctx context.Context) (*model.AuditReport, error) {
	balances, err := s.ledgerRepo.FindBalanceDrift(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("find balance drift: %w", err)
	}
	pools, err := s.marketRepo.FindPoolDrift(ctx, s.limit)
	if err != nil {
		return nil, fmt.Errorf("find pool drift: %w", err)
	}

	metrics.AuditDrifts.WithLabelValues("balance").Set(float64(len(balances)))
	metrics.AuditDrifts.WithLabelValues("pool").Set(float64(len(pools)))

	for _, d := range balances {
		s.alerter.Alert(ctx, model.OperatorAlert{
			Severity: model.AlertCritical,
			Kind:     "balance_drift",
			UserID:   d.UserID,
			Message:  fmt.Sprintf("balance %d, ledger sum %d", d.Balance, d.LedgerSum),
		})
	}
	for _, d := range pools {
		s.alerter.Alert(ctx, model.OperatorAlert{
			Severity: model.AlertCritical,
			Kind:     "pool_drift",
			MarketID: d.MarketID,
			Message: fmt.Sprintf("pools yes=%d no=%d, stakes yes=%d no=%d",
				d.YesPool, d.NoPool, d.YesStake, d.NoStake),
		})
	}

	report := &model.AuditReport{BalanceDrifts: balances, PoolDrifts: pools}
	if report.Clean() {
		s.logger.Debug().Msg("audit clean")
	} else {
		s.logger.Warn().
			Int("balance_drifts", len(balances)).
			Int("pool_drifts", len(pools)).
			Msg("audit found drift")
	}
	return report, nil
}
