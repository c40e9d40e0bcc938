package service

import (
	"context"
	"errors"
	"fmt"
	"parimutuel-engine/internal/metrics"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	statusSuccess          = "success"
	statusAlreadyProcessed = "already_processed"
)

// ledgerWriter applies balance mutations inside the caller's transaction.
// The user row is locked first, so every mutation of one balance is serialized.
type ledgerWriter struct {
	userRepo   repository.UserRepository
	ledgerRepo repository.LedgerRepository
}

type ledgerResult struct {
	entry   *model.LedgerEntry
	balance int64
	applied bool
}

// apply appends the entry for (reference, kind) and moves the balance by delta,
// or returns the entry already recorded for that key without touching the balance.
func (w ledgerWriter) apply(ctx context.Context, tx pgx.Tx, userID string, delta int64, reference string, kind model.EntryKind) (*ledgerResult, error) {
	user, err := w.userRepo.GetUserForUpdate(ctx, userID, tx)
	if err != nil {
		return nil, fmt.Errorf("get user for update: %w", err)
	}

	existing, err := w.ledgerRepo.GetEntryByReference(ctx, reference, kind, tx)
	if err != nil && !errors.Is(err, model.ErrLedgerEntryNotFound) {
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	if existing != nil {
		return w.replay(existing, user, reference, kind)
	}

	newBalance := user.Balance + delta
	if newBalance < 0 {
		return nil, fmt.Errorf("%w: balance %d, requested %d", model.ErrInsufficientFunds, user.Balance, -delta)
	}

	entry := &model.LedgerEntry{
		UserID:       userID,
		Delta:        delta,
		Kind:         kind,
		Reference:    reference,
		BalanceAfter: newBalance,
	}
	inserted, err := w.ledgerRepo.InsertEntry(ctx, entry, tx)
	if err != nil {
		return nil, fmt.Errorf("insert ledger entry: %w", err)
	}
	if !inserted {
		// Another user's transaction holds the same reference
		existing, err := w.ledgerRepo.GetEntryByReference(ctx, reference, kind, tx)
		if err != nil {
			return nil, fmt.Errorf("get ledger entry after conflict: %w", err)
		}
		return w.replay(existing, user, reference, kind)
	}

	balance, err := w.userRepo.AdjustBalance(ctx, userID, delta, tx)
	if err != nil {
		return nil, fmt.Errorf("adjust balance: %w", err)
	}

	var staked, won int64
	switch kind {
	case model.EntryStakeDebit:
		staked = -delta
	case model.EntryPayoutCredit:
		won = delta
	}
	if staked != 0 || won != 0 {
		if err := w.userRepo.AddStats(ctx, userID, staked, won, tx); err != nil {
			return nil, fmt.Errorf("add user stats: %w", err)
		}
	}

	return &ledgerResult{entry: entry, balance: balance, applied: true}, nil
}

func (w ledgerWriter) replay(existing *model.LedgerEntry, user *model.User, reference string, kind model.EntryKind) (*ledgerResult, error) {
	if existing.UserID != user.ID {
		return nil, fmt.Errorf("%w: %s %s belongs to user %s, requested for user %s",
			model.ErrDuplicateReference, kind, reference, existing.UserID, user.ID)
	}
	return &ledgerResult{entry: existing, balance: user.Balance, applied: false}, nil
}

func (w ledgerWriter) debit(ctx context.Context, tx pgx.Tx, userID string, amount int64, reference string) (*ledgerResult, error) {
	return w.apply(ctx, tx, userID, -amount, reference, model.EntryStakeDebit)
}

func (w ledgerWriter) credit(ctx context.Context, tx pgx.Tx, userID string, amount int64, reference string, kind model.EntryKind) (*ledgerResult, error) {
	return w.apply(ctx, tx, userID, amount, reference, kind)
}

type LedgerServiceImpl struct {
	userRepo  repository.UserRepository
	ledger    ledgerWriter
	dbManager repository.DBManager
	logger    zerolog.Logger
}

func NewLedgerService(
	userRepo repository.UserRepository,
	ledgerRepo repository.LedgerRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) LedgerService {
	return &LedgerServiceImpl{
		userRepo:  userRepo,
		ledger:    ledgerWriter{userRepo: userRepo, ledgerRepo: ledgerRepo},
		dbManager: dbManager,
		logger:    logger,
	}
}

func (s *LedgerServiceImpl) Deposit(ctx context.Context, req *model.DepositRequest, userID string) (*model.LedgerResponse, error) {
	return s.mutate(ctx, userID, req.Amount, req.DepositID, model.EntryDeposit, true)
}

func (s *LedgerServiceImpl) Credit(ctx context.Context, userID string, amount int64, reference string, kind model.EntryKind) (*model.LedgerResponse, error) {
	if !kind.IsCredit() {
		return nil, fmt.Errorf("%w: %s is not a credit", model.ErrInvalidEntryKind, kind)
	}
	return s.mutate(ctx, userID, amount, reference, kind, false)
}

func (s *LedgerServiceImpl) Debit(ctx context.Context, userID string, amount int64, reference string) (*model.LedgerResponse, error) {
	return s.mutate(ctx, userID, amount, reference, model.EntryStakeDebit, false)
}

func (s *LedgerServiceImpl) mutate(ctx context.Context, userID string, amount int64, reference string, kind model.EntryKind, ensureUser bool) (*model.LedgerResponse, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}
	if reference == "" {
		return nil, fmt.Errorf("%w: reference is required", model.ErrInvalidAmount)
	}

	var res *ledgerResult
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if ensureUser {
			if err := s.userRepo.EnsureUser(ctx, userID, tx); err != nil {
				return fmt.Errorf("ensure user: %w", err)
			}
		}

		var err error
		if kind == model.EntryStakeDebit {
			res, err = s.ledger.debit(ctx, tx, userID, amount, reference)
		} else {
			res, err = s.ledger.credit(ctx, tx, userID, amount, reference, kind)
		}
		return err
	})
	if err != nil {
		s.logger.Warn().Err(err).
			Str("user_id", userID).
			Str("kind", kind.String()).
			Str("reference", reference).
			Int64("amount", amount).
			Msg("ledger mutation rejected")
		return nil, err
	}

	status := statusSuccess
	if !res.applied {
		status = statusAlreadyProcessed
		s.logger.Info().Str("user_id", userID).Str("kind", kind.String()).Str("reference", reference).Msg("ledger entry already applied")
	} else {
		metrics.LedgerEntries.WithLabelValues(kind.String()).Inc()
		s.logger.Info().
			Str("user_id", userID).
			Str("kind", kind.String()).
			Str("reference", reference).
			Int64("delta", res.entry.Delta).
			Int64("new_balance", res.balance).
			Msg("ledger entry applied")
	}

	return &model.LedgerResponse{
		Status:  status,
		Entry:   res.entry,
		Balance: res.balance,
	}, nil
}

func (s *LedgerServiceImpl) GetBalance(ctx context.Context, userID string) (*model.BalanceResponse, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &model.BalanceResponse{
		UserID:      user.ID,
		Balance:     user.Balance,
		TotalStaked: user.TotalStaked,
		TotalWon:    user.TotalWon,
	}, nil
}

func (s *LedgerServiceImpl) ListEntries(ctx context.Context, userID string, limit, offset int) ([]*model.LedgerEntry, error) {
	entries, err := s.ledger.ledgerRepo.ListEntriesByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get ledger entries: %w", err)
	}
	return entries, nil
}
