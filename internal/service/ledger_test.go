package service

import (
	"context"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/mocks/repository"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// runInline makes WithTransaction call fn directly with a nil tx
func runInline(m *mocks.DBManager, ctx context.Context) {
	m.On("WithTransaction", ctx, mock.Anything).Return(func(ctx context.Context, fn func(pgx.Tx) error) error {
		return fn(nil)
	})
}

func TestLedgerService_Deposit_HappyPath(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInline(mockDBManager, ctx)
	mockUserRepo.On("EnsureUser", ctx, "alice", mock.Anything).Return(nil)
	mockUserRepo.On("GetUserForUpdate", ctx, "alice", mock.Anything).Return(&model.User{ID: "alice", Balance: 100}, nil)
	mockLedgerRepo.On("GetEntryByReference", ctx, "dep-1", model.EntryDeposit, mock.Anything).Return(nil, model.ErrLedgerEntryNotFound)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
		return e.UserID == "alice" &&
			e.Delta == 50 &&
			e.Kind == model.EntryDeposit &&
			e.Reference == "dep-1" &&
			e.BalanceAfter == 150
	}), mock.Anything).Return(true, nil)
	mockUserRepo.On("AdjustBalance", ctx, "alice", int64(50), mock.Anything).Return(int64(150), nil)

	service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, logger)

	resp, err := service.Deposit(ctx, &model.DepositRequest{DepositID: "dep-1", Amount: 50}, "alice")

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(150), resp.Balance)
	assert.Equal(t, model.EntryDeposit, resp.Entry.Kind)
	mockUserRepo.AssertNotCalled(t, "AddStats")
}

func TestLedgerService_Deposit_AlreadyApplied(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInline(mockDBManager, ctx)
	mockUserRepo.On("EnsureUser", ctx, "alice", mock.Anything).Return(nil)
	mockUserRepo.On("GetUserForUpdate", ctx, "alice", mock.Anything).Return(&model.User{ID: "alice", Balance: 150}, nil)
	mockLedgerRepo.On("GetEntryByReference", ctx, "dep-1", model.EntryDeposit, mock.Anything).Return(&model.LedgerEntry{
		ID:           7,
		UserID:       "alice",
		Delta:        50,
		Kind:         model.EntryDeposit,
		Reference:    "dep-1",
		BalanceAfter: 150,
	}, nil)

	service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, logger)

	resp, err := service.Deposit(ctx, &model.DepositRequest{DepositID: "dep-1", Amount: 50}, "alice")

	require.NoError(t, err)
	assert.Equal(t, "already_processed", resp.Status)
	assert.Equal(t, int64(150), resp.Balance)
	assert.Equal(t, int64(7), resp.Entry.ID)
	mockLedgerRepo.AssertNotCalled(t, "InsertEntry")
	mockUserRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestLedgerService_Deposit_ReferenceOwnedByOtherUser(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInline(mockDBManager, ctx)
	mockUserRepo.On("EnsureUser", ctx, "bob", mock.Anything).Return(nil)
	mockUserRepo.On("GetUserForUpdate", ctx, "bob", mock.Anything).Return(&model.User{ID: "bob", Balance: 0}, nil)
	mockLedgerRepo.On("GetEntryByReference", ctx, "dep-1", model.EntryDeposit, mock.Anything).Return(&model.LedgerEntry{
		UserID:    "alice",
		Delta:     50,
		Kind:      model.EntryDeposit,
		Reference: "dep-1",
	}, nil)

	service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, logger)

	resp, err := service.Deposit(ctx, &model.DepositRequest{DepositID: "dep-1", Amount: 50}, "bob")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrDuplicateReference)
}

func TestLedgerService_Debit_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInline(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, "alice", mock.Anything).Return(&model.User{ID: "alice", Balance: 10}, nil)
	mockLedgerRepo.On("GetEntryByReference", ctx, "stake-1", model.EntryStakeDebit, mock.Anything).Return(nil, model.ErrLedgerEntryNotFound)

	service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, logger)

	resp, err := service.Debit(ctx, "alice", 50, "stake-1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	mockLedgerRepo.AssertNotCalled(t, "InsertEntry")
	mockUserRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestLedgerService_Debit_UpdatesStakedTotal(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInline(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, "alice", mock.Anything).Return(&model.User{ID: "alice", Balance: 100}, nil)
	mockLedgerRepo.On("GetEntryByReference", ctx, "stake-1", model.EntryStakeDebit, mock.Anything).Return(nil, model.ErrLedgerEntryNotFound)
	mockLedgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
		return e.Delta == -100 && e.BalanceAfter == 0
	}), mock.Anything).Return(true, nil)
	mockUserRepo.On("AdjustBalance", ctx, "alice", int64(-100), mock.Anything).Return(int64(0), nil)
	mockUserRepo.On("AddStats", ctx, "alice", int64(100), int64(0), mock.Anything).Return(nil)

	service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, logger)

	resp, err := service.Debit(ctx, "alice", 100, "stake-1")

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(0), resp.Balance)
}

func TestLedgerService_Credit_PayoutUpdatesWonTotal(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInline(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, "alice", mock.Anything).Return(&model.User{ID: "alice", Balance: 0}, nil)
	mockLedgerRepo.On("GetEntryByReference", ctx, "stake-1", model.EntryPayoutCredit, mock.Anything).Return(nil, model.ErrLedgerEntryNotFound)
	mockLedgerRepo.On("InsertEntry", ctx, mock.Anything, mock.Anything).Return(true, nil)
	mockUserRepo.On("AdjustBalance", ctx, "alice", int64(380), mock.Anything).Return(int64(380), nil)
	mockUserRepo.On("AddStats", ctx, "alice", int64(0), int64(380), mock.Anything).Return(nil)

	service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, logger)

	resp, err := service.Credit(ctx, "alice", 380, "stake-1", model.EntryPayoutCredit)

	require.NoError(t, err)
	assert.Equal(t, int64(380), resp.Balance)
}

func TestLedgerService_Credit_InsertLostRace(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	runInline(mockDBManager, ctx)
	mockUserRepo.On("GetUserForUpdate", ctx, "alice", mock.Anything).Return(&model.User{ID: "alice", Balance: 380}, nil)
	mockLedgerRepo.On("GetEntryByReference", ctx, "stake-1", model.EntryRefund, mock.Anything).
		Return(nil, model.ErrLedgerEntryNotFound).Once()
	mockLedgerRepo.On("InsertEntry", ctx, mock.Anything, mock.Anything).Return(false, nil)
	mockLedgerRepo.On("GetEntryByReference", ctx, "stake-1", model.EntryRefund, mock.Anything).
		Return(&model.LedgerEntry{UserID: "alice", Delta: 100, Kind: model.EntryRefund, Reference: "stake-1"}, nil).Once()

	service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, logger)

	resp, err := service.Credit(ctx, "alice", 100, "stake-1", model.EntryRefund)

	require.NoError(t, err)
	assert.Equal(t, "already_processed", resp.Status)
	mockUserRepo.AssertNotCalled(t, "AdjustBalance")
}

func TestLedgerService_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(s LedgerService) error
		wantErr error
	}{
		{
			name: "zero amount",
			call: func(s LedgerService) error {
				_, err := s.Debit(ctx, "alice", 0, "stake-1")
				return err
			},
			wantErr: model.ErrInvalidAmount,
		},
		{
			name: "negative deposit",
			call: func(s LedgerService) error {
				_, err := s.Deposit(ctx, &model.DepositRequest{DepositID: "dep-1", Amount: -5}, "alice")
				return err
			},
			wantErr: model.ErrInvalidAmount,
		},
		{
			name: "missing reference",
			call: func(s LedgerService) error {
				_, err := s.Credit(ctx, "alice", 10, "", model.EntryRefund)
				return err
			},
			wantErr: model.ErrInvalidAmount,
		},
		{
			name: "debit kind through credit",
			call: func(s LedgerService) error {
				_, err := s.Credit(ctx, "alice", 10, "stake-1", model.EntryStakeDebit)
				return err
			},
			wantErr: model.ErrInvalidEntryKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := mocks.NewUserRepository(t)
			mockLedgerRepo := mocks.NewLedgerRepository(t)
			mockDBManager := mocks.NewDBManager(t)
			service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, zerolog.Nop())

			err := tt.call(service)

			assert.ErrorIs(t, err, tt.wantErr)
			mockDBManager.AssertNotCalled(t, "WithTransaction")
		})
	}
}

func TestLedgerService_GetBalance(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := mocks.NewUserRepository(t)
	mockLedgerRepo := mocks.NewLedgerRepository(t)
	mockDBManager := mocks.NewDBManager(t)

	mockUserRepo.On("GetUser", ctx, "alice").Return(&model.User{ID: "alice", Balance: 480, TotalStaked: 100, TotalWon: 380}, nil)

	service := NewLedgerService(mockUserRepo, mockLedgerRepo, mockDBManager, zerolog.Nop())

	resp, err := service.GetBalance(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(480), resp.Balance)
	assert.Equal(t, int64(100), resp.TotalStaked)
	assert.Equal(t, int64(380), resp.TotalWon)
}
