package service

import (
	"context"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/mocks/repository"
	svcmocks "parimutuel-engine/mocks/service"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stakeMocks struct {
	userRepo   *mocks.UserRepository
	ledgerRepo *mocks.LedgerRepository
	marketRepo *mocks.MarketRepository
	stakeRepo  *mocks.StakeRepository
	eventRepo  *mocks.EventRepository
	dbManager  *mocks.DBManager
	observer   *svcmocks.MarketObserver
}

func newStakeMocks(t *testing.T) *stakeMocks {
	return &stakeMocks{
		userRepo:   mocks.NewUserRepository(t),
		ledgerRepo: mocks.NewLedgerRepository(t),
		marketRepo: mocks.NewMarketRepository(t),
		stakeRepo:  mocks.NewStakeRepository(t),
		eventRepo:  mocks.NewEventRepository(t),
		dbManager:  mocks.NewDBManager(t),
		observer:   svcmocks.NewMarketObserver(t),
	}
}

func (m *stakeMocks) service() StakeService {
	return NewStakeService(m.userRepo, m.ledgerRepo, m.marketRepo, m.stakeRepo, m.eventRepo, m.dbManager, m.observer, zerolog.Nop())
}

// expectDebit sets up a successful STAKE_DEBIT and records its reference
func (m *stakeMocks) expectDebit(ctx context.Context, userID string, balance, amount int64, reference *string) {
	m.userRepo.On("GetUserForUpdate", ctx, userID, mock.Anything).Return(&model.User{ID: userID, Balance: balance}, nil)
	m.ledgerRepo.On("GetEntryByReference", ctx, mock.Anything, model.EntryStakeDebit, mock.Anything).Return(nil, model.ErrLedgerEntryNotFound)
	m.ledgerRepo.On("InsertEntry", ctx, mock.MatchedBy(func(e *model.LedgerEntry) bool {
		*reference = e.Reference
		return e.Delta == -amount && e.Kind == model.EntryStakeDebit
	}), mock.Anything).Return(true, nil)
	m.userRepo.On("AdjustBalance", ctx, userID, -amount, mock.Anything).Return(balance-amount, nil)
	m.userRepo.On("AddStats", ctx, userID, amount, int64(0), mock.Anything).Return(nil)
}

func TestStakeService_PlaceStake_HappyPath(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	var debitRef string
	runInline(m.dbManager, ctx)
	m.stakeRepo.On("HasOpenStake", ctx, "alice", "m1", mock.Anything).Return(false, nil)
	m.marketRepo.On("GetMarket", ctx, "m1", mock.Anything).Return(&model.Market{ID: "m1", State: model.MarketActive, FeeBps: 500}, nil)
	m.expectDebit(ctx, "alice", 500, 100, &debitRef)
	m.stakeRepo.On("InsertStake", ctx, mock.MatchedBy(func(s *model.Stake) bool {
		return s.ID == debitRef && s.UserID == "alice" && s.MarketID == "m1" && s.Side == model.SideYes && s.Amount == 100
	}), mock.Anything).Return(nil)
	m.marketRepo.On("IncrementPool", ctx, "m1", model.SideYes, int64(100), mock.Anything).
		Return(&model.Market{ID: "m1", State: model.MarketActive, YesPool: 100, NoPool: 300, FeeBps: 500}, nil)
	m.eventRepo.On("AppendEvent", ctx, mock.MatchedBy(func(e *model.Event) bool {
		return e.Type == model.EventStakePlaced &&
			e.MarketID == "m1" &&
			*e.StakeID == debitRef &&
			e.IdempotencyKey == nil &&
			e.ExternalSignature != nil && *e.ExternalSignature == "sig-1" &&
			string(e.Payload) == `{"side":"YES","amount":100,"new_total_yes":100,"new_total_no":300}`
	}), mock.Anything).Return(nil)
	m.observer.On("MarketChanged", ctx, mock.Anything, model.EventStakePlaced).Return()

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{
		MarketID:          "m1",
		Side:              "yes",
		Amount:            100,
		ExternalSignature: "sig-1",
	}, "alice")

	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(400), resp.Balance)
	assert.Equal(t, int64(100), resp.Market.YesPool)
	assert.Equal(t, debitRef, resp.Stake.ID)
}

func TestStakeService_PlaceStake_InvalidInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		userID string
		req    *model.PlaceStakeRequest
	}{
		{"zero amount", "alice", &model.PlaceStakeRequest{MarketID: "m1", Side: "YES", Amount: 0}},
		{"negative amount", "alice", &model.PlaceStakeRequest{MarketID: "m1", Side: "YES", Amount: -10}},
		{"unknown side", "alice", &model.PlaceStakeRequest{MarketID: "m1", Side: "MAYBE", Amount: 10}},
		{"missing user", "", &model.PlaceStakeRequest{MarketID: "m1", Side: "NO", Amount: 10}},
		{"missing market", "alice", &model.PlaceStakeRequest{Side: "NO", Amount: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newStakeMocks(t)

			resp, err := m.service().PlaceStake(ctx, tt.req, tt.userID)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, model.ErrInvalidStake)
			m.dbManager.AssertNotCalled(t, "WithTransaction")
		})
	}
}

func TestStakeService_PlaceStake_DuplicateOpenStake(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	runInline(m.dbManager, ctx)
	m.stakeRepo.On("HasOpenStake", ctx, "dave", "m1", mock.Anything).Return(true, nil)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{MarketID: "m1", Side: "NO", Amount: 10}, "dave")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrDuplicateStake)
	m.userRepo.AssertNotCalled(t, "GetUserForUpdate")
	m.marketRepo.AssertNotCalled(t, "IncrementPool")
}

func TestStakeService_PlaceStake_MarketNotOpen(t *testing.T) {
	ctx := context.Background()
	yes := model.SideYes
	reason := "external mismatch"

	tests := []struct {
		name    string
		market  *model.Market
		wantErr error
	}{
		{"locked", &model.Market{ID: "m1", State: model.MarketLocked}, model.ErrMarketClosed},
		{"resolving", &model.Market{ID: "m1", State: model.MarketResolving, PendingOutcome: &yes}, model.ErrMarketClosed},
		{"resolved", &model.Market{ID: "m1", State: model.MarketResolved, Outcome: &yes}, model.ErrMarketClosed},
		{"voided", &model.Market{ID: "m1", State: model.MarketVoided}, model.ErrMarketClosed},
		{"halted", &model.Market{ID: "m1", State: model.MarketActive, Halted: true, HaltReason: &reason}, model.ErrMarketHalted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newStakeMocks(t)
			runInline(m.dbManager, ctx)
			m.stakeRepo.On("HasOpenStake", ctx, "dave", "m1", mock.Anything).Return(false, nil)
			m.marketRepo.On("GetMarket", ctx, "m1", mock.Anything).Return(tt.market, nil)

			resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{MarketID: "m1", Side: "YES", Amount: 10}, "dave")

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			m.userRepo.AssertNotCalled(t, "GetUserForUpdate")
		})
	}
}

func TestStakeService_PlaceStake_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	runInline(m.dbManager, ctx)
	m.stakeRepo.On("HasOpenStake", ctx, "carol", "m1", mock.Anything).Return(false, nil)
	m.marketRepo.On("GetMarket", ctx, "m1", mock.Anything).Return(&model.Market{ID: "m1", State: model.MarketActive}, nil)
	m.userRepo.On("GetUserForUpdate", ctx, "carol", mock.Anything).Return(&model.User{ID: "carol", Balance: 50}, nil)
	m.ledgerRepo.On("GetEntryByReference", ctx, mock.Anything, model.EntryStakeDebit, mock.Anything).Return(nil, model.ErrLedgerEntryNotFound)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{MarketID: "m1", Side: "YES", Amount: 100}, "carol")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	m.stakeRepo.AssertNotCalled(t, "InsertStake")
	m.marketRepo.AssertNotCalled(t, "IncrementPool")
	m.eventRepo.AssertNotCalled(t, "AppendEvent")
}

func TestStakeService_PlaceStake_ResolutionWonRace(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	var debitRef string
	runInline(m.dbManager, ctx)
	m.stakeRepo.On("HasOpenStake", ctx, "alice", "m1", mock.Anything).Return(false, nil)
	m.marketRepo.On("GetMarket", ctx, "m1", mock.Anything).Return(&model.Market{ID: "m1", State: model.MarketActive}, nil)
	m.expectDebit(ctx, "alice", 500, 100, &debitRef)
	m.stakeRepo.On("InsertStake", ctx, mock.Anything, mock.Anything).Return(nil)
	m.marketRepo.On("IncrementPool", ctx, "m1", model.SideNo, int64(100), mock.Anything).Return(nil, model.ErrMarketNotActive)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{MarketID: "m1", Side: "NO", Amount: 100}, "alice")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrMarketNotActive)
	m.eventRepo.AssertNotCalled(t, "AppendEvent")
	m.observer.AssertNotCalled(t, "MarketChanged")
}

func TestStakeService_PlaceStake_IdempotencyKeyReplay(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	stakeID := "0b7e2d4c-1f0a-4c55-9a33-8d1f2f0e6a10"
	runInline(m.dbManager, ctx)
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-1", mock.Anything).Return(&model.Event{
		Type:     model.EventStakePlaced,
		MarketID: "m1",
		UserID:   strPtr("alice"),
		StakeID:  &stakeID,
	}, nil)
	m.stakeRepo.On("GetStake", ctx, stakeID, mock.Anything).Return(&model.Stake{
		ID:       stakeID,
		UserID:   "alice",
		MarketID: "m1",
		Side:     model.SideYes,
		Amount:   100,
	}, nil)
	m.userRepo.On("GetUser", ctx, "alice", mock.Anything).Return(&model.User{ID: "alice", Balance: 400}, nil)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{
		MarketID:       "m1",
		Side:           "YES",
		Amount:         100,
		IdempotencyKey: "key-1",
	}, "alice")

	require.NoError(t, err)
	assert.Equal(t, "already_processed", resp.Status)
	assert.Equal(t, stakeID, resp.Stake.ID)
	assert.Equal(t, int64(400), resp.Balance)
	m.stakeRepo.AssertNotCalled(t, "HasOpenStake")
	m.userRepo.AssertNotCalled(t, "GetUserForUpdate")
	m.observer.AssertNotCalled(t, "MarketChanged")
}

func TestStakeService_PlaceStake_IdempotencyKeyOtherUser(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	stakeID := "0b7e2d4c-1f0a-4c55-9a33-8d1f2f0e6a10"
	runInline(m.dbManager, ctx)
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-1", mock.Anything).Return(&model.Event{
		Type:     model.EventStakePlaced,
		MarketID: "m1",
		UserID:   strPtr("alice"),
		StakeID:  &stakeID,
	}, nil)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{
		MarketID:       "m1",
		Side:           "YES",
		Amount:         100,
		IdempotencyKey: "key-1",
	}, "mallory")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrIdempotencyKeyReused)
}

func TestStakeService_PlaceStake_IdempotencyKeyDifferentStake(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	stakeID := "0b7e2d4c-1f0a-4c55-9a33-8d1f2f0e6a10"
	runInline(m.dbManager, ctx)
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-1", mock.Anything).Return(&model.Event{
		Type:     model.EventStakePlaced,
		MarketID: "m1",
		UserID:   strPtr("alice"),
		StakeID:  &stakeID,
	}, nil)
	m.stakeRepo.On("GetStake", ctx, stakeID, mock.Anything).Return(&model.Stake{
		ID:       stakeID,
		UserID:   "alice",
		MarketID: "m1",
		Side:     model.SideYes,
		Amount:   100,
	}, nil)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{
		MarketID:       "m1",
		Side:           "NO",
		Amount:         100,
		IdempotencyKey: "key-1",
	}, "alice")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrIdempotencyKeyReused)
}

func TestStakeService_PlaceStake_IdempotencyKeyInsertRace(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	var debitRef string
	winnerID := "5d1c7c4e-2b7f-4a8e-b7a1-0c7e9f3d2a11"
	runInline(m.dbManager, ctx)

	// Inside the transaction the key is still free
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-1", mock.Anything).Return(nil, model.ErrEventNotFound).Once()
	m.stakeRepo.On("HasOpenStake", ctx, "alice", "m1", mock.Anything).Return(false, nil)
	m.marketRepo.On("GetMarket", ctx, "m1", mock.Anything).Return(&model.Market{ID: "m1", State: model.MarketActive}, nil)
	m.expectDebit(ctx, "alice", 500, 100, &debitRef)
	m.stakeRepo.On("InsertStake", ctx, mock.Anything, mock.Anything).Return(nil)
	m.marketRepo.On("IncrementPool", ctx, "m1", model.SideYes, int64(100), mock.Anything).
		Return(&model.Market{ID: "m1", State: model.MarketActive, YesPool: 200}, nil)
	m.eventRepo.On("AppendEvent", ctx, mock.Anything, mock.Anything).Return(model.ErrDuplicateEvent)

	// After rollback the committed winner is visible
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-1").Return(&model.Event{
		Type:     model.EventStakePlaced,
		MarketID: "m1",
		UserID:   strPtr("alice"),
		StakeID:  &winnerID,
	}, nil)
	m.stakeRepo.On("GetStake", ctx, winnerID).Return(&model.Stake{
		ID:       winnerID,
		UserID:   "alice",
		MarketID: "m1",
		Side:     model.SideYes,
		Amount:   100,
	}, nil)
	m.userRepo.On("GetUser", ctx, "alice").Return(&model.User{ID: "alice", Balance: 400}, nil)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{
		MarketID:       "m1",
		Side:           "YES",
		Amount:         100,
		IdempotencyKey: "key-1",
	}, "alice")

	require.NoError(t, err)
	assert.Equal(t, "already_processed", resp.Status)
	assert.Equal(t, winnerID, resp.Stake.ID)
	m.observer.AssertNotCalled(t, "MarketChanged")
}

func TestStakeService_PlaceStake_IdempotencyKeyOpenStakeRace(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	winnerID := "5d1c7c4e-2b7f-4a8e-b7a1-0c7e9f3d2a11"
	runInline(m.dbManager, ctx)

	// The winner committed between the key lookup and the open stake check
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-1", mock.Anything).Return(nil, model.ErrEventNotFound).Once()
	m.stakeRepo.On("HasOpenStake", ctx, "alice", "m1", mock.Anything).Return(true, nil)
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-1").Return(&model.Event{
		Type:     model.EventStakePlaced,
		MarketID: "m1",
		UserID:   strPtr("alice"),
		StakeID:  &winnerID,
	}, nil)
	m.stakeRepo.On("GetStake", ctx, winnerID).Return(&model.Stake{
		ID:       winnerID,
		UserID:   "alice",
		MarketID: "m1",
		Side:     model.SideNo,
		Amount:   50,
	}, nil)
	m.userRepo.On("GetUser", ctx, "alice").Return(&model.User{ID: "alice", Balance: 450}, nil)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{
		MarketID:       "m1",
		Side:           "no",
		Amount:         50,
		IdempotencyKey: "key-1",
	}, "alice")

	require.NoError(t, err)
	assert.Equal(t, "already_processed", resp.Status)
	assert.Equal(t, winnerID, resp.Stake.ID)
	assert.Equal(t, int64(450), resp.Balance)
}

func TestStakeService_PlaceStake_DuplicateOpenStakeWithUnusedKey(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	runInline(m.dbManager, ctx)
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-2", mock.Anything).Return(nil, model.ErrEventNotFound).Once()
	m.stakeRepo.On("HasOpenStake", ctx, "alice", "m1", mock.Anything).Return(true, nil)
	m.eventRepo.On("GetEventByIdempotencyKey", ctx, "key-2").Return(nil, model.ErrEventNotFound)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{
		MarketID:       "m1",
		Side:           "YES",
		Amount:         50,
		IdempotencyKey: "key-2",
	}, "alice")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrDuplicateStake)
}

func TestStakeService_PlaceStake_SignatureAlreadyRecorded(t *testing.T) {
	ctx := context.Background()
	m := newStakeMocks(t)

	var debitRef string
	runInline(m.dbManager, ctx)
	m.stakeRepo.On("HasOpenStake", ctx, "alice", "m1", mock.Anything).Return(false, nil)
	m.marketRepo.On("GetMarket", ctx, "m1", mock.Anything).Return(&model.Market{ID: "m1", State: model.MarketActive}, nil)
	m.expectDebit(ctx, "alice", 500, 100, &debitRef)
	m.stakeRepo.On("InsertStake", ctx, mock.Anything, mock.Anything).Return(nil)
	m.marketRepo.On("IncrementPool", ctx, "m1", model.SideYes, int64(100), mock.Anything).
		Return(&model.Market{ID: "m1", State: model.MarketActive, YesPool: 100}, nil)
	m.eventRepo.On("AppendEvent", ctx, mock.Anything, mock.Anything).Return(model.ErrDuplicateSignature)

	resp, err := m.service().PlaceStake(ctx, &model.PlaceStakeRequest{
		MarketID:          "m1",
		Side:              "YES",
		Amount:            100,
		ExternalSignature: "sig-1",
	}, "alice")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, model.ErrDuplicateSignature)
	assert.Equal(t, "duplicate_signature", rejectReason(err))
	m.observer.AssertNotCalled(t, "MarketChanged")
}

func strPtr(s string) *string {
	return &s
}
