package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"parimutuel-engine/internal/config"
	"parimutuel-engine/internal/database"
	"parimutuel-engine/internal/handler"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/notify"
	"parimutuel-engine/internal/repository/postgres"
	"parimutuel-engine/internal/service"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool   *pgxpool.Pool
	testConfig *config.Config
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	pool, err := database.NewPool(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, zerolog.Nop()); err != nil {
		fmt.Printf("failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	testPool = pool
	testConfig = cfg
	os.Exit(m.Run())
}

func setupE2E(t *testing.T) *gin.Engine {
	if testPool == nil {
		t.Skip("Database connection not available")
	}
	gin.SetMode(gin.TestMode)

	logger := zerolog.Nop()
	userRepo := postgres.NewUserRepository(testPool)
	ledgerRepo := postgres.NewLedgerRepository(testPool)
	marketRepo := postgres.NewMarketRepository(testPool)
	stakeRepo := postgres.NewStakeRepository(testPool)
	eventRepo := postgres.NewEventRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)

	// The hub is not running; broadcasts fill its buffer and are dropped after that
	fanout := notify.NewMarketFanout(nil, notify.NewHub(logger), logger)
	alerter := notify.NewLogAlerter(logger)

	svcs := handler.Services{
		Markets: service.NewMarketService(marketRepo, eventRepo, dbManager, fanout, service.MarketSettings{
			DefaultFeeBps: testConfig.Market.DefaultFeeBps,
			MaxFeeBps:     testConfig.Market.MaxFeeBps,
		}, logger),
		Stakes: service.NewStakeService(userRepo, ledgerRepo, marketRepo, stakeRepo, eventRepo, dbManager, fanout, logger),
		Resolution: service.NewResolutionService(userRepo, ledgerRepo, marketRepo, stakeRepo, eventRepo, dbManager,
			fanout, alerter, nil, service.ResolutionSettings{LockTTL: time.Minute, RecoveryBatchSize: 10}, logger),
		Ledger:         service.NewLedgerService(userRepo, ledgerRepo, dbManager, logger),
		Reconciliation: service.NewReconciliationService(marketRepo, eventRepo, dbManager, fanout, alerter, logger),
		Audit:          service.NewAuditService(ledgerRepo, marketRepo, alerter, 100, logger),
	}

	return handler.NewHandler(svcs, nil, "", logger).SetupRoutes()
}

func newUserID() string {
	return "e2e-" + uuid.New().String()
}

func do(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createMarket(t *testing.T, router *gin.Engine, feeBps int) string {
	w := do(router, http.MethodPost, "/api/v1/markets", model.CreateMarketRequest{
		Question: "Will the e2e suite pass?",
		FeeBps:   &feeBps,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var market model.Market
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &market))
	return market.ID
}

func deposit(t *testing.T, router *gin.Engine, userID string, amount int64) {
	w := do(router, http.MethodPost, "/api/v1/users/"+userID+"/deposits", model.DepositRequest{
		DepositID: "dep-" + uuid.New().String(),
		Amount:    amount,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func placeStake(router *gin.Engine, userID string, req model.PlaceStakeRequest) *httptest.ResponseRecorder {
	return do(router, http.MethodPost, "/api/v1/stakes", req, map[string]string{"X-User-ID": userID})
}

func balanceOf(t *testing.T, userID string) int64 {
	var balance int64
	err := testPool.QueryRow(context.Background(), "SELECT balance FROM users WHERE id = $1", userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

func stakeCount(t *testing.T, userID, marketID string) int {
	var n int
	err := testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM stakes WHERE user_id = $1 AND market_id = $2", userID, marketID).Scan(&n)
	require.NoError(t, err)
	return n
}

func marketOf(t *testing.T, router *gin.Engine, marketID string) model.Market {
	w := do(router, http.MethodGet, "/api/v1/markets/"+marketID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var market model.Market
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &market))
	return market
}

func errorCode(w *httptest.ResponseRecorder) string {
	var resp model.ErrorResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Code
}

// Test_Settlement_FeeAndPayout verifies the worked example: pools 100 YES and
// 300 NO with a 500 bps fee pay the single YES staker 380.
func Test_Settlement_FeeAndPayout(t *testing.T) {
	router := setupE2E(t)

	alice, bob := newUserID(), newUserID()
	deposit(t, router, alice, 1000)
	deposit(t, router, bob, 1000)
	marketID := createMarket(t, router, 500)

	w := placeStake(router, alice, model.PlaceStakeRequest{MarketID: marketID, Side: "YES", Amount: 100})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = placeStake(router, bob, model.PlaceStakeRequest{MarketID: marketID, Side: "NO", Amount: 300})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(router, http.MethodGet, "/api/v1/markets/"+marketID+"/quote?side=YES&amount=0", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var quote model.QuoteResponse
	json.Unmarshal(w.Body.Bytes(), &quote)
	assert.Equal(t, "0.2500", quote.YesProbability)
	assert.Equal(t, "3.8000", quote.CurrentMultiplier)

	w = do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/resolve", model.ResolveMarketRequest{Outcome: "YES"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.ResolutionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resolved", resp.Status)
	require.NotNil(t, resp.Settlement)
	assert.Equal(t, int64(400), resp.Settlement.TotalPot)
	assert.Equal(t, int64(20), resp.Settlement.Fee)
	assert.Equal(t, int64(380), resp.Settlement.Distributed)
	assert.Equal(t, int64(0), resp.Settlement.Residue)

	assert.Equal(t, int64(1280), balanceOf(t, alice))
	assert.Equal(t, int64(700), balanceOf(t, bob))

	market := marketOf(t, router, marketID)
	assert.Equal(t, model.MarketResolved, market.State)
	require.NotNil(t, market.Outcome)
	assert.Equal(t, model.SideYes, *market.Outcome)

	// Retrying the resolution is a no-op
	w = do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/resolve", model.ResolveMarketRequest{Outcome: "YES"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "already_resolved", resp.Status)
	assert.Equal(t, int64(1280), balanceOf(t, alice))

	// A different outcome is a conflict
	w = do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/resolve", model.ResolveMarketRequest{Outcome: "NO"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "RESOLUTION_CONFLICT", errorCode(w))

	w = do(router, http.MethodGet, "/api/v1/markets/"+marketID+"/events?limit=50", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events model.EventListResponse
	json.Unmarshal(w.Body.Bytes(), &events)
	types := make(map[model.EventType]int)
	for _, e := range events.Events {
		types[e.Type]++
	}
	assert.Equal(t, 1, types[model.EventMarketCreated])
	assert.Equal(t, 2, types[model.EventStakePlaced])
	assert.Equal(t, 1, types[model.EventMarketResolved])
}

// Test_DuplicateStakeThenMarketClosed verifies one open stake per user and
// that a locked market rejects new stakes.
func Test_DuplicateStakeThenMarketClosed(t *testing.T) {
	router := setupE2E(t)

	carol, dave := newUserID(), newUserID()
	deposit(t, router, carol, 500)
	deposit(t, router, dave, 500)
	marketID := createMarket(t, router, 200)

	w := placeStake(router, carol, model.PlaceStakeRequest{MarketID: marketID, Side: "YES", Amount: 50})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = placeStake(router, carol, model.PlaceStakeRequest{MarketID: marketID, Side: "NO", Amount: 50})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_STAKE", errorCode(w))
	assert.Equal(t, int64(450), balanceOf(t, carol))

	w = do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/lock", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = placeStake(router, dave, model.PlaceStakeRequest{MarketID: marketID, Side: "NO", Amount: 50})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MARKET_CLOSED", errorCode(w))
	assert.Equal(t, int64(500), balanceOf(t, dave))

	w = placeStake(router, dave, model.PlaceStakeRequest{MarketID: marketID, Side: "NO", Amount: 5000})
	assert.Equal(t, http.StatusConflict, w.Code, "market state is checked before funds")

	w = do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/resolve", model.ResolveMarketRequest{Outcome: "YES"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = placeStake(router, dave, model.PlaceStakeRequest{MarketID: marketID, Side: "YES", Amount: 50})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "MARKET_CLOSED", errorCode(w))
	assert.Equal(t, int64(500), balanceOf(t, dave))
	assert.Equal(t, 0, stakeCount(t, dave, marketID))
}

// Test_InsufficientFundsLeavesNoTrace verifies that a stake larger than the
// balance changes neither the balance, the stakes nor the pools.
func Test_InsufficientFundsLeavesNoTrace(t *testing.T) {
	router := setupE2E(t)

	carol := newUserID()
	deposit(t, router, carol, 20)
	marketID := createMarket(t, router, 200)

	w := placeStake(router, carol, model.PlaceStakeRequest{MarketID: marketID, Side: "YES", Amount: 50})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_FUNDS", errorCode(w))

	assert.Equal(t, int64(20), balanceOf(t, carol))
	assert.Equal(t, 0, stakeCount(t, carol, marketID))
	market := marketOf(t, router, marketID)
	assert.Equal(t, int64(0), market.YesPool)
	assert.Equal(t, int64(0), market.NoPool)

	// The rejected attempt does not block a stake that fits
	w = placeStake(router, carol, model.PlaceStakeRequest{MarketID: marketID, Side: "YES", Amount: 20})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, int64(0), balanceOf(t, carol))
}

// Test_ConcurrentStakes_SameIdempotencyKey verifies:
// - Duplicated concurrent requests with the same idempotency key
// - Exactly one stake is admitted and debited
// - All other requests receive "already_processed" status
// - All goroutines start simultaneously via barrier channel
func Test_ConcurrentStakes_SameIdempotencyKey(t *testing.T) {
	router := setupE2E(t)

	const numRequests = 25

	user := newUserID()
	deposit(t, router, user, 1000)
	marketID := createMarket(t, router, 200)
	key := uuid.New().String()

	barrier := make(chan struct{})
	type result struct {
		statusCode int
		response   model.StakeResponse
	}
	results := make(chan result, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)
	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()
			<-barrier

			w := placeStake(router, user, model.PlaceStakeRequest{
				MarketID:       marketID,
				Side:           "YES",
				Amount:         100,
				IdempotencyKey: key,
			})
			var resp model.StakeResponse
			json.Unmarshal(w.Body.Bytes(), &resp)
			results <- result{statusCode: w.Code, response: resp}
		}()
	}

	close(barrier)
	wg.Wait()
	close(results)

	var successCount, alreadyProcessedCount, errorCount int
	for res := range results {
		assert.NotEqual(t, http.StatusInternalServerError, res.statusCode, "No 500 errors")

		switch {
		case res.statusCode == http.StatusCreated && res.response.Status == "success":
			successCount++
		case res.statusCode == http.StatusOK && res.response.Status == "already_processed":
			alreadyProcessedCount++
		default:
			errorCount++
			t.Logf("Unexpected response: status=%d, body=%+v", res.statusCode, res.response)
		}
	}

	assert.Equal(t, 1, successCount, "Exactly one request should place the stake")
	assert.Equal(t, numRequests-1, alreadyProcessedCount, "All other requests should replay it")
	assert.Equal(t, 0, errorCount)

	assert.Equal(t, int64(900), balanceOf(t, user), "Balance should be debited exactly once")
	market := marketOf(t, router, marketID)
	assert.Equal(t, int64(100), market.YesPool)
}

// Test_ConcurrentStakes_ManyUsers verifies pool and balance conservation
// when many users stake on the same market at once.
func Test_ConcurrentStakes_ManyUsers(t *testing.T) {
	router := setupE2E(t)

	const (
		numUsers = 20
		amount   = 10
	)

	marketID := createMarket(t, router, 200)
	users := make([]string, numUsers)
	for i := range users {
		users[i] = newUserID()
		deposit(t, router, users[i], 100)
	}

	barrier := make(chan struct{})
	codes := make(chan int, numUsers)

	var wg sync.WaitGroup
	wg.Add(numUsers)
	for i, user := range users {
		side := "YES"
		if i%2 == 1 {
			side = "NO"
		}
		go func() {
			defer wg.Done()
			<-barrier
			w := placeStake(router, user, model.PlaceStakeRequest{MarketID: marketID, Side: side, Amount: amount})
			codes <- w.Code
		}()
	}

	close(barrier)
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusCreated, code)
	}

	market := marketOf(t, router, marketID)
	assert.Equal(t, int64(numUsers/2*amount), market.YesPool)
	assert.Equal(t, int64(numUsers/2*amount), market.NoPool)
	for _, user := range users {
		assert.Equal(t, int64(100-amount), balanceOf(t, user))
	}
}

// Test_ConcurrentResolve verifies that racing resolutions credit every
// winner exactly once and that exactly one of them reports "resolved".
func Test_ConcurrentResolve(t *testing.T) {
	router := setupE2E(t)

	const numRequests = 8

	marketID := createMarket(t, router, 0)
	winners := []string{newUserID(), newUserID(), newUserID()}
	loser := newUserID()
	for _, u := range append(winners, loser) {
		deposit(t, router, u, 1000)
	}
	for _, u := range winners {
		w := placeStake(router, u, model.PlaceStakeRequest{MarketID: marketID, Side: "NO", Amount: 100})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w := placeStake(router, loser, model.PlaceStakeRequest{MarketID: marketID, Side: "YES", Amount: 300})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	barrier := make(chan struct{})
	statuses := make(chan string, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)
	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			w := do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/resolve", model.ResolveMarketRequest{Outcome: "NO"}, nil)
			if w.Code != http.StatusOK {
				statuses <- fmt.Sprintf("http %d: %s", w.Code, w.Body.String())
				return
			}
			var resp model.ResolutionResponse
			json.Unmarshal(w.Body.Bytes(), &resp)
			statuses <- resp.Status
		}()
	}

	close(barrier)
	wg.Wait()
	close(statuses)

	counts := make(map[string]int)
	for s := range statuses {
		counts[s]++
	}
	assert.Equal(t, 1, counts["resolved"], "counts: %v", counts)
	assert.Equal(t, numRequests-1, counts["already_resolved"], "counts: %v", counts)

	// Fee 0: the 600 pot splits evenly over three 100 stakes
	for _, u := range winners {
		assert.Equal(t, int64(1100), balanceOf(t, u))
	}
	assert.Equal(t, int64(700), balanceOf(t, loser))
}

// Test_VoidRefundsStakes verifies that voiding returns every stake in full
func Test_VoidRefundsStakes(t *testing.T) {
	router := setupE2E(t)

	erin, frank := newUserID(), newUserID()
	deposit(t, router, erin, 200)
	deposit(t, router, frank, 200)
	marketID := createMarket(t, router, 500)

	require.Equal(t, http.StatusCreated, placeStake(router, erin, model.PlaceStakeRequest{MarketID: marketID, Side: "YES", Amount: 120}).Code)
	require.Equal(t, http.StatusCreated, placeStake(router, frank, model.PlaceStakeRequest{MarketID: marketID, Side: "NO", Amount: 80}).Code)

	w := do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/void", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp model.ResolutionResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "voided", resp.Status)
	require.NotNil(t, resp.Settlement)
	assert.Equal(t, int64(200), resp.Settlement.Refunded)

	assert.Equal(t, int64(200), balanceOf(t, erin))
	assert.Equal(t, int64(200), balanceOf(t, frank))
	assert.Equal(t, model.MarketVoided, marketOf(t, router, marketID).State)

	w = do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/resolve", model.ResolveMarketRequest{Outcome: "YES"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

// Test_DepositIdempotency verifies that a replayed deposit credits once
func Test_DepositIdempotency(t *testing.T) {
	router := setupE2E(t)

	user, other := newUserID(), newUserID()
	req := model.DepositRequest{DepositID: "dep-" + uuid.New().String(), Amount: 250}

	w := do(router, http.MethodPost, "/api/v1/users/"+user+"/deposits", req, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = do(router, http.MethodPost, "/api/v1/users/"+user+"/deposits", req, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, int64(250), balanceOf(t, user))

	w = do(router, http.MethodPost, "/api/v1/users/"+other+"/deposits", req, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_REFERENCE", errorCode(w))
}

// Test_ConcurrentDeposits_SameReference verifies that racing deliveries of
// one deposit credit the balance exactly once.
func Test_ConcurrentDeposits_SameReference(t *testing.T) {
	router := setupE2E(t)

	const numRequests = 20

	user := newUserID()
	req := model.DepositRequest{DepositID: "dep-" + uuid.New().String(), Amount: 75}

	barrier := make(chan struct{})
	codes := make(chan int, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)
	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()
			<-barrier
			w := do(router, http.MethodPost, "/api/v1/users/"+user+"/deposits", req, nil)
			codes <- w.Code
		}()
	}

	close(barrier)
	wg.Wait()
	close(codes)

	counts := make(map[int]int)
	for code := range codes {
		counts[code]++
	}
	assert.Equal(t, 1, counts[http.StatusCreated], "counts: %v", counts)
	assert.Equal(t, numRequests-1, counts[http.StatusOK], "counts: %v", counts)

	assert.Equal(t, int64(75), balanceOf(t, user), "Balance should be credited exactly once")
	var entries int
	err := testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM ledger_entries WHERE user_id = $1", user).Scan(&entries)
	require.NoError(t, err)
	assert.Equal(t, 1, entries)
}

// Test_AuditAfterSettlement verifies that after stakes, a resolution with
// flooring residue and a void, every balance equals its ledger sum and every
// pool equals its stakes.
func Test_AuditAfterSettlement(t *testing.T) {
	router := setupE2E(t)

	users := []string{newUserID(), newUserID(), newUserID(), newUserID()}
	for _, u := range users {
		deposit(t, router, u, 1000)
	}

	// 7 + 13 YES against 31 NO at 300 bps leaves flooring residue
	resolved := createMarket(t, router, 300)
	require.Equal(t, http.StatusCreated, placeStake(router, users[0], model.PlaceStakeRequest{MarketID: resolved, Side: "YES", Amount: 7}).Code)
	require.Equal(t, http.StatusCreated, placeStake(router, users[1], model.PlaceStakeRequest{MarketID: resolved, Side: "YES", Amount: 13}).Code)
	require.Equal(t, http.StatusCreated, placeStake(router, users[2], model.PlaceStakeRequest{MarketID: resolved, Side: "NO", Amount: 31}).Code)
	w := do(router, http.MethodPost, "/api/v1/markets/"+resolved+"/resolve", model.ResolveMarketRequest{Outcome: "YES"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	voided := createMarket(t, router, 200)
	require.Equal(t, http.StatusCreated, placeStake(router, users[3], model.PlaceStakeRequest{MarketID: voided, Side: "NO", Amount: 90}).Code)
	w = do(router, http.MethodPost, "/api/v1/markets/"+voided+"/void", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	active := createMarket(t, router, 200)
	require.Equal(t, http.StatusCreated, placeStake(router, users[0], model.PlaceStakeRequest{MarketID: active, Side: "NO", Amount: 40}).Code)

	w = do(router, http.MethodPost, "/api/v1/audit", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report model.AuditReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	for _, d := range report.BalanceDrifts {
		for _, u := range users {
			assert.NotEqual(t, u, d.UserID, "balance drift: %+v", d)
		}
	}
	for _, d := range report.PoolDrifts {
		for _, m := range []string{resolved, voided, active} {
			assert.NotEqual(t, m, d.MarketID, "pool drift: %+v", d)
		}
	}

	// Pot 51, distributable floor(51*0.97) = 49, payouts 17 and 31, residue 1
	assert.Equal(t, int64(1000-7+17-40), balanceOf(t, users[0]))
	assert.Equal(t, int64(1000-13+31), balanceOf(t, users[1]))
	assert.Equal(t, int64(1000-31), balanceOf(t, users[2]))
	assert.Equal(t, int64(1000), balanceOf(t, users[3]), "void refunds in full")
}

// Test_ReconciliationMismatchHaltsMarket verifies that an external stake
// disagreeing with the local record halts the market.
func Test_ReconciliationMismatchHaltsMarket(t *testing.T) {
	router := setupE2E(t)

	user := newUserID()
	deposit(t, router, user, 500)
	marketID := createMarket(t, router, 200)
	sig := "sig-" + uuid.New().String()

	w := placeStake(router, user, model.PlaceStakeRequest{MarketID: marketID, Side: "YES", Amount: 100, ExternalSignature: sig})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	wrong := int64(250)
	w = do(router, http.MethodPost, "/api/v1/reconciliation/events", model.ExternalEventRequest{
		Signature: sig,
		Slot:      1,
		Type:      "STAKE_PLACED",
		MarketID:  marketID,
		UserID:    user,
		Side:      "YES",
		Amount:    &wrong,
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

	market := marketOf(t, router, marketID)
	assert.True(t, market.Halted)

	other := newUserID()
	deposit(t, router, other, 500)
	w = placeStake(router, other, model.PlaceStakeRequest{MarketID: marketID, Side: "NO", Amount: 10})
	assert.Equal(t, http.StatusLocked, w.Code)
	assert.Equal(t, "MARKET_HALTED", errorCode(w))

	w = do(router, http.MethodPost, "/api/v1/markets/"+marketID+"/clear-halt", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = placeStake(router, other, model.PlaceStakeRequest{MarketID: marketID, Side: "NO", Amount: 10})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
