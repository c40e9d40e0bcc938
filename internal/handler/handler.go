package handler

import (
	"errors"
	"net/http"
	"parimutuel-engine/internal/metrics"
	"parimutuel-engine/internal/model"
	"parimutuel-engine/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// Services bundles the engine operations exposed over HTTP
type Services struct {
	Markets        service.MarketService
	Stakes         service.StakeService
	Resolution     service.ResolutionService
	Ledger         service.LedgerService
	Reconciliation service.ReconciliationService
	Audit          service.AuditService
}

// StreamHandler serves the realtime websocket feed
type StreamHandler interface {
	HandleWS(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	markets        service.MarketService
	stakes         service.StakeService
	resolution     service.ResolutionService
	ledger         service.LedgerService
	reconciliation service.ReconciliationService
	audit          service.AuditService
	stream         StreamHandler
	adminToken     string
	logger         zerolog.Logger
}

// NewHandler wires the services to routes. stream may be nil, which leaves
// the websocket route unregistered. An empty adminToken disables the operator guard.
func NewHandler(svcs Services, stream StreamHandler, adminToken string, logger zerolog.Logger) *Handler {
	return &Handler{
		markets:        svcs.Markets,
		stakes:         svcs.Stakes,
		resolution:     svcs.Resolution,
		ledger:         svcs.Ledger,
		reconciliation: svcs.Reconciliation,
		audit:          svcs.Audit,
		stream:         stream,
		adminToken:     adminToken,
		logger:         logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		metrics.Middleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	admin := AdminAuthMiddleware(h.adminToken)

	markets := v1.Group("/markets")
	markets.GET("", h.ListMarkets)
	markets.GET("/:id", h.GetMarket)
	markets.GET("/:id/quote", h.QuoteOdds)
	markets.GET("/:id/events", h.ListMarketEvents)
	markets.POST("", admin, h.CreateMarket)
	markets.POST("/:id/lock", admin, h.LockMarket)
	markets.POST("/:id/resolve", admin, h.ResolveMarket)
	markets.POST("/:id/void", admin, h.VoidMarket)
	markets.POST("/:id/clear-halt", admin, h.ClearHalt)

	v1.POST("/stakes", h.PlaceStake)

	users := v1.Group("/users")
	users.GET("/:id/balance", h.GetBalance)
	users.GET("/:id/stakes", h.ListStakesByUser)
	users.GET("/:id/ledger", h.ListLedgerEntries)
	users.POST("/:id/deposits", admin, h.Deposit)

	v1.POST("/reconciliation/events", admin, h.ImportExternalEvent)
	v1.POST("/audit", admin, h.RunAudit)

	if h.stream != nil {
		v1.GET("/ws", gin.WrapF(h.stream.HandleWS))
	}

	return router
}

// pagination reads limit and offset query parameters, clamped to sane bounds
func pagination(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: msg,
		Code:  "INVALID_REQUEST",
	})
}

type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{model.ErrInvalidStake, http.StatusBadRequest, "INVALID_STAKE"},
	{model.ErrInsufficientFunds, http.StatusBadRequest, "INSUFFICIENT_FUNDS"},
	{model.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT"},
	{model.ErrInvalidFee, http.StatusBadRequest, "INVALID_FEE"},
	{model.ErrInvalidSide, http.StatusBadRequest, "INVALID_SIDE"},
	{model.ErrInvalidQuestion, http.StatusBadRequest, "INVALID_QUESTION"},
	{model.ErrInvalidOutcome, http.StatusBadRequest, "INVALID_OUTCOME"},
	{model.ErrInvalidEventType, http.StatusBadRequest, "INVALID_EVENT_TYPE"},
	{model.ErrInvalidEntryKind, http.StatusBadRequest, "INVALID_ENTRY_KIND"},

	{model.ErrMarketHalted, http.StatusLocked, "MARKET_HALTED"},
	{model.ErrMarketClosed, http.StatusConflict, "MARKET_CLOSED"},
	{model.ErrMarketNotActive, http.StatusConflict, "MARKET_NOT_ACTIVE"},
	{model.ErrDuplicateStake, http.StatusConflict, "DUPLICATE_STAKE"},
	{model.ErrAlreadyResolved, http.StatusConflict, "ALREADY_RESOLVED"},
	{model.ErrResolutionConflict, http.StatusConflict, "RESOLUTION_CONFLICT"},
	{model.ErrIdempotencyKeyReused, http.StatusConflict, "IDEMPOTENCY_KEY_REUSED"},
	{model.ErrDuplicateReference, http.StatusConflict, "DUPLICATE_REFERENCE"},
	{model.ErrDuplicateSignature, http.StatusConflict, "DUPLICATE_SIGNATURE"},
	{model.ErrDuplicateEvent, http.StatusConflict, "DUPLICATE_EVENT"},
	{model.ErrResolutionInProgress, http.StatusConflict, "RESOLUTION_IN_PROGRESS"},
	{model.ErrInvalidMarketState, http.StatusConflict, "INVALID_MARKET_STATE"},
	{model.ErrExternalMismatch, http.StatusUnprocessableEntity, "EXTERNAL_MISMATCH"},

	{model.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{model.ErrMarketNotFound, http.StatusNotFound, "MARKET_NOT_FOUND"},
	{model.ErrStakeNotFound, http.StatusNotFound, "STAKE_NOT_FOUND"},
	{model.ErrEventNotFound, http.StatusNotFound, "EVENT_NOT_FOUND"},
	{model.ErrLedgerEntryNotFound, http.StatusNotFound, "LEDGER_ENTRY_NOT_FOUND"},
	{model.ErrExternalEventNotFound, http.StatusNotFound, "EXTERNAL_EVENT_NOT_FOUND"},

	{model.ErrStorageFailure, http.StatusServiceUnavailable, "STORAGE_FAILURE"},
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			status = m.status
			code = m.code
			break
		}
	}
	switch code {
	case "DUPLICATE_REFERENCE":
		resp.Details = "Reference already used by a different user"
	case "MARKET_HALTED":
		resp.Details = "Market is halted pending operator review"
	case "DUPLICATE_SIGNATURE":
		resp.Details = "External signature already recorded on another event"
	}
	resp.Code = code

	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("internal server error")
	}

	c.JSON(status, resp)
}
