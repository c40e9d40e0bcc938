package handler

import (
	"net/http"
	"parimutuel-engine/internal/model"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateMarket
// @Summary Create a market
// @Description Opens a binary YES/NO market with empty pools
// @Tags markets
// @Accept json
// @Produce json
// @Param X-Admin-Token header string false "Operator token"
// @Param market body model.CreateMarketRequest true "Market details"
// @Success 201 {object} model.Market
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Router /markets [post]
func (h *Handler) CreateMarket(c *gin.Context) {
	var req model.CreateMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	market, err := h.markets.CreateMarket(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, market)
}

// GetMarket
// @Summary Get a market
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Success 200 {object} model.Market
// @Failure 404 {object} model.ErrorResponse "Market not found"
// @Router /markets/{id} [get]
func (h *Handler) GetMarket(c *gin.Context) {
	market, err := h.markets.GetMarket(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, market)
}

// ListMarkets
// @Summary List markets
// @Description Returns a paginated list of markets, optionally filtered by state
// @Tags markets
// @Produce json
// @Param state query string false "Market state" Enums(ACTIVE, LOCKED, RESOLVING, RESOLVED, VOIDING, VOIDED)
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.MarketListResponse
// @Failure 400 {object} model.ErrorResponse "Unknown state"
// @Router /markets [get]
func (h *Handler) ListMarkets(c *gin.Context) {
	var state *model.MarketState
	if raw := c.Query("state"); raw != "" {
		parsed, err := model.ParseMarketState(raw)
		if err != nil {
			badRequest(c, "state must be one of ACTIVE, LOCKED, RESOLVING, RESOLVED, VOIDING, VOIDED")
			return
		}
		state = &parsed
	}
	limit, offset := pagination(c)

	markets, err := h.markets.ListMarkets(c.Request.Context(), state, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MarketListResponse{
		Markets: markets,
		Total:   len(markets),
		Limit:   limit,
		Offset:  offset,
	})
}

// QuoteOdds
// @Summary Quote odds
// @Description Implied probabilities from the current pools and the payout a hypothetical stake would receive. Never changes the pools.
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Param side query string true "Side" Enums(YES, NO)
// @Param amount query int false "Hypothetical stake in minor units" default(0)
// @Success 200 {object} model.QuoteResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Market not found"
// @Router /markets/{id}/quote [get]
func (h *Handler) QuoteOdds(c *gin.Context) {
	side, err := model.ParseSide(c.Query("side"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	amount, err := strconv.ParseInt(c.DefaultQuery("amount", "0"), 10, 64)
	if err != nil {
		h.handleError(c, model.ErrInvalidAmount)
		return
	}

	quote, err := h.markets.QuoteOdds(c.Request.Context(), c.Param("id"), side, amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// ListMarketEvents
// @Summary List market events
// @Description Returns the market's Event Log, newest first
// @Tags markets
// @Produce json
// @Param id path string true "Market ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.EventListResponse
// @Router /markets/{id}/events [get]
func (h *Handler) ListMarketEvents(c *gin.Context) {
	limit, offset := pagination(c)

	events, err := h.markets.ListEvents(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.EventListResponse{
		Events: events,
		Total:  len(events),
		Limit:  limit,
		Offset: offset,
	})
}

// LockMarket
// @Summary Lock a market
// @Description Stops the market from accepting stakes ahead of resolution
// @Tags markets
// @Produce json
// @Param X-Admin-Token header string false "Operator token"
// @Param id path string true "Market ID"
// @Success 200 {object} model.Market
// @Failure 404 {object} model.ErrorResponse "Market not found"
// @Failure 409 {object} model.ErrorResponse "Market not active"
// @Router /markets/{id}/lock [post]
func (h *Handler) LockMarket(c *gin.Context) {
	market, err := h.markets.LockMarket(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, market)
}

// ResolveMarket
// @Summary Resolve a market
// @Description Declares the outcome and pays every winning stake from the pot. Safe to retry.
// @Tags markets
// @Accept json
// @Produce json
// @Param X-Admin-Token header string false "Operator token"
// @Param id path string true "Market ID"
// @Param resolution body model.ResolveMarketRequest true "Outcome"
// @Success 200 {object} model.ResolutionResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Failure 423 {object} model.ErrorResponse "Market halted"
// @Router /markets/{id}/resolve [post]
func (h *Handler) ResolveMarket(c *gin.Context) {
	var req model.ResolveMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	outcome, err := model.ParseSide(req.Outcome)
	if err != nil {
		h.handleError(c, model.ErrInvalidOutcome)
		return
	}

	resp, err := h.resolution.ResolveMarket(c.Request.Context(), c.Param("id"), outcome)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VoidMarket
// @Summary Void a market
// @Description Refunds every open stake in full. Safe to retry.
// @Tags markets
// @Produce json
// @Param X-Admin-Token header string false "Operator token"
// @Param id path string true "Market ID"
// @Success 200 {object} model.ResolutionResponse
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Failure 423 {object} model.ErrorResponse "Market halted"
// @Router /markets/{id}/void [post]
func (h *Handler) VoidMarket(c *gin.Context) {
	resp, err := h.resolution.VoidMarket(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ClearHalt
// @Summary Clear a market halt
// @Description Lets automated processing continue after operator review
// @Tags markets
// @Produce json
// @Param X-Admin-Token header string false "Operator token"
// @Param id path string true "Market ID"
// @Success 200 {object} model.Market
// @Failure 404 {object} model.ErrorResponse "Market not found"
// @Router /markets/{id}/clear-halt [post]
func (h *Handler) ClearHalt(c *gin.Context) {
	market, err := h.markets.ClearHalt(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, market)
}
