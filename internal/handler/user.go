package handler

import (
	"net/http"
	"parimutuel-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// GetBalance
// @Summary Get user balance
// @Description Returns the current balance and lifetime totals for a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/{id}/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	resp, err := h.ledger.GetBalance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Deposit
// @Summary Credit a deposit
// @Description Credits a confirmed external deposit. Creates the user on first deposit. Idempotent on deposit_id.
// @Tags users
// @Accept json
// @Produce json
// @Param X-Admin-Token header string false "Operator token"
// @Param id path string true "User ID"
// @Param deposit body model.DepositRequest true "Deposit details"
// @Success 200 {object} model.LedgerResponse "Already processed"
// @Success 201 {object} model.LedgerResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Reference used by another user"
// @Router /users/{id}/deposits [post]
func (h *Handler) Deposit(c *gin.Context) {
	var req model.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.ledger.Deposit(c.Request.Context(), &req, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	statusCode := http.StatusCreated
	if resp.Status == "already_processed" {
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, resp)
}

// ListLedgerEntries
// @Summary Get user ledger
// @Description Returns a paginated list of ledger entries for a user, newest first
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.LedgerListResponse
// @Router /users/{id}/ledger [get]
func (h *Handler) ListLedgerEntries(c *gin.Context) {
	limit, offset := pagination(c)

	entries, err := h.ledger.ListEntries(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LedgerListResponse{
		Entries: entries,
		Total:   len(entries),
		Limit:   limit,
		Offset:  offset,
	})
}
