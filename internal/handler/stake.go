package handler

import (
	"net/http"
	"parimutuel-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// PlaceStake
// @Summary Place a stake
// @Description Debits the user and adds the amount to one side's pool. A retry with the same idempotency_key returns the original stake.
// @Tags stakes
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param stake body model.PlaceStakeRequest true "Stake details"
// @Success 200 {object} model.StakeResponse "Already processed"
// @Success 201 {object} model.StakeResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 409 {object} model.ErrorResponse "Conflict"
// @Failure 423 {object} model.ErrorResponse "Market halted"
// @Router /stakes [post]
func (h *Handler) PlaceStake(c *gin.Context) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		badRequest(c, "X-User-ID header is required")
		return
	}

	var req model.PlaceStakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.stakes.PlaceStake(c.Request.Context(), &req, userID)
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

// ListStakesByUser
// @Summary Get user stakes
// @Description Returns a paginated list of stakes for a user, newest first
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Limit" default(10)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.StakeListResponse
// @Router /users/{id}/stakes [get]
func (h *Handler) ListStakesByUser(c *gin.Context) {
	limit, offset := pagination(c)

	stakes, err := h.stakes.ListStakesByUser(c.Request.Context(), c.Param("id"), limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.StakeListResponse{
		Stakes: stakes,
		Total:  len(stakes),
		Limit:  limit,
		Offset: offset,
	})
}
