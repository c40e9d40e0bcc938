package handler

import (
	"errors"
	"net/http"
	"parimutuel-engine/internal/model"

	"github.com/gin-gonic/gin"
)

// ImportExternalEvent
// @Summary Import an external settlement event
// @Description Records an event observed on the external settlement substrate and matches it against local state. A mismatch halts the market.
// @Tags reconciliation
// @Accept json
// @Produce json
// @Param X-Admin-Token header string false "Operator token"
// @Param event body model.ExternalEventRequest true "External event"
// @Success 200 {object} model.ImportResponse "Duplicate import"
// @Success 201 {object} model.ImportResponse "Matched"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 422 {object} model.ImportResponse "Mismatch recorded"
// @Router /reconciliation/events [post]
func (h *Handler) ImportExternalEvent(c *gin.Context) {
	var req model.ExternalEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	resp, err := h.reconciliation.ImportExternalEvent(c.Request.Context(), &req)
	if err != nil {
		// The mismatch is recorded; report it with the stored event.
		if resp != nil && errors.Is(err, model.ErrExternalMismatch) {
			c.JSON(http.StatusUnprocessableEntity, resp)
			return
		}
		h.handleError(c, err)
		return
	}

	statusCode := http.StatusCreated
	if resp.Status == "duplicate" {
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, resp)
}

// RunAudit
// @Summary Run a conservation audit
// @Description Compares balances with ledger sums and pools with stake sums. Drift is reported, never repaired.
// @Tags reconciliation
// @Produce json
// @Param X-Admin-Token header string false "Operator token"
// @Success 200 {object} model.AuditReport
// @Router /audit [post]
func (h *Handler) RunAudit(c *gin.Context) {
	report, err := h.audit.RunAudit(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
