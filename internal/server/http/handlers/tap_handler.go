package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"campustap/internal/domain/model"
	"campustap/internal/server/http/dto"
)

// TapHandler manages tap ledger endpoints.
type TapHandler struct {
	facade LedgerFacade
	logger *slog.Logger
}

// NewTapHandler constructs TapHandler.
func NewTapHandler(facade LedgerFacade, logger *slog.Logger) *TapHandler {
	return &TapHandler{facade: facade, logger: logger}
}

// Record handles POST /api/taps.
func (h *TapHandler) Record(c *gin.Context) {
	var req dto.TapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tap, err := h.facade.RecordTap(c.Request.Context(), req.RFID, model.TapType(req.TapType))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toTapResponse(*tap))
}

// History handles GET /api/students/:rfid/taps.
func (h *TapHandler) History(c *gin.Context) {
	rfid := c.Param("rfid")

	taps, err := h.facade.TapHistory(c.Request.Context(), rfid)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toTapResponses(taps))
}
