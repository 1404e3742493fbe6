package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campustap/internal/domain/model"
	"campustap/internal/server/http/dto"
)

// StudentHandler manages cardholder registry endpoints.
type StudentHandler struct {
	facade AccessFacade
	logger *slog.Logger
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(facade AccessFacade, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{facade: facade, logger: logger}
}

// Register handles POST /api/students.
func (h *StudentHandler) Register(c *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.facade.RegisterCardholder(c.Request.Context(), model.Registration{
		RFID:      req.RFID,
		StudentID: req.StudentID,
		Email:     req.Email,
		Name:      req.Name,
		Program:   req.Program,
		School:    req.School,
		Balance:   req.Balance,
		Type:      model.CardholderType(req.Type),
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toStudentResponse(*created))
}

// List handles GET /api/students.
func (h *StudentHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	cardholders, err := h.facade.Cardholders(c.Request.Context(), limit, offset)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	response := make([]dto.StudentResponse, 0, len(cardholders))
	for _, cardholder := range cardholders {
		response = append(response, toStudentResponse(cardholder))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/students/:rfid and returns the cardholder
// together with their tap history.
func (h *StudentHandler) Get(c *gin.Context) {
	rfid := c.Param("rfid")

	cardholder, taps, err := h.facade.Profile(c.Request.Context(), rfid)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		StudentResponse: toStudentResponse(*cardholder),
		Taps:            toTapResponses(taps),
	})
}
