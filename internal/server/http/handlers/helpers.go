package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "campustap/internal/domain/errors"
	"campustap/internal/domain/model"
	"campustap/internal/server/http/dto"
)

// writeError maps domain errors onto HTTP statuses with a JSON body.
// Unrecognized errors are logged and masked so store detail never
// reaches the caller.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput),
		errors.Is(err, domainErrors.ErrInvalidTapType),
		errors.Is(err, domainErrors.ErrInvalidCardholderType),
		errors.Is(err, domainErrors.ErrNegativeBalance):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func toStudentResponse(cardholder model.Cardholder) dto.StudentResponse {
	return dto.StudentResponse{
		RFID:      cardholder.RFID,
		StudentID: cardholder.StudentID,
		Email:     cardholder.Email,
		Name:      cardholder.Name,
		Program:   cardholder.Program,
		School:    cardholder.School,
		Balance:   cardholder.Balance,
		Type:      string(cardholder.Type),
		CreatedAt: cardholder.CreatedAt,
		UpdatedAt: cardholder.UpdatedAt,
	}
}

func toTapResponse(tap model.Tap) dto.TapResponse {
	return dto.TapResponse{
		ID:          tap.ID,
		RFID:        tap.RFID,
		TapType:     string(tap.Type),
		TapTime:     tap.Time,
		UserName:    tap.UserName,
		UserBalance: tap.UserBalance,
		UserType:    string(tap.UserType),
	}
}

func toTapResponses(taps []model.Tap) []dto.TapResponse {
	response := make([]dto.TapResponse, 0, len(taps))
	for _, tap := range taps {
		response = append(response, toTapResponse(tap))
	}
	return response
}
