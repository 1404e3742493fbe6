package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterStudentRequest describes the cardholder registration payload.
type RegisterStudentRequest struct {
	RFID      string          `json:"rfid" binding:"required"`
	StudentID string          `json:"student_id" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	Name      string          `json:"name" binding:"required"`
	Program   string          `json:"program" binding:"required"`
	School    string          `json:"school" binding:"required"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"type"`
}

// StudentResponse describes a registered cardholder.
type StudentResponse struct {
	RFID      string          `json:"rfid"`
	StudentID string          `json:"student_id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Program   string          `json:"program"`
	School    string          `json:"school"`
	Balance   decimal.Decimal `json:"balance"`
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProfileResponse joins a cardholder with their tap history.
type ProfileResponse struct {
	StudentResponse
	Taps []TapResponse `json:"taps"`
}
