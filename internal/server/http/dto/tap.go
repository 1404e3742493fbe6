package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TapRequest describes an incoming badge tap event.
type TapRequest struct {
	RFID    string `json:"rfid" binding:"required"`
	TapType string `json:"tap_type" binding:"required"`
}

// TapResponse describes a recorded tap ledger entry.
type TapResponse struct {
	ID          int64           `json:"id"`
	RFID        string          `json:"rfid"`
	TapType     string          `json:"tap_type"`
	TapTime     time.Time       `json:"tap_time"`
	UserName    string          `json:"user_name"`
	UserBalance decimal.Decimal `json:"user_balance"`
	UserType    string          `json:"user_type"`
}
