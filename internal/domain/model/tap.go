package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TapType marks the direction of a badge scan.
type TapType string

const (
	TapTypeEntry TapType = "entry"
	TapTypeExit  TapType = "exit"
)

// Valid reports whether the tap type is one of the accepted directions.
func (t TapType) Valid() bool {
	return t == TapTypeEntry || t == TapTypeExit
}

// Tap is an immutable record of a single badge scan. UserName, UserBalance and
// UserType are the cardholder's values at the moment of the tap and are never
// revised afterwards.
type Tap struct {
	ID          int64
	RFID        string
	Type        TapType
	Time        time.Time
	UserName    string
	UserBalance decimal.Decimal
	UserType    CardholderType
}
