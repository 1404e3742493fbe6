package model

import "github.com/shopspring/decimal"

// BalanceReading is a cardholder balance as reported by the external bursar system.
type BalanceReading struct {
	RFID    string
	Balance decimal.Decimal
}
