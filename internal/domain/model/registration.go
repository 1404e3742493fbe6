package model

import "github.com/shopspring/decimal"

// Registration carries the fields accepted when enrolling a cardholder.
// Balance and Type are optional; they default to zero and "student".
type Registration struct {
	RFID      string
	StudentID string
	Email     string
	Name      string
	Program   string
	School    string
	Balance   decimal.Decimal
	Type      CardholderType
}
