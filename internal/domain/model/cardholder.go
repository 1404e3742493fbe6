package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardholderType classifies who carries a badge.
type CardholderType string

const (
	CardholderTypeStudent CardholderType = "student"
	CardholderTypeStaff   CardholderType = "staff"
	CardholderTypeVisitor CardholderType = "visitor"
)

// Valid reports whether the type belongs to the closed set accepted at registration.
func (t CardholderType) Valid() bool {
	switch t {
	case CardholderTypeStudent, CardholderTypeStaff, CardholderTypeVisitor:
		return true
	}
	return false
}

// Cardholder represents a registered badge identity. RFID, StudentID and Email
// are each unique across all cardholders.
type Cardholder struct {
	RFID      string
	StudentID string
	Email     string
	Name      string
	Program   string
	School    string
	Balance   decimal.Decimal
	Type      CardholderType
	CreatedAt time.Time
	UpdatedAt time.Time
}
