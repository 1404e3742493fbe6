package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"campustap/internal/domain/model"
)

// CardholderRepository describes persistence operations for cardholders.
type CardholderRepository interface {
	Create(ctx context.Context, cardholder model.Cardholder) (*model.Cardholder, error)
	GetByRFID(ctx context.Context, rfid string) (*model.Cardholder, error)
	List(ctx context.Context, limit, offset int) ([]model.Cardholder, error)
	ExistsAny(ctx context.Context, rfid, studentID, email string) (bool, error)
	SelectBatchForSync(ctx context.Context, limit int) ([]model.Cardholder, error)
	UpdateBalance(ctx context.Context, rfid string, balance decimal.Decimal) error
}
