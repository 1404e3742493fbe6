package repository

import (
	"context"

	"campustap/internal/domain/model"
)

// TapRepository describes persistence operations for the append-only tap log.
// There is deliberately no update or delete.
type TapRepository interface {
	Create(ctx context.Context, tap model.Tap) (*model.Tap, error)
	ListByRFID(ctx context.Context, rfid string) ([]model.Tap, error)
}
