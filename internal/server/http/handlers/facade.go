package handlers

import (
	"context"

	"campustap/internal/domain/model"
)

// RegistryFacade describes cardholder registry capabilities required by handlers.
type RegistryFacade interface {
	RegisterCardholder(ctx context.Context, in model.Registration) (*model.Cardholder, error)
	Cardholders(ctx context.Context, limit, offset int) ([]model.Cardholder, error)
}

// LedgerFacade encapsulates tap ledger operations exposed via HTTP.
type LedgerFacade interface {
	RecordTap(ctx context.Context, rfid string, tapType model.TapType) (*model.Tap, error)
	TapHistory(ctx context.Context, rfid string) ([]model.Tap, error)
	Profile(ctx context.Context, rfid string) (*model.Cardholder, []model.Tap, error)
}

// AccessFacade aggregates the full set of operations used across handlers.
type AccessFacade interface {
	RegistryFacade
	LedgerFacade
}

// HealthChecker reports readiness of the backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
