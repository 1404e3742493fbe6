package app

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"campustap/internal/domain/model"
	"campustap/internal/usecase"
)

// BalanceProvider queries the external balance authority for one cardholder.
type BalanceProvider interface {
	Fetch(ctx context.Context, rfid string) (*model.BalanceReading, error)
}

var errBalanceSyncDisabled = errors.New("balance provider not configured")

// AccessFacade aggregates registry and ledger use cases behind one surface
// shared by the HTTP handlers and the background worker.
type AccessFacade struct {
	registry *usecase.RegistryUseCase
	ledger   *usecase.LedgerUseCase
	balances BalanceProvider
}

func NewAccessFacade(registry *usecase.RegistryUseCase, ledger *usecase.LedgerUseCase, balances BalanceProvider) *AccessFacade {
	return &AccessFacade{registry: registry, ledger: ledger, balances: balances}
}

func (f *AccessFacade) RegisterCardholder(ctx context.Context, in model.Registration) (*model.Cardholder, error) {
	return f.registry.Register(ctx, in)
}

func (f *AccessFacade) Cardholders(ctx context.Context, limit, offset int) ([]model.Cardholder, error) {
	return f.registry.List(ctx, limit, offset)
}

func (f *AccessFacade) RecordTap(ctx context.Context, rfid string, tapType model.TapType) (*model.Tap, error) {
	return f.ledger.Record(ctx, rfid, tapType)
}

func (f *AccessFacade) TapHistory(ctx context.Context, rfid string) ([]model.Tap, error) {
	return f.ledger.History(ctx, rfid)
}

func (f *AccessFacade) Profile(ctx context.Context, rfid string) (*model.Cardholder, []model.Tap, error) {
	return f.ledger.Profile(ctx, rfid)
}

func (f *AccessFacade) CardholdersForSync(ctx context.Context, limit int) ([]model.Cardholder, error) {
	return f.registry.SelectBatchForSync(ctx, limit)
}

func (f *AccessFacade) FetchBalance(ctx context.Context, rfid string) (*model.BalanceReading, error) {
	if f.balances == nil {
		return nil, errBalanceSyncDisabled
	}
	return f.balances.Fetch(ctx, rfid)
}

func (f *AccessFacade) StoreBalance(ctx context.Context, rfid string, balance decimal.Decimal) error {
	return f.registry.UpdateBalance(ctx, rfid, balance)
}
