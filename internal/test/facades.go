package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"campustap/internal/domain/model"
)

// SampleCardholder returns a plausible registered cardholder for stubs.
func SampleCardholder() *model.Cardholder {
	created := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	return &model.Cardholder{
		RFID:      "A1",
		StudentID: "S1",
		Email:     "ann@example.edu",
		Name:      "Ann",
		Program:   "CS",
		School:    "Engineering",
		Balance:   decimal.NewFromInt(0),
		Type:      model.CardholderTypeStudent,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

// RegistryFacadeStub provides controllable behaviour for cardholder endpoints.
type RegistryFacadeStub struct {
	CardholdersFn func(context.Context, int, int) ([]model.Cardholder, error)
	RegisterFn    func(context.Context, model.Registration) (*model.Cardholder, error)
}

// Cardholders delegates to the provided function or returns one sample row.
func (s RegistryFacadeStub) Cardholders(ctx context.Context, limit, offset int) ([]model.Cardholder, error) {
	if s.CardholdersFn != nil {
		return s.CardholdersFn(ctx, limit, offset)
	}
	return []model.Cardholder{*SampleCardholder()}, nil
}

// RegisterCardholder echoes the input back as a created cardholder.
func (s RegistryFacadeStub) RegisterCardholder(ctx context.Context, in model.Registration) (*model.Cardholder, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	created := time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)
	return &model.Cardholder{
		RFID:      in.RFID,
		StudentID: in.StudentID,
		Email:     in.Email,
		Name:      in.Name,
		Program:   in.Program,
		School:    in.School,
		Balance:   in.Balance,
		Type:      model.CardholderTypeStudent,
		CreatedAt: created,
		UpdatedAt: created,
	}, nil
}

// LedgerFacadeStub simulates tap ledger operations.
type LedgerFacadeStub struct {
	RecordFn  func(context.Context, string, model.TapType) (*model.Tap, error)
	HistoryFn func(context.Context, string) ([]model.Tap, error)
	ProfileFn func(context.Context, string) (*model.Cardholder, []model.Tap, error)
}

// RecordTap returns the configured result or a freshly stamped tap.
func (s LedgerFacadeStub) RecordTap(ctx context.Context, rfid string, tapType model.TapType) (*model.Tap, error) {
	if s.RecordFn != nil {
		return s.RecordFn(ctx, rfid, tapType)
	}
	return &model.Tap{
		ID:          1,
		RFID:        rfid,
		Type:        tapType,
		Time:        time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC),
		UserName:    "Ann",
		UserBalance: decimal.NewFromInt(0),
		UserType:    model.CardholderTypeStudent,
	}, nil
}

// TapHistory returns preconfigured history.
func (s LedgerFacadeStub) TapHistory(ctx context.Context, rfid string) ([]model.Tap, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, rfid)
	}
	return []model.Tap{{ID: 1, RFID: rfid, Type: model.TapTypeEntry, Time: time.Unix(0, 0)}}, nil
}

// Profile joins the sample cardholder with the stubbed history.
func (s LedgerFacadeStub) Profile(ctx context.Context, rfid string) (*model.Cardholder, []model.Tap, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, rfid)
	}
	c := SampleCardholder()
	c.RFID = rfid
	taps, err := s.TapHistory(ctx, rfid)
	if err != nil {
		return nil, nil, err
	}
	return c, taps, nil
}

// AccessFacadeStub aggregates registry and ledger stubs for router tests.
type AccessFacadeStub struct {
	RegistryFacadeStub
	LedgerFacadeStub
}

// BalanceUpdateCall stores information about StoreBalance invocations.
type BalanceUpdateCall struct {
	RFID    string
	Balance decimal.Decimal
}

// WorkerFacadeStub mimics worker interactions with the access facade.
type WorkerFacadeStub struct {
	Batches        [][]model.Cardholder
	BatchFn        func(context.Context, int) ([]model.Cardholder, error)
	FetchFn        func(context.Context, string) (*model.BalanceReading, error)
	UpdateFn       func(context.Context, string, decimal.Decimal) error
	Updates        []BalanceUpdateCall
	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// CardholdersForSync returns batches from the configured queue.
func (s *WorkerFacadeStub) CardholdersForSync(ctx context.Context, limit int) ([]model.Cardholder, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// FetchBalance returns configured bursar data.
func (s *WorkerFacadeStub) FetchBalance(ctx context.Context, rfid string) (*model.BalanceReading, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, rfid)
	}
	return &model.BalanceReading{RFID: rfid, Balance: decimal.NewFromInt(25)}, nil
}

// StoreBalance records update requests.
func (s *WorkerFacadeStub) StoreBalance(ctx context.Context, rfid string, balance decimal.Decimal) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, rfid, balance)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Updates = append(s.Updates, BalanceUpdateCall{RFID: rfid, Balance: balance})
	return nil
}

// BalanceProviderStub fetches bursar balances for tests.
type BalanceProviderStub struct {
	FetchFn func(context.Context, string) (*model.BalanceReading, error)
	Reading *model.BalanceReading
	Err     error
}

// Fetch returns the configured response or a default reading.
func (s BalanceProviderStub) Fetch(ctx context.Context, rfid string) (*model.BalanceReading, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx, rfid)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Reading != nil {
		return s.Reading, nil
	}
	return &model.BalanceReading{RFID: rfid, Balance: decimal.NewFromInt(10)}, nil
}
