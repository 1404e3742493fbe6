package usecase

import (
	"context"
	"strings"

	domainErrors "campustap/internal/domain/errors"
	"campustap/internal/domain/model"
	"campustap/internal/domain/repository"
)

// LedgerUseCase owns the append-only log of access events.
type LedgerUseCase struct {
	cardholders repository.CardholderRepository
	taps        repository.TapRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(cardholders repository.CardholderRepository, taps repository.TapRepository) *LedgerUseCase {
	return &LedgerUseCase{cardholders: cardholders, taps: taps}
}

// Record appends a tap for the cardholder, snapshotting their current name,
// balance and type. The ledger is a passive recorder: consecutive taps of
// the same direction are accepted.
func (u *LedgerUseCase) Record(ctx context.Context, rfid string, tapType model.TapType) (*model.Tap, error) {
	rfid = strings.TrimSpace(rfid)
	if rfid == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if !tapType.Valid() {
		return nil, domainErrors.ErrInvalidTapType
	}

	cardholder, err := u.cardholders.GetByRFID(ctx, rfid)
	if err != nil {
		return nil, err
	}

	return u.taps.Create(ctx, model.Tap{
		RFID:        cardholder.RFID,
		Type:        tapType,
		UserName:    cardholder.Name,
		UserBalance: cardholder.Balance,
		UserType:    cardholder.Type,
	})
}

// History returns all taps for the cardholder, most recent first. An
// existing cardholder with no taps yields an empty history, not an error.
func (u *LedgerUseCase) History(ctx context.Context, rfid string) ([]model.Tap, error) {
	rfid = strings.TrimSpace(rfid)
	if rfid == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if _, err := u.cardholders.GetByRFID(ctx, rfid); err != nil {
		return nil, err
	}
	return u.taps.ListByRFID(ctx, rfid)
}

// Profile resolves a cardholder together with their full descending tap
// history. A read-only join of the registry and ledger primitives.
func (u *LedgerUseCase) Profile(ctx context.Context, rfid string) (*model.Cardholder, []model.Tap, error) {
	rfid = strings.TrimSpace(rfid)
	if rfid == "" {
		return nil, nil, domainErrors.ErrInvalidInput
	}
	cardholder, err := u.cardholders.GetByRFID(ctx, rfid)
	if err != nil {
		return nil, nil, err
	}
	taps, err := u.taps.ListByRFID(ctx, rfid)
	if err != nil {
		return nil, nil, err
	}
	return cardholder, taps, nil
}
