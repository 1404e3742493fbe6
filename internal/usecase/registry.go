package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "campustap/internal/domain/errors"
	"campustap/internal/domain/model"
	"campustap/internal/domain/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// RegistryUseCase owns cardholder identity and uniqueness.
type RegistryUseCase struct {
	cardholders repository.CardholderRepository
}

// NewRegistryUseCase constructs RegistryUseCase.
func NewRegistryUseCase(cardholders repository.CardholderRepository) *RegistryUseCase {
	return &RegistryUseCase{cardholders: cardholders}
}

// Register creates a new cardholder after enforcing required fields and
// uniqueness of rfid, student_id and email. The overlap pre-check gives a
// deterministic conflict answer; the unique constraints on the store remain
// the authority under concurrent registrations.
func (u *RegistryUseCase) Register(ctx context.Context, in model.Registration) (*model.Cardholder, error) {
	in.RFID = strings.TrimSpace(in.RFID)
	in.StudentID = strings.TrimSpace(in.StudentID)
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Program = strings.TrimSpace(in.Program)
	in.School = strings.TrimSpace(in.School)

	if err := ValidateRegistration(in); err != nil {
		return nil, err
	}

	if in.Type == "" {
		in.Type = model.CardholderTypeStudent
	}
	if !in.Type.Valid() {
		return nil, domainErrors.ErrInvalidCardholderType
	}
	if in.Balance.IsNegative() {
		return nil, domainErrors.ErrNegativeBalance
	}

	exists, err := u.cardholders.ExistsAny(ctx, in.RFID, in.StudentID, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainErrors.ErrAlreadyExists
	}

	return u.cardholders.Create(ctx, model.Cardholder{
		RFID:      in.RFID,
		StudentID: in.StudentID,
		Email:     in.Email,
		Name:      in.Name,
		Program:   in.Program,
		School:    in.School,
		Balance:   in.Balance,
		Type:      in.Type,
	})
}

// Get fetches a single cardholder by badge identifier.
func (u *RegistryUseCase) Get(ctx context.Context, rfid string) (*model.Cardholder, error) {
	rfid = strings.TrimSpace(rfid)
	if rfid == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.cardholders.GetByRFID(ctx, rfid)
}

// List returns a page of cardholders. Limit defaults to 100 and is clamped
// to 1000 so the endpoint stays bounded.
func (u *RegistryUseCase) List(ctx context.Context, limit, offset int) ([]model.Cardholder, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return u.cardholders.List(ctx, limit, offset)
}

// SelectBatchForSync returns cardholders due for a balance refresh.
func (u *RegistryUseCase) SelectBatchForSync(ctx context.Context, limit int) ([]model.Cardholder, error) {
	return u.cardholders.SelectBatchForSync(ctx, limit)
}

// UpdateBalance stores the balance reported by the external authority.
func (u *RegistryUseCase) UpdateBalance(ctx context.Context, rfid string, balance decimal.Decimal) error {
	return u.cardholders.UpdateBalance(ctx, rfid, balance)
}
