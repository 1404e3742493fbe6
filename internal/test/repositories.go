package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "campustap/internal/domain/errors"
	"campustap/internal/domain/model"
)

// CardholderRepositoryStub stores cardholders in-memory for tests, enforcing
// the same three-key uniqueness the real store does.
type CardholderRepositoryStub struct {
	Items []*model.Cardholder
	Err   error
	clock time.Time
}

// NewCardholderRepositoryStub constructs the stub with a fixed base clock so
// generated timestamps are deterministic per test run.
func NewCardholderRepositoryStub() *CardholderRepositoryStub {
	return &CardholderRepositoryStub{clock: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)}
}

func (s *CardholderRepositoryStub) next() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

// Create registers the cardholder unless one of the keys already exists.
func (s *CardholderRepositoryStub) Create(ctx context.Context, c model.Cardholder) (*model.Cardholder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Items {
		if existing.RFID == c.RFID || existing.StudentID == c.StudentID || existing.Email == c.Email {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	now := s.next()
	c.CreatedAt = now
	c.UpdatedAt = now
	stored := c
	s.Items = append(s.Items, &stored)
	return &stored, nil
}

// GetByRFID fetches a cardholder or returns not found.
func (s *CardholderRepositoryStub) GetByRFID(ctx context.Context, rfid string) (*model.Cardholder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, c := range s.Items {
		if c.RFID == rfid {
			return c, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns a page of cardholders in insertion order.
func (s *CardholderRepositoryStub) List(ctx context.Context, limit, offset int) ([]model.Cardholder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if offset >= len(s.Items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.Items) {
		end = len(s.Items)
	}
	var result []model.Cardholder
	for _, c := range s.Items[offset:end] {
		result = append(result, *c)
	}
	return result, nil
}

// ExistsAny reports whether any of the three identity keys is taken.
func (s *CardholderRepositoryStub) ExistsAny(ctx context.Context, rfid, studentID, email string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for _, c := range s.Items {
		if c.RFID == rfid || c.StudentID == studentID || c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// SelectBatchForSync returns up to limit cardholders, stalest first.
func (s *CardholderRepositoryStub) SelectBatchForSync(ctx context.Context, limit int) ([]model.Cardholder, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Cardholder
	for _, c := range s.Items {
		if len(result) == limit {
			break
		}
		result = append(result, *c)
	}
	return result, nil
}

// UpdateBalance replaces the stored balance and advances updated_at.
func (s *CardholderRepositoryStub) UpdateBalance(ctx context.Context, rfid string, balance decimal.Decimal) error {
	if s.Err != nil {
		return s.Err
	}
	for _, c := range s.Items {
		if c.RFID == rfid {
			c.Balance = balance
			c.UpdatedAt = s.next()
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// TapRepositoryStub keeps an in-memory append-only tap log.
type TapRepositoryStub struct {
	Items []model.Tap
	Err   error
	next  int64
	clock time.Time
}

// NewTapRepositoryStub constructs the stub with a deterministic clock.
func NewTapRepositoryStub() *TapRepositoryStub {
	return &TapRepositoryStub{next: 1, clock: time.Date(2024, 9, 1, 9, 0, 0, 0, time.UTC)}
}

// Create appends a tap, assigning id and tap_time the way the store would.
func (s *TapRepositoryStub) Create(ctx context.Context, tap model.Tap) (*model.Tap, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.next == 0 {
		s.next = 1
	}
	tap.ID = s.next
	s.next++
	s.clock = s.clock.Add(time.Second)
	tap.Time = s.clock
	s.Items = append(s.Items, tap)
	return &tap, nil
}

// ListByRFID returns the cardholder's taps most recent first.
func (s *TapRepositoryStub) ListByRFID(ctx context.Context, rfid string) ([]model.Tap, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Tap
	for i := len(s.Items) - 1; i >= 0; i-- {
		if s.Items[i].RFID == rfid {
			result = append(result, s.Items[i])
		}
	}
	return result, nil
}
