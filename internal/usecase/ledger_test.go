package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "campustap/internal/domain/errors"
	"campustap/internal/domain/model"
	testhelpers "campustap/internal/test"
)

func newLedger(t *testing.T) (*LedgerUseCase, *RegistryUseCase, *testhelpers.TapRepositoryStub) {
	t.Helper()
	cardholders := testhelpers.NewCardholderRepositoryStub()
	taps := testhelpers.NewTapRepositoryStub()
	return NewLedgerUseCase(cardholders, taps), NewRegistryUseCase(cardholders), taps
}

func TestLedgerRecordSnapshotsCardholder(t *testing.T) {
	ledger, registry, _ := newLedger(t)
	ctx := context.Background()

	in := validRegistration()
	in.Balance = decimal.RequireFromString("12.50")
	if _, err := registry.Register(ctx, in); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tap, err := ledger.Record(ctx, "A1", model.TapTypeEntry)
	if err != nil {
		t.Fatalf("record returned error: %v", err)
	}
	if tap.ID == 0 || tap.Time.IsZero() {
		t.Fatalf("expected store-assigned id and time, got %+v", tap)
	}
	if tap.UserName != "Ann" || tap.UserType != model.CardholderTypeStudent {
		t.Fatalf("unexpected snapshot: %+v", tap)
	}
	if !tap.UserBalance.Equal(in.Balance) {
		t.Fatalf("expected snapshot balance %s, got %s", in.Balance, tap.UserBalance)
	}
}

func TestLedgerSnapshotImmutableAfterBalanceChange(t *testing.T) {
	ledger, registry, _ := newLedger(t)
	ctx := context.Background()

	if _, err := registry.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	tap, err := ledger.Record(ctx, "A1", model.TapTypeEntry)
	if err != nil {
		t.Fatalf("record returned error: %v", err)
	}

	if err := registry.UpdateBalance(ctx, "A1", decimal.NewFromInt(99)); err != nil {
		t.Fatalf("update balance failed: %v", err)
	}

	history, err := ledger.History(ctx, "A1")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected one tap, got %d", len(history))
	}
	if !history[0].UserBalance.Equal(tap.UserBalance) {
		t.Fatalf("snapshot balance changed: was %s, now %s", tap.UserBalance, history[0].UserBalance)
	}
	if !history[0].UserBalance.IsZero() {
		t.Fatalf("expected snapshot to keep balance 0, got %s", history[0].UserBalance)
	}
}

func TestLedgerRecordValidation(t *testing.T) {
	ledger, registry, taps := newLedger(t)
	ctx := context.Background()

	if _, err := registry.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := ledger.Record(ctx, "", model.TapTypeEntry); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := ledger.Record(ctx, "A1", model.TapType("inout")); !errors.Is(err, domainErrors.ErrInvalidTapType) {
		t.Fatalf("expected ErrInvalidTapType, got %v", err)
	}
	if _, err := ledger.Record(ctx, "ghost", model.TapTypeExit); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(taps.Items) != 0 {
		t.Fatalf("expected no taps recorded, got %d", len(taps.Items))
	}
}

func TestLedgerAcceptsRepeatedDirections(t *testing.T) {
	ledger, registry, _ := newLedger(t)
	ctx := context.Background()

	if _, err := registry.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// A passive recorder keeps double-taps.
	for i := 0; i < 2; i++ {
		if _, err := ledger.Record(ctx, "A1", model.TapTypeEntry); err != nil {
			t.Fatalf("record %d returned error: %v", i, err)
		}
	}
	history, err := ledger.History(ctx, "A1")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected two taps, got %d", len(history))
	}
}

func TestLedgerHistoryOrderedDescending(t *testing.T) {
	ledger, registry, _ := newLedger(t)
	ctx := context.Background()

	if _, err := registry.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	sequence := []model.TapType{model.TapTypeEntry, model.TapTypeExit, model.TapTypeEntry}
	for _, direction := range sequence {
		if _, err := ledger.Record(ctx, "A1", direction); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	history, err := ledger.History(ctx, "A1")
	if err != nil {
		t.Fatalf("history returned error: %v", err)
	}
	if len(history) != len(sequence) {
		t.Fatalf("expected %d taps, got %d", len(sequence), len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Time.After(history[i-1].Time) {
			t.Fatalf("history not in descending order at %d", i)
		}
	}
	if history[0].Type != model.TapTypeEntry || history[2].Type != model.TapTypeEntry {
		t.Fatalf("unexpected order: %+v", history)
	}
}

func TestLedgerHistoryUnknownAndEmpty(t *testing.T) {
	ledger, registry, _ := newLedger(t)
	ctx := context.Background()

	if _, err := ledger.History(ctx, "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown rfid, got %v", err)
	}

	if _, err := registry.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	history, err := ledger.History(ctx, "A1")
	if err != nil {
		t.Fatalf("expected empty history without error, got %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no taps, got %d", len(history))
	}
}

func TestLedgerProfile(t *testing.T) {
	ledger, registry, _ := newLedger(t)
	ctx := context.Background()

	if _, _, err := ledger.Profile(ctx, "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := registry.Register(ctx, validRegistration()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := ledger.Record(ctx, "A1", model.TapTypeEntry); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	cardholder, taps, err := ledger.Profile(ctx, "A1")
	if err != nil {
		t.Fatalf("profile returned error: %v", err)
	}
	if cardholder.RFID != "A1" {
		t.Fatalf("unexpected cardholder: %+v", cardholder)
	}
	if len(taps) != 1 || taps[0].Type != model.TapTypeEntry {
		t.Fatalf("unexpected taps: %+v", taps)
	}
}
