package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"campustap/internal/adapter/bursar"
	"campustap/internal/app"
	"campustap/internal/config"
	"campustap/internal/domain/repository"
	"campustap/internal/storage/postgres"
	"campustap/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		DatabaseURI:         "postgres://stub",
		BursarAddress:       "http://localhost",
		BalancePollInterval: time.Millisecond,
		WorkerPoolSize:      1,
		SyncBatchSize:       1,
		ShutdownTimeout:     time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cardholderRepo := test.NewCardholderRepositoryStub()
	tapRepo := test.NewTapRepositoryStub()
	balanceStub := &test.BalanceProviderStub{}

	var facade *app.AccessFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.CardholderRepository(cardholderRepo)),
			fx.Replace(repository.TapRepository(tapRepo)),
			fx.Replace(bursar.Client(balanceStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected access facade instance")
	}
}
