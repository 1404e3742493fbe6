package di

import (
	"go.uber.org/fx"

	"campustap/internal/adapter/bursar"
	"campustap/internal/app"
	"campustap/internal/config"
	"campustap/internal/logger"
	"campustap/internal/server/http/handlers"
	"campustap/internal/server/http/router"
	"campustap/internal/storage/postgres"
	"campustap/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		bursar.Module,
		usecase.Module,
		fx.Provide(func(client bursar.Client) app.BalanceProvider {
			if client == nil {
				return nil
			}
			return client
		}),
		fx.Provide(func(facade *app.AccessFacade) handlers.AccessFacade { return facade }),
		fx.Provide(func(storage *postgres.Storage) handlers.HealthChecker { return storage }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
