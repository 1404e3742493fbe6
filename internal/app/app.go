package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"campustap/internal/config"
	"campustap/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewAccessFacade,
		newHTTPServer,
		newBalanceSyncer,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *AccessFacade
	Config *config.Config
	Logger *slog.Logger
}

func newBalanceSyncer(p workerParams) *worker.BalanceSyncer {
	return worker.NewBalanceSyncer(
		p.Facade,
		p.Config.BalancePollInterval,
		p.Config.SyncBatchSize,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.BalanceSyncer
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	syncEnabled := p.Config.BursarAddress != ""

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting campustap", slog.String("addr", p.Server.Addr))
			if syncEnabled {
				p.Worker.Start(ctx)
			} else {
				p.Logger.Info("balance sync disabled, no bursar address configured")
			}
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if syncEnabled {
				p.Worker.Stop()
			}

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("campustap stopped")
			return nil
		},
	})
}
