package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"campustap/internal/adapter/bursar"
	"campustap/internal/domain/model"
)

// AccessFacade exposes the subset of application functionality required by the worker.
type AccessFacade interface {
	CardholdersForSync(ctx context.Context, limit int) ([]model.Cardholder, error)
	FetchBalance(ctx context.Context, rfid string) (*model.BalanceReading, error)
	StoreBalance(ctx context.Context, rfid string, balance decimal.Decimal) error
}

// BalanceSyncer polls the bursar system and refreshes cached balances concurrently.
type BalanceSyncer struct {
	facade       AccessFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Cardholder
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewBalanceSyncer constructs balance sync worker pool.
func NewBalanceSyncer(facade AccessFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *BalanceSyncer {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &BalanceSyncer{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Cardholder, batchSize*workers),
	}
}

// Start launches background processing.
func (s *BalanceSyncer) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)
		go s.worker(runCtx)
	}

	s.wg.Add(1)
	go s.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (s *BalanceSyncer) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *BalanceSyncer) dispatch(ctx context.Context) {
	defer s.wg.Done()
	defer close(s.jobs)
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.fetchAndDispatch(ctx)
		}
	}
}

func (s *BalanceSyncer) fetchAndDispatch(ctx context.Context) {
	cardholders, err := s.facade.CardholdersForSync(ctx, s.batchSize)
	if err != nil {
		s.logger.Error("fetch cardholders for sync failed", slog.String("error", err.Error()))
		return
	}
	for _, cardholder := range cardholders {
		select {
		case <-ctx.Done():
			return
		case s.jobs <- cardholder:
		}
	}
}

func (s *BalanceSyncer) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case cardholder, ok := <-s.jobs:
			if !ok {
				return
			}
			s.handleCardholder(ctx, cardholder)
		}
	}
}

func (s *BalanceSyncer) handleCardholder(ctx context.Context, cardholder model.Cardholder) {
	reading, err := s.facade.FetchBalance(ctx, cardholder.RFID)
	if err != nil {
		switch e := err.(type) {
		case bursar.TooManyRequestsError:
			s.logger.Warn("bursar rate limited", slog.Duration("retry_after", e.RetryAfter))
			time.Sleep(e.RetryAfter)
		default:
			if errors.Is(err, bursar.ErrCardNotKnown) {
				return
			}
			s.logger.Error("balance fetch failed", slog.String("rfid", cardholder.RFID), slog.String("error", err.Error()))
		}
		return
	}

	if reading.Balance.Equal(cardholder.Balance) {
		return
	}

	if err := s.facade.StoreBalance(ctx, cardholder.RFID, reading.Balance); err != nil {
		s.logger.Error("store balance failed", slog.String("rfid", cardholder.RFID), slog.String("error", err.Error()))
	}
}
