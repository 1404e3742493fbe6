package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domainErrors "campustap/internal/domain/errors"
	"campustap/internal/domain/model"
	"campustap/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Keeping it an
// interface lets tests substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type cardholderRepository struct {
	storage *Storage
}

type tapRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Cardholders() repository.CardholderRepository {
	return &cardholderRepository{storage: s}
}

func (s *Storage) Taps() repository.TapRepository {
	return &tapRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            rfid VARCHAR(255) PRIMARY KEY,
            student_id TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            program TEXT NOT NULL,
            school TEXT NOT NULL,
            balance NUMERIC NOT NULL DEFAULT 0,
            type TEXT NOT NULL DEFAULT 'student',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS taps (
            id SERIAL PRIMARY KEY,
            rfid VARCHAR(255) NOT NULL REFERENCES users(rfid),
            tap_type TEXT NOT NULL CHECK (tap_type IN ('entry','exit')),
            tap_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            user_name TEXT NOT NULL,
            user_balance NUMERIC NOT NULL,
            user_type TEXT NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_taps_rfid ON taps(rfid, tap_time DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_users_updated ON users(updated_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- CardholderRepository implementation ---

func (r *cardholderRepository) Create(ctx context.Context, c model.Cardholder) (*model.Cardholder, error) {
	const query = `INSERT INTO users (rfid, student_id, email, name, program, school, balance, type)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		c.RFID, c.StudentID, c.Email, c.Name, c.Program, c.School, c.Balance, string(c.Type),
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *cardholderRepository) GetByRFID(ctx context.Context, rfid string) (*model.Cardholder, error) {
	const query = `SELECT rfid, student_id, email, name, program, school, balance, type, created_at, updated_at
                   FROM users WHERE rfid=$1`
	var c model.Cardholder
	err := r.storage.pool.QueryRow(ctx, query, rfid).Scan(
		&c.RFID, &c.StudentID, &c.Email, &c.Name, &c.Program, &c.School, &c.Balance, &c.Type, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *cardholderRepository) List(ctx context.Context, limit, offset int) ([]model.Cardholder, error) {
	const query = `SELECT rfid, student_id, email, name, program, school, balance, type, created_at, updated_at
                   FROM users ORDER BY created_at LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Cardholder
	for rows.Next() {
		var c model.Cardholder
		if err := rows.Scan(&c.RFID, &c.StudentID, &c.Email, &c.Name, &c.Program, &c.School, &c.Balance, &c.Type, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cardholderRepository) ExistsAny(ctx context.Context, rfid, studentID, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE rfid=$1 OR student_id=$2 OR email=$3)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, rfid, studentID, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// SelectBatchForSync claims the stalest cardholders for a balance refresh.
// Claimed rows get their updated_at bumped inside the transaction so
// concurrent syncers skip them.
func (r *cardholderRepository) SelectBatchForSync(ctx context.Context, limit int) ([]model.Cardholder, error) {
	const selectQuery = `SELECT rfid, student_id, email, name, program, school, balance, type, created_at, updated_at
                         FROM users
                         ORDER BY updated_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var cardholders []model.Cardholder
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c model.Cardholder
			if err := rows.Scan(&c.RFID, &c.StudentID, &c.Email, &c.Name, &c.Program, &c.School, &c.Balance, &c.Type, &c.CreatedAt, &c.UpdatedAt); err != nil {
				return err
			}
			cardholders = append(cardholders, c)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for _, c := range cardholders {
			if _, err := tx.Exec(ctx, `UPDATE users SET updated_at=NOW() WHERE rfid=$1`, c.RFID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cardholders, nil
}

func (r *cardholderRepository) UpdateBalance(ctx context.Context, rfid string, balance decimal.Decimal) error {
	const query = `UPDATE users SET balance=$1, updated_at=NOW() WHERE rfid=$2`
	tag, err := r.storage.pool.Exec(ctx, query, balance, rfid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- TapRepository implementation ---

func (r *tapRepository) Create(ctx context.Context, tap model.Tap) (*model.Tap, error) {
	const query = `INSERT INTO taps (rfid, tap_type, user_name, user_balance, user_type)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, tap_time`
	err := r.storage.pool.QueryRow(ctx, query,
		tap.RFID, string(tap.Type), tap.UserName, tap.UserBalance, string(tap.UserType),
	).Scan(&tap.ID, &tap.Time)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &tap, nil
}

func (r *tapRepository) ListByRFID(ctx context.Context, rfid string) ([]model.Tap, error) {
	const query = `SELECT id, rfid, tap_type, tap_time, user_name, user_balance, user_type
                   FROM taps WHERE rfid=$1 ORDER BY tap_time DESC`
	rows, err := r.storage.pool.Query(ctx, query, rfid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Tap
	for rows.Next() {
		var t model.Tap
		if err := rows.Scan(&t.ID, &t.RFID, &t.Type, &t.Time, &t.UserName, &t.UserBalance, &t.UserType); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
