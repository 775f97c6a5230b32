package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"meeting-room-booking/internal/infra/repository"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryableCodes are the SQLSTATEs for which replaying the whole booking
// transaction is safe: nothing was committed and the conflict was transient.
var retryableCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
}

type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetryPolicy = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

// backoff doubles per attempt with up to 20% jitter.
func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j))
	}
	return wait
}

func (p retryPolicy) retryable(err error, attempt int) bool {
	if attempt >= p.maxRetries {
		return false
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	_, ok := retryableCodes[pgErr.Code]
	return ok
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	policy retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q, policy: defaultRetryPolicy}
}

// Within runs fn in one ReadCommitted transaction. Writers of one room-day
// serialize on the advisory lock fn takes, so a stronger level buys nothing.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	for attempt := 0; ; attempt++ {
		err := u.once(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !u.policy.retryable(err, attempt) {
			if attempt >= u.policy.maxRetries {
				slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err)
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.policy.backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// once is a single attempt. Rollback runs on every failure path so a retry
// never leaks the previous connection.
func (u *PostgresUoW) once(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr)
	}
	return err
}

// pgTx hands out repositories bound to one transaction, built on first use.
type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	bookings shared.BookingRepository
	rooms    shared.RoomRepository
	history  shared.HistoryRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = repository.NewBookingRepository(t.q, t.dbtx)
	}
	return t.bookings
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.rooms == nil {
		t.rooms = repository.NewRoomRepository(t.q, t.dbtx)
	}
	return t.rooms
}

func (t *pgTx) History() shared.HistoryRepository {
	if t.history == nil {
		t.history = repository.NewHistoryRepository(t.q, t.dbtx)
	}
	return t.history
}
