package repository

import (
	"context"
	"encoding/binary"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContractLocker serializes the completion check that decides whether all of
// a contract's documents are done. Without it two documents finishing at the
// same moment can both see the other as unfinished and neither triggers the
// analysis.
type ContractLocker interface {
	WithLock(ctx context.Context, contractID uuid.UUID, fn func(ctx context.Context) error) error
}

type advisoryLocker struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewAdvisoryLocker locks via pg_advisory_xact_lock, so the lock is released
// with the wrapping transaction even if the worker dies mid-flight.
func NewAdvisoryLocker(pool *pgxpool.Pool, logger *slog.Logger) ContractLocker {
	return &advisoryLocker{pool: pool, log: logger}
}

func (l *advisoryLocker) WithLock(ctx context.Context, contractID uuid.UUID, fn func(ctx context.Context) error) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey(contractID)); err != nil {
		l.log.Error("advisory lock failed", "contract_id", contractID, "error", err)
		return err
	}
	if err := fn(ctx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// lockKey folds the UUID into the bigint keyspace advisory locks use.
func lockKey(id uuid.UUID) int64 {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	return int64(hi ^ lo)
}

type mutexLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewMutexLocker is the single-process fallback used in tests and by the
// one-shot CLI.
func NewMutexLocker() ContractLocker {
	return &mutexLocker{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (l *mutexLocker) WithLock(ctx context.Context, contractID uuid.UUID, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	m, ok := l.locks[contractID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[contractID] = m
	}
	l.mu.Unlock()

	m.Lock()
	defer m.Unlock()
	return fn(ctx)
}
