package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogapi/src/infra/db"
)

// base carries the shared pool and logger for every repository.
type base struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// Health checks if the underlying storage is reachable.
func (b base) Health(ctx context.Context) error {
	return b.pool.Ping(ctx)
}

// querier is the subset of pgx shared by the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type txKey struct{}

// db returns the active transaction when ctx carries one, the pool otherwise.
func (b base) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return b.pool
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// TxManager implements ports.TxManager on the shared pool.
type TxManager struct {
	base
}

// NewTxManager constructs the transaction manager.
func NewTxManager(pg *db.Postgres, log *slog.Logger) *TxManager {
	return &TxManager{base{pool: pg.Pool, log: log}}
}

// WithinTx runs fn inside a single transaction. Repository calls made with
// the ctx handed to fn join it; fn returning an error rolls everything back.
func (t *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			t.log.Error("transaction rollback failed", "error", rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
