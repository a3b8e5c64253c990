package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pgic/pgic-backend/internal/domain"
)

type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager runs a mutation and its audit entry in one transaction carried
// by the context. Nested RunInTx calls join the outer transaction.
type TxManager struct {
	db beginner
}

// NewTxManager creates a TxManager opening transactions on db.
func NewTxManager(db beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx runs fn in a READ COMMITTED transaction and commits if fn returns
// nil. On error or panic the transaction is rolled back; the error from fn is
// preserved for errors.Is even when the rollback fails too. A commit rejected
// as a serialization failure or deadlock wraps domain.ErrConcurrencyConflict,
// so callers retry it like a lost revision race.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	// Rollback must run even when ctx is already cancelled.
	rollback := func() error { return tx.Rollback(context.WithoutCancel(ctx)) }

	defer func() {
		if r := recover(); r != nil {
			_ = rollback()
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		if isSerializationFailure(err) {
			return fmt.Errorf("commit transaction: %w: %w", domain.ErrConcurrencyConflict, err)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01")
}
