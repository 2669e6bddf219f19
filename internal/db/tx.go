package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DBTX is what repositories run statements against: a *sql.DB for
// standalone reads and writes, a *sql.Tx inside a unit of work.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// TxFunc is the body of a unit of work. Repositories built from tx share
// the transaction.
type TxFunc func(ctx context.Context, tx DBTX) error

// UnitOfWork groups writes that must land together, such as a calibration
// state with its history points and the profile weight it was based on.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

// WithinTx commits when fn returns nil. An error or a panic from fn rolls
// the transaction back; the panic is re-raised afterwards.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn TxFunc) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	return RunTx(ctx, tx, fn)
}

// RunTx runs fn against an already started transaction and settles it.
// Test units of work reuse it with a wrapped DBTX.
func RunTx(ctx context.Context, tx *sql.Tx, fn TxFunc, wrap ...func(DBTX) DBTX) (err error) {
	done := false
	defer func() {
		if done {
			return
		}
		rbErr := tx.Rollback()
		if p := recover(); p != nil {
			panic(p)
		}
		if rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	var scoped DBTX = tx
	for _, w := range wrap {
		scoped = w(scoped)
	}
	if err = fn(ctx, scoped); err != nil {
		return err
	}
	done = true
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
