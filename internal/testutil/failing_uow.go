package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/meridian/internal/db"
)

// WriteFaultUoW fails the FailOn-th write (1-based) of a unit of work with
// Err. Reads are never counted. Writes records every statement that reached
// the database so tests can see how far the work got before rollback.
type WriteFaultUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	Writes []string
}

func (u *WriteFaultUoW) WithinTx(ctx context.Context, fn db.TxFunc) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	return db.RunTx(ctx, tx, fn, func(inner db.DBTX) db.DBTX {
		return &faultyWriter{DBTX: inner, uow: u}
	})
}

type faultyWriter struct {
	db.DBTX
	uow *WriteFaultUoW
	n   int
}

func (f *faultyWriter) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.n++
	if f.n == f.uow.FailOn {
		return nil, f.uow.Err
	}
	f.uow.Writes = append(f.uow.Writes, query)
	return f.DBTX.ExecContext(ctx, query, args...)
}
