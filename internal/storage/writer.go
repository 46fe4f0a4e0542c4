package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// Writer exposes tables bound to one open database transaction. Used by
// the operator so each write action commits or rolls back as a unit.
type Writer struct {
	tx           bob.Tx
	Transactions sqlconfig.ITransactionsTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
