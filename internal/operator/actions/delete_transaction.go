package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/storage"
)

// DeleteTransaction removes an entry outright; there is no soft delete.
// Owner-scoped like every other write.
type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	IAction
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	found, err := writer.Transactions.Delete(ctx, t.UserID, t.TransactionID)
	if err != nil {
		return err
	}
	if !found {
		return storage.ErrNotFound
	}
	return nil
}
