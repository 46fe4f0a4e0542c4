package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/storage"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// UpdateTransaction replaces every mutable field of an existing entry,
// recomputing the derived GST amount. Owner-scoped: updating another
// user's transaction fails with storage.ErrNotFound.
type UpdateTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Input         TransactionInput
	IAction
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	input := t.Input.normalized()

	found, err := writer.Transactions.Update(ctx, t.UserID, t.TransactionID, &sqlconfig.TransactionUpdate{
		Type:          input.Type,
		VendorName:    input.VendorName,
		Amount:        input.Amount,
		Currency:      input.Currency,
		GstPercent:    input.GstPercent,
		GstAmount:     input.gstAmount(),
		Category:      input.Category,
		InvoiceNumber: input.InvoiceNumber,
		Date:          input.Date,
	})
	if err != nil {
		return err
	}
	if !found {
		return storage.ErrNotFound
	}
	return nil
}
