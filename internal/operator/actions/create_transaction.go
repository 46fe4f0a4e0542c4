package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/storage"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// CreateTransaction inserts a new ledger entry for the owner. ID is
// populated with the generated primary key after a successful Perform.
type CreateTransaction struct {
	UserID uuid.UUID
	Input  TransactionInput
	ID     uuid.UUID
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	input := t.Input.normalized()

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:        t.UserID,
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

	t.ID = id
	return nil
}
