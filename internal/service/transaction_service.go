package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/storage"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

const defaultListLimit = 100

// TransactionService handles transaction read paths. Writes go through
// the operator so they run inside a storage transaction.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// GetTransaction returns a single transaction, owner-scoped. Returns nil
// when the owner is unknown or the transaction does not exist for them.
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	if userID.IsNil() {
		return nil, nil
	}

	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	converted := transactionFromRow(row)
	return &converted, nil
}

// ListTransactions returns the user's transactions, newest first.
// An unknown owner yields an empty list without touching storage.
func (s *TransactionService) ListTransactions(ctx context.Context, options ListTransactionsOptions) ([]Transaction, error) {
	if options.UserID.IsNil() {
		return nil, nil
	}

	limit := options.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:   options.UserID,
		Type:     options.Type,
		Category: options.Category,
		Search:   options.Search,
		From:     options.From,
		To:       options.To,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromRow(row)
	}
	return converted, nil
}
