package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// Transaction represents a ledger entry in the service layer.
type Transaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Type          sqlconfig.TransactionType
	VendorName    string
	Amount        decimal.Decimal
	Currency      string
	GstPercent    decimal.Decimal
	GstAmount     decimal.Decimal
	Category      string
	InvoiceNumber string
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ListTransactionsOptions filters a user's transaction listing.
type ListTransactionsOptions struct {
	UserID   uuid.UUID
	Type     *sqlconfig.TransactionType
	Category *string
	// Search matches vendor name or invoice number, case-insensitively.
	Search *string
	From   *time.Time
	To     *time.Time
	Limit  int
}

func transactionFromRow(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:            row.ID,
		UserID:        row.UserID,
		Type:          row.Type,
		VendorName:    row.VendorName,
		Amount:        row.Amount,
		Currency:      row.Currency,
		GstPercent:    row.GstPercent,
		GstAmount:     row.GstAmount,
		Category:      row.Category,
		InvoiceNumber: row.InvoiceNumber,
		Date:          row.Date,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
