package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction is one ledger entry, exclusively owned by one user.
// GstAmount is a cached derived field: it equals
// gst.TaxFromInclusive(Amount, GstPercent) as of the last write and is
// recomputed by the service layer on every create and update.
type Transaction struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Type          TransactionType `db:"type"`
	VendorName    string          `db:"vendor_name"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	GstPercent    decimal.Decimal `db:"gst_percent"`
	GstAmount     decimal.Decimal `db:"gst_amount"`
	Category      string          `db:"category"`
	InvoiceNumber string          `db:"invoice_number"`
	Date          time.Time       `db:"date"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
// Fields are expected to be normalized already (see the service layer).
type TransactionCreate struct {
	UserID        uuid.UUID
	Type          TransactionType
	VendorName    string
	Amount        decimal.Decimal
	Currency      string
	GstPercent    decimal.Decimal
	GstAmount     decimal.Decimal
	Category      string
	InvoiceNumber string
	Date          time.Time
}

// TransactionUpdate replaces every mutable field of a transaction.
// updated_at is advanced by the table, never by callers.
type TransactionUpdate struct {
	Type          TransactionType
	VendorName    string
	Amount        decimal.Decimal
	Currency      string
	GstPercent    decimal.Decimal
	GstAmount     decimal.Decimal
	Category      string
	InvoiceNumber string
	Date          time.Time
}

// TransactionFilter specifies filters for listing a user's transactions.
// UserID is mandatory; every query is owner-scoped.
type TransactionFilter struct {
	UserID   uuid.UUID
	Type     *TransactionType
	Category *string
	// Search matches vendor name or invoice number, case-insensitively.
	Search   *string
	Currency *string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// Fingerprint is the change-detection signal for a month of transactions:
// row count plus the latest modification timestamp (nil when the slice is
// empty). Any create, update, or delete within the window moves at least
// one of the two.
type Fingerprint struct {
	Count         int64      `db:"tx_count"`
	LastUpdatedAt *time.Time `db:"last_updated_at"`
}

// CategoryTotal is one expense category with its summed amount.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

// ITransactionsTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionsTable --output mock_ITransactionsTable.go
type ITransactionsTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *TransactionUpdate) (bool, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
	CountAndMaxModified(ctx context.Context, userID uuid.UUID, from, to time.Time) (*Fingerprint, error)
	TopExpenseCategory(ctx context.Context, userID uuid.UUID, from, to time.Time, currency string) (*CategoryTotal, error)
	SumExpenses(ctx context.Context, userID uuid.UUID, from, to time.Time, currency string) (decimal.Decimal, error)
}
