package actions

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/udyog-books/ledger-server/internal/gst"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

const defaultCurrency = "INR"

var oneHundred = decimal.NewFromInt(100)

// TransactionInput carries the user-supplied fields of a ledger entry.
// Normalization and the GST-amount derivation are applied here, once,
// so nothing downstream deals with absent or denormalized fields.
type TransactionInput struct {
	Type          sqlconfig.TransactionType
	VendorName    string
	Amount        decimal.Decimal
	Currency      string
	GstPercent    decimal.Decimal
	Category      string
	InvoiceNumber string
	Date          time.Time
}

// Validate enforces the input contract at the boundary: the GST
// functions downstream assume a positive amount and a rate in [0, 100].
func (i *TransactionInput) Validate() error {
	if i.Type != sqlconfig.TypeIncome && i.Type != sqlconfig.TypeExpense {
		return errors.New("type must be income or expense")
	}
	if strings.TrimSpace(i.VendorName) == "" {
		return errors.New("vendor name is required")
	}
	if strings.TrimSpace(i.Category) == "" {
		return errors.New("category is required")
	}
	if i.Amount.Sign() <= 0 {
		return errors.New("amount must be positive")
	}
	if i.GstPercent.Sign() < 0 || i.GstPercent.GreaterThan(oneHundred) {
		return errors.New("gst percent must be between 0 and 100")
	}
	if i.Date.IsZero() {
		return errors.New("date is required")
	}
	return nil
}

// normalized returns a copy with trimmed strings, a defaulted uppercase
// currency code, and the derived GST amount recomputed from the current
// amount and rate. gst_amount is never taken from user input.
func (i TransactionInput) normalized() TransactionInput {
	i.VendorName = strings.TrimSpace(i.VendorName)
	i.Category = strings.TrimSpace(i.Category)
	i.InvoiceNumber = strings.TrimSpace(i.InvoiceNumber)
	i.Currency = normalizeCurrency(i.Currency)
	return i
}

func (i TransactionInput) gstAmount() decimal.Decimal {
	return gst.TaxFromInclusive(i.Amount, i.GstPercent)
}

func normalizeCurrency(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) > 3 {
		code = code[:3]
	}
	if code == "" {
		return defaultCurrency
	}
	return code
}
