package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/udyog-books/ledger-server/internal/operator/actions"
	"github.com/udyog-books/ledger-server/internal/service"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// actionProcessor is the interface for running write actions through the
// operator queue.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// dateFormat is the wire format for effective dates; transactions carry
// day granularity only.
const dateFormat = "2006-01-02"

// Transaction is the API response model for a ledger entry.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction UUID"`
	Type          string `json:"type" doc:"income or expense"`
	VendorName    string `json:"vendorName" doc:"Vendor or payee name"`
	Amount        string `json:"amount" doc:"Decimal tax-inclusive amount"`
	Currency      string `json:"currency" doc:"ISO 4217 currency code"`
	GstPercent    string `json:"gstPercent" doc:"GST rate percent"`
	GstAmount     string `json:"gstAmount" doc:"Derived GST component of the amount"`
	Category      string `json:"category" doc:"Free-text category"`
	InvoiceNumber string `json:"invoiceNumber,omitempty" doc:"Invoice reference, if any"`
	Date          string `json:"date" doc:"Effective date, YYYY-MM-DD"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt     string `json:"updatedAt" doc:"RFC3339 last modification time"`
}

// TransactionBody is the request body shared by create and update.
type TransactionBody struct {
	UserID        string `json:"userID" required:"true" doc:"Owner UUID"`
	Type          string `json:"type" required:"true" enum:"income,expense" doc:"income or expense"`
	VendorName    string `json:"vendorName" required:"true" doc:"Vendor or payee name"`
	Amount        string `json:"amount" required:"true" doc:"Decimal tax-inclusive amount"`
	Currency      string `json:"currency,omitempty" doc:"ISO 4217 currency code, defaults to INR"`
	GstPercent    string `json:"gstPercent,omitempty" doc:"GST rate percent, defaults to 0"`
	Category      string `json:"category" required:"true" doc:"Free-text category"`
	InvoiceNumber string `json:"invoiceNumber,omitempty" doc:"Invoice reference"`
	Date          string `json:"date" required:"true" doc:"Effective date, YYYY-MM-DD"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:            tx.ID.String(),
		Type:          string(tx.Type),
		VendorName:    tx.VendorName,
		Amount:        tx.Amount.String(),
		Currency:      tx.Currency,
		GstPercent:    tx.GstPercent.String(),
		GstAmount:     tx.GstAmount.String(),
		Category:      tx.Category,
		InvoiceNumber: tx.InvoiceNumber,
		Date:          tx.Date.Format(dateFormat),
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     tx.UpdatedAt.Format(time.RFC3339),
	}
}

// parseTransactionBody converts the wire body into a validated action input.
func parseTransactionBody(body TransactionBody) (uuid.UUID, actions.TransactionInput, error) {
	userID, err := uuid.FromString(body.UserID)
	if err != nil {
		return uuid.Nil, actions.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return uuid.Nil, actions.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	gstPercent := decimal.Zero
	if body.GstPercent != "" {
		gstPercent, err = decimal.NewFromString(body.GstPercent)
		if err != nil {
			return uuid.Nil, actions.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid gstPercent", err)
		}
	}

	date, err := time.Parse(dateFormat, body.Date)
	if err != nil {
		return uuid.Nil, actions.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid date, want YYYY-MM-DD", err)
	}

	input := actions.TransactionInput{
		Type:          sqlconfig.TransactionType(body.Type),
		VendorName:    body.VendorName,
		Amount:        amount,
		Currency:      body.Currency,
		GstPercent:    gstPercent,
		Category:      body.Category,
		InvoiceNumber: body.InvoiceNumber,
		Date:          date,
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, actions.TransactionInput{}, huma.NewError(http.StatusBadRequest, err.Error())
	}
	return userID, input, nil
}
