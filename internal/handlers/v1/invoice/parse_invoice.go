package invoice

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/udyog-books/ledger-server/internal/ai"
	"github.com/udyog-books/ledger-server/internal/logging"
)

// ParseInvoiceBody is the request body for parsing invoice text.
type ParseInvoiceBody struct {
	Text string `json:"text" required:"true" minLength:"1" doc:"Raw invoice text from OCR or copy-paste"`
}

// ParseInvoiceInput is the Huma input for parsing invoice text.
type ParseInvoiceInput struct {
	Body ParseInvoiceBody
}

// ParsedInvoiceBody is the response body: extracted fields ready to
// prefill a transaction form. Missing fields come back empty or "0".
type ParsedInvoiceBody struct {
	VendorName    string `json:"vendorName" doc:"Vendor name from the invoice"`
	InvoiceNumber string `json:"invoiceNumber" doc:"Invoice reference"`
	Amount        string `json:"amount" doc:"Total amount as a decimal string"`
	Currency      string `json:"currency" doc:"ISO 4217 currency code"`
	GstPercent    string `json:"gstPercent" doc:"GST rate percent"`
	Date          string `json:"date" doc:"Invoice date, YYYY-MM-DD, empty if absent"`
}

// ParseInvoiceOutput is the Huma output for parsing invoice text.
type ParseInvoiceOutput struct {
	Body ParsedInvoiceBody
}

// ParseInvoiceHandler handles POST /v1/invoice/parse.
type ParseInvoiceHandler struct {
	Parser ai.IInvoiceParser
}

// NewParseInvoiceHandler creates a new ParseInvoiceHandler.
func NewParseInvoiceHandler(parser ai.IInvoiceParser) *ParseInvoiceHandler {
	return &ParseInvoiceHandler{Parser: parser}
}

// Register registers the invoice parsing endpoint with the Huma API.
func (h *ParseInvoiceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "parse-invoice",
		Method:      http.MethodPost,
		Path:        "/v1/invoice/parse",
		Summary:     "Parse invoice text",
		Description: "Extracts vendor, amount, currency, GST rate, and date from raw invoice text.",
		Tags:        []string{"Invoices"},
	}, h.handle)
}

func (h *ParseInvoiceHandler) handle(ctx context.Context, input *ParseInvoiceInput) (*ParseInvoiceOutput, error) {
	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("parseInvoiceMs")
	}
	parsed, err := h.Parser.ParseInvoiceText(ctx, input.Body.Text)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return nil, huma.NewError(http.StatusServiceUnavailable, "invoice parsing is not configured")
		}
		if errors.Is(err, ai.ErrBadResponse) {
			return nil, huma.NewError(http.StatusBadGateway, "could not extract fields from the invoice text")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to parse invoice", err)
	}

	return &ParseInvoiceOutput{Body: ParsedInvoiceBody{
		VendorName:    parsed.VendorName,
		InvoiceNumber: parsed.InvoiceNumber,
		Amount:        parsed.Amount.String(),
		Currency:      parsed.Currency,
		GstPercent:    parsed.GstPercent.String(),
		Date:          parsed.Date,
	}}, nil
}
