package invoice

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/udyog-books/ledger-server/internal/ai"
)

func newTestAPI(t *testing.T, parser ai.IInvoiceParser) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewParseInvoiceHandler(parser).Register(api)
	return api
}

func TestHTTP_ParseInvoice_Success(t *testing.T) {
	mockParser := ai.NewMockIInvoiceParser(t)
	mockParser.EXPECT().
		ParseInvoiceText(mock.Anything, "TAX INVOICE Sharma Traders INV-042 Total ₹11,800 GST 18%").
		Return(&ai.ParsedInvoice{
			VendorName:    "Sharma Traders",
			InvoiceNumber: "INV-042",
			Amount:        decimal.RequireFromString("11800"),
			Currency:      "INR",
			GstPercent:    decimal.RequireFromString("18"),
			Date:          "2025-06-15",
		}, nil)

	resp := newTestAPI(t, mockParser).Post("/v1/invoice/parse", ParseInvoiceBody{
		Text: "TAX INVOICE Sharma Traders INV-042 Total ₹11,800 GST 18%",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ParsedInvoiceBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Sharma Traders", body.VendorName)
	assert.Equal(t, "INV-042", body.InvoiceNumber)
	assert.Equal(t, "11800", body.Amount)
	assert.Equal(t, "INR", body.Currency)
	assert.Equal(t, "18", body.GstPercent)
	assert.Equal(t, "2025-06-15", body.Date)
}

func TestHTTP_ParseInvoice_MissingFieldsComeBackEmpty(t *testing.T) {
	mockParser := ai.NewMockIInvoiceParser(t)
	mockParser.EXPECT().
		ParseInvoiceText(mock.Anything, mock.Anything).
		Return(&ai.ParsedInvoice{
			VendorName: "Acme",
			Amount:     decimal.Zero,
			Currency:   "INR",
			GstPercent: decimal.Zero,
		}, nil)

	resp := newTestAPI(t, mockParser).Post("/v1/invoice/parse", ParseInvoiceBody{
		Text: "illegible receipt",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ParsedInvoiceBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0", body.Amount)
	assert.Empty(t, body.InvoiceNumber)
	assert.Empty(t, body.Date)
}

func TestHTTP_ParseInvoice_EmptyText(t *testing.T) {
	mockParser := ai.NewMockIInvoiceParser(t)

	// Huma's minLength schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockParser).Post("/v1/invoice/parse", ParseInvoiceBody{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockParser.AssertNotCalled(t, "ParseInvoiceText")
}

func TestHTTP_ParseInvoice_NotConfigured(t *testing.T) {
	mockParser := ai.NewMockIInvoiceParser(t)
	mockParser.EXPECT().
		ParseInvoiceText(mock.Anything, mock.Anything).
		Return(nil, ai.ErrNotConfigured)

	resp := newTestAPI(t, mockParser).Post("/v1/invoice/parse", ParseInvoiceBody{
		Text: "TAX INVOICE",
	})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestHTTP_ParseInvoice_BadModelResponse(t *testing.T) {
	mockParser := ai.NewMockIInvoiceParser(t)
	mockParser.EXPECT().
		ParseInvoiceText(mock.Anything, mock.Anything).
		Return(nil, ai.ErrBadResponse)

	resp := newTestAPI(t, mockParser).Post("/v1/invoice/parse", ParseInvoiceBody{
		Text: "TAX INVOICE",
	})

	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestHTTP_ParseInvoice_UpstreamError(t *testing.T) {
	mockParser := ai.NewMockIInvoiceParser(t)
	mockParser.EXPECT().
		ParseInvoiceText(mock.Anything, mock.Anything).
		Return(nil, errors.New("openai: rate limited"))

	resp := newTestAPI(t, mockParser).Post("/v1/invoice/parse", ParseInvoiceBody{
		Text: "TAX INVOICE",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
