package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/udyog-books/ledger-server/internal/operator/actions"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// mockActionProcessor is a mock for actionProcessor.
type mockActionProcessor struct {
	mock.Mock
}

func (m *mockActionProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// newCreateTestAPI registers the handler against a humatest API and returns it.
func newCreateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(op).Register(api)
	return api
}

func validBody(userID uuid.UUID) TransactionBody {
	return TransactionBody{
		UserID:     userID.String(),
		Type:       "expense",
		VendorName: "Sharma Traders",
		Amount:     "11800",
		Currency:   "INR",
		GstPercent: "18",
		Category:   "Raw Materials",
		Date:       "2025-06-15",
	}
}

// -- parseTransactionBody unit tests --
// These verify individual parsed field values which the HTTP tests don't assert.

func TestParseTransactionBody_ValidInput(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	body := validBody(userID)
	body.InvoiceNumber = "INV-042"

	parsedUserID, input, err := parseTransactionBody(body)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedUserID)
	assert.Equal(t, sqlconfig.TypeExpense, input.Type)
	assert.Equal(t, "Sharma Traders", input.VendorName)
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("11800")))
	assert.Equal(t, "INR", input.Currency)
	assert.True(t, input.GstPercent.Equal(decimal.RequireFromString("18")))
	assert.Equal(t, "Raw Materials", input.Category)
	assert.Equal(t, "INV-042", input.InvoiceNumber)
	assert.True(t, input.Date.Equal(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
}

func TestParseTransactionBody_GstPercentDefaultsToZero(t *testing.T) {
	body := validBody(uuid.Must(uuid.NewV4()))
	body.GstPercent = ""

	_, input, err := parseTransactionBody(body)
	assert.NoError(t, err)
	assert.True(t, input.GstPercent.IsZero())
}

func TestParseTransactionBody_InvalidAmount(t *testing.T) {
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Amount = "not-a-decimal"

	_, _, err := parseTransactionBody(body)
	assert.Error(t, err)
}

func TestParseTransactionBody_NegativeAmountRejected(t *testing.T) {
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Amount = "-50"

	_, _, err := parseTransactionBody(body)
	assert.Error(t, err)
}

func TestParseTransactionBody_GstPercentOutOfRange(t *testing.T) {
	body := validBody(uuid.Must(uuid.NewV4()))
	body.GstPercent = "120"

	_, _, err := parseTransactionBody(body)
	assert.Error(t, err)
}

func TestParseTransactionBody_InvalidDate(t *testing.T) {
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Date = "15/06/2025"

	_, _, err := parseTransactionBody(body)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok &&
			create.UserID == userID &&
			create.Input.VendorName == "Sharma Traders" &&
			create.Input.Amount.Equal(decimal.RequireFromString("11800"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateTransaction).ID = txID
	}).Return(nil)

	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", validBody(userID))

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockOp := new(mockActionProcessor)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", TransactionBody{
		UserID: uuid.Must(uuid.NewV4()).String(),
		// Type, VendorName, Amount, Category, Date omitted
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockOp := new(mockActionProcessor)

	// Huma's enum schema validation rejects this before the handler runs.
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Type = "transfer"
	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidUserID(t *testing.T) {
	mockOp := new(mockActionProcessor)

	body := validBody(uuid.Must(uuid.NewV4()))
	body.UserID = "not-a-uuid"
	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockOp := new(mockActionProcessor)

	body := validBody(uuid.Must(uuid.NewV4()))
	body.Amount = "not-a-decimal"
	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_OperatorError(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockOp).Post("/v1/transaction", validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
