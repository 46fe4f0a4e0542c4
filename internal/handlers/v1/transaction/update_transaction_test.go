package transaction

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/udyog-books/ledger-server/internal/operator/actions"
	"github.com/udyog-books/ledger-server/internal/storage"
)

func newUpdateTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateTransactionHandler(op).Register(api)
	return api
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		update, ok := a.(*actions.UpdateTransaction)
		return ok && update.UserID == userID && update.TransactionID == txID
	})).Return(nil)

	resp := newUpdateTestAPI(t, mockOp).Put(
		fmt.Sprintf("/v1/transaction/%s", txID), validBody(userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(storage.ErrNotFound)

	resp := newUpdateTestAPI(t, mockOp).Put(
		fmt.Sprintf("/v1/transaction/%s", uuid.Must(uuid.NewV4())),
		validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_InvalidID(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newUpdateTestAPI(t, mockOp).Put(
		"/v1/transaction/not-a-uuid", validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_UpdateTransaction_OperatorError(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newUpdateTestAPI(t, mockOp).Put(
		fmt.Sprintf("/v1/transaction/%s", uuid.Must(uuid.NewV4())),
		validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}
