package transaction

import (
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

func newDeleteTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteTransactionHandler(op).Register(api)
	return api
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteTransaction)
		return ok && del.UserID == userID && del.TransactionID == txID
	})).Return(nil)

	resp := newDeleteTestAPI(t, mockOp).Delete(
		fmt.Sprintf("/v1/transaction/%s?userID=%s", txID, userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	mockOp := new(mockActionProcessor)
	mockOp.On("Process", mock.Anything, mock.Anything).
		Return(storage.ErrNotFound)

	resp := newDeleteTestAPI(t, mockOp).Delete(fmt.Sprintf(
		"/v1/transaction/%s?userID=%s", uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_InvalidUserID(t *testing.T) {
	mockOp := new(mockActionProcessor)

	resp := newDeleteTestAPI(t, mockOp).Delete(fmt.Sprintf(
		"/v1/transaction/%s?userID=not-a-uuid", uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
