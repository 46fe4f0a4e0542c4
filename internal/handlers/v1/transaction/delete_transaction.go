package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/operator/actions"
	"github.com/udyog-books/ledger-server/internal/storage"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID     string `path:"id" doc:"Transaction UUID"`
	UserID string `query:"userID" required:"true" doc:"Owner UUID"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	Operator actionProcessor
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(op actionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Deletes a transaction owned by the given user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	action := &actions.DeleteTransaction{
		UserID:        userID,
		TransactionID: id,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}

	return &DeleteTransactionOutput{Status: http.StatusOK}, nil
}
