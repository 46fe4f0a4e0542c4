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

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Status int `json:"status" doc:"HTTP status"`
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	Operator actionProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Replaces the mutable fields of a transaction and recomputes its GST amount.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	userID, parsed, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{
		UserID:        userID,
		TransactionID: id,
		Input:         parsed,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "transaction not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update transaction", err)
	}

	return &UpdateTransactionOutput{Status: http.StatusOK}, nil
}
