package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/service"
)

// GetTransactionInput is the Huma input for fetching a single transaction.
type GetTransactionInput struct {
	ID     string `path:"id" doc:"Transaction UUID"`
	UserID string `query:"userID" required:"true" doc:"Owner UUID"`
}

// GetTransactionOutput is the Huma output for fetching a single transaction.
type GetTransactionOutput struct {
	Body Transaction
}

// transactionGetter is the interface for fetching a transaction.
type transactionGetter interface {
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transaction/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

// NewGetTransactionHandler creates a new GetTransactionHandler.
func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

// Register registers the get transaction endpoint with the Huma API.
func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/{id}",
		Summary:     "Get transaction",
		Description: "Returns a single transaction owned by the given user.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	tx, err := h.TransactionService.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get transaction", err)
	}
	if tx == nil {
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	}

	return &GetTransactionOutput{Body: transactionFromService(*tx)}, nil
}
