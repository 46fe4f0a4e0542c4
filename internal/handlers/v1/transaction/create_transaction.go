package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/udyog-books/ledger-server/internal/logging"
	"github.com/udyog-books/ledger-server/internal/operator/actions"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body TransactionBody
}

// CreateTransactionResponseBody is the response body for creating a transaction.
type CreateTransactionResponseBody struct {
	ID string `json:"id" doc:"Generated transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponseBody
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Creates a new ledger entry. The GST amount is derived from the tax-inclusive amount and rate.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, parsed, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{
		UserID: userID,
		Input:  parsed,
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createTransactionMs")
	}
	err = h.Operator.Process(ctx, action)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   CreateTransactionResponseBody{ID: action.ID.String()},
	}, nil
}
