package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/logging"
	"github.com/udyog-books/ledger-server/internal/service"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// ListTransactionsBody is the request body for listing transactions.
// All filters are optional; omitted filters match everything.
type ListTransactionsBody struct {
	UserID   string `json:"userID" required:"true" doc:"Owner UUID"`
	Type     string `json:"type,omitempty" doc:"Filter by transaction type, income or expense"`
	Category string `json:"category,omitempty" doc:"Filter by exact category"`
	Search   string `json:"search,omitempty" doc:"Case-insensitive match on vendor name or invoice number"`
	From     string `json:"from,omitempty" doc:"Inclusive lower bound on date, YYYY-MM-DD"`
	To       string `json:"to,omitempty" doc:"Inclusive upper bound on date, YYYY-MM-DD"`
	Limit    int    `json:"limit,omitempty" minimum:"0" maximum:"500" doc:"Maximum rows to return, defaults to 100"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, options service.ListTransactionsOptions) ([]service.Transaction, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns the user's transactions, newest first, optionally filtered by type, category, date range, or a vendor/invoice search.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input into
// service-layer listing options.
func parseListTransactionsInput(input *ListTransactionsInput) (service.ListTransactionsOptions, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return service.ListTransactionsOptions{}, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	options := service.ListTransactionsOptions{
		UserID: userID,
		Limit:  input.Body.Limit,
	}

	if input.Body.Type != "" {
		txType := sqlconfig.TransactionType(input.Body.Type)
		if txType != sqlconfig.TypeIncome && txType != sqlconfig.TypeExpense {
			return service.ListTransactionsOptions{}, huma.NewError(http.StatusBadRequest, "type must be income or expense")
		}
		options.Type = &txType
	}
	if input.Body.Category != "" {
		category := input.Body.Category
		options.Category = &category
	}
	if input.Body.Search != "" {
		search := input.Body.Search
		options.Search = &search
	}
	if input.Body.From != "" {
		from, parseErr := time.Parse(dateFormat, input.Body.From)
		if parseErr != nil {
			return service.ListTransactionsOptions{}, huma.NewError(http.StatusBadRequest, "invalid from date, want YYYY-MM-DD", parseErr)
		}
		options.From = &from
	}
	if input.Body.To != "" {
		to, parseErr := time.Parse(dateFormat, input.Body.To)
		if parseErr != nil {
			return service.ListTransactionsOptions{}, huma.NewError(http.StatusBadRequest, "invalid to date, want YYYY-MM-DD", parseErr)
		}
		options.To = &to
	}

	return options, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	options, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.ListTransactions(ctx, options)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = transactionFromService(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
