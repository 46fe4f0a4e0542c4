package insights

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/logging"
	"github.com/udyog-books/ledger-server/internal/service"
)

// GetInsightsInput is the Huma input for fetching monthly insights.
// Month is zero-based (0 is January). Omitting year or month selects the
// current calendar month.
type GetInsightsInput struct {
	UserID string `query:"userID" required:"true" doc:"Owner UUID"`
	Year   int    `query:"year" default:"-1" doc:"Calendar year, defaults to the current year"`
	Month  int    `query:"month" default:"-1" maximum:"11" doc:"Zero-based month, defaults to the current month"`
}

// Insight is the API model for one generated insight.
type Insight struct {
	Type        string `json:"type" doc:"spending_change, highest_category, gst_alert, or general"`
	Title       string `json:"title" doc:"Short headline"`
	Description string `json:"description" doc:"One or two sentence explanation"`
	Value       string `json:"value,omitempty" doc:"Optional formatted figure"`
}

// GetInsightsResponseBody is the response body for fetching insights.
type GetInsightsResponseBody struct {
	Insights []Insight `json:"insights" doc:"Generated or cached insights for the month"`
}

// GetInsightsOutput is the Huma output for fetching insights.
type GetInsightsOutput struct {
	Body GetInsightsResponseBody
}

// insightsProvider is the interface for fetching monthly insights.
type insightsProvider interface {
	GetMonthlyInsights(ctx context.Context, userID uuid.UUID, year, month int) ([]service.Insight, error)
}

// GetInsightsHandler handles GET /v1/insights.
type GetInsightsHandler struct {
	InsightService insightsProvider
}

// NewGetInsightsHandler creates a new GetInsightsHandler.
func NewGetInsightsHandler(svc insightsProvider) *GetInsightsHandler {
	return &GetInsightsHandler{InsightService: svc}
}

// Register registers the insights endpoint with the Huma API.
func (h *GetInsightsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-insights",
		Method:      http.MethodGet,
		Path:        "/v1/insights",
		Summary:     "Get monthly insights",
		Description: "Returns AI-generated insights for one calendar month, served from cache while the month's ledger is unchanged.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *GetInsightsHandler) handle(ctx context.Context, input *GetInsightsInput) (*GetInsightsOutput, error) {
	userID, err := uuid.FromString(input.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	// Month 0 is a valid January, so absence is signalled with -1.
	year, month := input.Year, input.Month
	if year < 0 || month < 0 {
		year, month = service.CurrentMonth(time.Now())
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlyInsightsMs")
	}
	insights, err := h.InsightService.GetMonthlyInsights(ctx, userID, year, month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get insights", err)
	}

	if logData != nil {
		logData.AddData("insightCount", len(insights))
	}

	resp := GetInsightsResponseBody{Insights: make([]Insight, len(insights))}
	for i, insight := range insights {
		resp.Insights[i] = Insight{
			Type:        insight.Type,
			Title:       insight.Title,
			Description: insight.Description,
			Value:       insight.Value,
		}
	}

	return &GetInsightsOutput{Body: resp}, nil
}
