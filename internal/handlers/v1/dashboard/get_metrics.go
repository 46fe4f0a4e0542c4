package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/udyog-books/ledger-server/internal/logging"
	"github.com/udyog-books/ledger-server/internal/service"
)

// GetMetricsInput is the Huma input for fetching dashboard metrics.
// Month is zero-based (0 is January). Omitting year or month selects the
// current calendar month.
type GetMetricsInput struct {
	UserID string `query:"userID" required:"true" doc:"Owner UUID"`
	Year   int    `query:"year" default:"-1" doc:"Calendar year, defaults to the current year"`
	Month  int    `query:"month" default:"-1" maximum:"11" doc:"Zero-based month, defaults to the current month"`
}

// MetricsBody is the response body for dashboard metrics. Totals cover
// reporting-currency transactions only.
type MetricsBody struct {
	TotalIncome    string `json:"totalIncome" doc:"Sum of income amounts"`
	TotalExpenses  string `json:"totalExpenses" doc:"Sum of expense amounts"`
	NetProfit      string `json:"netProfit" doc:"Income minus expenses, may be negative"`
	TotalInputGst  string `json:"totalInputGst" doc:"GST paid on expenses"`
	TotalOutputGst string `json:"totalOutputGst" doc:"GST collected on income"`
	NetGstPayable  string `json:"netGstPayable" doc:"Output GST minus input GST, floored at zero"`
}

// GetMetricsOutput is the Huma output for fetching dashboard metrics.
type GetMetricsOutput struct {
	Body MetricsBody
}

// metricsProvider is the interface for computing monthly dashboard metrics.
type metricsProvider interface {
	GetDashboardMetrics(ctx context.Context, userID uuid.UUID, year, month int) (*service.DashboardMetrics, error)
}

// GetMetricsHandler handles GET /v1/dashboard/metrics.
type GetMetricsHandler struct {
	DashboardService metricsProvider
}

// NewGetMetricsHandler creates a new GetMetricsHandler.
func NewGetMetricsHandler(svc metricsProvider) *GetMetricsHandler {
	return &GetMetricsHandler{DashboardService: svc}
}

// Register registers the dashboard metrics endpoint with the Huma API.
func (h *GetMetricsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard-metrics",
		Method:      http.MethodGet,
		Path:        "/v1/dashboard/metrics",
		Summary:     "Get dashboard metrics",
		Description: "Returns income, expense, profit, and GST totals for one calendar month.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *GetMetricsHandler) handle(ctx context.Context, input *GetMetricsInput) (*GetMetricsOutput, error) {
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
		stopTimer = logData.AddTiming("dashboardMetricsMs")
	}
	metrics, err := h.DashboardService.GetDashboardMetrics(ctx, userID, year, month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute dashboard metrics", err)
	}
	if metrics == nil {
		return nil, huma.NewError(http.StatusNotFound, "user not found")
	}

	return &GetMetricsOutput{Body: MetricsBody{
		TotalIncome:    metrics.TotalIncome.String(),
		TotalExpenses:  metrics.TotalExpenses.String(),
		NetProfit:      metrics.NetProfit.String(),
		TotalInputGst:  metrics.TotalInputGst.String(),
		TotalOutputGst: metrics.TotalOutputGst.String(),
		NetGstPayable:  metrics.NetGstPayable.String(),
	}}, nil
}
