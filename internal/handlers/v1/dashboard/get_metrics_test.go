package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/udyog-books/ledger-server/internal/service"
)

type mockMetricsProvider struct {
	mock.Mock
}

func (m *mockMetricsProvider) GetDashboardMetrics(ctx context.Context, userID uuid.UUID, year, month int) (*service.DashboardMetrics, error) {
	args := m.Called(ctx, userID, year, month)
	metrics, _ := args.Get(0).(*service.DashboardMetrics)
	return metrics, args.Error(1)
}

func newTestAPI(t *testing.T, svc metricsProvider) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetMetricsHandler(svc).Register(api)
	return api
}

func TestHTTP_GetMetrics_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockMetricsProvider)
	mockSvc.On("GetDashboardMetrics", mock.Anything, userID, 2025, 5).
		Return(&service.DashboardMetrics{
			TotalIncome:    decimal.RequireFromString("15000"),
			TotalExpenses:  decimal.RequireFromString("11800"),
			NetProfit:      decimal.RequireFromString("3200"),
			TotalInputGst:  decimal.RequireFromString("1800"),
			TotalOutputGst: decimal.RequireFromString("2288.14"),
			NetGstPayable:  decimal.RequireFromString("488.14"),
		}, nil)

	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf(
		"/v1/dashboard/metrics?userID=%s&year=2025&month=5", userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MetricsBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "15000", body.TotalIncome)
	assert.Equal(t, "11800", body.TotalExpenses)
	assert.Equal(t, "3200", body.NetProfit)
	assert.Equal(t, "488.14", body.NetGstPayable)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetMetrics_DefaultsToCurrentMonth(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	currentYear, currentMonth := service.CurrentMonth(time.Now())

	mockSvc := new(mockMetricsProvider)
	mockSvc.On("GetDashboardMetrics", mock.Anything, userID, currentYear, currentMonth).
		Return(&service.DashboardMetrics{
			TotalIncome:    decimal.Zero,
			TotalExpenses:  decimal.Zero,
			NetProfit:      decimal.Zero,
			TotalInputGst:  decimal.Zero,
			TotalOutputGst: decimal.Zero,
			NetGstPayable:  decimal.Zero,
		}, nil)

	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf("/v1/dashboard/metrics?userID=%s", userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetMetrics_JanuaryIsMonthZero(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockMetricsProvider)
	mockSvc.On("GetDashboardMetrics", mock.Anything, userID, 2025, 0).
		Return(&service.DashboardMetrics{
			TotalIncome:    decimal.Zero,
			TotalExpenses:  decimal.Zero,
			NetProfit:      decimal.Zero,
			TotalInputGst:  decimal.Zero,
			TotalOutputGst: decimal.Zero,
			NetGstPayable:  decimal.Zero,
		}, nil)

	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf(
		"/v1/dashboard/metrics?userID=%s&year=2025&month=0", userID))

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetMetrics_InvalidUserID(t *testing.T) {
	mockSvc := new(mockMetricsProvider)

	resp := newTestAPI(t, mockSvc).Get("/v1/dashboard/metrics?userID=not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "GetDashboardMetrics")
}

func TestHTTP_GetMetrics_MonthTooLarge(t *testing.T) {
	mockSvc := new(mockMetricsProvider)

	// Huma's maximum schema validation rejects this before the handler runs.
	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf(
		"/v1/dashboard/metrics?userID=%s&year=2025&month=12", uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetDashboardMetrics")
}

func TestHTTP_GetMetrics_ServiceError(t *testing.T) {
	mockSvc := new(mockMetricsProvider)
	mockSvc.On("GetDashboardMetrics", mock.Anything, mock.Anything, 2025, 5).
		Return((*service.DashboardMetrics)(nil), errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Get(fmt.Sprintf(
		"/v1/dashboard/metrics?userID=%s&year=2025&month=5", uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
