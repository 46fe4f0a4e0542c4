package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/udyog-books/ledger-server/internal/gst"
	"github.com/udyog-books/ledger-server/internal/storage"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// DashboardMetrics are the month's totals over reporting-currency
// transactions. NetProfit may be negative; NetGstPayable never is.
type DashboardMetrics struct {
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetProfit      decimal.Decimal
	TotalInputGst  decimal.Decimal
	TotalOutputGst decimal.Decimal
	NetGstPayable  decimal.Decimal
}

// DashboardService computes monthly aggregates over a user's ledger.
// Aggregates are derived from scratch on every request; there is no
// incremental maintenance to get out of sync.
type DashboardService struct {
	storage           *storage.Storage
	reportingCurrency string
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(store *storage.Storage, reportingCurrency string) *DashboardService {
	return &DashboardService{storage: store, reportingCurrency: reportingCurrency}
}

// GetDashboardMetrics aggregates one calendar month (zero-based month)
// of the user's ledger. Returns nil without querying storage when the
// owner is unknown; a known owner with no data gets all-zero totals.
// Transactions outside the reporting currency are excluded from every
// total, not converted.
func (s *DashboardService) GetDashboardMetrics(ctx context.Context, userID uuid.UUID, year, month int) (*DashboardMetrics, error) {
	if userID.IsNil() {
		return nil, nil
	}

	start, end := MonthWindow(year, month)
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID: userID,
		From:   &start,
		To:     &end,
	})
	if err != nil {
		return nil, err
	}

	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero
	incomeGst := decimal.Zero
	expenseGst := decimal.Zero

	for _, row := range rows {
		if row.Currency != s.reportingCurrency {
			continue
		}
		if row.Type == sqlconfig.TypeIncome {
			totalIncome = totalIncome.Add(row.Amount)
			incomeGst = incomeGst.Add(row.GstAmount)
		} else {
			totalExpenses = totalExpenses.Add(row.Amount)
			expenseGst = expenseGst.Add(row.GstAmount)
		}
	}

	summary := gst.Summarize(incomeGst, expenseGst)

	return &DashboardMetrics{
		TotalIncome:    totalIncome,
		TotalExpenses:  totalExpenses,
		NetProfit:      totalIncome.Sub(totalExpenses),
		TotalInputGst:  summary.TotalInputGst,
		TotalOutputGst: summary.TotalOutputGst,
		NetGstPayable:  summary.NetGstPayable,
	}, nil
}
