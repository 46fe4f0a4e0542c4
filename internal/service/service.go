package service

import (
	"github.com/udyog-books/ledger-server/internal/ai"
	"github.com/udyog-books/ledger-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Dashboard   *DashboardService
	Insight     *InsightService
}

// NewService creates a new Service with the given storage and insight
// generator. reportingCurrency is the single currency dashboard totals
// are computed over.
func NewService(store *storage.Storage, generator ai.IInsightGenerator, reportingCurrency string) *Service {
	dashboard := NewDashboardService(store, reportingCurrency)
	return &Service{
		Transaction: NewTransactionService(store),
		Dashboard:   dashboard,
		Insight:     NewInsightService(store, dashboard, generator, reportingCurrency),
	}
}
