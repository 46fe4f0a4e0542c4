package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/udyog-books/ledger-server/internal/ai"
	"github.com/udyog-books/ledger-server/internal/storage"
	"github.com/udyog-books/ledger-server/internal/storage/sqlconfig"
)

// Insight is one AI-generated insight in the service layer. Value is an
// optional formatted figure string.
type Insight struct {
	Type        string
	Title       string
	Description string
	Value       string
}

// InsightService serves cached monthly insights and regenerates them
// when the month's ledger has changed since the cache was written.
//
// Cache validity hinges on the (count, lastModified) fingerprint: count
// alone misses edits that keep the row count, the timestamp alone can
// survive a delete, the pair covers create, update, and delete.
type InsightService struct {
	storage           *storage.Storage
	dashboard         *DashboardService
	generator         ai.IInsightGenerator
	reportingCurrency string
}

// NewInsightService creates a new InsightService.
func NewInsightService(store *storage.Storage, dashboard *DashboardService, generator ai.IInsightGenerator, reportingCurrency string) *InsightService {
	return &InsightService{
		storage:           store,
		dashboard:         dashboard,
		generator:         generator,
		reportingCurrency: reportingCurrency,
	}
}

// GetMonthlyInsights returns the insight list for (user, year, month),
// reusing the cached list when the month's fingerprint still matches and
// regenerating otherwise. Concurrent misses for the same key may each
// call the generator; both upsert the same key so the last write wins.
func (s *InsightService) GetMonthlyInsights(ctx context.Context, userID uuid.UUID, year, month int) ([]Insight, error) {
	metrics, err := s.dashboard.GetDashboardMetrics(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		return []Insight{}, nil
	}

	start, end := MonthWindow(year, month)
	fingerprint, err := s.storage.Transactions.CountAndMaxModified(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	cached, err := s.storage.InsightCache.Get(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	if cacheIsFresh(cached, fingerprint) {
		return insightsFromItems(cached.Insights), nil
	}

	insightCtx, err := s.buildInsightContext(ctx, userID, metrics, year, month)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.GenerateMonthlyInsights(ctx, insightCtx)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			// Placeholder content is never cached as if it were real.
			return []Insight{placeholderInsight()}, nil
		}
		// Malformed or failed generation degrades this request to empty
		// content; the next read tries again.
		return []Insight{}, nil
	}

	// Record the fingerprint snapshot taken before generation, so edits
	// landing while the generator ran invalidate this entry next read.
	lastUpdatedAt := start
	if fingerprint.LastUpdatedAt != nil {
		lastUpdatedAt = *fingerprint.LastUpdatedAt
	}
	err = s.storage.InsightCache.Upsert(ctx, &sqlconfig.InsightCacheUpsert{
		UserID:                   userID,
		Year:                     year,
		Month:                    month,
		TransactionCount:         fingerprint.Count,
		LastTransactionUpdatedAt: lastUpdatedAt,
		Insights:                 itemsFromGenerated(generated),
	})
	if err != nil {
		return nil, err
	}

	return insightsFromGenerated(generated), nil
}

// buildInsightContext gathers the numeric context the generator sees:
// the month's metrics plus the top expense category and previous-month
// expense total. The two auxiliary reads are independent and run
// concurrently; both complete before the generator is invoked.
func (s *InsightService) buildInsightContext(ctx context.Context, userID uuid.UUID, metrics *DashboardMetrics, year, month int) (*ai.InsightContext, error) {
	start, end := MonthWindow(year, month)
	prevStart, prevEnd := PreviousMonthWindow(year, month)

	var topCategory *sqlconfig.CategoryTotal
	var previousMonthExpenses decimal.Decimal

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		topCategory, err = s.storage.Transactions.TopExpenseCategory(groupCtx, userID, start, end, s.reportingCurrency)
		return err
	})
	group.Go(func() error {
		var err error
		previousMonthExpenses, err = s.storage.Transactions.SumExpenses(groupCtx, userID, prevStart, prevEnd, s.reportingCurrency)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	insightCtx := &ai.InsightContext{
		TotalIncome:           metrics.TotalIncome,
		TotalExpenses:         metrics.TotalExpenses,
		NetProfit:             metrics.NetProfit,
		TotalInputGst:         metrics.TotalInputGst,
		TotalOutputGst:        metrics.TotalOutputGst,
		NetGstPayable:         metrics.NetGstPayable,
		PreviousMonthExpenses: previousMonthExpenses,
	}
	if topCategory != nil {
		insightCtx.HasTopCategory = true
		insightCtx.TopCategory = topCategory.Category
		insightCtx.TopCategoryAmount = topCategory.Total
	}
	return insightCtx, nil
}

// cacheIsFresh is the validity predicate: an entry is reusable when it
// holds content, its count matches, and (for non-empty months) its
// recorded last-modified timestamp matches the ledger's. An empty month
// has no meaningful timestamp, so the count match alone suffices there.
func cacheIsFresh(cached *sqlconfig.InsightCacheEntry, current *sqlconfig.Fingerprint) bool {
	if cached == nil || len(cached.Insights) == 0 {
		return false
	}
	if cached.TransactionCount != current.Count {
		return false
	}
	if current.Count == 0 {
		return true
	}
	return current.LastUpdatedAt != nil && cached.LastTransactionUpdatedAt.Equal(*current.LastUpdatedAt)
}

func placeholderInsight() Insight {
	return Insight{
		Type:        ai.InsightGeneral,
		Title:       "Insights unavailable",
		Description: "Add OPENAI_API_KEY to enable AI-generated insights.",
	}
}

func insightsFromItems(items []sqlconfig.InsightItem) []Insight {
	insights := make([]Insight, len(items))
	for i, item := range items {
		insights[i] = Insight{
			Type:        item.Type,
			Title:       item.Title,
			Description: item.Description,
			Value:       item.Value,
		}
	}
	return insights
}

func insightsFromGenerated(generated []ai.Insight) []Insight {
	insights := make([]Insight, len(generated))
	for i, item := range generated {
		insights[i] = Insight{
			Type:        item.Type,
			Title:       item.Title,
			Description: item.Description,
			Value:       item.Value,
		}
	}
	return insights
}

func itemsFromGenerated(generated []ai.Insight) []sqlconfig.InsightItem {
	items := make([]sqlconfig.InsightItem, len(generated))
	for i, item := range generated {
		items[i] = sqlconfig.InsightItem{
			Type:        item.Type,
			Title:       item.Title,
			Description: item.Description,
			Value:       item.Value,
		}
	}
	return items
}
