package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// InsightItem is one AI-generated insight as stored in the cache.
// Value is optional (a formatted percentage or amount string).
type InsightItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value,omitempty"`
}

// InsightCacheEntry is the cached insight list for one (user, year, month),
// together with the ledger fingerprint observed at write time. Month is
// zero-based (January = 0), matching the dashboard month picker.
type InsightCacheEntry struct {
	UserID                   uuid.UUID
	Year                     int
	Month                    int
	TransactionCount         int64
	LastTransactionUpdatedAt time.Time
	Insights                 []InsightItem
	CreatedAt                time.Time
}

// InsightCacheUpsert is the input for writing a cache entry. Writes
// replace any previous entry for the same key.
type InsightCacheUpsert struct {
	UserID                   uuid.UUID
	Year                     int
	Month                    int
	TransactionCount         int64
	LastTransactionUpdatedAt time.Time
	Insights                 []InsightItem
}

// IInsightCacheTable defines the interface for insight cache storage operations.
//
//go:generate mockery --name IInsightCacheTable --output mock_IInsightCacheTable.go
type IInsightCacheTable interface {
	Get(ctx context.Context, userID uuid.UUID, year, month int) (*InsightCacheEntry, error)
	Upsert(ctx context.Context, upsert *InsightCacheUpsert) error
}
